package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"ledger/database"
	"ledger/service"
)

// parseDate 解析 YYYY-MM-DD 格式日期
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// ListRequest 记录列表公共请求参数
type ListRequest struct {
	Page     int    `form:"page" example:"1"`
	PageSize int    `form:"page_size" example:"10"`
	Month    string `form:"month" example:"1"` // 1-12 或 all
	Year     string `form:"year" example:"2024"`
	Status   string `form:"status" example:"Unpaid"`
}

// CategoryDescriptor 记录类别描述符。各类别之间的差异（校验规则、
// 日期列、状态词表）集中在描述符里，列表/新增/修改/删除流程由
// CRUDHandler 统一实现，不再按页面复制。
type CategoryDescriptor[M any, C any, U any] struct {
	Label      string // 类别中文名，用于提示消息
	DateColumn string // 周期过滤使用的日期列
	HasStatus  bool   // 是否支持 status 等值过滤

	// BuildRecord 校验创建请求并构造新记录
	BuildRecord func(c *gin.Context, req *C) (*M, error)
	// ApplyUpdates 校验更新请求并生成更新字段集
	ApplyUpdates func(m *M, req *U) (map[string]interface{}, error)
}

// CRUDHandler 泛型 CRUD 处理器，按记录类别实例化
type CRUDHandler[M any, C any, U any] struct {
	desc CategoryDescriptor[M, C, U]
}

// NewCRUDHandler 创建 CRUD 处理器
func NewCRUDHandler[M any, C any, U any](desc CategoryDescriptor[M, C, U]) *CRUDHandler[M, C, U] {
	return &CRUDHandler[M, C, U]{desc: desc}
}

// badRequestForValidation 区分字段级校验错误与绑定错误
func badRequestForValidation(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		BadRequest(c, ve.Message)
		return
	}
	BadRequest(c, SafeErrorMessage(err, "参数错误"))
}

// List 记录列表，支持分页、周期（month/year）和状态过滤。
// 账本为全店共享：返回所有人创建的记录。
func (h *CRUDHandler[M, C, U]) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	// 默认分页参数
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(new(M))

	// 周期过滤
	if req.Month != "" || req.Year != "" {
		period, err := service.ParsePeriod(req.Month, req.Year)
		if err != nil {
			BadRequest(c, err.Error())
			return
		}
		if !period.All() {
			start, end := period.Range()
			query = query.Where(h.desc.DateColumn+" >= ? AND "+h.desc.DateColumn+" <= ?", start, end)
		}
	}

	// 状态过滤
	if h.desc.HasStatus && req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	var total int64
	query.Count(&total)

	var list []M
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order(h.desc.DateColumn + " DESC, id DESC").Offset(offset).Limit(req.PageSize).Find(&list).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     list,
	})
}

// Create 新增记录
func (h *CRUDHandler[M, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	record, err := h.desc.BuildRecord(c, &req)
	if err != nil {
		badRequestForValidation(c, err)
		return
	}

	if err := database.DB.Create(record).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "创建"+h.desc.Label+"失败"))
		return
	}

	SuccessWithMessage(c, "创建成功", record)
}

// Update 更新记录
func (h *CRUDHandler[M, C, U]) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var record M
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	updates, err := h.desc.ApplyUpdates(&record, &req)
	if err != nil {
		badRequestForValidation(c, err)
		return
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&record).Updates(updates).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	// 重新获取更新后的记录
	database.DB.First(&record, id)
	SuccessWithMessage(c, "更新成功", record)
}

// Delete 删除记录
func (h *CRUDHandler[M, C, U]) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}

	var record M
	if err := database.DB.First(&record, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&record).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SuccessWithMessage(c, "删除成功", nil)
}
