package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/middleware"
	"ledger/models"
	"ledger/service"
)

// PersonRecordCreateRequest 应付/应收记录创建请求
type PersonRecordCreateRequest struct {
	PersonName string  `json:"person_name" binding:"required" example:"Ali"`
	Amount     float64 `json:"amount" binding:"required" example:"500"`
	Date       string  `json:"date" binding:"required" example:"2024-01-10"`
	Status     string  `json:"status" binding:"required" example:"Unpaid"`
}

// PersonRecordUpdateRequest 应付/应收记录更新请求
type PersonRecordUpdateRequest struct {
	PersonName *string  `json:"person_name"`
	Amount     *float64 `json:"amount"`
	Date       *string  `json:"date"`
	Status     *string  `json:"status"` // 标记已付/已还也走本接口
}

// personRecordUpdates 合并部分更新后整体校验，应付/应收共用
func personRecordUpdates(curName string, curAmount float64, curStatus string,
	req *PersonRecordUpdateRequest, validate func(string, float64, string) error) (map[string]interface{}, error) {
	name, amount, status := curName, curAmount, curStatus
	if req.PersonName != nil {
		name = *req.PersonName
	}
	if req.Amount != nil {
		amount = *req.Amount
	}
	if req.Status != nil {
		status = *req.Status
	}
	if err := validate(name, amount, status); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.PersonName != nil {
		updates["person_name"] = strings.TrimSpace(name)
	}
	if req.Amount != nil {
		updates["amount"] = amount
	}
	if req.Status != nil {
		updates["status"] = status
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, dateValidationError()
		}
		updates["date"] = date
	}
	return updates, nil
}

// ToGiveHandler 应付记录处理器
type ToGiveHandler struct {
	crud *CRUDHandler[models.ToGive, PersonRecordCreateRequest, PersonRecordUpdateRequest]
}

// NewToGiveHandler 创建应付记录处理器
func NewToGiveHandler() *ToGiveHandler {
	return &ToGiveHandler{
		crud: NewCRUDHandler(CategoryDescriptor[models.ToGive, PersonRecordCreateRequest, PersonRecordUpdateRequest]{
			Label:      "应付记录",
			DateColumn: "date",
			HasStatus:  true,
			BuildRecord: func(c *gin.Context, req *PersonRecordCreateRequest) (*models.ToGive, error) {
				if err := service.ValidateToGive(req.PersonName, req.Amount, req.Status); err != nil {
					return nil, err
				}
				date, err := parseDate(req.Date)
				if err != nil {
					return nil, dateValidationError()
				}
				return &models.ToGive{
					PersonName: strings.TrimSpace(req.PersonName),
					Amount:     req.Amount,
					Date:       date,
					Status:     req.Status,
					CreatedBy:  middleware.GetCurrentUserID(c),
				}, nil
			},
			ApplyUpdates: func(m *models.ToGive, req *PersonRecordUpdateRequest) (map[string]interface{}, error) {
				return personRecordUpdates(m.PersonName, m.Amount, m.Status, req, service.ValidateToGive)
			},
		}),
	}
}

// List 获取应付记录列表
// @Summary 获取应付记录列表
// @Description 获取应付（欠别人的钱）记录列表，支持分页、周期和状态筛选
// @Tags 应付记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param month query string false "月份 1-12，或 all"
// @Param year query string false "年份，如 2024"
// @Param status query string false "状态筛选：Unpaid/Paid"
// @Success 200 {object} Response{data=PageResponse{list=[]models.ToGive}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/to-give [get]
func (h *ToGiveHandler) List(c *gin.Context) { h.crud.List(c) }

// Create 创建应付记录
// @Summary 创建应付记录
// @Description 创建一条新的应付记录，需要 manager 或 admin 角色
// @Tags 应付记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PersonRecordCreateRequest true "应付记录信息"
// @Success 200 {object} Response{data=models.ToGive} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/to-give [post]
func (h *ToGiveHandler) Create(c *gin.Context) { h.crud.Create(c) }

// Update 更新应付记录
// @Summary 更新应付记录
// @Description 更新指定的应付记录（含标记已付），仅 admin 角色可用
// @Tags 应付记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "应付记录ID"
// @Param request body PersonRecordUpdateRequest true "应付记录信息"
// @Success 200 {object} Response{data=models.ToGive} "更新成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/to-give/{id} [put]
func (h *ToGiveHandler) Update(c *gin.Context) { h.crud.Update(c) }

// Delete 删除应付记录
// @Summary 删除应付记录
// @Description 删除指定的应付记录，仅 admin 角色可用
// @Tags 应付记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "应付记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/to-give/{id} [delete]
func (h *ToGiveHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
