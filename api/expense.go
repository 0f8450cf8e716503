package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/middleware"
	"ledger/models"
	"ledger/service"
)

// ExpenseHandler 支出记录处理器
type ExpenseHandler struct {
	crud *CRUDHandler[models.Expense, EntryCreateRequest, EntryUpdateRequest]
}

// NewExpenseHandler 创建支出记录处理器
func NewExpenseHandler() *ExpenseHandler {
	return &ExpenseHandler{
		crud: NewCRUDHandler(CategoryDescriptor[models.Expense, EntryCreateRequest, EntryUpdateRequest]{
			Label:      "支出记录",
			DateColumn: "date",
			BuildRecord: func(c *gin.Context, req *EntryCreateRequest) (*models.Expense, error) {
				if err := service.ValidateEntry(req.Amount, req.Reason); err != nil {
					return nil, err
				}
				date, err := parseDate(req.Date)
				if err != nil {
					return nil, dateValidationError()
				}
				return &models.Expense{
					Amount:    req.Amount,
					Reason:    strings.TrimSpace(req.Reason),
					Date:      date,
					CreatedBy: middleware.GetCurrentUserID(c),
				}, nil
			},
			ApplyUpdates: func(m *models.Expense, req *EntryUpdateRequest) (map[string]interface{}, error) {
				return entryUpdates(m.Amount, m.Reason, req)
			},
		}),
	}
}

// List 获取支出记录列表
// @Summary 获取支出记录列表
// @Description 获取支出记录列表（全店共享），支持分页和周期筛选
// @Tags 支出记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param month query string false "月份 1-12，或 all"
// @Param year query string false "年份，如 2024"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Expense}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/expenses [get]
func (h *ExpenseHandler) List(c *gin.Context) { h.crud.List(c) }

// Create 创建支出记录
// @Summary 创建支出记录
// @Description 创建一条新的支出记录，需要 manager 或 admin 角色
// @Tags 支出记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EntryCreateRequest true "支出记录信息"
// @Success 200 {object} Response{data=models.Expense} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/expenses [post]
func (h *ExpenseHandler) Create(c *gin.Context) { h.crud.Create(c) }

// Update 更新支出记录
// @Summary 更新支出记录
// @Description 更新指定的支出记录，仅 admin 角色可用
// @Tags 支出记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出记录ID"
// @Param request body EntryUpdateRequest true "支出记录信息"
// @Success 200 {object} Response{data=models.Expense} "更新成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [put]
func (h *ExpenseHandler) Update(c *gin.Context) { h.crud.Update(c) }

// Delete 删除支出记录
// @Summary 删除支出记录
// @Description 删除指定的支出记录，仅 admin 角色可用
// @Tags 支出记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "支出记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
