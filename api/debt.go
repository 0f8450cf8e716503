package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/middleware"
	"ledger/models"
	"ledger/service"
)

// DebtHandler 应收记录处理器
type DebtHandler struct {
	crud *CRUDHandler[models.Debt, PersonRecordCreateRequest, PersonRecordUpdateRequest]
}

// NewDebtHandler 创建应收记录处理器
func NewDebtHandler() *DebtHandler {
	return &DebtHandler{
		crud: NewCRUDHandler(CategoryDescriptor[models.Debt, PersonRecordCreateRequest, PersonRecordUpdateRequest]{
			Label:      "应收记录",
			DateColumn: "date",
			HasStatus:  true,
			BuildRecord: func(c *gin.Context, req *PersonRecordCreateRequest) (*models.Debt, error) {
				if err := service.ValidateDebt(req.PersonName, req.Amount, req.Status); err != nil {
					return nil, err
				}
				date, err := parseDate(req.Date)
				if err != nil {
					return nil, dateValidationError()
				}
				return &models.Debt{
					PersonName: strings.TrimSpace(req.PersonName),
					Amount:     req.Amount,
					Date:       date,
					Status:     req.Status,
					CreatedBy:  middleware.GetCurrentUserID(c),
				}, nil
			},
			ApplyUpdates: func(m *models.Debt, req *PersonRecordUpdateRequest) (map[string]interface{}, error) {
				return personRecordUpdates(m.PersonName, m.Amount, m.Status, req, service.ValidateDebt)
			},
		}),
	}
}

// List 获取应收记录列表
// @Summary 获取应收记录列表
// @Description 获取应收（别人欠的钱）记录列表，支持分页、周期和状态筛选
// @Tags 应收记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param month query string false "月份 1-12，或 all"
// @Param year query string false "年份，如 2024"
// @Param status query string false "状态筛选：Not Returned/Returned"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Debt}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/debts [get]
func (h *DebtHandler) List(c *gin.Context) { h.crud.List(c) }

// Create 创建应收记录
// @Summary 创建应收记录
// @Description 创建一条新的应收记录，需要 manager 或 admin 角色
// @Tags 应收记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PersonRecordCreateRequest true "应收记录信息"
// @Success 200 {object} Response{data=models.Debt} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/debts [post]
func (h *DebtHandler) Create(c *gin.Context) { h.crud.Create(c) }

// Update 更新应收记录
// @Summary 更新应收记录
// @Description 更新指定的应收记录（含标记已还），仅 admin 角色可用
// @Tags 应收记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "应收记录ID"
// @Param request body PersonRecordUpdateRequest true "应收记录信息"
// @Success 200 {object} Response{data=models.Debt} "更新成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/debts/{id} [put]
func (h *DebtHandler) Update(c *gin.Context) { h.crud.Update(c) }

// Delete 删除应收记录
// @Summary 删除应收记录
// @Description 删除指定的应收记录，仅 admin 角色可用
// @Tags 应收记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "应收记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/debts/{id} [delete]
func (h *DebtHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
