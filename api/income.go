package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/middleware"
	"ledger/models"
	"ledger/service"
)

// EntryCreateRequest 收入/支出记录创建请求
type EntryCreateRequest struct {
	Amount float64 `json:"amount" binding:"required" example:"1000"`
	Reason string  `json:"reason" binding:"required" example:"卖货收款"`
	Date   string  `json:"date" binding:"required" example:"2024-01-10"`
}

// EntryUpdateRequest 收入/支出记录更新请求
type EntryUpdateRequest struct {
	Amount *float64 `json:"amount"`
	Reason *string  `json:"reason"`
	Date   *string  `json:"date"`
}

func dateValidationError() error {
	return &service.ValidationError{Field: "date", Message: "日期格式错误，应为: 2006-01-02"}
}

// IncomeHandler 收入记录处理器
type IncomeHandler struct {
	crud *CRUDHandler[models.Income, EntryCreateRequest, EntryUpdateRequest]
}

// NewIncomeHandler 创建收入记录处理器
func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{
		crud: NewCRUDHandler(CategoryDescriptor[models.Income, EntryCreateRequest, EntryUpdateRequest]{
			Label:      "收入记录",
			DateColumn: "date",
			BuildRecord: func(c *gin.Context, req *EntryCreateRequest) (*models.Income, error) {
				if err := service.ValidateEntry(req.Amount, req.Reason); err != nil {
					return nil, err
				}
				date, err := parseDate(req.Date)
				if err != nil {
					return nil, dateValidationError()
				}
				return &models.Income{
					Amount:    req.Amount,
					Reason:    strings.TrimSpace(req.Reason),
					Date:      date,
					CreatedBy: middleware.GetCurrentUserID(c),
				}, nil
			},
			ApplyUpdates: func(m *models.Income, req *EntryUpdateRequest) (map[string]interface{}, error) {
				return entryUpdates(m.Amount, m.Reason, req)
			},
		}),
	}
}

// entryUpdates 合并部分更新后整体校验，收入/支出共用
func entryUpdates(curAmount float64, curReason string, req *EntryUpdateRequest) (map[string]interface{}, error) {
	amount, reason := curAmount, curReason
	if req.Amount != nil {
		amount = *req.Amount
	}
	if req.Reason != nil {
		reason = *req.Reason
	}
	if err := service.ValidateEntry(amount, reason); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Amount != nil {
		updates["amount"] = amount
	}
	if req.Reason != nil {
		updates["reason"] = strings.TrimSpace(reason)
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

// List 获取收入记录列表
// @Summary 获取收入记录列表
// @Description 获取收入记录列表（全店共享），支持分页和周期筛选
// @Tags 收入记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param month query string false "月份 1-12，或 all"
// @Param year query string false "年份，如 2024"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Income}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/incomes [get]
func (h *IncomeHandler) List(c *gin.Context) { h.crud.List(c) }

// Create 创建收入记录
// @Summary 创建收入记录
// @Description 创建一条新的收入记录，需要 manager 或 admin 角色
// @Tags 收入记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EntryCreateRequest true "收入记录信息"
// @Success 200 {object} Response{data=models.Income} "创建成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/incomes [post]
func (h *IncomeHandler) Create(c *gin.Context) { h.crud.Create(c) }

// Update 更新收入记录
// @Summary 更新收入记录
// @Description 更新指定的收入记录，仅 admin 角色可用
// @Tags 收入记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入记录ID"
// @Param request body EntryUpdateRequest true "收入记录信息"
// @Success 200 {object} Response{data=models.Income} "更新成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) { h.crud.Update(c) }

// Delete 删除收入记录
// @Summary 删除收入记录
// @Description 删除指定的收入记录，仅 admin 角色可用
// @Tags 收入记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "收入记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/incomes/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
