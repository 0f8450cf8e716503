package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/database"
	"ledger/middleware"
	"ledger/models"
	"ledger/service"
)

// StockCreateRequest 库存记录创建请求（进货）
type StockCreateRequest struct {
	ItemName      string  `json:"item_name" binding:"required" example:"充电器"`
	Description   string  `json:"description" example:"20W 快充"`
	Quantity      int     `json:"quantity" binding:"required" example:"3"`
	PurchasePrice float64 `json:"purchase_price" example:"1000"`
	PurchaseDate  string  `json:"purchase_date" binding:"required" example:"2024-01-10"`
	Status        string  `json:"status" binding:"required" example:"In Stock"`
}

// StockUpdateRequest 库存记录更新请求
type StockUpdateRequest struct {
	ItemName      *string  `json:"item_name"`
	Description   *string  `json:"description"`
	Quantity      *int     `json:"quantity"`
	PurchasePrice *float64 `json:"purchase_price"`
	PurchaseDate  *string  `json:"purchase_date"`
	Status        *string  `json:"status"` // 标记 Sold/Reserved 也走本接口
}

// StockHandler 库存记录处理器
type StockHandler struct {
	crud *CRUDHandler[models.Stock, StockCreateRequest, StockUpdateRequest]
}

// buildStock 校验进货请求并构造库存记录
func buildStock(c *gin.Context, req *StockCreateRequest) (*models.Stock, error) {
	if err := service.ValidateStock(req.ItemName, req.Description, req.Quantity, req.PurchasePrice, req.Status); err != nil {
		return nil, err
	}
	date, err := parseDate(req.PurchaseDate)
	if err != nil {
		return nil, &service.ValidationError{Field: "purchase_date", Message: "日期格式错误，应为: 2006-01-02"}
	}
	return &models.Stock{
		ItemName:      strings.TrimSpace(req.ItemName),
		Description:   req.Description,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  date,
		Status:        req.Status,
		CreatedBy:     middleware.GetCurrentUserID(c),
	}, nil
}

// NewStockHandler 创建库存记录处理器
func NewStockHandler() *StockHandler {
	return &StockHandler{
		crud: NewCRUDHandler(CategoryDescriptor[models.Stock, StockCreateRequest, StockUpdateRequest]{
			Label:       "库存记录",
			DateColumn:  "purchase_date",
			HasStatus:   true,
			BuildRecord: buildStock,
			ApplyUpdates: func(m *models.Stock, req *StockUpdateRequest) (map[string]interface{}, error) {
				name, desc, qty, price, status := m.ItemName, m.Description, m.Quantity, m.PurchasePrice, m.Status
				if req.ItemName != nil {
					name = *req.ItemName
				}
				if req.Description != nil {
					desc = *req.Description
				}
				if req.Quantity != nil {
					qty = *req.Quantity
				}
				if req.PurchasePrice != nil {
					price = *req.PurchasePrice
				}
				if req.Status != nil {
					status = *req.Status
				}
				if err := service.ValidateStock(name, desc, qty, price, status); err != nil {
					return nil, err
				}

				updates := make(map[string]interface{})
				if req.ItemName != nil {
					updates["item_name"] = strings.TrimSpace(name)
				}
				if req.Description != nil {
					updates["description"] = desc
				}
				if req.Quantity != nil {
					updates["quantity"] = qty
				}
				if req.PurchasePrice != nil {
					updates["purchase_price"] = price
				}
				if req.Status != nil {
					updates["status"] = status
				}
				if req.PurchaseDate != nil {
					date, err := parseDate(*req.PurchaseDate)
					if err != nil {
						return nil, &service.ValidationError{Field: "purchase_date", Message: "日期格式错误，应为: 2006-01-02"}
					}
					updates["purchase_date"] = date
				}
				return updates, nil
			},
		}),
	}
}

// List 获取库存记录列表
// @Summary 获取库存记录列表
// @Description 获取库存记录列表，支持分页、周期和状态筛选
// @Tags 库存记录
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Param month query string false "月份 1-12，或 all"
// @Param year query string false "年份，如 2024"
// @Param status query string false "状态筛选：In Stock/Sold/Reserved"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Stock}} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/stock [get]
func (h *StockHandler) List(c *gin.Context) { h.crud.List(c) }

// Create 进货（创建库存记录）
// @Summary 进货
// @Description 创建库存记录，并自动生成一条等额支出（金额 = 单价 × 数量）。
// @Description 库存写入成功但支出写入失败时，库存不会回滚，响应中会带 warning 字段。
// @Tags 库存记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body StockCreateRequest true "库存记录信息"
// @Success 200 {object} Response{data=models.Stock} "创建成功（可能带 warning）"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 403 {object} Response "权限不足"
// @Failure 500 {object} Response "库存写入失败"
// @Router /api/v1/stock [post]
func (h *StockHandler) Create(c *gin.Context) {
	var req StockCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	item, err := buildStock(c, &req)
	if err != nil {
		badRequestForValidation(c, err)
		return
	}

	result, err := service.PurchaseStock(database.DB, item)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "创建库存记录失败"))
		return
	}

	if result.State == service.PurchasePartiallyCommitted {
		SuccessWithWarning(c, "创建成功", result.Warning, result.Stock)
		return
	}
	SuccessWithMessage(c, "创建成功", result.Stock)
}

// Update 更新库存记录
// @Summary 更新库存记录
// @Description 更新指定的库存记录（含标记 Sold/Reserved），仅 admin 角色可用。
// @Description 更新不会调整进货时生成的支出记录。
// @Tags 库存记录
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "库存记录ID"
// @Param request body StockUpdateRequest true "库存记录信息"
// @Success 200 {object} Response{data=models.Stock} "更新成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/stock/{id} [put]
func (h *StockHandler) Update(c *gin.Context) { h.crud.Update(c) }

// Delete 删除库存记录
// @Summary 删除库存记录
// @Description 删除指定的库存记录，仅 admin 角色可用。镜像支出不会联动删除。
// @Tags 库存记录
// @Produce json
// @Security BearerAuth
// @Param id path int true "库存记录ID"
// @Success 200 {object} Response "删除成功"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "记录不存在"
// @Router /api/v1/stock/{id} [delete]
func (h *StockHandler) Delete(c *gin.Context) { h.crud.Delete(c) }
