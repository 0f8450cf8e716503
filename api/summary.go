package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"ledger/database"
	"ledger/models"
	"ledger/service"
)

// SummaryHandler 看板/报表处理器
type SummaryHandler struct{}

// NewSummaryHandler 创建看板/报表处理器
func NewSummaryHandler() *SummaryHandler {
	return &SummaryHandler{}
}

// fetchSummaryRows 并发拉取五类记录并汇合。任何一类失败则整体失败，
// 不渲染部分结果。查询层按与 ComputeSummary 相同的口径过滤。
func fetchSummaryRows(ctx context.Context, period service.Period) (service.SummaryRows, error) {
	var rows service.SummaryRows

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		q := database.DB.WithContext(gctx).Model(&models.Income{})
		if !period.All() {
			start, end := period.Range()
			q = q.Where("date >= ? AND date <= ?", start, end)
		}
		return q.Find(&rows.Incomes).Error
	})
	g.Go(func() error {
		q := database.DB.WithContext(gctx).Model(&models.Expense{})
		if !period.All() {
			start, end := period.Range()
			q = q.Where("date >= ? AND date <= ?", start, end)
		}
		return q.Find(&rows.Expenses).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(gctx).
			Where("status = ?", models.ToGiveStatusUnpaid).
			Find(&rows.ToGive).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(gctx).
			Where("status = ?", models.DebtStatusNotReturned).
			Find(&rows.Debts).Error
	})
	g.Go(func() error {
		return database.DB.WithContext(gctx).
			Where("status = ?", models.StockStatusInStock).
			Find(&rows.Stock).Error
	})

	if err := g.Wait(); err != nil {
		return service.SummaryRows{}, err
	}
	return rows, nil
}

// DashboardResponse 看板汇总返回
type DashboardResponse struct {
	Month       int     `json:"month"` // 0 表示全部时间
	Year        int     `json:"year"`
	TotalMoney  float64 `json:"total_money"`   // 周期内 收入-支出
	ToGiveTotal float64 `json:"to_give_total"` // 未付应付总和
	DebtTotal   float64 `json:"debt_total"`    // 未还应收总和
}

// Dashboard 获取看板汇总
// @Summary 获取看板汇总
// @Description 按周期统计现金（收入-支出）、未付应付与未还应收。month 传 1-12 或 all。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 1-12，或 all" default(all)
// @Param year query string false "年份，如 2024"
// @Success 200 {object} Response{data=DashboardResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/dashboard [get]
func (h *SummaryHandler) Dashboard(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	rows, err := fetchSummaryRows(c.Request.Context(), period)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	s := service.ComputeSummary(rows, period)
	Success(c, DashboardResponse{
		Month:       period.Month,
		Year:        period.Year,
		TotalMoney:  s.Cash.InexactFloat64(),
		ToGiveTotal: s.ToGiveTotal.InexactFloat64(),
		DebtTotal:   s.DebtTotal.InexactFloat64(),
	})
}

// ReportResponse 报表汇总返回
type ReportResponse struct {
	Month        int                    `json:"month"`
	Year         int                    `json:"year"`
	CurrentMoney float64                `json:"current_money"` // 周期内 收入-支出
	TotalIncome  float64                `json:"total_income"`
	TotalExpense float64                `json:"total_expense"`
	ToGiveTotal  float64                `json:"to_give_total"`
	DebtTotal    float64                `json:"debt_total"`
	StockValue   float64                `json:"stock_value"` // 在库库存价值
	StockCount   int                    `json:"stock_count"` // 在库库存件数
	NetPosition  float64                `json:"net_position"`
	Display      service.SummaryDisplay `json:"display"` // 展示用整数金额
}

// Report 获取报表汇总
// @Summary 获取报表汇总
// @Description 完整财务报表：收入、支出、现金、应付、应收、库存价值与净头寸。
// @Description display 字段为四舍五入到整数货币单位的展示值，其余字段为精确值。
// @Tags 统计
// @Produce json
// @Security BearerAuth
// @Param month query string false "月份 1-12，或 all" default(all)
// @Param year query string false "年份，如 2024"
// @Success 200 {object} Response{data=ReportResponse} "获取成功"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/report [get]
func (h *SummaryHandler) Report(c *gin.Context) {
	period, err := service.ParsePeriod(c.Query("month"), c.Query("year"))
	if err != nil {
		BadRequest(c, err.Error())
		return
	}

	rows, err := fetchSummaryRows(c.Request.Context(), period)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	s := service.ComputeSummary(rows, period)
	Success(c, ReportResponse{
		Month:        period.Month,
		Year:         period.Year,
		CurrentMoney: s.Cash.InexactFloat64(),
		TotalIncome:  s.TotalIncome.InexactFloat64(),
		TotalExpense: s.TotalExpense.InexactFloat64(),
		ToGiveTotal:  s.ToGiveTotal.InexactFloat64(),
		DebtTotal:    s.DebtTotal.InexactFloat64(),
		StockValue:   s.StockValue.InexactFloat64(),
		StockCount:   s.StockCount,
		NetPosition:  s.NetPosition.InexactFloat64(),
		Display:      s.Display(),
	})
}
