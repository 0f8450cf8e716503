package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"ledger/database"
	"ledger/models"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ledgerRow 导出用的收支行，收入/支出合并后按日期排序
type ledgerRow struct {
	ID        uint
	Kind      string // 收入 / 支出
	Amount    float64
	Reason    string
	Date      time.Time
	CreatedAt time.Time
}

// parseExportRange 解析导出时间范围参数
func parseExportRange(c *gin.Context) (start, end time.Time, ok bool) {
	startStr := c.Query("start_time")
	endStr := c.Query("end_time")

	if startStr == "" || endStr == "" {
		BadRequest(c, "请提供开始时间和结束时间")
		return
	}

	start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
	if err != nil {
		BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
		return
	}

	end, err = time.ParseInLocation("2006-01-02", endStr, time.Local)
	if err != nil {
		BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
		return
	}
	end = end.Add(24*time.Hour - time.Second)
	return start, end, true
}

// fetchLedgerRows 查询时间范围内的收入与支出并合并
func fetchLedgerRows(start, end time.Time) ([]ledgerRow, error) {
	var incomes []models.Income
	if err := database.DB.Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&incomes).Error; err != nil {
		return nil, err
	}

	var expenses []models.Expense
	if err := database.DB.Where("date >= ? AND date <= ?", start, end).
		Order("date DESC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}

	rows := make([]ledgerRow, 0, len(incomes)+len(expenses))
	for _, in := range incomes {
		rows = append(rows, ledgerRow{
			ID:        in.ID,
			Kind:      "收入",
			Amount:    in.Amount,
			Reason:    in.Reason,
			Date:      in.Date,
			CreatedAt: in.CreatedAt,
		})
	}
	for _, out := range expenses {
		rows = append(rows, ledgerRow{
			ID:        out.ID,
			Kind:      "支出",
			Amount:    out.Amount,
			Reason:    out.Reason,
			Date:      out.Date,
			CreatedAt: out.CreatedAt,
		})
	}
	return rows, nil
}

// ExportCSV 导出收支记录为 CSV
// @Summary 导出收支记录
// @Description 根据时间范围导出收入与支出记录为 CSV 文件
// @Tags 导出
// @Produce text/csv
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	start, end, ok := parseExportRange(c)
	if !ok {
		return
	}

	rows, err := fetchLedgerRows(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 生成 CSV
	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	// 写入表头
	headers := []string{"ID", "类型", "金额", "原因", "日期", "创建时间"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 写入数据
	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.Kind,
			fmt.Sprintf("%.2f", row.Amount),
			row.Reason,
			row.Date.Format("2006-01-02"),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 设置响应头
	filename := fmt.Sprintf("ledger_%s_%s.csv", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出收支记录为 Excel
// @Summary 导出收支记录为Excel
// @Description 根据时间范围导出收入与支出记录为 Excel 文件，末尾带收入/支出/结余汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_time query string true "开始时间 (2024-01-01)"
// @Param end_time query string true "结束时间 (2024-12-31)"
// @Success 200 {file} file "Excel文件"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 401 {object} Response "未授权"
// @Router /api/v1/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	start, end, ok := parseExportRange(c)
	if !ok {
		return
	}

	rows, err := fetchLedgerRows(start, end)
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收支记录"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 15)
	f.SetColWidth(sheetName, "F", "F", 20)

	// 写入表头
	headers := []string{"ID", "类型", "金额", "原因", "日期", "创建时间"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	var totalIncome, totalExpense float64
	for i, row := range rows {
		r := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.Kind)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", r), row.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", r), row.Reason)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", r), row.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", r), row.CreatedAt.Format("2006-01-02 15:04:05"))

		// 设置数据样式
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", r), fmt.Sprintf("F%d", r), dataStyle)

		if row.Kind == "收入" {
			totalIncome += row.Amount
		} else {
			totalExpense += row.Amount
		}
	}

	// 添加汇总行
	summaryRow := len(rows) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow),
		fmt.Sprintf("收入 %.2f / 支出 %.2f", totalIncome, totalExpense))
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow),
		fmt.Sprintf("结余 %.2f，共 %d 条记录", totalIncome-totalExpense, len(rows)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	// 设置响应头
	filename := fmt.Sprintf("收支记录_%s_%s.xlsx", c.Query("start_time"), c.Query("end_time"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	// 写入响应
	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
