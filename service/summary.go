package service

import (
	"github.com/shopspring/decimal"

	"ledger/models"
)

// SummaryRows 参与汇总的五类记录快照
type SummaryRows struct {
	Incomes  []models.Income
	Expenses []models.Expense
	ToGive   []models.ToGive
	Debts    []models.Debt
	Stock    []models.Stock
}

// Summary 汇总结果。金额用 decimal 精确累加，展示前不做舍入。
type Summary struct {
	TotalIncome  decimal.Decimal // 周期内收入总和
	TotalExpense decimal.Decimal // 周期内支出总和
	Cash         decimal.Decimal // 收入 - 支出
	ToGiveTotal  decimal.Decimal // 未付（Unpaid）应付总和
	DebtTotal    decimal.Decimal // 未还（Not Returned）应收总和
	StockValue   decimal.Decimal // 在库（In Stock）库存价值 = Σ 单价×数量
	StockCount   int             // 在库库存件数 = Σ 数量
	NetPosition  decimal.Decimal // Cash + DebtTotal + StockValue - ToGiveTotal
}

// ComputeSummary 计算看板/报表汇总。纯函数，不访问数据库。
//
// 周期过滤只作用于收入与支出；应付按 Unpaid、应收按 Not Returned、
// 库存按 In Stock 过滤，与周期无关。即使调用方已在查询层过滤过，
// 这里仍按同一规则过滤一遍，保证口径唯一。
// 空输入返回全零结果，不报错。
func ComputeSummary(rows SummaryRows, period Period) Summary {
	var s Summary

	for _, in := range rows.Incomes {
		if !period.Contains(in.Date) {
			continue
		}
		s.TotalIncome = s.TotalIncome.Add(decimal.NewFromFloat(in.Amount))
	}

	for _, out := range rows.Expenses {
		if !period.Contains(out.Date) {
			continue
		}
		s.TotalExpense = s.TotalExpense.Add(decimal.NewFromFloat(out.Amount))
	}

	s.Cash = s.TotalIncome.Sub(s.TotalExpense)

	for _, tg := range rows.ToGive {
		if tg.Status != models.ToGiveStatusUnpaid {
			continue
		}
		s.ToGiveTotal = s.ToGiveTotal.Add(decimal.NewFromFloat(tg.Amount))
	}

	for _, d := range rows.Debts {
		if d.Status != models.DebtStatusNotReturned {
			continue
		}
		s.DebtTotal = s.DebtTotal.Add(decimal.NewFromFloat(d.Amount))
	}

	for _, item := range rows.Stock {
		if item.Status != models.StockStatusInStock {
			continue
		}
		value := decimal.NewFromFloat(item.PurchasePrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		s.StockValue = s.StockValue.Add(value)
		s.StockCount += item.Quantity
	}

	s.NetPosition = s.Cash.Add(s.DebtTotal).Add(s.StockValue).Sub(s.ToGiveTotal)

	return s
}

// SummaryDisplay 展示用汇总：四舍五入到整数货币单位
type SummaryDisplay struct {
	TotalIncome  int64 `json:"total_income"`
	TotalExpense int64 `json:"total_expense"`
	Cash         int64 `json:"cash"`
	ToGiveTotal  int64 `json:"to_give_total"`
	DebtTotal    int64 `json:"debt_total"`
	StockValue   int64 `json:"stock_value"`
	StockCount   int   `json:"stock_count"`
	NetPosition  int64 `json:"net_position"`
}

// Display 返回展示用的整数金额。仅展示层舍入，汇总值本身保持精确。
func (s Summary) Display() SummaryDisplay {
	return SummaryDisplay{
		TotalIncome:  s.TotalIncome.Round(0).IntPart(),
		TotalExpense: s.TotalExpense.Round(0).IntPart(),
		Cash:         s.Cash.Round(0).IntPart(),
		ToGiveTotal:  s.ToGiveTotal.Round(0).IntPart(),
		DebtTotal:    s.DebtTotal.Round(0).IntPart(),
		StockValue:   s.StockValue.Round(0).IntPart(),
		StockCount:   s.StockCount,
		NetPosition:  s.NetPosition.Round(0).IntPart(),
	}
}
