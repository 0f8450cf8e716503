package service

import (
	"fmt"

	"gorm.io/gorm"

	"ledger/models"
)

// PurchaseState 进货流程状态
type PurchaseState int

const (
	// PurchasePending 表单已提交，尚未落库
	PurchasePending PurchaseState = iota
	// PurchaseCommitted 库存和镜像支出均已写入
	PurchaseCommitted
	// PurchasePartiallyCommitted 库存已写入，镜像支出写入失败
	PurchasePartiallyCommitted
)

// String 返回状态名
func (s PurchaseState) String() string {
	switch s {
	case PurchaseCommitted:
		return "committed"
	case PurchasePartiallyCommitted:
		return "partially_committed"
	default:
		return "pending"
	}
}

// PurchaseResult 进货流程结果
type PurchaseResult struct {
	State   PurchaseState
	Stock   *models.Stock   // 已写入的库存记录
	Expense *models.Expense // 已写入的镜像支出，部分提交时为 nil
	Warning string          // 部分提交时的警告信息
}

// MirrorExpenseReason 镜像支出的摘要格式，与历史数据保持一致
func MirrorExpenseReason(itemName string, quantity int) string {
	return fmt.Sprintf("Stock Purchase: %s (Qty: %d)", itemName, quantity)
}

// PurchaseStock 进货流程：先写库存，成功后再写一条等额支出
// （金额 = 单价 × 数量）。第二步失败不回滚第一步，只在结果中携带
// 警告——有意的尽力而为双写，不是事务。
//
// 库存写入失败时直接返回错误，此时什么都没有落库。
func PurchaseStock(db *gorm.DB, item *models.Stock) (*PurchaseResult, error) {
	if err := db.Create(item).Error; err != nil {
		return nil, err
	}

	expense := &models.Expense{
		Amount:    item.TotalCost(),
		Reason:    MirrorExpenseReason(item.ItemName, item.Quantity),
		Date:      item.PurchaseDate,
		CreatedBy: item.CreatedBy,
	}

	if err := db.Create(expense).Error; err != nil {
		return &PurchaseResult{
			State:   PurchasePartiallyCommitted,
			Stock:   item,
			Warning: "库存已保存，但支出记录写入失败",
		}, nil
	}

	return &PurchaseResult{
		State:   PurchaseCommitted,
		Stock:   item,
		Expense: expense,
	}, nil
}
