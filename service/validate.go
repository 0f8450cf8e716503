package service

import (
	"fmt"
	"strings"

	"ledger/models"
)

// ValidationError 字段级校验错误，可由用户修改后重试
type ValidationError struct {
	Field   string
	Message string
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func fieldErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ValidateEntry 校验收入/支出记录的公共字段
func ValidateEntry(amount float64, reason string) error {
	if amount <= 0 {
		return fieldErr("amount", "金额必须大于0")
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fieldErr("reason", "摘要不能为空")
	}
	if len([]rune(reason)) > 200 {
		return fieldErr("reason", "摘要不能超过200个字符")
	}
	return nil
}

// ValidatePersonName 校验应付/应收记录的对方姓名
func ValidatePersonName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fieldErr("person_name", "姓名不能为空")
	}
	if len([]rune(name)) > 100 {
		return fieldErr("person_name", "姓名不能超过100个字符")
	}
	return nil
}

// ValidateToGive 校验应付记录
func ValidateToGive(personName string, amount float64, status string) error {
	if err := ValidatePersonName(personName); err != nil {
		return err
	}
	if amount <= 0 {
		return fieldErr("amount", "金额必须大于0")
	}
	if !models.IsValidToGiveStatus(status) {
		return fieldErr("status", "状态只能为 Unpaid 或 Paid")
	}
	return nil
}

// ValidateDebt 校验应收记录
func ValidateDebt(personName string, amount float64, status string) error {
	if err := ValidatePersonName(personName); err != nil {
		return err
	}
	if amount <= 0 {
		return fieldErr("amount", "金额必须大于0")
	}
	if !models.IsValidDebtStatus(status) {
		return fieldErr("status", "状态只能为 Not Returned 或 Returned")
	}
	return nil
}

// ValidateStock 校验库存记录
func ValidateStock(itemName, description string, quantity int, purchasePrice float64, status string) error {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return fieldErr("item_name", "商品名称不能为空")
	}
	if len([]rune(itemName)) > 100 {
		return fieldErr("item_name", "商品名称不能超过100个字符")
	}
	if len([]rune(description)) > 500 {
		return fieldErr("description", "描述不能超过500个字符")
	}
	if quantity < 1 {
		return fieldErr("quantity", "数量至少为1")
	}
	if purchasePrice < 0 {
		return fieldErr("purchase_price", "单价不能为负")
	}
	if !models.IsValidStockStatus(status) {
		return fieldErr("status", "状态只能为 In Stock、Sold 或 Reserved")
	}
	return nil
}
