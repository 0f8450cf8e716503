package models

import (
	"time"

	"gorm.io/gorm"
)

// Debt 状态常量
const (
	DebtStatusNotReturned = "Not Returned"
	DebtStatusReturned    = "Returned"
)

// Debt 应收记录模型：别人欠的钱
type Debt struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	PersonName string         `json:"person_name" gorm:"size:100;not null"`
	Amount     float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date       time.Time      `json:"date" gorm:"type:date;not null;index"`
	Status     string         `json:"status" gorm:"size:20;not null;index"` // Not Returned/Returned
	CreatedBy  uint           `json:"created_by" gorm:"index;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	User       User           `json:"-" gorm:"foreignKey:CreatedBy"`
}

// TableName 设置表名
func (Debt) TableName() string {
	return "debt"
}

// IsValidDebtStatus 校验应收状态取值
func IsValidDebtStatus(s string) bool {
	return s == DebtStatusNotReturned || s == DebtStatusReturned
}
