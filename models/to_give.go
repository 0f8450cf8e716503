package models

import (
	"time"

	"gorm.io/gorm"
)

// ToGive 状态常量
const (
	ToGiveStatusUnpaid = "Unpaid"
	ToGiveStatusPaid   = "Paid"
)

// ToGive 应付记录模型：欠别人的钱
type ToGive struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	PersonName string         `json:"person_name" gorm:"size:100;not null"`
	Amount     float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date       time.Time      `json:"date" gorm:"type:date;not null;index"`
	Status     string         `json:"status" gorm:"size:20;not null;index"` // Unpaid/Paid
	CreatedBy  uint           `json:"created_by" gorm:"index;not null"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
	User       User           `json:"-" gorm:"foreignKey:CreatedBy"`
}

// TableName 设置表名
func (ToGive) TableName() string {
	return "to_give"
}

// IsValidToGiveStatus 校验应付状态取值
func IsValidToGiveStatus(s string) bool {
	return s == ToGiveStatusUnpaid || s == ToGiveStatusPaid
}
