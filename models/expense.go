package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 支出记录模型（Out）
type Expense struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Reason    string         `json:"reason" gorm:"size:200;not null"`
	Date      time.Time      `json:"date" gorm:"type:date;not null;index"`
	CreatedBy uint           `json:"created_by" gorm:"index;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:CreatedBy"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}
