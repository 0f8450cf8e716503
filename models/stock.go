package models

import (
	"time"

	"gorm.io/gorm"
)

// Stock 状态常量
const (
	StockStatusInStock  = "In Stock"
	StockStatusSold     = "Sold"
	StockStatusReserved = "Reserved"
)

// Stock 库存记录模型
type Stock struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	ItemName      string         `json:"item_name" gorm:"size:100;not null"`
	Description   string         `json:"description" gorm:"size:500"`
	Quantity      int            `json:"quantity" gorm:"not null"`
	PurchasePrice float64        `json:"purchase_price" gorm:"type:decimal(10,2);not null"`
	PurchaseDate  time.Time      `json:"purchase_date" gorm:"type:date;not null;index"`
	Status        string         `json:"status" gorm:"size:20;not null;index"` // In Stock/Sold/Reserved
	CreatedBy     uint           `json:"created_by" gorm:"index;not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	User          User           `json:"-" gorm:"foreignKey:CreatedBy"`
}

// TableName 设置表名
func (Stock) TableName() string {
	return "stock"
}

// IsValidStockStatus 校验库存状态取值
func IsValidStockStatus(s string) bool {
	return s == StockStatusInStock || s == StockStatusSold || s == StockStatusReserved
}

// TotalCost 进货总成本 = 单价 × 数量
func (s *Stock) TotalCost() float64 {
	return s.PurchasePrice * float64(s.Quantity)
}
