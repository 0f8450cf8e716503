package models

import (
	"time"
)

// 角色编码。没有 user_roles 记录的用户视为普通用户，只能查看数据。
const (
	RoleCodeAdmin   = "admin"
	RoleCodeManager = "manager"
)

// UserRole 用户角色绑定，每个用户至多一条
type UserRole struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Role      string    `json:"role" gorm:"size:20;not null"` // admin/manager
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

// TableName 设置表名
func (UserRole) TableName() string {
	return "user_roles"
}

// IsValidRoleCode 校验角色编码
func IsValidRoleCode(code string) bool {
	return code == RoleCodeAdmin || code == RoleCodeManager
}
