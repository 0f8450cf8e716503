package service

import "ledger/models"

// Role 用户角色，封闭枚举。数据库里没有 user_roles 记录即为 RoleNone。
type Role int

const (
	// RoleNone 无角色：只能查看
	RoleNone Role = iota
	// RoleManager 店员：可新增记录
	RoleManager
	// RoleAdmin 管理员：增删改 + 角色分配
	RoleAdmin
)

// String 返回角色编码
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return models.RoleCodeAdmin
	case RoleManager:
		return models.RoleCodeManager
	default:
		return "none"
	}
}

// ParseRole 把数据库角色编码转成枚举，未知编码按无角色处理
func ParseRole(code string) Role {
	switch code {
	case models.RoleCodeAdmin:
		return RoleAdmin
	case models.RoleCodeManager:
		return RoleManager
	default:
		return RoleNone
	}
}

// Action 记录变更动作
type Action int

const (
	// ActionCreate 新增
	ActionCreate Action = iota
	// ActionUpdate 修改
	ActionUpdate
	// ActionDelete 删除
	ActionDelete
)

// String 返回动作名
func (a Action) String() string {
	switch a {
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// CanMutate 变更权限判定，所有记录类型共用的唯一权限入口。
//
//	admin:   增/改/删
//	manager: 仅新增
//	无角色:  全部拒绝（查看不经过本函数，始终放行）
func CanMutate(role Role, action Action) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleManager:
		return action == ActionCreate
	default:
		return false
	}
}
