package api

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"ledger/database"
	"ledger/middleware"
	"ledger/models"
)

// UserHandler 用户管理处理器，路由层已限定仅 admin 可访问
type UserHandler struct{}

// NewUserHandler 创建用户管理处理器
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// UserWithRole 用户及其角色
type UserWithRole struct {
	models.User
	Role string `json:"role"` // admin/manager，无角色为空串
}

// ListUsers 获取用户列表
// @Summary 获取用户列表
// @Description 获取系统中所有用户及其角色，仅 admin 角色可用
// @Tags 用户管理
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]UserWithRole} "获取成功"
// @Failure 401 {object} Response "未授权"
// @Failure 403 {object} Response "权限不足"
// @Router /api/v1/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("id ASC").Find(&users).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}

	var roles []models.UserRole
	if err := database.DB.Find(&roles).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询失败"))
		return
	}
	roleByUser := make(map[uint]string, len(roles))
	for _, r := range roles {
		roleByUser[r.UserID] = r.Role
	}

	result := make([]UserWithRole, 0, len(users))
	for _, u := range users {
		result = append(result, UserWithRole{User: u, Role: roleByUser[u.ID]})
	}
	Success(c, result)
}

// UpdateUserRoleRequest 更新用户角色请求
type UpdateUserRoleRequest struct {
	// Role 角色代码：admin / manager，空串表示清除角色（只读）
	Role string `json:"role"`
}

// UpdateUserRole 设置用户角色
// @Summary 设置用户角色
// @Description 为用户分配 admin 或 manager 角色，空串表示清除角色（用户变为只读）。仅 admin 角色可用。
// @Tags 用户管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param request body UpdateUserRoleRequest true "角色信息"
// @Success 200 {object} Response "更新成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/v1/users/{id}/role [put]
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的用户ID")
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	roleCode := strings.TrimSpace(req.Role)
	if roleCode != "" && !models.IsValidRoleCode(roleCode) {
		BadRequest(c, "无效的角色，支持：admin/manager")
		return
	}

	// 不能修改自己的角色，避免唯一的 admin 自降权
	if uint(userID) == middleware.GetCurrentUserID(c) {
		BadRequest(c, "不能修改自己的角色")
		return
	}

	var user models.User
	if err := database.DB.First(&user, uint(userID)).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	if roleCode == "" {
		if err := database.DB.Where("user_id = ?", user.ID).Delete(&models.UserRole{}).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
		SuccessWithMessage(c, "角色已清除", nil)
		return
	}

	var role models.UserRole
	err = database.DB.Where("user_id = ?", user.ID).First(&role).Error
	if err == nil {
		if err := database.DB.Model(&role).Update("role", roleCode).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	} else {
		role = models.UserRole{UserID: user.ID, Role: roleCode}
		if err := database.DB.Create(&role).Error; err != nil {
			InternalError(c, SafeErrorMessage(err, "更新失败"))
			return
		}
	}

	SuccessWithMessage(c, "角色更新成功", role)
}

// UpdateUserStatusRequest 更新用户状态请求
type UpdateUserStatusRequest struct {
	// Status 用户状态：active（正常）/ locked（锁定）
	Status string `json:"status" binding:"required,oneof=active locked"`
}

// UpdateUserStatus 更新用户状态
// @Summary 更新用户状态
// @Description 将用户状态设置为 active 或 locked，只有 active 状态的用户可以登录。仅 admin 角色可用。
// @Tags 用户管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "用户ID"
// @Param request body UpdateUserStatusRequest true "状态信息"
// @Success 200 {object} Response{data=models.User} "更新成功"
// @Failure 400 {object} Response "参数错误"
// @Failure 403 {object} Response "权限不足"
// @Failure 404 {object} Response "用户不存在"
// @Router /api/v1/users/{id}/status [put]
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的用户ID")
		return
	}

	// 不能锁定自己，避免自锁导致无法登录
	if uint(userID) == middleware.GetCurrentUserID(c) {
		BadRequest(c, "不能修改自己的状态")
		return
	}

	var req UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	var user models.User
	if err := database.DB.First(&user, uint(userID)).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}

	user.Status = strings.TrimSpace(req.Status)
	if err := database.DB.Save(&user).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SuccessWithMessage(c, "状态更新成功", user)
}
