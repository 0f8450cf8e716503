package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ledger/database"
	"ledger/models"
	"ledger/service"
)

const roleContextKey = "role"

// CurrentUserRole 查询当前登录用户的角色。没有绑定记录即无角色。
// 同一请求内缓存在 context 上，避免重复查询。
func CurrentUserRole(c *gin.Context) service.Role {
	if v, ok := c.Get(roleContextKey); ok {
		if role, ok := v.(service.Role); ok {
			return role
		}
	}

	role := service.RoleNone
	userID := GetCurrentUserID(c)
	if userID != 0 {
		var binding models.UserRole
		if err := database.DB.Where("user_id = ?", userID).First(&binding).Error; err == nil {
			role = service.ParseRole(binding.Role)
		}
	}

	c.Set(roleContextKey, role)
	return role
}

// RequireMutate 记录变更权限中间件。所有记录类型的增删改路由
// 统一挂这个中间件，不允许各自实现权限判断。
// 需在 JWTAuth 之后使用。
func RequireMutate(action service.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CurrentUserRole(c)
		if !service.CanMutate(role, action) {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "权限不足，无法执行该操作",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 管理员专用接口（用户管理、角色分配）
// 需在 JWTAuth 之后使用。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserRole(c) != service.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"code":    403,
				"message": "仅管理员可访问",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
