package middleware

import (
	"net/http"

	"github.com/GhaziTrueAlpha/Surveys/internal/logic"
	"github.com/GhaziTrueAlpha/Surveys/internal/model"
	"github.com/gin-gonic/gin"
)

const userKey = "currentUser"

// Auth 会话认证中间件
type Auth struct {
	auth       *logic.AuthLogic
	cookieName string
}

// NewAuth 创建会话认证中间件
func NewAuth(auth *logic.AuthLogic, cookieName string) *Auth {
	return &Auth{auth: auth, cookieName: cookieName}
}

// Identify 解析会话cookie，把当前用户挂到请求上下文。
// 无会话或会话无效不在此拦截，由Require*系列中间件处理。
func (a *Auth) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(a.cookieName)
		if err == nil && token != "" {
			if user, err := a.auth.ResolveSession(token); err == nil {
				c.Set(userKey, user)
			}
		}
		c.Next()
	}
}

// CurrentUser 获取当前登录用户，未登录返回nil
func CurrentUser(c *gin.Context) *model.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, ok := v.(*model.User)
	if !ok {
		return nil
	}
	return user
}

// RequireUser 要求已登录
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": logic.ErrUnauthorized.Error()})
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求管理员角色
func RequireAdmin() gin.HandlerFunc {
	return requireRole(model.RoleAdmin)
}

// RequireVendor 要求供应商角色
func RequireVendor() gin.HandlerFunc {
	return requireRole(model.RoleVendor)
}

func requireRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": logic.ErrUnauthorized.Error()})
			return
		}
		if user.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": logic.ErrForbidden.Error()})
			return
		}
		c.Next()
	}
}
