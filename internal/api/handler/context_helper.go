package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Justhawi/leave-usiu/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// mustGetTokenJTI 提取认证中间件注入的 Token JTI 与过期时间（登出使用）
func mustGetTokenJTI(c *gin.Context) (string, time.Time, bool) {
	jti := c.GetString("token_jti")
	if jti == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", time.Time{}, false
	}
	exp, _ := c.Get("token_exp")
	expiresAt, ok := exp.(time.Time)
	if !ok {
		expiresAt = time.Now()
	}
	return jti, expiresAt, true
}
