package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"staffhub/backend/pkg/jwt"
	"staffhub/backend/pkg/redis"
	"staffhub/backend/pkg/response"
)

// ClaimsKey 上下文中身份声明的键
const ClaimsKey = "claims"

// extractToken 提取原始 Token 字符串
// 优先 Authorization: Bearer <token>，缺失时回退到 token Cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// JWTAuth JWT 认证中间件
// 每个受保护操作独立执行本检查，请求间不共享任何会话状态
// rdb 为 nil 时跳过黑名单检查（降级放行）
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "缺少认证凭据")
			c.Abort()
			return
		}

		claims, err := jwtMgr.Verify(token)
		if err != nil {
			response.Unauthorized(c, "Token 无效或已过期")
			c.Abort()
			return
		}

		// 已登出的 Token 拒绝访问
		if rdb != nil && claims.ID != "" {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, "Token 已失效")
				c.Abort()
				return
			}
			// Redis 出错时降级放行
		}

		c.Set(ClaimsKey, claims)

		c.Next()
	}
}

// RoleAuth 角色权限中间件
// 角色不符按约定返回 401（与缺失/无效 Token 同级）
func RoleAuth(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ClaimsKey)
		if !exists {
			response.Unauthorized(c, "未认证")
			c.Abort()
			return
		}

		claims, ok := v.(*jwt.Claims)
		if !ok || claims.Role != requiredRole {
			response.Unauthorized(c, "无权访问")
			c.Abort()
			return
		}

		c.Next()
	}
}
