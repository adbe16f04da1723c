package middleware

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/redis"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// LoginPath 未登录访问受保护路由时重定向的登录入口
const LoginPath = "/api/user/login"

func redirectToLogin(c *gin.Context) {
	next := url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, LoginPath+"?next="+next)
	c.Abort()
}

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context。
// 未登录或凭证失效时重定向到登录页，而不是返回错误。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			redirectToLogin(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		value, err := redis.GetValue(c.Request.Context(), consts.TokenBlacklistKey+signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if value != "" {
			redirectToLogin(c)
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set("user_id", claims.UserID)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
