package middleware

import (
	"net/http"
	"strings"

	"Memora/pkg/context"
	"Memora/pkg/jwt"
	"Memora/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 校验 Bearer 令牌，通过后写入 user_id
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// bearerToken 浏览器 websocket 无法带 header，允许 query 传 token
func bearerToken(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ""
		}
		return parts[1]
	}
	return c.Query("token")
}
