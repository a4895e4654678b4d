package middleware

import (
	"net/http"
	"time"

	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "sessionID"

// SessionMiddleware 从请求头或 Cookie 取会话 ID，缺失或非法时签发新的
func SessionMiddleware(ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(util.SessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(util.SessionCookie); err == nil {
				id = cookie
			}
		}

		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(sessionContextKey, id)
		c.Header(util.SessionHeader, id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(util.SessionCookie, id, int(ttl.Seconds()), "/", "", false, true)

		c.Next()
	}
}

// SessionID 由 SessionMiddleware 设置；未经过中间件时返回空串
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
