package controller

import (
	"context"
	"net/http"
	"time"

	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Sessions service.SessionStore
}

func NewHealthController(sessions service.SessionStore) *HealthController {
	return &HealthController{Sessions: sessions}
}

// @Summary 健康检查
// @Description 检查服务状态与会话存储连通性
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response "会话存储不可用"
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	// 检查会话存储
	if err := c.Sessions.Ping(pingCtx); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Session store unavailable")
		return
	}

	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"sessionStore": "up",
		},
	})
}
