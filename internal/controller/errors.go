package controller

import (
	"errors"
	"io/fs"
	"net/http"

	"sprintwise_backend/internal/middleware"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError 业务错误到 HTTP 状态码的统一映射
func respondError(ctx *gin.Context, err error) {
	var (
		validation *model.ValidationError
		kieStatus  *service.KIEStatusError
		failed     *service.PosterFailedError
	)

	switch {
	case errors.As(err, &validation):
		util.BadRequest(ctx, validation.Message)
	case errors.Is(err, service.ErrTaskIDRequired), errors.Is(err, util.ErrInvalidSession):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrSessionNotFound), errors.Is(err, util.ErrPlanNotFound):
		util.NotFound(ctx, err.Error())
	case errors.Is(err, fs.ErrNotExist):
		util.NotFound(ctx, "File not found")
	case errors.Is(err, service.ErrKIENotConfigured), errors.Is(err, service.ErrNoTaskID):
		util.Error(ctx, http.StatusInternalServerError, err.Error())
	case errors.As(err, &kieStatus):
		// 上游状态码与响应体原样透传
		util.Error(ctx, kieStatus.StatusCode, kieStatus.Error())
	case errors.As(err, &failed):
		util.BadGateway(ctx, failed.Message)
	case errors.Is(err, service.ErrPosterTimedOut):
		util.GatewayTimeout(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// currentSession 当前请求的会话，不存在时返回未保存的空会话
func currentSession(ctx *gin.Context, store service.SessionStore) (*model.Session, error) {
	id := middleware.SessionID(ctx)
	if id == "" {
		return nil, util.ErrInvalidSession
	}
	return service.LoadOrCreate(ctx.Request.Context(), store, id)
}
