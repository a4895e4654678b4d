package controller

import (
	"sprintwise_backend/internal/middleware"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Sessions service.SessionStore
}

func NewSessionController(sessions service.SessionStore) *SessionController {
	return &SessionController{Sessions: sessions}
}

// GetSession godoc
// @Summary 获取会话
// @Description 返回当前会话中的问卷与计划
// @Tags 会话
// @Produce json
// @Success 200 {object} util.Response{data=model.Session}
// @Router /session [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// SaveQuestionnaire godoc
// @Summary 保存问卷进度
// @Description 覆盖当前会话中的问卷，已生成的计划保持不变
// @Tags 会话
// @Accept json
// @Produce json
// @Param request body model.Questionnaire true "问卷"
// @Success 200 {object} util.Response{data=model.Session}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /session [put]
func (c *SessionController) SaveQuestionnaire(ctx *gin.Context) {
	var q model.Questionnaire
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q.Normalize()

	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}
	session.Questionnaire = &q
	if err := c.Sessions.Save(ctx.Request.Context(), session); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, session)
}

// ClearSession godoc
// @Summary 重新开始
// @Description 清空当前会话中的问卷、计划与海报
// @Tags 会话
// @Produce json
// @Success 200 {object} util.Response
// @Router /session [delete]
func (c *SessionController) ClearSession(ctx *gin.Context) {
	if err := c.Sessions.Clear(ctx.Request.Context(), middleware.SessionID(ctx)); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
