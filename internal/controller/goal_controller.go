package controller

import (
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	Parser   *service.GoalParserService
	Sessions service.SessionStore
}

func NewGoalController(parser *service.GoalParserService, sessions service.SessionStore) *GoalController {
	return &GoalController{Parser: parser, Sessions: sessions}
}

// ParseGoalsRequest 自由文本目标
// swagger:model ParseGoalsRequest
type ParseGoalsRequest struct {
	GoalsRaw string `json:"goalsRaw"`
}

// ConfirmGoalsRequest ids 为空时确认全部；goals 为空时使用会话中的目标
// swagger:model ConfirmGoalsRequest
type ConfirmGoalsRequest struct {
	Goals []model.Goal `json:"goals"`
	IDs   []string     `json:"ids"`
}

// ParseGoals godoc
// @Summary 解析目标
// @Description 把自由文本拆分为结构化目标；优先使用语言模型，失败时使用规则解析
// @Tags 目标
// @Accept json
// @Produce json
// @Param request body ParseGoalsRequest true "目标文本"
// @Success 200 {object} util.Response{data=service.GoalParseResult}
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /goals/parse [post]
func (c *GoalController) ParseGoals(ctx *gin.Context) {
	var req ParseGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result := c.Parser.Parse(ctx.Request.Context(), req.GoalsRaw)

	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if session.Questionnaire == nil {
		session.Questionnaire = &model.Questionnaire{}
	}
	session.Questionnaire.GoalsRaw = req.GoalsRaw
	session.Questionnaire.Goals = result.Goals
	if err := c.Sessions.Save(ctx.Request.Context(), session); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ConfirmGoals godoc
// @Summary 确认目标
// @Description 标记目标为已确认，生成多目标计划前必须全部确认
// @Tags 目标
// @Accept json
// @Produce json
// @Param request body ConfirmGoalsRequest true "待确认目标"
// @Success 200 {object} util.Response{data=[]model.Goal}
// @Failure 400 {object} util.Response "没有可确认的目标"
// @Router /goals/confirm [post]
func (c *GoalController) ConfirmGoals(ctx *gin.Context) {
	var req ConfirmGoalsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if session.Questionnaire == nil {
		session.Questionnaire = &model.Questionnaire{}
	}

	goals := req.Goals
	if len(goals) == 0 {
		goals = session.Questionnaire.Goals
	}
	if len(goals) == 0 {
		util.BadRequest(ctx, "No goals to confirm")
		return
	}

	session.Questionnaire.Goals = model.ConfirmGoals(model.NormalizeGoals(goals), req.IDs...)
	if err := c.Sessions.Save(ctx.Request.Context(), session); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, session.Questionnaire.Goals)
}
