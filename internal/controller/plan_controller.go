package controller

import (
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans    *service.PlanService
	Sessions service.SessionStore
}

func NewPlanController(plans *service.PlanService, sessions service.SessionStore) *PlanController {
	return &PlanController{Plans: plans, Sessions: sessions}
}

// GeneratePlan godoc
// @Summary 生成 30 天计划
// @Description 校验问卷后生成计划并写入当前会话；多目标或未配置语言模型时使用确定性生成
// @Tags 计划
// @Accept json
// @Produce json
// @Param request body model.Questionnaire true "问卷"
// @Success 201 {object} util.Response{data=model.Plan}
// @Failure 400 {object} util.Response "问卷校验失败"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /plans [post]
func (c *PlanController) GeneratePlan(ctx *gin.Context) {
	var q model.Questionnaire
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q.Normalize()
	if err := q.Validate(); err != nil {
		respondError(ctx, err)
		return
	}

	plan, err := c.Plans.Generate(ctx.Request.Context(), &q)
	if err != nil {
		respondError(ctx, err)
		return
	}

	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}
	session.Questionnaire = &q
	session.Plan = plan
	if err := c.Sessions.Save(ctx.Request.Context(), session); err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, plan)
}

// CurrentPlan godoc
// @Summary 当前计划
// @Description 返回当前会话中最近生成的计划
// @Tags 计划
// @Produce json
// @Success 200 {object} util.Response{data=model.Plan}
// @Failure 404 {object} util.Response "尚未生成计划"
// @Router /plans/current [get]
func (c *PlanController) CurrentPlan(ctx *gin.Context) {
	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if session.Plan == nil {
		respondError(ctx, util.ErrPlanNotFound)
		return
	}
	util.Success(ctx, session.Plan)
}
