package controller

import (
	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PosterController struct {
	Posters  *service.PosterService
	Sessions service.SessionStore
	Config   *config.Config
}

func NewPosterController(posters *service.PosterService, sessions service.SessionStore, cfg *config.Config) *PosterController {
	return &PosterController{Posters: posters, Sessions: sessions, Config: cfg}
}

// GeneratePosterRequest templateUrl 优先；否则按 posterTheme 解析模板。
// 字段缺省时取会话问卷中的值。
// swagger:model GeneratePosterRequest
type GeneratePosterRequest struct {
	TemplateURL  string              `json:"templateUrl"`
	PosterTheme  model.PosterThemeID `json:"posterTheme"`
	UserImageURL string              `json:"userImageUrl"`
}

// GeneratePoster godoc
// @Summary 生成个性化海报
// @Description 创建图像任务并轮询到终态，成功后把海报地址写回会话
// @Tags 海报
// @Accept json
// @Produce json
// @Param request body GeneratePosterRequest true "模板与照片"
// @Success 200 {object} util.Response{data=model.PosterJob}
// @Failure 400 {object} util.Response "缺少模板或照片"
// @Failure 502 {object} util.Response "图像服务报告失败"
// @Failure 504 {object} util.Response "生成超时"
// @Router /posters/generate [post]
func (c *PosterController) GeneratePoster(ctx *gin.Context) {
	var req GeneratePosterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := currentSession(ctx, c.Sessions)
	if err != nil {
		respondError(ctx, err)
		return
	}

	templateURL, userImageURL := c.resolveInputs(req, session.Questionnaire)
	job, err := c.Posters.Generate(ctx.Request.Context(), templateURL, userImageURL)
	if err != nil {
		respondError(ctx, err)
		return
	}

	session.SetPosterURL(job.ImageURL)
	if err := c.Sessions.Save(ctx.Request.Context(), session); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, job)
}

func (c *PosterController) resolveInputs(req GeneratePosterRequest, q *model.Questionnaire) (string, string) {
	theme, photo := req.PosterTheme, req.UserImageURL
	if q != nil {
		if theme == "" {
			theme = q.PosterTheme
		}
		if photo == "" {
			photo = q.UserImageURL
		}
	}

	templateURL := req.TemplateURL
	if templateURL == "" && theme != "" {
		templateURL = model.TemplateURL(theme, c.Config.Poster.TemplateBaseURL, c.Config.PublicBaseURL())
	}
	return templateURL, photo
}
