package controller

import (
	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Config *config.Config
}

func NewCatalogController(cfg *config.Config) *CatalogController {
	return &CatalogController{Config: cfg}
}

// ListCategories godoc
// @Summary 目标分类
// @Description 返回全部目标分类及填写提示
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.CategoryInfo}
// @Router /categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	util.Success(ctx, model.Categories)
}

// ListPosterTemplates godoc
// @Summary 海报模板
// @Description 返回海报主题，url 为图像服务可访问的模板地址
// @Tags 目录
// @Produce json
// @Success 200 {object} util.Response{data=[]model.PosterTemplate}
// @Router /poster-templates [get]
func (c *CatalogController) ListPosterTemplates(ctx *gin.Context) {
	util.Success(ctx, model.ResolveTemplates(c.Config.Poster.TemplateBaseURL, c.Config.PublicBaseURL()))
}
