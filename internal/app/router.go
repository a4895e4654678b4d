package app

import (
	"sprintwise_backend/docs"
	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/mcp"
	"sprintwise_backend/internal/middleware"
	"sprintwise_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, toolServer *mcp.Server, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// MCP 工具（streamable HTTP）
	mcpHandler := gin.WrapH(toolServer.HTTPHandler())
	router.GET("/mcp", mcpHandler)
	router.POST("/mcp", mcpHandler)
	router.DELETE("/mcp", mcpHandler)

	api := router.Group("/api")
	api.Use(middleware.SessionMiddleware(cfg.Session.TTL))
	{
		// 1. 系统与目录
		api.GET("/health", c.health.HealthCheck)
		api.GET("/categories", c.catalog.ListCategories)
		api.GET("/poster-templates", c.catalog.ListPosterTemplates)

		// 2. 目标与计划
		api.POST("/goals/parse", c.goal.ParseGoals)
		api.POST("/goals/confirm", c.goal.ConfirmGoals)
		api.POST("/plans", c.plan.GeneratePlan)
		api.GET("/plans/current", c.plan.CurrentPlan)

		// 3. 会话
		api.GET("/session", c.session.GetSession)
		api.PUT("/session", c.session.SaveQuestionnaire)
		api.DELETE("/session", c.session.ClearSession)

		// 4. 照片与海报
		api.POST("/upload", c.upload.UploadPhoto)
		api.DELETE("/upload/:filename", c.upload.DeletePhoto)
		api.POST("/kie/create-task", c.kie.CreateTask)
		api.GET("/kie/status", c.kie.TaskStatus)
		api.POST("/posters/generate", c.poster.GeneratePoster)
	}
}
