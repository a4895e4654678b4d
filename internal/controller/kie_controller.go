package controller

import (
	"net/http"

	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// KIEController 图像任务接口的透传代理，前端自行轮询
type KIEController struct {
	Client *service.KIEClient
}

func NewKIEController(client *service.KIEClient) *KIEController {
	return &KIEController{Client: client}
}

// CreateTaskRequest 模板与照片都必须是公网可访问的 URL
// swagger:model CreateTaskRequest
type CreateTaskRequest struct {
	TemplateURL  string `json:"templateUrl"`
	UserImageURL string `json:"userImageUrl"`
}

// CreateTask godoc
// @Summary 创建海报任务
// @Description 提交图像生成任务并返回 taskId
// @Tags 海报
// @Accept json
// @Produce json
// @Param request body CreateTaskRequest true "模板与照片"
// @Success 200 {object} util.Response{data=map[string]string}
// @Failure 400 {object} util.Response "缺少 templateUrl 或 userImageUrl"
// @Failure 500 {object} util.Response "未配置 KIE_API_KEY"
// @Router /kie/create-task [post]
func (c *KIEController) CreateTask(ctx *gin.Context) {
	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	taskID, err := c.Client.CreateTask(ctx.Request.Context(), req.TemplateURL, req.UserImageURL)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"taskId": taskID})
}

// TaskStatus godoc
// @Summary 查询海报任务
// @Description 原样返回图像服务的任务状态
// @Tags 海报
// @Produce json
// @Param taskId query string true "任务 ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.Response "缺少 taskId"
// @Router /kie/status [get]
func (c *KIEController) TaskStatus(ctx *gin.Context) {
	status, err := c.Client.RecordInfo(ctx.Request.Context(), ctx.Query("taskId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, status.Raw)
}
