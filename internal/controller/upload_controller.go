package controller

import (
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Storage *service.StorageService
}

func NewUploadController(storage *service.StorageService) *UploadController {
	return &UploadController{Storage: storage}
}

// UploadPhoto godoc
// @Summary 上传照片
// @Description 上传一张用户照片，返回图像服务可访问的 URL
// @Tags 上传
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "图片文件"
// @Success 200 {object} util.Response{data=service.UploadResult}
// @Failure 400 {object} util.Response "文件缺失或不是图片"
// @Failure 500 {object} util.Response "存储失败"
// @Router /upload [post]
func (c *UploadController) UploadPhoto(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		respondError(ctx, model.ErrEmptyFile)
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	result, err := c.Storage.UploadImage(
		ctx.Request.Context(),
		header.Filename,
		header.Header.Get("Content-Type"),
		header.Size,
		file,
	)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// DeletePhoto godoc
// @Summary 删除照片
// @Description 删除之前上传的照片
// @Tags 上传
// @Produce json
// @Param filename path string true "上传时返回的文件名"
// @Success 200 {object} util.Response
// @Router /upload/{filename} [delete]
func (c *UploadController) DeletePhoto(ctx *gin.Context) {
	if err := c.Storage.Delete(ctx.Request.Context(), ctx.Param("filename")); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
