// @title Sprintwise 后端 API
// @version 1.0
// @description 30 天计划生成服务：目标解析、计划生成、照片上传与个性化海报。

// @host localhost:8080
// @BasePath /api

package main

import (
	"os"

	"sprintwise_backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
