// Package mcp 把目标解析、计划生成与海报模板目录暴露为 MCP 工具，
// 支持 streamable HTTP（挂载在 /mcp）与 stdio 两种传输。
package mcp

import (
	"context"
	"net/http"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	ServerName    = "sprintwise"
	ServerVersion = "v1.0.0"
)

type Server struct {
	mcpServer *mcp.Server
	handler   *Handler
}

func NewServer(parser *service.GoalParserService, plans *service.PlanService, cfg *config.Config) *Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		handler:   &Handler{Parser: parser, Plans: plans, Config: cfg},
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, ParseGoalsTool(), s.handler.HandleParseGoals)
	mcp.AddTool(s.mcpServer, GeneratePlanTool(), s.handler.HandleGeneratePlan)
	mcp.AddTool(s.mcpServer, ListPosterTemplatesTool(), s.handler.HandleListPosterTemplates)
}

// HTTPHandler streamable HTTP 传输
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(
		func(r *http.Request) *mcp.Server {
			return s.mcpServer
		},
		nil,
	)
}

// Run 以 stdio 运行，stdout 专用于协议
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
