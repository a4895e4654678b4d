package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/llm"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	cfg := config.Default()
	cfg.Poster.TemplateBaseURL = "https://templates.example.com/"
	client := llm.NewOpenAIClient(cfg.AI, llm.NoopObserver{})
	return NewServer(service.NewGoalParserService(client), service.NewPlanService(client), cfg)
}

// connect 通过内存传输连接客户端
func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	_, err := s.mcpServer.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

func structured[T any](t *testing.T, res *mcp.CallToolResult) T {
	t.Helper()
	var out T
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestListTools(t *testing.T) {
	session := connect(t, newTestServer())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, 0, len(res.Tools))
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"parse_goals", "generate_plan", "list_poster_templates"}, names)
}

func TestParseGoalsTool(t *testing.T) {
	session := connect(t, newTestServer())

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "parse_goals",
		Arguments: map[string]any{"goalsRaw": "Study AWS 1 hour 5 days\nGym 30 min 6 days"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := structured[ParseGoalsOutput](t, res)
	assert.Equal(t, service.GoalSourceFallback, out.Source)
	require.Len(t, out.Goals, 2)
	assert.Equal(t, 60, out.Goals[0].TimePerDay)
	assert.False(t, out.Goals[0].Confirmed)
}

func TestGeneratePlanTool(t *testing.T) {
	session := connect(t, newTestServer())
	ctx := context.Background()

	// 未确认的多目标计划被拒绝
	res, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "generate_plan",
		Arguments: map[string]any{"goalsRaw": "Study AWS 1 hour 5 days, Gym 30 min 6 days"},
	})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name: "generate_plan",
		Arguments: map[string]any{
			"goalsRaw":      "Study AWS 1 hour 5 days, Gym 30 min 6 days",
			"confirm":       true,
			"recipientName": "Sam",
		},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	out := structured[GeneratePlanOutput](t, res)
	assert.Len(t, out.Days, model.PlanLength)
	assert.Equal(t, "Study AWS + Gym", out.GoalTitle)
	assert.Equal(t, "Sam", out.RecipientName)
	assert.Equal(t, service.PlanSourceDeterministic, out.Source)
	assert.Equal(t, "Study AWS (1hr) • Gym (30min)", out.Days[2].Title)
}

func TestListPosterTemplatesTool(t *testing.T) {
	session := connect(t, newTestServer())

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "list_poster_templates", Arguments: map[string]any{}})
	require.NoError(t, err)

	out := structured[ListPosterTemplatesOutput](t, res)
	require.Len(t, out.Templates, 3)
	assert.Equal(t, "https://templates.example.com/zen_minimal.png", out.Templates[0].URL)
}
