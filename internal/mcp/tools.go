package mcp

import (
	"context"
	"strings"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/pkg/logger"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

// Handler 工具处理函数依赖的服务
type Handler struct {
	Parser *service.GoalParserService
	Plans  *service.PlanService
	Config *config.Config
}

type ParseGoalsInput struct {
	GoalsRaw string `json:"goalsRaw" jsonschema:"Free-text goals, separated by newlines, commas or semicolons"`
}

type ParseGoalsOutput struct {
	Goals  []model.Goal `json:"goals"`
	Source string       `json:"source"`
}

func ParseGoalsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "parse_goals",
		Description: "Split free-text goals into structured goals with category, minutes per day, days per week and key results. Returned goals are unconfirmed.",
	}
}

func (h *Handler) HandleParseGoals(ctx context.Context, req *mcp.CallToolRequest, input ParseGoalsInput) (*mcp.CallToolResult, ParseGoalsOutput, error) {
	result := h.Parser.Parse(ctx, input.GoalsRaw)
	logger.Log.Info("mcp parse_goals", zap.Int("goals", len(result.Goals)), zap.String("source", result.Source))

	goals := result.Goals
	if goals == nil {
		goals = []model.Goal{}
	}
	return nil, ParseGoalsOutput{Goals: goals, Source: result.Source}, nil
}

type GeneratePlanInput struct {
	GoalsRaw      string       `json:"goalsRaw,omitempty" jsonschema:"Free-text goals; parsed first when goals is empty"`
	Goals         []model.Goal `json:"goals,omitempty" jsonschema:"Structured goals, usually the output of parse_goals"`
	Confirm       bool         `json:"confirm,omitempty" jsonschema:"Mark every goal as confirmed before generating"`
	GoalTitle     string       `json:"goalTitle,omitempty" jsonschema:"Single-goal title, used when no goals are given"`
	Category      string       `json:"category,omitempty" jsonschema:"Single-goal category, e.g. fitness or study"`
	DaysPerWeek   int          `json:"daysPerWeek,omitempty" jsonschema:"Single-goal working days per week"`
	TimePerDay    int          `json:"timePerDay,omitempty" jsonschema:"Single-goal minutes per day"`
	RecipientName string       `json:"recipientName,omitempty" jsonschema:"Gift the plan to this person"`
}

type GeneratePlanOutput struct {
	ID            string          `json:"id"`
	GoalTitle     string          `json:"goalTitle"`
	Category      string          `json:"category"`
	RecipientName string          `json:"recipientName"`
	Source        string          `json:"source"`
	Days          []model.PlanDay `json:"days"`
	Goals         []model.Goal    `json:"goals,omitempty"`
}

func GeneratePlanTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_plan",
		Description: "Generate a 30-day plan. Multi-goal plans require every goal to be confirmed (pass confirm=true to confirm them).",
	}
}

func (h *Handler) HandleGeneratePlan(ctx context.Context, req *mcp.CallToolRequest, input GeneratePlanInput) (*mcp.CallToolResult, GeneratePlanOutput, error) {
	plan, err := h.Plans.Generate(ctx, h.questionnaire(ctx, input))
	if err != nil {
		logger.Log.Info("mcp generate_plan rejected", zap.Error(err))
		return nil, GeneratePlanOutput{}, err
	}
	logger.Log.Info("mcp generate_plan", zap.String("plan_id", plan.ID), zap.String("source", plan.Source))

	return nil, GeneratePlanOutput{
		ID:            plan.ID,
		GoalTitle:     plan.GoalTitle,
		Category:      string(plan.Category),
		RecipientName: plan.RecipientName,
		Source:        plan.Source,
		Days:          plan.Days[:],
		Goals:         plan.Goals,
	}, nil
}

func (h *Handler) questionnaire(ctx context.Context, input GeneratePlanInput) *model.Questionnaire {
	goals := input.Goals
	if len(goals) == 0 && strings.TrimSpace(input.GoalsRaw) != "" {
		goals = h.Parser.Parse(ctx, input.GoalsRaw).Goals
	}
	goals = model.NormalizeGoals(goals)
	if input.Confirm {
		goals = model.ConfirmGoals(goals)
	}

	q := &model.Questionnaire{
		GoalsRaw:  input.GoalsRaw,
		Goals:     goals,
		GoalTitle: input.GoalTitle,
		Schedule: model.Schedule{
			DaysPerWeek: input.DaysPerWeek,
			TimePerDay:  input.TimePerDay,
		},
	}
	if input.Category != "" {
		q.Category = model.ParseCategory(input.Category)
	}
	if input.RecipientName != "" {
		q.GiftMode = model.GiftMode{IsGift: true, RecipientName: input.RecipientName}
	}
	return q
}

type ListPosterTemplatesInput struct{}

type ListPosterTemplatesOutput struct {
	Templates []model.PosterTemplate `json:"templates"`
}

func ListPosterTemplatesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_poster_templates",
		Description: "List the poster themes with template URLs reachable by the image service.",
	}
}

func (h *Handler) HandleListPosterTemplates(ctx context.Context, req *mcp.CallToolRequest, input ListPosterTemplatesInput) (*mcp.CallToolResult, ListPosterTemplatesOutput, error) {
	templates := model.ResolveTemplates(h.Config.Poster.TemplateBaseURL, h.Config.PublicBaseURL())
	return nil, ListPosterTemplatesOutput{Templates: templates}, nil
}
