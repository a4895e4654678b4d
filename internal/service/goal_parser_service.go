package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"sprintwise_backend/internal/llm"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/planner"
	"sprintwise_backend/pkg/logger"
	"sprintwise_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	GoalSourceLLM      = "llm"
	GoalSourceFallback = "fallback"
	GoalSourceEmpty    = "empty"
)

var errNoGoals = errors.New("model returned no goals")

type GoalParseResult struct {
	Goals  []model.Goal `json:"goals"`
	Source string       `json:"source"`
}

type GoalParserService struct {
	llm llm.Client
}

func NewGoalParserService(client llm.Client) *GoalParserService {
	return &GoalParserService{llm: client}
}

// Parse 优先使用模型解析，任何失败都回退到确定性解析，不向调用方返回错误
func (s *GoalParserService) Parse(ctx context.Context, raw string) GoalParseResult {
	if strings.TrimSpace(raw) == "" {
		monitoring.GoalParses.WithLabelValues(GoalSourceEmpty).Inc()
		return GoalParseResult{Goals: []model.Goal{}, Source: GoalSourceEmpty}
	}

	var (
		goals  []model.Goal
		source = GoalSourceFallback
	)
	if s.llm != nil && s.llm.Enabled() {
		parsed, err := s.parseWithLLM(ctx, raw)
		if err == nil {
			goals, source = parsed, GoalSourceLLM
		} else {
			logger.Log.Warn("goal parsing via llm failed, using fallback", zap.Error(err))
		}
	}
	if source == GoalSourceFallback {
		goals = planner.ParseGoalsFallback(raw)
	}

	if len(goals) == 0 {
		source = GoalSourceEmpty
		goals = []model.Goal{}
	}
	monitoring.GoalParses.WithLabelValues(source).Inc()
	return GoalParseResult{Goals: goals, Source: source}
}

func (s *GoalParserService) parseWithLLM(ctx context.Context, raw string) ([]model.Goal, error) {
	resp, err := s.llm.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskParseGoals,
		SystemPrompt: goalParseSystemPrompt,
		UserPrompt:   buildGoalParsePrompt(raw),
		JSONMode:     true,
	})
	if err != nil {
		return nil, err
	}

	payload, err := llm.ExtractJSON[any](resp.Text, nil)
	if err != nil {
		return nil, err
	}
	goals := NormalizeGoals(payload)
	if len(goals) == 0 {
		return nil, errNoGoals
	}
	return goals, nil
}

// NormalizeGoals 接受 {"goals":[...]}、{"items":[...]} 或裸数组
func NormalizeGoals(payload any) []model.Goal {
	items, ok := asArray(payload)
	if !ok {
		obj := asObject(payload)
		if items, ok = asArray(obj["goals"]); !ok {
			items, _ = asArray(obj["items"])
		}
	}
	if len(items) > model.MaxGoals {
		items = items[:model.MaxGoals]
	}

	goals := make([]model.Goal, 0, len(items))
	for i, item := range items {
		goals = append(goals, normalizeGoal(asObject(item), i))
	}
	return goals
}

func normalizeGoal(item map[string]any, index int) model.Goal {
	title := fmt.Sprintf("Goal %d", index+1)
	if truthy(item["title"]) {
		if t := strings.TrimSpace(truncateRunes(toString(item["title"]), model.MaxGoalTitle)); t != "" {
			title = t
		}
	}

	category := string(model.CategoryCustom)
	if truthy(item["category"]) {
		category = toString(item["category"])
	}

	return model.Goal{
		ID:          uuid.NewString(),
		Title:       title,
		Category:    model.ParseCategory(category),
		TimePerDay:  model.ClampTimePerDay(toInt(item["timePerDay"], model.DefaultTimePerDay)),
		DaysPerWeek: model.ClampDaysPerWeek(toInt(item["daysPerWeek"], model.DefaultDaysPerWeek)),
		KeyResults:  normalizeKeyResults(item["keyResults"]),
		Confirmed:   false,
	}
}

func normalizeKeyResults(v any) []string {
	if arr, ok := asArray(v); ok {
		var out []string
		for _, kr := range toStrings(arr) {
			if kr = strings.TrimSpace(kr); kr != "" {
				out = append(out, kr)
			}
			if len(out) == model.MaxKeyResults {
				break
			}
		}
		if len(out) == 0 {
			return []string{model.DefaultKeyResult}
		}
		return out
	}
	if truthy(v) {
		return []string{toString(v)}
	}
	return []string{model.DefaultKeyResult}
}

const goalParseSystemPrompt = `You turn a free-text list of goals into structured JSON.
Reply with JSON only, shaped as {"goals": [{"title": "...", "category": "...", "timePerDay": 60, "daysPerWeek": 5, "keyResults": ["..."]}]}.
category must be one of: fitness, financial, career, study, habit-building, personal-growth, custom.`

func buildGoalParsePrompt(raw string) string {
	categories := make([]string, 0, len(model.GoalCategories))
	for _, c := range model.GoalCategories {
		categories = append(categories, string(c))
	}

	var b strings.Builder
	b.WriteString("You are a goal-planning expert. The user listed several goals; turn each one into a SMART goal.\n\n")
	b.WriteString("## Raw input\n\"\"\"\n")
	b.WriteString(raw)
	b.WriteString("\n\"\"\"\n\n")
	b.WriteString("## For every distinct goal return\n")
	b.WriteString("- title: short, clear name\n")
	b.WriteString("- category: one of " + strings.Join(categories, ", ") + "\n")
	b.WriteString("- timePerDay: minutes per day (\"1 hour\" = 60, \"30 min\" = 30)\n")
	b.WriteString("- daysPerWeek: days per week (\"6 times a week\" = 6, \"daily\" = 7)\n")
	b.WriteString("- keyResults: one or two measurable outcomes\n\n")
	b.WriteString("Example: {\"goals\": [{\"title\": \"Study AWS\", \"category\": \"study\", \"timePerDay\": 60, \"daysPerWeek\": 5, ")
	b.WriteString("\"keyResults\": [\"Complete 30 hours of study\"]}]}\n")
	return b.String()
}
