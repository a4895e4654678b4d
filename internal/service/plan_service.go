package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"sprintwise_backend/internal/llm"
	"sprintwise_backend/internal/model"
	"sprintwise_backend/internal/planner"
	"sprintwise_backend/pkg/logger"
	"sprintwise_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PlanSourceLLM           = "llm"
	PlanSourceDeterministic = "deterministic"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// PlanService 计划生成：模型可用且为单目标时请求模型，其余情况以及任何失败都使用确定性展开
type PlanService struct {
	llm llm.Client
	now func() time.Time
}

func NewPlanService(client llm.Client) *PlanService {
	return &PlanService{llm: client, now: time.Now}
}

// Generate 仅在多目标未全部确认时返回错误，外部服务失败不会向上传递。
// q 会被就地规范化。
func (s *PlanService) Generate(ctx context.Context, q *model.Questionnaire) (*model.Plan, error) {
	q.Normalize()
	if q.IsMultiGoal() && !model.AllConfirmed(q.Goals) {
		return nil, model.ErrGoalsNotConfirmed
	}

	days, source := s.selectDays(ctx, q)
	monitoring.PlanGenerations.WithLabelValues(source).Inc()
	return s.assemble(q, days, source), nil
}

func (s *PlanService) selectDays(ctx context.Context, q *model.Questionnaire) (model.Calendar, string) {
	if s.llm == nil || !s.llm.Enabled() || q.IsMultiGoal() {
		return planner.Expand(q), PlanSourceDeterministic
	}

	days, err := s.generateWithLLM(ctx, q)
	if err != nil {
		logger.Log.Warn("plan generation via llm failed, using expander", zap.Error(err))
		return planner.Expand(q), PlanSourceDeterministic
	}
	return days, PlanSourceLLM
}

func (s *PlanService) generateWithLLM(ctx context.Context, q *model.Questionnaire) (model.Calendar, error) {
	resp, err := s.llm.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskGeneratePlan,
		SystemPrompt: planSystemPrompt,
		UserPrompt:   BuildPlanPrompt(q),
		JSONMode:     true,
	})
	if err != nil {
		return model.Calendar{}, err
	}

	payload, err := llm.ExtractJSON[any](resp.Text, nil)
	if err != nil {
		return model.Calendar{}, err
	}
	return CoerceDays(payload)
}

// CoerceDays 校验 {"days":[...]} 恰好 30 项，逐项补默认值
func CoerceDays(payload any) (model.Calendar, error) {
	var cal model.Calendar

	days, ok := asArray(asObject(payload)["days"])
	if !ok {
		return cal, fmt.Errorf("%w: days is not an array", llm.ErrInvalidOutput)
	}
	if len(days) != model.PlanLength {
		return cal, fmt.Errorf("%w: expected %d days, got %d", llm.ErrInvalidOutput, model.PlanLength, len(days))
	}

	for i, raw := range days {
		entry := asObject(raw)

		day := i + 1
		if n, ok := entry["day"].(float64); ok {
			// 非整数天号直接判为无效输出，不做截断
			if n != math.Trunc(n) {
				return model.Calendar{}, fmt.Errorf("%w: day %v is not an integer", llm.ErrInvalidOutput, n)
			}
			day = int(n)
		}

		pd := model.PlanDay{
			Day:        day,
			Title:      model.DefaultDayTitle,
			Focus:      model.DefaultFocus,
			Tasks:      []string{model.DefaultDayTask},
			TimeBlocks: []string{},
		}
		if v, ok := entry["title"]; ok && v != nil {
			pd.Title = toString(v)
		}
		if v, ok := entry["focus"]; ok && v != nil {
			pd.Focus = toString(v)
		}
		if arr, ok := asArray(entry["tasks"]); ok {
			pd.Tasks = toStrings(arr)
		}
		if arr, ok := asArray(entry["timeBlocks"]); ok {
			pd.TimeBlocks = toStrings(arr)
		}
		cal[i] = pd
	}

	if !cal.Contiguous() {
		return model.Calendar{}, fmt.Errorf("%w: day numbers are not 1..%d", llm.ErrInvalidOutput, model.PlanLength)
	}
	return cal, nil
}

func (s *PlanService) assemble(q *model.Questionnaire, days model.Calendar, source string) *model.Plan {
	title := strings.TrimSpace(q.GoalTitle)
	if q.IsMultiGoal() {
		title = model.GoalTitles(q.Goals)
	} else if title == "" {
		title = model.DefaultPlanName
	}

	category := model.CategoryCustom
	switch {
	case q.IsMultiGoal() && q.Goals[0].Category != "":
		category = q.Goals[0].Category
	case q.Category != "":
		category = q.Category
	}

	return &model.Plan{
		ID:            uuid.NewString(),
		Category:      category,
		GoalTitle:     title,
		RecipientName: q.RecipientDisplayName(),
		CreatedAt:     s.now(),
		Questionnaire: *q,
		Days:          days,
		Goals:         q.Goals,
		Source:        source,
	}
}

const planSystemPrompt = `You write 30-day action plans as JSON.
Reply with JSON only, shaped as {"days": [{"day": 1, "title": "...", "focus": "...", "tasks": ["..."], "timeBlocks": ["..."]}]}, with exactly 30 entries.`

// BuildPlanPrompt 单目标问卷的提示词
func BuildPlanPrompt(q *model.Questionnaire) string {
	objective := q.GoalTitle
	keyResults := "Not specified"
	if gd := q.GoalDefinition; gd != nil {
		if strings.TrimSpace(gd.Objective) != "" {
			objective = gd.Objective
		}
		var krs []string
		for _, kr := range gd.KeyResults {
			if strings.TrimSpace(kr) != "" {
				krs = append(krs, kr)
			}
		}
		if len(krs) > 0 {
			keyResults = strings.Join(krs, "\n- ")
		}
	}

	sch := q.Schedule
	daysPerWeek := sch.DaysPerWeek
	if daysPerWeek == 0 {
		daysPerWeek = model.DefaultDaysPerWeek
	}
	timePerDay := sch.TimePerDay
	if timePerDay == 0 {
		timePerDay = model.DefaultTimePerDay
	}
	preferred := string(sch.PreferredTime)
	if preferred == "" {
		preferred = string(model.PreferredFlexible)
	}
	wake := orDefault(sch.WakeUpTime, "7:00")
	sleep := orDefault(sch.SleepTime, "23:00")

	workingDays := "Mon-Fri"
	if len(sch.WorkingDays) > 0 {
		names := make([]string, 0, len(sch.WorkingDays))
		for _, d := range sch.WorkingDays {
			if d >= 0 && d < len(weekdayNames) {
				names = append(names, weekdayNames[d])
			}
		}
		if len(names) > 0 {
			workingDays = strings.Join(names, ", ")
		}
	}

	var b strings.Builder
	b.WriteString("You are a goal-planning expert. Build a personalised 30-day action plan.\n\n")
	b.WriteString("## Goal\n")
	fmt.Fprintf(&b, "Objective: %s\n", objective)
	fmt.Fprintf(&b, "Key results:\n- %s\n", keyResults)
	fmt.Fprintf(&b, "Category: %s\n", q.Category)
	fmt.Fprintf(&b, "Intensity: %s\n\n", q.Intensity)
	b.WriteString("## Schedule\n")
	fmt.Fprintf(&b, "- Days per week: %d\n", daysPerWeek)
	fmt.Fprintf(&b, "- Minutes per day: %d\n", timePerDay)
	fmt.Fprintf(&b, "- Preferred time: %s\n", preferred)
	fmt.Fprintf(&b, "- Working days: %s\n", workingDays)
	fmt.Fprintf(&b, "- Wake: %s, Sleep: %s\n\n", wake, sleep)
	b.WriteString("## Output\n")
	b.WriteString("Exactly 30 days. Each day has day (1-30), a short title, a focus theme, 2-4 concrete tasks and suggested timeBlocks.\n")
	b.WriteString(`Non-working days use title "Rest Day", focus "Recovery", tasks ["Rest", "Reflect", "Recharge"] and empty timeBlocks.` + "\n")
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
