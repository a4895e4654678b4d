package model

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

type GoalCategory string

const (
	CategoryFitness        GoalCategory = "fitness"
	CategoryFinancial      GoalCategory = "financial"
	CategoryCareer         GoalCategory = "career"
	CategoryStudy          GoalCategory = "study"
	CategoryHabitBuilding  GoalCategory = "habit-building"
	CategoryPersonalGrowth GoalCategory = "personal-growth"
	CategoryCustom         GoalCategory = "custom"
)

// GoalCategories 固定的分类枚举，顺序即展示顺序
var GoalCategories = []GoalCategory{
	CategoryFitness,
	CategoryFinancial,
	CategoryCareer,
	CategoryStudy,
	CategoryHabitBuilding,
	CategoryPersonalGrowth,
	CategoryCustom,
}

func (c GoalCategory) Valid() bool {
	for _, v := range GoalCategories {
		if v == c {
			return true
		}
	}
	return false
}

// ParseCategory 小写并把空白替换为连字符，未识别的值归为 custom
func ParseCategory(s string) GoalCategory {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	c := GoalCategory(b.String())
	if !c.Valid() {
		return CategoryCustom
	}
	return c
}

const (
	MinTimePerDay  = 5
	MaxTimePerDay  = 180
	MinDaysPerWeek = 1
	MaxDaysPerWeek = 7

	DefaultTimePerDay  = 30
	DefaultDaysPerWeek = 5

	MaxKeyResults    = 3
	DefaultKeyResult = "Track progress"

	MaxGoals     = 8
	MaxGoalTitle = 80
)

// Goal 从自由文本中解析出的单个结构化目标
type Goal struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Category    GoalCategory `json:"category"`
	TimePerDay  int          `json:"timePerDay"`
	DaysPerWeek int          `json:"daysPerWeek"`
	KeyResults  []string     `json:"keyResults"`
	Confirmed   bool         `json:"confirmed"`
}

func ClampTimePerDay(minutes int) int {
	return clamp(minutes, MinTimePerDay, MaxTimePerDay)
}

func ClampDaysPerWeek(days int) int {
	return clamp(days, MinDaysPerWeek, MaxDaysPerWeek)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeGoal 把外部提交的目标收敛到合法取值，确认状态保持不变
func NormalizeGoal(g Goal, index int) Goal {
	title := strings.TrimSpace(g.Title)
	if r := []rune(title); len(r) > MaxGoalTitle {
		title = strings.TrimSpace(string(r[:MaxGoalTitle]))
	}
	if title == "" {
		title = fmt.Sprintf("Goal %d", index+1)
	}

	keyResults := make([]string, 0, MaxKeyResults)
	for _, kr := range g.KeyResults {
		if kr = strings.TrimSpace(kr); kr != "" {
			keyResults = append(keyResults, kr)
		}
		if len(keyResults) == MaxKeyResults {
			break
		}
	}
	if len(keyResults) == 0 {
		keyResults = []string{DefaultKeyResult}
	}

	id := g.ID
	if id == "" {
		id = uuid.NewString()
	}

	return Goal{
		ID:          id,
		Title:       title,
		Category:    ParseCategory(string(g.Category)),
		TimePerDay:  ClampTimePerDay(g.TimePerDay),
		DaysPerWeek: ClampDaysPerWeek(g.DaysPerWeek),
		KeyResults:  keyResults,
		Confirmed:   g.Confirmed,
	}
}

// NormalizeGoals 最多保留 8 个目标并逐个规范化，返回新切片
func NormalizeGoals(goals []Goal) []Goal {
	if len(goals) == 0 {
		return goals
	}
	if len(goals) > MaxGoals {
		goals = goals[:MaxGoals]
	}
	out := make([]Goal, len(goals))
	for i, g := range goals {
		out[i] = NormalizeGoal(g, i)
	}
	return out
}

// AllConfirmed 目标集合非空且每个目标都已确认
func AllConfirmed(goals []Goal) bool {
	if len(goals) == 0 {
		return false
	}
	for _, g := range goals {
		if !g.Confirmed {
			return false
		}
	}
	return true
}

// ConfirmGoals 返回副本；ids 为空时确认全部
func ConfirmGoals(goals []Goal, ids ...string) []Goal {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]Goal, len(goals))
	for i, g := range goals {
		if len(ids) == 0 || want[g.ID] {
			g.Confirmed = true
		}
		out[i] = g
	}
	return out
}

// GoalTitles 多目标计划的展示标题
func GoalTitles(goals []Goal) string {
	titles := make([]string, 0, len(goals))
	for _, g := range goals {
		titles = append(titles, g.Title)
	}
	return strings.Join(titles, " + ")
}
