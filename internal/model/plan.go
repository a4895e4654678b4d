package model

import "time"

// PlanLength 计划固定为 30 天
const PlanLength = 30

const (
	RestDayTitle    = "Rest Day"
	RestDayTask     = "Rest day"
	DefaultFocus    = "Progress"
	DefaultDayTitle = "Focus Day"
	DefaultDayTask  = "Work toward your goal"
	DefaultPlanName = "My 30-Day Plan"
)

// PlanDay 计划中的一天；tasks 为打卡项
type PlanDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Focus      string   `json:"focus"`
	Tasks      []string `json:"tasks"`
	TimeBlocks []string `json:"timeBlocks"`
}

// Calendar 定长数组，保证任何来源的计划都恰好 30 天
type Calendar [PlanLength]PlanDay

// Contiguous day 字段是否为 1..30 顺序
func (c *Calendar) Contiguous() bool {
	for i, d := range c {
		if d.Day != i+1 {
			return false
		}
	}
	return true
}

type Plan struct {
	ID            string        `json:"id"`
	Category      GoalCategory  `json:"category"`
	GoalTitle     string        `json:"goalTitle"`
	RecipientName string        `json:"recipientName"`
	CreatedAt     time.Time     `json:"createdAt"`
	Questionnaire Questionnaire `json:"questionnaire"`
	Days          Calendar      `json:"days"`
	Goals         []Goal        `json:"goals,omitempty"`
	// Source 生成来源：llm / deterministic
	Source string `json:"source"`
}
