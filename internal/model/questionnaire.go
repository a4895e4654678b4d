package model

import "strings"

// GoalDefinition 单目标（旧流程）的 OKR
type GoalDefinition struct {
	Objective  string   `json:"objective"`
	KeyResults []string `json:"keyResults"`
	Achievable string   `json:"achievable,omitempty"` // yes / scale-down
}

type PreferredTime string

const (
	PreferredMorning   PreferredTime = "morning"
	PreferredAfternoon PreferredTime = "afternoon"
	PreferredEvening   PreferredTime = "evening"
	PreferredFlexible  PreferredTime = "flexible"
)

// Schedule 工作日使用 0=周日 ... 6=周六
type Schedule struct {
	DaysPerWeek   int           `json:"daysPerWeek"`
	TimePerDay    int           `json:"timePerDay"`
	PreferredTime PreferredTime `json:"preferredTime"`
	WakeUpTime    string        `json:"wakeUpTime,omitempty"`
	SleepTime     string        `json:"sleepTime,omitempty"`
	WorkingDays   []int         `json:"workingDays,omitempty"`
}

type Intensity string

const (
	IntensityLight      Intensity = "light"
	IntensityMedium     Intensity = "medium"
	IntensityAggressive Intensity = "aggressive"
)

type GiftMode struct {
	IsGift        bool   `json:"isGift"`
	RecipientName string `json:"recipientName,omitempty"`
	SenderName    string `json:"senderName,omitempty"`
	Message       string `json:"message,omitempty"`
}

const (
	SelfRecipient    = "You"
	DefaultRecipient = "Recipient"
)

// Questionnaire 问卷提交；goals 非空时忽略单目标字段
type Questionnaire struct {
	// 单目标流程
	Category       GoalCategory    `json:"category,omitempty"`
	GoalTitle      string          `json:"goalTitle,omitempty"`
	GoalDefinition *GoalDefinition `json:"goalDefinition,omitempty"`

	// 多目标流程
	GoalsRaw string `json:"goalsRaw,omitempty"`
	Goals    []Goal `json:"goals,omitempty"`

	Schedule  Schedule  `json:"schedule"`
	GiftMode  GiftMode  `json:"giftMode"`
	Intensity Intensity `json:"intensity,omitempty"`

	// 海报个性化
	PosterTheme        PosterThemeID `json:"posterTheme,omitempty"`
	UserImageURL       string        `json:"userImageUrl,omitempty"`
	GeneratedPosterURL string        `json:"generatedPosterUrl,omitempty"`
}

func (q *Questionnaire) IsMultiGoal() bool {
	return len(q.Goals) > 0
}

// RecipientDisplayName 送礼时为收礼人（缺省 Recipient），否则为 You
func (q *Questionnaire) RecipientDisplayName() string {
	if !q.GiftMode.IsGift {
		return SelfRecipient
	}
	if name := strings.TrimSpace(q.GiftMode.RecipientName); name != "" {
		return name
	}
	return DefaultRecipient
}

// Normalize 就地规范化客户端提交的目标与分类，应在 Validate 之前调用
func (q *Questionnaire) Normalize() {
	q.Goals = NormalizeGoals(q.Goals)
	if q.Category != "" {
		q.Category = ParseCategory(string(q.Category))
	}
}

// Validate 生成计划前的输入校验
func (q *Questionnaire) Validate() error {
	if q.GiftMode.IsGift && strings.TrimSpace(q.GiftMode.RecipientName) == "" {
		return ErrRecipientRequired
	}
	if q.IsMultiGoal() && !AllConfirmed(q.Goals) {
		return ErrGoalsNotConfirmed
	}
	return nil
}
