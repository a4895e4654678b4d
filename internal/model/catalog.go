package model

import "strings"

type CategoryInfo struct {
	Value       GoalCategory `json:"value"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Prompts     CategoryHint `json:"prompts"`
}

// CategoryHint 引导用户写出可衡量的关键结果
type CategoryHint struct {
	ObjectiveHint         string   `json:"objectiveHint"`
	KeyResultPlaceholders []string `json:"keyResultPlaceholders"`
	MeasurableHint        string   `json:"measurableHint"`
}

var Categories = []CategoryInfo{
	{
		Value:       CategoryFitness,
		Label:       "Fitness",
		Description: "Build strength, endurance, or develop a healthy exercise routine",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Improve physical fitness, Build a running habit",
			KeyResultPlaceholders: []string{"Run 15 km total this month", "Attend 8 yoga/gym classes", "Complete 20 strength sessions"},
			MeasurableHint:        "Use numbers: km, classes, %, days, reps",
		},
	},
	{
		Value:       CategoryFinancial,
		Label:       "Financial",
		Description: "Save money, invest wisely, or improve financial literacy",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Save more, Reduce debt, Learn investing",
			KeyResultPlaceholders: []string{"Save $500 this month", "Track expenses for 30 days", "Pay off $200 of debt"},
			MeasurableHint:        "Use numbers: $, %, days, courses completed",
		},
	},
	{
		Value:       CategoryCareer,
		Label:       "Career",
		Description: "Advance professionally, build skills, or change careers",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Land a new role, Build a skill, Expand network",
			KeyResultPlaceholders: []string{"Apply to 15 jobs", "Complete 1 certification", "Attend 3 networking events"},
			MeasurableHint:        "Use numbers: applications, connections, events, certifications",
		},
	},
	{
		Value:       CategoryStudy,
		Label:       "Study",
		Description: "Learn new skills, complete courses, or master a subject",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Master a skill, Complete a course, Learn a language",
			KeyResultPlaceholders: []string{"Complete 5 course modules", "Build 1 portfolio project", "Read 2 books on the topic"},
			MeasurableHint:        "Use numbers: modules, hours, projects, books",
		},
	},
	{
		Value:       CategoryHabitBuilding,
		Label:       "Habit Building",
		Description: "Build lasting habits and routines",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Build a morning routine, Quit a bad habit",
			KeyResultPlaceholders: []string{"Do the habit for 25/30 days", "Track daily for 30 days", "Create environment cues"},
			MeasurableHint:        "Use numbers: days completed, %, streak length",
		},
	},
	{
		Value:       CategoryPersonalGrowth,
		Label:       "Personal Growth",
		Description: "Develop mindfulness, character, and self-awareness",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Improve mindfulness, Build confidence, Reduce stress",
			KeyResultPlaceholders: []string{"Meditate 10 min daily for 20 days", "Journal 5x per week", "Practice gratitude 25 days"},
			MeasurableHint:        "Use numbers: minutes, days, books, sessions",
		},
	},
	{
		Value:       CategoryCustom,
		Label:       "Custom Goal",
		Description: "Define your own goal and structure",
		Prompts: CategoryHint{
			ObjectiveHint:         "e.g., Your big-picture goal in one sentence",
			KeyResultPlaceholders: []string{"Key result 1 (measurable)", "Key result 2 (measurable)", "Key result 3 (measurable)"},
			MeasurableHint:        "Make each result measurable: numbers, dates, or clear outcomes",
		},
	},
}

func CategoryByValue(c GoalCategory) (CategoryInfo, bool) {
	for _, info := range Categories {
		if info.Value == c {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

type PosterThemeID string

const (
	ThemeZenMinimal         PosterThemeID = "zen_minimal"
	ThemeProfessionalCareer PosterThemeID = "professional_career"
	ThemeWarmMother         PosterThemeID = "warm_mother"
)

type PosterTemplate struct {
	ID          PosterThemeID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	ImagePath   string        `json:"imagePath"`
	URL         string        `json:"url,omitempty"`
}

var PosterTemplates = []PosterTemplate{
	{ID: ThemeZenMinimal, Name: "Zen Minimal", Description: "Clean, minimalist design with calm aesthetics", ImagePath: "/assets/zen_minimal.png"},
	{ID: ThemeProfessionalCareer, Name: "Professional Career", Description: "Polished look for career and productivity goals", ImagePath: "/assets/professional_career.png"},
	{ID: ThemeWarmMother, Name: "Warm Mother", Description: "Cozy, warm design for personal growth", ImagePath: "/assets/warm_mother.png"},
}

func TemplateByID(id PosterThemeID) (PosterTemplate, bool) {
	for _, t := range PosterTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return PosterTemplate{}, false
}

// TemplateURL 图像服务可访问的模板地址；templateBase 优先，其次 publicBase + imagePath
func TemplateURL(id PosterThemeID, templateBase, publicBase string) string {
	if templateBase != "" {
		return strings.TrimRight(templateBase, "/") + "/" + string(id) + ".png"
	}
	t, ok := TemplateByID(id)
	if !ok {
		return ""
	}
	return strings.TrimRight(publicBase, "/") + t.ImagePath
}

// ResolveTemplates 返回填充了 URL 的模板副本
func ResolveTemplates(templateBase, publicBase string) []PosterTemplate {
	out := make([]PosterTemplate, len(PosterTemplates))
	for i, t := range PosterTemplates {
		t.URL = TemplateURL(t.ID, templateBase, publicBase)
		out[i] = t
	}
	return out
}
