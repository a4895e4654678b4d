package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want GoalCategory
	}{
		{"fitness", CategoryFitness},
		{"  Habit Building ", CategoryHabitBuilding},
		{"Personal   Growth", CategoryPersonalGrowth},
		{"STUDY", CategoryStudy},
		{"cooking", CategoryCustom},
		{"", CategoryCustom},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.in), tt.in)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, MinTimePerDay, ClampTimePerDay(1))
	assert.Equal(t, MaxTimePerDay, ClampTimePerDay(600))
	assert.Equal(t, 45, ClampTimePerDay(45))
	assert.Equal(t, MinDaysPerWeek, ClampDaysPerWeek(0))
	assert.Equal(t, MaxDaysPerWeek, ClampDaysPerWeek(9))
}

func TestConfirmGoals(t *testing.T) {
	goals := []Goal{{ID: "a"}, {ID: "b"}}

	some := ConfirmGoals(goals, "b")
	assert.False(t, some[0].Confirmed)
	assert.True(t, some[1].Confirmed)
	assert.False(t, AllConfirmed(some))
	// 原切片不变
	assert.False(t, goals[1].Confirmed)

	all := ConfirmGoals(goals)
	assert.True(t, AllConfirmed(all))
	assert.False(t, AllConfirmed(nil))
}

func TestQuestionnaireValidate(t *testing.T) {
	q := &Questionnaire{GiftMode: GiftMode{IsGift: true, RecipientName: " "}}
	assert.ErrorIs(t, q.Validate(), ErrRecipientRequired)

	q = &Questionnaire{Goals: []Goal{{ID: "a", Confirmed: true}, {ID: "b"}}}
	assert.ErrorIs(t, q.Validate(), ErrGoalsNotConfirmed)

	q.Goals = ConfirmGoals(q.Goals)
	assert.NoError(t, q.Validate())
}

func TestRecipientDisplayName(t *testing.T) {
	assert.Equal(t, SelfRecipient, (&Questionnaire{}).RecipientDisplayName())
	assert.Equal(t, DefaultRecipient, (&Questionnaire{GiftMode: GiftMode{IsGift: true}}).RecipientDisplayName())
	assert.Equal(t, "Sam", (&Questionnaire{GiftMode: GiftMode{IsGift: true, RecipientName: " Sam "}}).RecipientDisplayName())
}

func TestTemplateURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/warm_mother.png", TemplateURL(ThemeWarmMother, "https://cdn.example.com/", "http://localhost:8080"))
	assert.Equal(t, "http://localhost:8080/assets/warm_mother.png", TemplateURL(ThemeWarmMother, "", "http://localhost:8080/"))
	assert.Empty(t, TemplateURL("unknown", "", "http://localhost:8080"))

	templates := ResolveTemplates("", "https://files.example.com")
	assert.Equal(t, "https://files.example.com/assets/zen_minimal.png", templates[0].URL)
	assert.Empty(t, PosterTemplates[0].URL)
}

func TestPosterStateTerminal(t *testing.T) {
	assert.False(t, PosterCreated.Terminal())
	assert.False(t, PosterPolling.Terminal())
	assert.True(t, PosterSucceeded.Terminal())
	assert.True(t, PosterFailed.Terminal())
	assert.True(t, PosterTimedOut.Terminal())
}

func TestGoalTitles(t *testing.T) {
	assert.Equal(t, "Study AWS + Gym", GoalTitles([]Goal{{Title: "Study AWS"}, {Title: "Gym"}}))
}

func TestNormalizeGoals(t *testing.T) {
	goals := NormalizeGoals([]Goal{
		{ID: "a", Title: "Read", TimePerDay: 600, DaysPerWeek: 0, Confirmed: true},
		{Title: strings.Repeat("x", 100), Category: "Personal Growth", TimePerDay: 2, DaysPerWeek: 12,
			KeyResults: []string{" ", "one", "two", "three", "four"}},
		{Title: "   "},
	})
	require.Len(t, goals, 3)

	assert.Equal(t, "a", goals[0].ID)
	assert.Equal(t, MaxTimePerDay, goals[0].TimePerDay)
	assert.Equal(t, MinDaysPerWeek, goals[0].DaysPerWeek)
	assert.Equal(t, CategoryCustom, goals[0].Category)
	assert.Equal(t, []string{DefaultKeyResult}, goals[0].KeyResults)
	assert.True(t, goals[0].Confirmed)

	assert.NotEmpty(t, goals[1].ID)
	assert.Len(t, []rune(goals[1].Title), MaxGoalTitle)
	assert.Equal(t, CategoryPersonalGrowth, goals[1].Category)
	assert.Equal(t, MinTimePerDay, goals[1].TimePerDay)
	assert.Equal(t, MaxDaysPerWeek, goals[1].DaysPerWeek)
	assert.Equal(t, []string{"one", "two", "three"}, goals[1].KeyResults)
	assert.False(t, goals[1].Confirmed)

	assert.Equal(t, "Goal 3", goals[2].Title)

	many := make([]Goal, 12)
	assert.Len(t, NormalizeGoals(many), MaxGoals)
	assert.Empty(t, NormalizeGoals(nil))
}

func TestQuestionnaireNormalize(t *testing.T) {
	q := &Questionnaire{Category: "Habit Building", Goals: []Goal{{Title: "Gym", DaysPerWeek: 0}}}
	q.Normalize()
	assert.Equal(t, CategoryHabitBuilding, q.Category)
	assert.Equal(t, MinDaysPerWeek, q.Goals[0].DaysPerWeek)

	legacy := &Questionnaire{GoalTitle: "Save"}
	legacy.Normalize()
	assert.Empty(t, legacy.Category)
	assert.Nil(t, legacy.Goals)
}
