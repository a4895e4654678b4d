package planner

import (
	"strings"
	"testing"

	"sprintwise_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGoalsFallback_Examples(t *testing.T) {
	for _, raw := range []string{
		"Study AWS 1 hour per day\nGym 6 times a week",
		"Study AWS 1 hour per day, Gym 6 times a week",
	} {
		goals := ParseGoalsFallback(raw)
		require.Len(t, goals, 2, raw)

		assert.Equal(t, "Study AWS", goals[0].Title)
		assert.Equal(t, 60, goals[0].TimePerDay)
		assert.Equal(t, 5, goals[0].DaysPerWeek)

		assert.Equal(t, "Gym", goals[1].Title)
		assert.Equal(t, 30, goals[1].TimePerDay)
		assert.Equal(t, 6, goals[1].DaysPerWeek)

		for _, g := range goals {
			assert.Equal(t, model.CategoryCustom, g.Category)
			assert.Equal(t, []string{model.DefaultKeyResult}, g.KeyResults)
			assert.False(t, g.Confirmed)
			assert.NotEmpty(t, g.ID)
		}
		assert.NotEqual(t, goals[0].ID, goals[1].ID)
	}
}

func TestParseGoalsFallback_Separators(t *testing.T) {
	goals := ParseGoalsFallback("Read books\nWrite blog; Cook dinner, ok")
	require.Len(t, goals, 3)
	assert.Equal(t, "Read books", goals[0].Title)
	assert.Equal(t, "Write blog", goals[1].Title)
	assert.Equal(t, "Cook dinner", goals[2].Title)
}

func TestParseGoalsFallback_CapsAtSix(t *testing.T) {
	goals := ParseGoalsFallback("a1a, b2b, c3c, d4d, e5e, f6f, g7g, h8h")
	assert.Len(t, goals, 6)
	assert.Equal(t, "f6f", goals[5].Title)
}

func TestParseGoalsFallback_Empty(t *testing.T) {
	assert.Empty(t, ParseGoalsFallback(""))
	assert.Empty(t, ParseGoalsFallback(" , ;\n ab"))
}

func TestParseGoalsFallback_Minutes(t *testing.T) {
	goals := ParseGoalsFallback("Meditate 15 minutes 7 days")
	require.Len(t, goals, 1)
	assert.Equal(t, "Meditate", goals[0].Title)
	assert.Equal(t, 15, goals[0].TimePerDay)
	assert.Equal(t, 7, goals[0].DaysPerWeek)
}

func TestParseGoalsFallback_Clamps(t *testing.T) {
	goals := ParseGoalsFallback("Code 5 hours, Stretch 2 min, Write 30 days")
	require.Len(t, goals, 3)
	assert.Equal(t, model.MaxTimePerDay, goals[0].TimePerDay)
	assert.Equal(t, model.MinTimePerDay, goals[1].TimePerDay)
	assert.Equal(t, model.MaxDaysPerWeek, goals[2].DaysPerWeek)
}

func TestParseGoalsFallback_XPerWeek(t *testing.T) {
	goals := ParseGoalsFallback("Swim 3x per week 45 min")
	require.Len(t, goals, 1)
	assert.Equal(t, "Swim", goals[0].Title)
	assert.Equal(t, 3, goals[0].DaysPerWeek)
	assert.Equal(t, 45, goals[0].TimePerDay)
}

func TestParseGoalsFallback_PlaceholderTitle(t *testing.T) {
	goals := ParseGoalsFallback("Read, 2 hours")
	require.Len(t, goals, 2)
	assert.Equal(t, "Goal 2", goals[1].Title)
	assert.Equal(t, 120, goals[1].TimePerDay)
}

func TestParseGoalsFallback_TitleLength(t *testing.T) {
	goals := ParseGoalsFallback(strings.Repeat("x", 100))
	require.Len(t, goals, 1)
	assert.Len(t, goals[0].Title, 60)
}

func TestParseGoalsFallback_RangesHold(t *testing.T) {
	inputs := []string{
		"Run 0 minutes 0 days",
		"Lift 999 hours 99 times a week",
		"Just do things",
	}
	for _, in := range inputs {
		for _, g := range ParseGoalsFallback(in) {
			assert.GreaterOrEqual(t, g.TimePerDay, model.MinTimePerDay)
			assert.LessOrEqual(t, g.TimePerDay, model.MaxTimePerDay)
			assert.GreaterOrEqual(t, g.DaysPerWeek, model.MinDaysPerWeek)
			assert.LessOrEqual(t, g.DaysPerWeek, model.MaxDaysPerWeek)
		}
	}
}
