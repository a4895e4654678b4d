package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"sprintwise_backend/internal/model"

	"github.com/google/uuid"
)

const (
	maxFallbackGoals  = 6
	minFragmentLength = 3
	maxFallbackTitle  = 60
)

var (
	fragmentSplit = regexp.MustCompile(`[\n,;]`)

	timePattern = regexp.MustCompile(`(?i)(\d+)\s*(hours?|hrs?|minutes?|mins?)\b`)
	freqPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:times?|x)\s*(?:per|a)\s*week|(\d+)\s*days?\b`)

	// 标题中去掉时长、频率短语及其后紧跟的 "per day"
	timeStrip  = regexp.MustCompile(`(?i)\d+\s*(?:hours?|hrs?|minutes?|mins?)\b(?:\s+(?:per|a|each|every)\s+day\b)?`)
	freqStrip  = regexp.MustCompile(`(?i)\d+\s*(?:times?|x)\s*(?:per|a)\s*week|\d+\s*days?\b(?:\s+(?:per|a)\s+week\b)?`)
	multiSpace = regexp.MustCompile(`\s+`)
)

// ParseGoalsFallback 不依赖模型的目标解析：按换行、逗号、分号切分，最多 6 个
func ParseGoalsFallback(raw string) []model.Goal {
	var fragments []string
	for _, part := range fragmentSplit.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if len([]rune(part)) < minFragmentLength {
			continue
		}
		fragments = append(fragments, part)
	}
	if len(fragments) > maxFallbackGoals {
		fragments = fragments[:maxFallbackGoals]
	}

	goals := make([]model.Goal, 0, len(fragments))
	for i, line := range fragments {
		goals = append(goals, model.Goal{
			ID:          uuid.NewString(),
			Title:       fallbackTitle(line, i),
			Category:    model.CategoryCustom,
			TimePerDay:  model.ClampTimePerDay(extractMinutes(line)),
			DaysPerWeek: model.ClampDaysPerWeek(extractDaysPerWeek(line)),
			KeyResults:  []string{model.DefaultKeyResult},
			Confirmed:   false,
		})
	}
	return goals
}

// extractMinutes "N hour(s)/hr(s)" 换算为分钟，"N min(ute)(s)" 原样，缺省 30
func extractMinutes(line string) int {
	m := timePattern.FindStringSubmatch(line)
	if m == nil {
		return model.DefaultTimePerDay
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return model.DefaultTimePerDay
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		return n * 60
	}
	return n
}

// extractDaysPerWeek "N times/x per/a week" 或 "N days"，缺省 5
func extractDaysPerWeek(line string) int {
	m := freqPattern.FindStringSubmatch(line)
	if m == nil {
		return model.DefaultDaysPerWeek
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return model.DefaultDaysPerWeek
	}
	return n
}

func fallbackTitle(line string, index int) string {
	title := timeStrip.ReplaceAllString(line, "")
	title = freqStrip.ReplaceAllString(title, "")
	title = strings.Trim(multiSpace.ReplaceAllString(title, " "), " -:")
	if r := []rune(title); len(r) > maxFallbackTitle {
		title = strings.TrimSpace(string(r[:maxFallbackTitle]))
	}
	if title == "" {
		return fmt.Sprintf("Goal %d", index+1)
	}
	return title
}
