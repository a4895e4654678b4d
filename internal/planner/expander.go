// Package planner 纯函数部分：确定性目标解析与 30 天计划展开，不依赖外部服务
package planner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"sprintwise_backend/internal/model"
)

// weekOrder 目标按 daysPerWeek 取前 N 个工作日
var weekOrder = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// 第 1 天固定映射到 2000-01-01（周六）
var referenceStart = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

var defaultWorkingDays = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

const taskSeparator = " • "

// WeekdayOf 计划第 day 天对应的星期
func WeekdayOf(day int) time.Weekday {
	return referenceStart.AddDate(0, 0, day-1).Weekday()
}

// ActiveWeekdays 目标的活跃星期集合
func ActiveWeekdays(daysPerWeek int) map[time.Weekday]bool {
	n := model.ClampDaysPerWeek(daysPerWeek)
	set := make(map[time.Weekday]bool, n)
	for _, d := range weekOrder[:n] {
		set[d] = true
	}
	return set
}

// TimeLabel 满 60 分钟按小时四舍五入显示，否则按分钟
func TimeLabel(title string, minutes int) string {
	if minutes >= 60 {
		return fmt.Sprintf("%s (%dhr)", title, int(math.Round(float64(minutes)/60)))
	}
	return fmt.Sprintf("%s (%dmin)", title, minutes)
}

// Expand 根据问卷选择多目标或单目标展开
func Expand(q *model.Questionnaire) model.Calendar {
	if q.IsMultiGoal() {
		return ExpandGoals(q.Goals)
	}
	return ExpandSingle(singleTitle(q), q.Schedule)
}

// ExpandGoals 每个活跃目标每天一条打卡任务
func ExpandGoals(goals []model.Goal) model.Calendar {
	actives := make([]map[time.Weekday]bool, len(goals))
	for i, g := range goals {
		actives[i] = ActiveWeekdays(g.DaysPerWeek)
	}

	var cal model.Calendar
	for i := range cal {
		day := i + 1
		weekday := WeekdayOf(day)

		var tasks []string
		for gi, g := range goals {
			if !actives[gi][weekday] {
				continue
			}
			mins := g.TimePerDay
			if mins <= 0 {
				mins = model.DefaultTimePerDay
			}
			tasks = append(tasks, TimeLabel(g.Title, mins))
		}

		if len(tasks) == 0 {
			cal[i] = restDay(day)
			continue
		}
		cal[i] = model.PlanDay{
			Day:        day,
			Title:      strings.Join(tasks, taskSeparator),
			Focus:      model.DefaultFocus,
			Tasks:      tasks,
			TimeBlocks: []string{},
		}
	}
	return cal
}

// ExpandSingle 旧版单目标：工作日（默认周一至周五）做任务，其余休息
func ExpandSingle(title string, schedule model.Schedule) model.Calendar {
	working := make(map[time.Weekday]bool, 7)
	for _, d := range schedule.WorkingDays {
		if d >= 0 && d <= 6 {
			working[time.Weekday(d)] = true
		}
	}
	if len(working) == 0 {
		for _, d := range defaultWorkingDays {
			working[d] = true
		}
	}

	mins := schedule.TimePerDay
	if mins <= 0 {
		mins = model.DefaultTimePerDay
	}
	label := TimeLabel(title, mins)

	var cal model.Calendar
	for i := range cal {
		day := i + 1
		if !working[WeekdayOf(day)] {
			cal[i] = restDay(day)
			continue
		}
		cal[i] = model.PlanDay{
			Day:        day,
			Title:      title,
			Focus:      model.DefaultFocus,
			Tasks:      []string{label},
			TimeBlocks: []string{},
		}
	}
	return cal
}

func restDay(day int) model.PlanDay {
	return model.PlanDay{
		Day:        day,
		Title:      model.RestDayTitle,
		Focus:      model.DefaultFocus,
		Tasks:      []string{model.RestDayTask},
		TimeBlocks: []string{},
	}
}

func singleTitle(q *model.Questionnaire) string {
	if t := strings.TrimSpace(q.GoalTitle); t != "" {
		return t
	}
	if q.GoalDefinition != nil {
		if o := strings.TrimSpace(q.GoalDefinition.Objective); o != "" {
			return o
		}
	}
	return "Goal"
}
