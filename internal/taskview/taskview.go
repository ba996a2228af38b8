// Package taskview produces ordered, filtered, paged views of the task
// collection. Filtering never mutates the collection; sorting reorders a
// slice in place and leaves persisting the order to the caller.
package taskview

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/model"
)

// Filter selectors.
const (
	FilterAll            = "all"
	FilterActive         = "active"
	FilterCompleted      = "completed"
	FilterOverdue        = "overdue"
	FilterToday          = "today"
	FilterTomorrow       = "tomorrow"
	FilterWeek           = "week"
	FilterNextWeek       = "nextweek"
	FilterThisMonth      = "thismonth"
	FilterNoDate         = "nodate"
	FilterWithDate       = "withdate"
	FilterPriorityHigh   = "priority-high"
	FilterPriorityMedium = "priority-medium"
	FilterPriorityLow    = "priority-low"
)

// Sort keys.
const (
	SortDate         = "date"
	SortDueDate      = "dueDate"
	SortAlphabetical = "alphabetical"
	SortStatus       = "status"
)

// Filters lists every selector in display order.
var Filters = []string{
	FilterAll, FilterActive, FilterCompleted,
	FilterOverdue, FilterToday, FilterTomorrow,
	FilterWeek, FilterNextWeek, FilterThisMonth,
	FilterNoDate, FilterWithDate,
	FilterPriorityHigh, FilterPriorityMedium, FilterPriorityLow,
}

// collator backs the locale-aware alphabetical sort.
var collator = collate.New(language.English)

// Filter returns the tasks matching selector, preserving collection order.
// An unknown selector falls back to all.
func Filter(tasks []model.Task, selector string, now time.Time) []model.Task {
	today := dateutil.Today(now)
	weekEnd := dateutil.DaysFromNow(now, 7)
	nextWeekEnd := dateutil.DaysFromNow(now, 14)
	monthEnd := dateutil.DaysFromNow(now, 30)

	var match func(t model.Task) bool
	switch selector {
	case FilterActive:
		match = func(t model.Task) bool { return !t.Completed }
	case FilterCompleted:
		match = func(t model.Task) bool { return t.Completed }
	case FilterOverdue:
		match = func(t model.Task) bool {
			return !t.Completed && t.HasDueDate() && t.DueDay() < today
		}
	case FilterToday:
		match = func(t model.Task) bool {
			return !t.Completed && t.HasDueDate() && t.DueDay() == today
		}
	case FilterTomorrow:
		tomorrow := dateutil.Tomorrow(now)
		match = func(t model.Task) bool {
			return !t.Completed && t.HasDueDate() && t.DueDay() == tomorrow
		}
	case FilterWeek:
		// today through today+7, both ends inclusive
		match = func(t model.Task) bool {
			return !t.Completed && t.HasDueDate() && t.DueDay() >= today && t.DueDay() <= weekEnd
		}
	case FilterNextWeek:
		// strictly after today+7 through today+14
		match = func(t model.Task) bool {
			return !t.Completed && t.HasDueDate() && t.DueDay() > weekEnd && t.DueDay() <= nextWeekEnd
		}
	case FilterThisMonth:
		match = func(t model.Task) bool {
			return !t.Completed && t.HasDueDate() && t.DueDay() >= today && t.DueDay() <= monthEnd
		}
	case FilterNoDate:
		match = func(t model.Task) bool { return !t.HasDueDate() }
	case FilterWithDate:
		match = func(t model.Task) bool { return t.HasDueDate() }
	case FilterPriorityHigh:
		match = func(t model.Task) bool { return t.EffectivePriority() == model.PriorityHigh }
	case FilterPriorityMedium:
		match = func(t model.Task) bool { return t.EffectivePriority() == model.PriorityMedium }
	case FilterPriorityLow:
		match = func(t model.Task) bool { return t.EffectivePriority() == model.PriorityLow }
	default:
		match = func(model.Task) bool { return true }
	}

	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Sort reorders tasks in place by key. Unknown keys leave the order alone.
func Sort(tasks []model.Task, key string) {
	switch key {
	case SortDate:
		// newest first
		sort.SliceStable(tasks, func(i, j int) bool {
			return createdAtTime(tasks[j]).Before(createdAtTime(tasks[i]))
		})
	case SortDueDate:
		// ascending, tasks without a due date after all dated ones
		sort.SliceStable(tasks, func(i, j int) bool {
			a, b := tasks[i].DueDay(), tasks[j].DueDay()
			if a == "" || b == "" {
				return a != "" && b == ""
			}
			return a < b
		})
	case SortAlphabetical:
		sort.SliceStable(tasks, func(i, j int) bool {
			return collator.CompareString(tasks[i].Text, tasks[j].Text) < 0
		})
	case SortStatus:
		// incomplete before completed
		sort.SliceStable(tasks, func(i, j int) bool {
			return !tasks[i].Completed && tasks[j].Completed
		})
	}
}

func createdAtTime(t model.Task) time.Time {
	ts, err := time.Parse(time.RFC3339, t.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// SearchText returns tasks whose text contains term, case-insensitively.
func SearchText(tasks []model.Task, term string) []model.Task {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if strings.Contains(strings.ToLower(t.Text), term) {
			out = append(out, t)
		}
	}
	return out
}

// SearchDueDate returns tasks due exactly on the given calendar day.
func SearchDueDate(tasks []model.Task, day string) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.HasDueDate() && t.DueDay() == day {
			out = append(out, t)
		}
	}
	return out
}
