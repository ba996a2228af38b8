package taskview

import (
	"time"

	"github.com/todocal/todocal/internal/model"
)

// Stats is the per-selector rollup shown under the task list.
type Stats struct {
	Total     int
	Completed int
	Active    int
	Overdue   int
	Today     int
	Tomorrow  int
	Week      int
	Month     int
	NoDate    int
	WithDate  int
	High      int
	Medium    int
	Low       int
}

// Collect counts the collection against every selector at once.
func Collect(tasks []model.Task, now time.Time) Stats {
	s := Stats{
		Total:     len(tasks),
		Completed: len(Filter(tasks, FilterCompleted, now)),
		Overdue:   len(Filter(tasks, FilterOverdue, now)),
		Today:     len(Filter(tasks, FilterToday, now)),
		Tomorrow:  len(Filter(tasks, FilterTomorrow, now)),
		Week:      len(Filter(tasks, FilterWeek, now)),
		Month:     len(Filter(tasks, FilterThisMonth, now)),
		NoDate:    len(Filter(tasks, FilterNoDate, now)),
		WithDate:  len(Filter(tasks, FilterWithDate, now)),
		High:      len(Filter(tasks, FilterPriorityHigh, now)),
		Medium:    len(Filter(tasks, FilterPriorityMedium, now)),
		Low:       len(Filter(tasks, FilterPriorityLow, now)),
	}
	s.Active = s.Total - s.Completed
	return s
}

// Count returns the number of tasks matching one selector, for callers
// that only need a single figure (the TUI sidebar badges).
func Count(tasks []model.Task, selector string, now time.Time) int {
	return len(Filter(tasks, selector, now))
}
