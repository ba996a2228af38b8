// Package calendar builds the month/week/day grids that bucket tasks by
// due day. The month view is always 42 cells (6 weeks, Sunday-first) with
// adjacent-month filler days; week and day views reuse the same bucketing
// over shorter spans.
package calendar

import (
	"time"

	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/model"
)

// GridCells is the fixed size of the month grid.
const GridCells = 42

// Cell is one day of a calendar grid.
type Cell struct {
	Date    string // YYYY-MM-DD
	Day     int    // day-of-month number for display
	InMonth bool   // false for adjacent-month filler cells
	Today   bool
	Tasks   []model.Task
}

// WeekStart returns the Sunday-aligned start of the week containing t.
func WeekStart(t time.Time) time.Time {
	d := dateutil.Midnight(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// MonthGrid builds the 42-cell grid for the given month. Leading cells are
// the trailing days of the previous month and trailing cells the leading
// days of the next, whatever the number of weeks the month spans.
func MonthGrid(year int, month time.Month, tasks []model.Task, now time.Time) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := dateutil.Today(now)
	byDay := bucketByDay(tasks)

	cells := make([]Cell, GridCells)
	for i := range cells {
		date := start.AddDate(0, 0, i)
		day := dateutil.Day(date)
		cells[i] = Cell{
			Date:    day,
			Day:     date.Day(),
			InMonth: date.Month() == month && date.Year() == year,
			Today:   day == today,
			Tasks:   byDay[day],
		}
	}
	return cells
}

// WeekDays builds the 7 cells of the Sunday-aligned week containing anchor.
func WeekDays(anchor time.Time, tasks []model.Task, now time.Time) []Cell {
	start := WeekStart(anchor)
	today := dateutil.Today(now)
	byDay := bucketByDay(tasks)

	cells := make([]Cell, 7)
	for i := range cells {
		date := start.AddDate(0, 0, i)
		day := dateutil.Day(date)
		cells[i] = Cell{
			Date:    day,
			Day:     date.Day(),
			InMonth: true,
			Today:   day == today,
			Tasks:   byDay[day],
		}
	}
	return cells
}

// DayCell builds the single cell for the day containing anchor.
func DayCell(anchor time.Time, tasks []model.Task, now time.Time) Cell {
	day := dateutil.Day(anchor)
	return Cell{
		Date:    day,
		Day:     anchor.Day(),
		InMonth: true,
		Today:   day == dateutil.Today(now),
		Tasks:   bucketByDay(tasks)[day],
	}
}

// bucketByDay indexes tasks by the calendar-day portion of their due date.
// Tasks without a due date never appear on a calendar.
func bucketByDay(tasks []model.Task) map[string][]model.Task {
	byDay := make(map[string][]model.Task)
	for _, t := range tasks {
		if !t.HasDueDate() {
			continue
		}
		day := t.DueDay()
		byDay[day] = append(byDay[day], t)
	}
	return byDay
}
