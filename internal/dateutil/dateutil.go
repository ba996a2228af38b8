// Package dateutil computes calendar-day strings and due-date urgency.
//
// Everything here works on whole calendar days in a single time zone
// reference (the zone of the "now" the caller supplies); time-of-day is
// discarded before any comparison so results never drift by a day.
package dateutil

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day string form used everywhere: YYYY-MM-DD.
const DayLayout = "2006-01-02"

// Urgency classes for due dates, driving display styling.
const (
	ClassOverdue  = "overdue"
	ClassDueToday = "due-today"
	ClassDueSoon  = "due-soon"
	ClassNormal   = "normal"
)

// DueDateInfo is the classification of a due date relative to today.
type DueDateInfo struct {
	Class string
	Label string
}

// Midnight returns t truncated to the start of its calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Day returns t as a calendar-day string.
func Day(t time.Time) string {
	return t.Format(DayLayout)
}

// Today returns the calendar day of now.
func Today(now time.Time) string {
	return Day(now)
}

// Tomorrow returns the calendar day one day after now.
func Tomorrow(now time.Time) string {
	return DaysFromNow(now, 1)
}

// DaysFromNow returns the calendar day n days after now.
func DaysFromNow(now time.Time, n int) string {
	return Day(Midnight(now).AddDate(0, 0, n))
}

// DayDiff returns the whole-day distance from the day of `from` to the day
// of `to` (positive when `to` is later). Both days are re-anchored in UTC:
// a local midnight-to-midnight span crossing a DST transition is 23 or 25
// hours, which would truncate to the wrong day count.
func DayDiff(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// ClassifyDueDate classifies a due date string against today. It is total:
// a malformed date yields the normal class with the raw input as label.
func ClassifyDueDate(dueDate string, now time.Time) DueDateInfo {
	day := dueDate
	if len(day) > 10 {
		day = day[:10]
	}
	due, err := time.ParseInLocation(DayLayout, day, now.Location())
	if err != nil {
		return DueDateInfo{Class: ClassNormal, Label: dueDate}
	}

	days := DayDiff(now, due)
	switch {
	case days < 0:
		return DueDateInfo{Class: ClassOverdue, Label: fmt.Sprintf("%d days overdue", -days)}
	case days == 0:
		return DueDateInfo{Class: ClassDueToday, Label: "today"}
	case days == 1:
		return DueDateInfo{Class: ClassDueSoon, Label: "tomorrow"}
	case days <= 7:
		return DueDateInfo{Class: ClassDueSoon, Label: fmt.Sprintf("%d days from now", days)}
	default:
		return DueDateInfo{Class: ClassNormal, Label: due.Format("Jan 2")}
	}
}

// FormatRelativeAge renders a creation timestamp relative to now: "today",
// "yesterday", "n days ago" up to a week, then a plain date. A timestamp
// that does not parse comes back verbatim.
func FormatRelativeAge(createdAt string, now time.Time) string {
	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		created, err = time.ParseInLocation(DayLayout, createdAt, now.Location())
		if err != nil {
			return createdAt
		}
	}

	days := DayDiff(created.In(now.Location()), now)
	switch {
	case days <= 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return created.In(now.Location()).Format("Jan 2, 2006")
	}
}

// FormatDueDisplay renders a due day as a short month/day string, falling
// back to the raw value when it does not parse.
func FormatDueDisplay(dueDate string, loc *time.Location) string {
	day := dueDate
	if len(day) > 10 {
		day = day[:10]
	}
	due, err := time.ParseInLocation(DayLayout, day, loc)
	if err != nil {
		return dueDate
	}
	return due.Format("Jan 2")
}
