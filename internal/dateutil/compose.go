package dateutil

import (
	"fmt"
	"time"
)

// QuickPick is one of the shortcut due dates offered while composing a
// deadline. The boundary layer presents the label and applies the day.
type QuickPick struct {
	Label string
	Day   string // YYYY-MM-DD
}

// QuickPicks returns the shortcut due dates: today, tomorrow, one week out.
func QuickPicks(now time.Time) []QuickPick {
	return []QuickPick{
		{Label: "Today", Day: Today(now)},
		{Label: "Tomorrow", Day: Tomorrow(now)},
		{Label: "In a week", Day: DaysFromNow(now, 7)},
	}
}

// HourOptions returns the selectable due-time hours, "00" through "23".
func HourOptions() []string {
	hours := make([]string, 24)
	for i := range hours {
		hours[i] = fmt.Sprintf("%02d", i)
	}
	return hours
}

// MinuteOptions returns the selectable due-time minutes at quarter-hour
// steps.
func MinuteOptions() []string {
	return []string{"00", "15", "30", "45"}
}

// DefaultDueTime is the time preselected when composing a deadline.
const DefaultDueTime = "09:00"
