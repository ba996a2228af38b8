package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

func TestDayHelpers(t *testing.T) {
	assert.Equal(t, "2024-03-15", Today(noon))
	assert.Equal(t, "2024-03-16", Tomorrow(noon))
	assert.Equal(t, "2024-03-22", DaysFromNow(noon, 7))
	assert.Equal(t, "2024-03-29", DaysFromNow(noon, 14))
	assert.Equal(t, "2024-04-14", DaysFromNow(noon, 30))
}

func TestDaysFromNow_MonthAndYearBoundaries(t *testing.T) {
	leap := time.Date(2024, 2, 28, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", DaysFromNow(leap, 1))

	nonLeap := time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2023-03-01", DaysFromNow(nonLeap, 1))

	newYear := time.Date(2023, 12, 31, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01", DaysFromNow(newYear, 1))
}

func TestClassifyDueDate(t *testing.T) {
	tests := []struct {
		name      string
		dueDate   string
		wantClass string
		wantLabel string
	}{
		{name: "overdue by three", dueDate: "2024-03-12", wantClass: ClassOverdue, wantLabel: "3 days overdue"},
		{name: "overdue by one", dueDate: "2024-03-14", wantClass: ClassOverdue, wantLabel: "1 days overdue"},
		{name: "today", dueDate: "2024-03-15", wantClass: ClassDueToday, wantLabel: "today"},
		{name: "tomorrow", dueDate: "2024-03-16", wantClass: ClassDueSoon, wantLabel: "tomorrow"},
		{name: "two days", dueDate: "2024-03-17", wantClass: ClassDueSoon, wantLabel: "2 days from now"},
		{name: "week boundary", dueDate: "2024-03-22", wantClass: ClassDueSoon, wantLabel: "7 days from now"},
		{name: "past the week", dueDate: "2024-03-23", wantClass: ClassNormal, wantLabel: "Mar 23"},
		{name: "far out", dueDate: "2024-12-25", wantClass: ClassNormal, wantLabel: "Dec 25"},
		{name: "trailing time stripped", dueDate: "2024-03-15T09:00:00Z", wantClass: ClassDueToday, wantLabel: "today"},
		{name: "malformed", dueDate: "soon-ish", wantClass: ClassNormal, wantLabel: "soon-ish"},
		{name: "empty", dueDate: "", wantClass: ClassNormal, wantLabel: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ClassifyDueDate(tt.dueDate, noon)
			assert.Equal(t, tt.wantClass, info.Class)
			assert.Equal(t, tt.wantLabel, info.Label)
		})
	}
}

func TestDayDiff_AcrossDSTTransitions(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// spring forward: 2024-03-10 local midnight-to-midnight is 23h
	springNow := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DayDiff(springNow, time.Date(2024, 3, 11, 0, 0, 0, 0, loc)))

	info := ClassifyDueDate("2024-03-11", springNow)
	assert.Equal(t, ClassDueSoon, info.Class)
	assert.Equal(t, "tomorrow", info.Label)
	info = ClassifyDueDate("2024-03-10", springNow)
	assert.Equal(t, ClassDueToday, info.Class)

	// fall back: 2024-11-03 local midnight-to-midnight is 25h
	fallNow := time.Date(2024, 11, 3, 12, 0, 0, 0, loc)
	assert.Equal(t, 1, DayDiff(fallNow, time.Date(2024, 11, 4, 0, 0, 0, 0, loc)))

	info = ClassifyDueDate("2024-11-04", fallNow)
	assert.Equal(t, ClassDueSoon, info.Class)
	assert.Equal(t, "tomorrow", info.Label)

	assert.Equal(t, "yesterday", FormatRelativeAge("2024-03-09T08:00:00-05:00", springNow))
	assert.Equal(t, "yesterday", FormatRelativeAge("2024-11-02T08:00:00-04:00", fallNow))
}

func TestClassifyDueDate_IsTotal(t *testing.T) {
	// no input may panic, whatever garbage arrives
	for _, in := range []string{"", "x", "9999-99-99", "2024-03", "\x00", "2024-03-15T99:99"} {
		assert.NotPanics(t, func() { ClassifyDueDate(in, noon) })
	}
}

func TestFormatRelativeAge(t *testing.T) {
	tests := []struct {
		name      string
		createdAt string
		want      string
	}{
		{name: "same day", createdAt: "2024-03-15T08:00:00Z", want: "today"},
		{name: "yesterday", createdAt: "2024-03-14T23:59:00Z", want: "yesterday"},
		{name: "three days", createdAt: "2024-03-12T10:00:00Z", want: "3 days ago"},
		{name: "week boundary", createdAt: "2024-03-08T10:00:00Z", want: "7 days ago"},
		{name: "older", createdAt: "2024-03-01T10:00:00Z", want: "Mar 1, 2024"},
		{name: "plain day form", createdAt: "2024-03-14", want: "yesterday"},
		{name: "malformed falls back raw", createdAt: "whenever", want: "whenever"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatRelativeAge(tt.createdAt, noon))
		})
	}
}

func TestFormatDueDisplay(t *testing.T) {
	assert.Equal(t, "Jun 1", FormatDueDisplay("2024-06-01", time.UTC))
	assert.Equal(t, "garbage", FormatDueDisplay("garbage", time.UTC))
}
