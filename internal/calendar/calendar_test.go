package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todocal/todocal/internal/model"
)

var noon = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestMonthGrid_Always42Cells(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			t.Run(fmt.Sprintf("%d-%s", year, month), func(t *testing.T) {
				cells := MonthGrid(year, month, nil, noon)
				assert.Len(t, cells, GridCells)
			})
		}
	}
}

func TestMonthGrid_LeapFebruary(t *testing.T) {
	cells := MonthGrid(2024, time.February, nil, noon)
	require.Len(t, cells, GridCells)

	inMonth := 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 29, inMonth)

	cells = MonthGrid(2023, time.February, nil, noon)
	inMonth = 0
	for _, c := range cells {
		if c.InMonth {
			inMonth++
		}
	}
	assert.Equal(t, 28, inMonth)
}

func TestMonthGrid_LeadingAndTrailingFiller(t *testing.T) {
	// March 2024 starts on a Friday: five leading February days
	cells := MonthGrid(2024, time.March, nil, noon)
	for i := 0; i < 5; i++ {
		assert.False(t, cells[i].InMonth)
	}
	assert.True(t, cells[5].InMonth)
	assert.Equal(t, "2024-03-01", cells[5].Date)
	assert.Equal(t, 1, cells[5].Day)

	// filler after Mar 31 belongs to April
	last := cells[GridCells-1]
	assert.False(t, last.InMonth)
	assert.Equal(t, "2024-04-06", last.Date)
}

func TestMonthGrid_DecemberJanuaryRollover(t *testing.T) {
	cells := MonthGrid(2023, time.December, nil, noon)
	require.Len(t, cells, GridCells)
	last := cells[GridCells-1]
	assert.False(t, last.InMonth)
	assert.Equal(t, "2024-01-06", last.Date)
}

func TestMonthGrid_SundayFirstColumns(t *testing.T) {
	cells := MonthGrid(2024, time.March, nil, noon)
	for i, c := range cells {
		date, err := time.Parse("2006-01-02", c.Date)
		require.NoError(t, err)
		assert.Equal(t, time.Weekday(i%7), date.Weekday())
	}
}

func TestMonthGrid_TodayFlag(t *testing.T) {
	cells := MonthGrid(2024, time.March, nil, noon)
	found := 0
	for _, c := range cells {
		if c.Today {
			found++
			assert.Equal(t, "2024-03-15", c.Date)
		}
	}
	assert.Equal(t, 1, found)
}

func TestMonthGrid_BucketsTasksByDueDay(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Text: "a", DueDate: "2024-03-15"},
		{ID: 2, Text: "b", DueDate: "2024-03-15T18:00:00Z"}, // trailing time stripped
		{ID: 3, Text: "c", DueDate: "2024-04-01"},           // trailing filler cell
		{ID: 4, Text: "d"},                                  // no due date, never on a calendar
	}
	cells := MonthGrid(2024, time.March, tasks, noon)

	byDate := map[string]Cell{}
	for _, c := range cells {
		byDate[c.Date] = c
	}

	assert.Len(t, byDate["2024-03-15"].Tasks, 2)
	assert.Len(t, byDate["2024-04-01"].Tasks, 1)

	total := 0
	for _, c := range cells {
		total += len(c.Tasks)
	}
	assert.Equal(t, 3, total)
}

func TestWeekStart_SundayAligned(t *testing.T) {
	// 2024-03-15 is a Friday
	assert.Equal(t, "2024-03-10", WeekStart(noon).Format("2006-01-02"))
	// a Sunday is its own week start
	sunday := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-03-10", WeekStart(sunday).Format("2006-01-02"))
}

func TestWeekDays(t *testing.T) {
	tasks := []model.Task{{ID: 1, Text: "a", DueDate: "2024-03-12"}}
	cells := WeekDays(noon, tasks, noon)
	require.Len(t, cells, 7)
	assert.Equal(t, "2024-03-10", cells[0].Date)
	assert.Equal(t, "2024-03-16", cells[6].Date)
	assert.Len(t, cells[2].Tasks, 1)

	for _, c := range cells {
		assert.Equal(t, c.Date == "2024-03-15", c.Today)
	}
}

func TestDayCell(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Text: "a", DueDate: "2024-03-15"},
		{ID: 2, Text: "b", DueDate: "2024-03-16"},
	}
	cell := DayCell(noon, tasks, noon)
	assert.Equal(t, "2024-03-15", cell.Date)
	assert.True(t, cell.Today)
	assert.Len(t, cell.Tasks, 1)
}

func TestTimeBlocks(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Text: "morning", DueDate: "2024-03-15", DueTime: "09:30"},
		{ID: 2, Text: "midnight", DueDate: "2024-03-15", DueTime: "00:00"},
		{ID: 3, Text: "untimed", DueDate: "2024-03-15"},
	}
	blocks := TimeBlocks(tasks)
	require.Len(t, blocks, 2, "untimed tasks have no axis position")

	assert.Equal(t, 9*60+30, blocks[0].Offset)
	assert.Equal(t, BlockHeight, blocks[0].Height)
	assert.Equal(t, 0, blocks[1].Offset)
}

func TestCurrentTimeOffset(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 45, 30, 0, time.UTC)
	assert.Equal(t, 14*60+45, CurrentTimeOffset(now))
}

func TestHourLabels(t *testing.T) {
	labels := HourLabels()
	require.Len(t, labels, 24)
	assert.Equal(t, "00:00", labels[0])
	assert.Equal(t, "23:00", labels[23])
}
