package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todocal/todocal/internal/model"
)

var rowNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func TestTaskRow_ShowsAgeDueAndPriority(t *testing.T) {
	task := model.Task{
		ID:        1710400000000,
		Text:      "buy milk",
		CreatedAt: "2024-03-12T10:00:00Z",
		DueDate:   "2024-03-16",
		DueTime:   "09:00",
		Priority:  model.PriorityHigh,
	}

	row := taskRow(task, rowNow, 100)
	assert.Contains(t, row, "[ ]")
	assert.Contains(t, row, "1710400000000")
	assert.Contains(t, row, "buy milk")
	assert.Contains(t, row, "tomorrow 09:00")
	assert.Contains(t, row, "3 days ago")
	assert.Contains(t, row, "High")
}

func TestTaskRow_CompletedIcon(t *testing.T) {
	task := model.Task{ID: 1, Text: "done thing", Completed: true, CreatedAt: "2024-03-15T08:00:00Z"}
	row := taskRow(task, rowNow, 100)
	assert.Contains(t, row, "[x]")
	assert.Contains(t, row, "today")
}

func TestResolveDueDate(t *testing.T) {
	day, err := resolveDueDate("tomorrow", rowNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-16", day)

	day, err = resolveDueDate("2024-06-01", rowNow)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", day)

	_, err = resolveDueDate("soon-ish", rowNow)
	assert.Error(t, err)
}
