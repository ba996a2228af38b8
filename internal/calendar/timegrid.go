package calendar

import (
	"strconv"
	"strings"
	"time"

	"github.com/todocal/todocal/internal/model"
)

// BlockHeight is the fixed vertical size of a timed task block.
const BlockHeight = 30

// TimeBlock positions one timed task on the 24-hour vertical axis. Offset
// and height are in the same units: one per minute of the day.
type TimeBlock struct {
	Task   model.Task
	Offset int
	Height int
}

// TimeBlocks lays out the timed tasks of a day cell on the time axis.
// Tasks without a due time have no position and are skipped.
func TimeBlocks(tasks []model.Task) []TimeBlock {
	blocks := make([]TimeBlock, 0, len(tasks))
	for _, t := range tasks {
		offset, ok := minuteOffset(t.DueTime)
		if !ok {
			continue
		}
		blocks = append(blocks, TimeBlock{Task: t, Offset: offset, Height: BlockHeight})
	}
	return blocks
}

// CurrentTimeOffset returns the axis offset of the current wall-clock time,
// for the "now" marker on the day and week time views.
func CurrentTimeOffset(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}

// HourLabels returns the 24 axis labels, "00:00" through "23:00".
func HourLabels() []string {
	labels := make([]string, 24)
	for h := range labels {
		labels[h] = time.Date(0, 1, 1, h, 0, 0, 0, time.UTC).Format("15:04")
	}
	return labels
}

func minuteOffset(dueTime string) (int, bool) {
	parts := strings.SplitN(dueTime, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, false
	}
	return hour*60 + minute, true
}
