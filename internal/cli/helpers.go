package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/model"
	"github.com/todocal/todocal/internal/store"
)

var dbPath string

// openStore opens the task store at the --db override or the default path.
func openStore() (*store.Store, error) {
	if dbPath != "" {
		return store.Open(dbPath)
	}
	return store.OpenDefault()
}

// parseTaskID resolves a task id argument against the store.
func parseTaskID(s *store.Store, arg string) (model.Task, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return model.Task{}, fmt.Errorf("invalid task id: %s", arg)
	}
	task, ok := s.Get(id)
	if !ok {
		return model.Task{}, fmt.Errorf("task not found: %s", arg)
	}
	return task, nil
}

// resolveDueDate accepts a YYYY-MM-DD day or the shortcuts today/tomorrow/week.
func resolveDueDate(arg string, now time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(arg)) {
	case "":
		return "", nil
	case "today":
		return dateutil.Today(now), nil
	case "tomorrow":
		return dateutil.Tomorrow(now), nil
	case "week":
		return dateutil.DaysFromNow(now, 7), nil
	}
	if !model.ValidDueDate(arg) || arg == "" {
		return "", fmt.Errorf("invalid due date %q (want YYYY-MM-DD, today, tomorrow or week)", arg)
	}
	return arg, nil
}

// confirm prompts on stdin unless force is set.
func confirm(prompt string, force bool) bool {
	if force {
		return true
	}
	fmt.Printf("%s (y/N): ", prompt)
	var response string
	_, _ = fmt.Scanln(&response)
	return strings.EqualFold(response, "y")
}

// terminalWidth returns the stdout width, or a sane default when stdout is
// not a terminal.
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// truncate shortens a string to max length with ellipsis
func truncate(s string, max int) string {
	if max < 4 {
		max = 4
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

// printTask renders one task row for the list and search commands.
func printTask(t model.Task, now time.Time) {
	fmt.Println(taskRow(t, now, terminalWidth()))
}

// taskRow formats one task as a list row: state icon, id, text, due label,
// creation age, priority marker.
func taskRow(t model.Task, now time.Time, width int) string {
	icon := "[ ]"
	if t.Completed {
		icon = "[x]"
	}

	marker := "  "
	switch t.EffectivePriority() {
	case model.PriorityHigh:
		marker = "▲ "
	case model.PriorityLow:
		marker = "▽ "
	}

	due := ""
	if t.HasDueDate() {
		info := dateutil.ClassifyDueDate(t.DueDate, now)
		due = info.Label
		if t.DueTime != "" {
			due += " " + t.DueTime
		}
	}

	age := dateutil.FormatRelativeAge(t.CreatedAt, now)

	textWidth := width - 62
	if textWidth < 20 {
		textWidth = 20
	}

	return fmt.Sprintf("  %s  %-13d  %-*s  %-18s  %-12s  %s%s",
		icon, t.ID, textWidth, truncate(t.Text, textWidth), due, age,
		marker, model.PriorityLabel(t.EffectivePriority()))
}
