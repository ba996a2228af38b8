package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/model"
)

var dueCmd = &cobra.Command{
	Use:   "due [task-id] [date]",
	Short: "Set or clear a task's due date",
	Long: `Set a task's due date, optionally with a time of day. Omitting the
date clears it; clearing the date drops the time as well.

Examples:
  todocal due 1717231496301 tomorrow
  todocal due 1717231496301 2026-09-15 --at 14:00
  todocal due 1717231496301`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDue,
}

var dueAt string

func init() {
	dueCmd.Flags().StringVar(&dueAt, "at", "", "Due time (HH:MM)")
}

func runDue(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	task, err := parseTaskID(s, args[0])
	if err != nil {
		return err
	}

	dueDate := ""
	if len(args) > 1 {
		dueDate, err = resolveDueDate(args[1], time.Now())
		if err != nil {
			return err
		}
	}
	if dueAt != "" && !model.ValidDueTime(dueAt) {
		return fmt.Errorf("invalid due time %q (want HH:MM)", dueAt)
	}

	if _, err := s.SetDue(task.ID, dueDate, dueAt); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if dueDate == "" {
		fmt.Printf("✎ Cleared due date: \"%s\"\n", task.Text)
	} else if dueAt != "" {
		fmt.Printf("✎ Due %s %s: \"%s\"\n", dueDate, dueAt, task.Text)
	} else {
		fmt.Printf("✎ Due %s: \"%s\"\n", dueDate, task.Text)
	}
	return nil
}
