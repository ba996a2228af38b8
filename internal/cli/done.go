package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/logger"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as completed",
	Long: `Mark a task as completed.

Examples:
  todocal done 1717231496301
  todocal done 1717231496301 --undo`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var doneUndo bool

func init() {
	doneCmd.Flags().BoolVarP(&doneUndo, "undo", "u", false, "Mark the task active again")
}

func runDone(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	task, err := parseTaskID(s, args[0])
	if err != nil {
		return err
	}

	if _, err := s.SetCompleted(task.ID, !doneUndo); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	logger.Info("Task completion changed", logger.F("id", task.ID), logger.F("completed", !doneUndo))
	if doneUndo {
		fmt.Printf("↺ Reopened: \"%s\"\n", task.Text)
	} else {
		fmt.Printf("✓ Completed: \"%s\"\n", task.Text)
	}
	return nil
}
