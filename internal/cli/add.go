package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/logger"
	"github.com/todocal/todocal/internal/model"
)

var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new task",
	Long: `Add a new task.

Examples:
  todocal add "Buy groceries"
  todocal add "Team meeting" --due tomorrow --at 14:00
  todocal add "Ship release" --due 2026-09-15 -p high`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDue      string
	addAt       string
	addPriority string
)

func init() {
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (YYYY-MM-DD, today, tomorrow, week)")
	addCmd.Flags().StringVar(&addAt, "at", "", "Due time (HH:MM, requires --due)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority (high, medium, low)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	text := strings.Join(args, " ")
	now := time.Now()

	dueDate, err := resolveDueDate(addDue, now)
	if err != nil {
		return err
	}
	if addAt != "" {
		if dueDate == "" {
			return fmt.Errorf("--at requires --due")
		}
		if !model.ValidDueTime(addAt) {
			return fmt.Errorf("invalid due time %q (want HH:MM)", addAt)
		}
	}
	if addPriority != "" && !model.ValidPriority(addPriority) {
		return fmt.Errorf("invalid priority %q (want high, medium or low)", addPriority)
	}

	task, err := s.Add(text, dueDate, addAt, addPriority)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	logger.Info("Task added via CLI", logger.F("id", task.ID))

	due := ""
	if task.HasDueDate() {
		due = ", due " + task.DueDate
		if task.DueTime != "" {
			due += " " + task.DueTime
		}
	}
	fmt.Printf("✓ Added: \"%s\" (%s%s)\n", task.Text, model.PriorityLabel(task.Priority), due)
	return nil
}
