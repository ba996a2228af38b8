package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/model"
)

var priorityCmd = &cobra.Command{
	Use:   "priority [task-id] [level]",
	Short: "Change a task's priority",
	Long: `Change a task's priority. Without a level argument the command
prints the other available levels for the task.

Examples:
  todocal priority 1717231496301 high
  todocal priority 1717231496301`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPriority,
}

func runPriority(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	task, err := parseTaskID(s, args[0])
	if err != nil {
		return err
	}

	if len(args) == 1 {
		fmt.Printf("\"%s\" is %s. Other levels: %s\n",
			task.Text,
			model.PriorityLabel(task.EffectivePriority()),
			strings.Join(model.OtherPriorities(task.Priority), ", "))
		return nil
	}

	level := strings.ToLower(args[1])
	if !model.ValidPriority(level) {
		return fmt.Errorf("invalid priority %q (want high, medium or low)", args[1])
	}

	if _, err := s.SetPriority(task.ID, level); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("✎ %s priority: \"%s\"\n", model.PriorityLabel(level), task.Text)
	return nil
}
