package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle [task-id]",
	Short: "Flip a task's completion state",
	Long: `Flip one task between active and completed, or with --all flip the
whole collection: if every task is completed they all become active,
otherwise everything becomes completed.

Examples:
  todocal toggle 1717231496301
  todocal toggle --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runToggle,
}

var toggleAll bool

func init() {
	toggleCmd.Flags().BoolVarP(&toggleAll, "all", "a", false, "Toggle every task at once")
}

func runToggle(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	if toggleAll {
		if len(args) > 0 {
			return fmt.Errorf("--all takes no task id")
		}
		if err := s.ToggleAll(); err != nil {
			return fmt.Errorf("failed to toggle tasks: %w", err)
		}
		fmt.Printf("⇄ Toggled %d tasks\n", s.Len())
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("need a task id or --all")
	}

	task, err := parseTaskID(s, args[0])
	if err != nil {
		return err
	}
	if _, err := s.Toggle(task.ID); err != nil {
		return fmt.Errorf("failed to toggle task: %w", err)
	}

	got, _ := s.Get(task.ID)
	if got.Completed {
		fmt.Printf("✓ Completed: \"%s\"\n", task.Text)
	} else {
		fmt.Printf("↺ Reopened: \"%s\"\n", task.Text)
	}
	return nil
}
