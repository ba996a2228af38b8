package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit [task-id] [new text]",
	Short: "Edit a task's text",
	Long: `Replace a task's text. Blank text is rejected and leaves the task
unchanged.

Examples:
  todocal edit 1717231496301 "Buy oat milk instead"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	task, err := parseTaskID(s, args[0])
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if _, err := s.SetText(task.ID, text); err != nil {
		if errors.Is(err, store.ErrEmptyText) {
			return fmt.Errorf("task text cannot be empty")
		}
		return fmt.Errorf("failed to edit task: %w", err)
	}

	fmt.Printf("✎ Updated: \"%s\"\n", strings.TrimSpace(text))
	return nil
}
