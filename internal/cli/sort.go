package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/model"
	"github.com/todocal/todocal/internal/taskview"
)

var sortCmd = &cobra.Command{
	Use:   "sort [key]",
	Short: "Reorder the stored collection",
	Long: `Reorder the whole task collection and persist the new order. The
order sticks: list, search and the TUI all see it until the next sort.

Keys:
  date          newest first
  dueDate       soonest due first, undated tasks last
  alphabetical  by task text
  status        active tasks before completed ones

Examples:
  todocal sort dueDate`,
	Args: cobra.ExactArgs(1),
	RunE: runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	key := args[0]
	switch key {
	case taskview.SortDate, taskview.SortDueDate, taskview.SortAlphabetical, taskview.SortStatus:
	default:
		return fmt.Errorf("unknown sort key %q (want date, dueDate, alphabetical or status)", key)
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	tasks := append([]model.Task(nil), s.Tasks()...)
	taskview.Sort(tasks, key)
	if err := s.SetOrder(tasks); err != nil {
		return fmt.Errorf("failed to persist order: %w", err)
	}

	fmt.Printf("⇅ Sorted %d tasks by %s\n", len(tasks), key)
	return nil
}
