package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/config"
	"github.com/todocal/todocal/internal/logger"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove completed tasks",
	Long: `Remove every completed task, or with --all empty the whole
collection.

Examples:
  todocal clear
  todocal clear --all --force`,
	RunE: runClear,
}

var (
	clearAll   bool
	clearForce bool
)

func init() {
	clearCmd.Flags().BoolVarP(&clearAll, "all", "a", false, "Remove every task, completed or not")
	clearCmd.Flags().BoolVarP(&clearForce, "force", "f", false, "Skip confirmation")
}

func runClear(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	skip := clearForce || !cfg.ConfirmDelete

	prompt := "Remove all completed tasks?"
	if clearAll {
		prompt = fmt.Sprintf("Remove ALL %d tasks?", s.Len())
	}
	if !confirm(prompt, skip) {
		fmt.Println("Cancelled")
		return nil
	}

	var removed int
	if clearAll {
		removed, err = s.ClearAll()
	} else {
		removed, err = s.ClearCompleted()
	}
	if err != nil {
		return fmt.Errorf("failed to clear tasks: %w", err)
	}

	logger.Info("Tasks cleared", logger.F("removed", removed), logger.F("all", clearAll))
	fmt.Printf("✗ Removed %d tasks\n", removed)
	return nil
}
