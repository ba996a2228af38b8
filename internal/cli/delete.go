package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/config"
	"github.com/todocal/todocal/internal/logger"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	task, err := parseTaskID(s, args[0])
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	skip := deleteForce || !cfg.ConfirmDelete
	if !confirm(fmt.Sprintf("Delete \"%s\"?", task.Text), skip) {
		fmt.Println("Cancelled")
		return nil
	}

	if _, err := s.Remove(task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	logger.Info("Task deleted", logger.F("id", task.ID))
	fmt.Printf("✗ Deleted: \"%s\"\n", task.Text)
	return nil
}
