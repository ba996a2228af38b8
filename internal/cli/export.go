package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/logger"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all tasks to a JSON file",
	Long: `Export the full task collection as a JSON array.

Examples:
  todocal export
  todocal export backup.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	path := "todos.json"
	if len(args) > 0 {
		path = args[0]
	}

	data, err := s.ExportJSON()
	if err != nil {
		return fmt.Errorf("failed to export tasks: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info("Tasks exported", logger.F("path", path), logger.F("count", s.Len()))
	fmt.Printf("⇩ Exported %d tasks to %s\n", s.Len(), path)
	return nil
}
