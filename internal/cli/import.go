package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/logger"
	"github.com/todocal/todocal/internal/model"
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import tasks from a JSON file",
	Long: `Import tasks from a JSON array and append them to the collection.
Records are sanitized on the way in; a file that does not parse as a
task array imports nothing.

Examples:
  todocal import todos.json
  todocal import backup.json --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importForce bool

func init() {
	importCmd.Flags().BoolVarP(&importForce, "force", "f", false, "Skip confirmation")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return fmt.Errorf("%s is not a valid task array: %w", args[0], err)
	}

	if !confirm(fmt.Sprintf("Import %d tasks from %s?", len(tasks), args[0]), importForce) {
		fmt.Println("Cancelled")
		return nil
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	added, err := s.ImportMerge(tasks)
	if err != nil {
		return fmt.Errorf("failed to import tasks: %w", err)
	}

	logger.Info("Tasks imported", logger.F("path", args[0]), logger.F("count", added))
	fmt.Printf("⇧ Imported %d tasks (%d total)\n", added, s.Len())
	return nil
}
