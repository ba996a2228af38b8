package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/model"
	"github.com/todocal/todocal/internal/taskview"
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search tasks by text or due date",
	Long: `Search tasks. With a term argument matches task text
case-insensitively; with --date matches tasks due on that exact day.

Examples:
  todocal search groceries
  todocal search --date 2026-09-15`,
	RunE: runSearch,
}

var searchDate string

func init() {
	searchCmd.Flags().StringVar(&searchDate, "date", "", "Match tasks due on this day (YYYY-MM-DD)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && searchDate == "" {
		return fmt.Errorf("need a search term or --date")
	}
	if searchDate != "" && (!model.ValidDueDate(searchDate) || searchDate == "") {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", searchDate)
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	now := time.Now()
	var matches []model.Task
	var what string
	if searchDate != "" {
		matches = taskview.SearchDueDate(s.Tasks(), searchDate)
		what = "due " + searchDate
	} else {
		term := strings.Join(args, " ")
		matches = taskview.SearchText(s.Tasks(), term)
		what = fmt.Sprintf("matching %q", term)
	}

	if len(matches) == 0 {
		fmt.Printf("No tasks %s\n", what)
		return nil
	}

	fmt.Printf("\n🔍 %d tasks %s\n", len(matches), what)
	fmt.Println(strings.Repeat("─", 72))
	for _, t := range matches {
		printTask(t, now)
	}
	fmt.Println()
	return nil
}
