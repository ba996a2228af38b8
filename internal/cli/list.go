package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/config"
	"github.com/todocal/todocal/internal/taskview"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks, optionally filtered, sorted and paged.

Examples:
  todocal list
  todocal list --filter today
  todocal list --filter priority-high --sort dueDate
  todocal list --page 2 --page-size 5`,
	RunE: runList,
}

var (
	listFilter   string
	listSort     string
	listPage     int
	listPageSize int
)

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", taskview.FilterAll,
		"Filter selector ("+strings.Join(taskview.Filters, ", ")+")")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort key (date, dueDate, alphabetical, status)")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Tasks per page (default from config)")
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	pageSize := cfg.PageSize
	if listPageSize > 0 {
		pageSize = listPageSize
	}

	now := time.Now()
	view := taskview.Filter(s.Tasks(), listFilter, now)
	if listSort != "" {
		taskview.Sort(view, listSort)
	}

	page := taskview.Paginate(view, pageSize, listPage)
	if page.TotalItems == 0 {
		fmt.Println("No tasks found. Add one with: todocal add \"Your task\"")
		return nil
	}

	fmt.Printf("\n📋 %s (%d tasks)\n", listFilter, page.TotalItems)
	fmt.Println(strings.Repeat("─", 72))
	for _, t := range page.Items {
		printTask(t, now)
	}
	fmt.Println(strings.Repeat("─", 72))
	fmt.Printf("  Page %d of %d\n\n", page.Number, page.TotalPages)
	return nil
}
