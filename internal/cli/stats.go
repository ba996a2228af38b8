package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/taskview"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show collection statistics",
	Long: `Show counts of tasks per filter selector, or with --alerts a short
summary of what needs attention now.

Examples:
  todocal stats
  todocal stats --alerts`,
	RunE: runStats,
}

var statsAlerts bool

func init() {
	statsCmd.Flags().BoolVar(&statsAlerts, "alerts", false, "Only show overdue/today/tomorrow counts")
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	stats := taskview.Collect(s.Tasks(), time.Now())

	if statsAlerts {
		if stats.Overdue == 0 && stats.Today == 0 && stats.Tomorrow == 0 {
			fmt.Println("Nothing urgent. ✓")
			return nil
		}
		if stats.Overdue > 0 {
			fmt.Printf("⚠ %d overdue\n", stats.Overdue)
		}
		if stats.Today > 0 {
			fmt.Printf("● %d due today\n", stats.Today)
		}
		if stats.Tomorrow > 0 {
			fmt.Printf("○ %d due tomorrow\n", stats.Tomorrow)
		}
		return nil
	}

	fmt.Printf("\n📊 %d tasks (%d active, %d completed)\n\n", stats.Total, stats.Active, stats.Completed)
	fmt.Printf("  Overdue     %4d\n", stats.Overdue)
	fmt.Printf("  Today       %4d\n", stats.Today)
	fmt.Printf("  Tomorrow    %4d\n", stats.Tomorrow)
	fmt.Printf("  This week   %4d\n", stats.Week)
	fmt.Printf("  This month  %4d\n", stats.Month)
	fmt.Printf("  With date   %4d\n", stats.WithDate)
	fmt.Printf("  No date     %4d\n\n", stats.NoDate)
	fmt.Printf("  High        %4d\n", stats.High)
	fmt.Printf("  Medium      %4d\n", stats.Medium)
	fmt.Printf("  Low         %4d\n\n", stats.Low)
	return nil
}
