package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/todocal/todocal/internal/calendar"
	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/model"
)

var calendarCmd = &cobra.Command{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show tasks on a calendar",
	Long: `Show tasks bucketed by due date on a month, week or day calendar.

Examples:
  todocal calendar
  todocal calendar --view week
  todocal calendar --view day --date 2026-09-15`,
	RunE: runCalendar,
}

var (
	calView string
	calDate string
)

func init() {
	calendarCmd.Flags().StringVarP(&calView, "view", "v", "month", "Calendar view (month, week, day)")
	calendarCmd.Flags().StringVarP(&calDate, "date", "d", "", "Anchor date (YYYY-MM-DD, default today)")
}

var (
	calTodayStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	calFillerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	calCountStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	calHeadStyle   = lipgloss.NewStyle().Bold(true)
)

func runCalendar(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer s.Close()

	now := time.Now()
	anchor := now
	if calDate != "" {
		anchor, err = time.ParseInLocation(dateutil.DayLayout, calDate, now.Location())
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", calDate)
		}
	}

	switch calView {
	case "month":
		printMonth(anchor, s.Tasks(), now)
	case "week":
		printWeek(anchor, s.Tasks(), now)
	case "day":
		printDay(anchor, s.Tasks(), now)
	default:
		return fmt.Errorf("unknown view %q (want month, week or day)", calView)
	}
	return nil
}

func printMonth(anchor time.Time, tasks []model.Task, now time.Time) {
	cells := calendar.MonthGrid(anchor.Year(), anchor.Month(), tasks, now)

	fmt.Printf("\n  %s\n", calHeadStyle.Render(anchor.Format("January 2006")))
	fmt.Println("  " + calHeadStyle.Render(" Sun  Mon  Tue  Wed  Thu  Fri  Sat"))

	var b strings.Builder
	for i, c := range cells {
		label := fmt.Sprintf("%3d", c.Day)
		switch {
		case c.Today:
			label = calTodayStyle.Render(label)
		case !c.InMonth:
			label = calFillerStyle.Render(label)
		}
		mark := " "
		if len(c.Tasks) > 0 {
			mark = calCountStyle.Render("•")
		}
		b.WriteString(" " + label + mark)
		if (i+1)%7 == 0 {
			fmt.Println("  " + b.String())
			b.Reset()
		}
	}
	fmt.Println()
}

func printWeek(anchor time.Time, tasks []model.Task, now time.Time) {
	cells := calendar.WeekDays(anchor, tasks, now)

	fmt.Printf("\n  Week of %s\n\n", calendar.WeekStart(anchor).Format("Jan 2, 2006"))
	for _, c := range cells {
		day, _ := time.ParseInLocation(dateutil.DayLayout, c.Date, now.Location())
		head := day.Format("Mon Jan 2")
		if c.Today {
			head = calTodayStyle.Render(head)
		}
		fmt.Printf("  %s\n", head)
		if len(c.Tasks) == 0 {
			fmt.Println(calFillerStyle.Render("    no tasks"))
			continue
		}
		for _, t := range c.Tasks {
			printDayTask(t)
		}
	}
	fmt.Println()
}

func printDay(anchor time.Time, tasks []model.Task, now time.Time) {
	cell := calendar.DayCell(anchor, tasks, now)

	head := anchor.Format("Monday, January 2, 2006")
	if cell.Today {
		head = calTodayStyle.Render(head)
	}
	fmt.Printf("\n  %s\n\n", head)

	if len(cell.Tasks) == 0 {
		fmt.Println(calFillerStyle.Render("    no tasks"))
		fmt.Println()
		return
	}

	// timed tasks first in clock order, then the rest
	blocks := calendar.TimeBlocks(cell.Tasks)
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Offset < blocks[j].Offset })
	for _, block := range blocks {
		printDayTask(block.Task)
	}
	for _, t := range cell.Tasks {
		if t.DueTime == "" {
			printDayTask(t)
		}
	}
	fmt.Println()
}

func printDayTask(t model.Task) {
	icon := "[ ]"
	if t.Completed {
		icon = "[x]"
	}
	at := "     "
	if t.DueTime != "" {
		at = t.DueTime
	}
	fmt.Printf("    %s %s  %s\n", icon, at, truncate(t.Text, 50))
}
