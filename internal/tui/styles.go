package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/model"
)

// Color palette
var (
	// Priority colors
	PriorityHighColor   = lipgloss.Color("#FF6B6B") // Red
	PriorityMediumColor = lipgloss.Color("#FFE66D") // Yellow
	PriorityLowColor    = lipgloss.Color("#95E1A3") // Green

	// Due-date urgency colors
	OverdueColor  = lipgloss.Color("#FF6B6B")
	DueTodayColor = lipgloss.Color("#FFB347")
	DueSoonColor  = lipgloss.Color("#FFE66D")

	// UI colors
	Primary    = lipgloss.Color("#4ECDC4")
	Surface    = lipgloss.Color("#16213e")
	TextMuted  = lipgloss.Color("#888888")
	Border     = lipgloss.Color("#333333")
	Highlight  = lipgloss.Color("#4ECDC4")
	TodayColor = lipgloss.Color("#FF79C6")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(Border).
			Padding(1, 1)

	TaskListStyle = lipgloss.NewStyle().
			Padding(1, 2)

	FilterItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	FilterItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TaskItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TaskItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	TaskDoneStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Strikethrough(true).
			Padding(0, 1)

	// Priority badges
	PriorityHighStyle   = lipgloss.NewStyle().Foreground(PriorityHighColor).Bold(true)
	PriorityMediumStyle = lipgloss.NewStyle().Foreground(PriorityMediumColor)
	PriorityLowStyle    = lipgloss.NewStyle().Foreground(PriorityLowColor)

	// Due-date urgency
	OverdueStyle  = lipgloss.NewStyle().Foreground(OverdueColor).Bold(true)
	DueTodayStyle = lipgloss.NewStyle().Foreground(DueTodayColor).Bold(true)
	DueSoonStyle  = lipgloss.NewStyle().Foreground(DueSoonColor)
	DueNormalStyle = lipgloss.NewStyle().Foreground(TextMuted)

	// Calendar cells
	CalTodayStyle  = lipgloss.NewStyle().Foreground(TodayColor).Bold(true)
	CalFillerStyle = lipgloss.NewStyle().Foreground(TextMuted)
	CalTaskStyle   = lipgloss.NewStyle().Foreground(Primary)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// GetPriorityStyle returns the style for a priority level
func GetPriorityStyle(priority string) lipgloss.Style {
	switch priority {
	case model.PriorityHigh:
		return PriorityHighStyle
	case model.PriorityLow:
		return PriorityLowStyle
	default:
		return PriorityMediumStyle
	}
}

// FormatPriority returns a styled priority badge
func FormatPriority(priority string) string {
	style := GetPriorityStyle(priority)
	switch priority {
	case model.PriorityHigh:
		return style.Render("▲ high")
	case model.PriorityLow:
		return style.Render("▽ low")
	default:
		return style.Render("  med")
	}
}

// GetDueStyle returns the style for a due-date urgency class
func GetDueStyle(class string) lipgloss.Style {
	switch class {
	case dateutil.ClassOverdue:
		return OverdueStyle
	case dateutil.ClassDueToday:
		return DueTodayStyle
	case dateutil.ClassDueSoon:
		return DueSoonStyle
	default:
		return DueNormalStyle
	}
}
