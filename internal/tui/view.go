package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/todocal/todocal/internal/calendar"
	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/model"
	"github.com/todocal/todocal/internal/taskview"
)

// filterLabels maps selectors to sidebar display names.
var filterLabels = map[string]string{
	taskview.FilterAll:            "All",
	taskview.FilterActive:         "Active",
	taskview.FilterCompleted:      "Completed",
	taskview.FilterOverdue:        "Overdue",
	taskview.FilterToday:          "Today",
	taskview.FilterTomorrow:       "Tomorrow",
	taskview.FilterWeek:           "This Week",
	taskview.FilterNextWeek:       "Next Week",
	taskview.FilterThisMonth:      "This Month",
	taskview.FilterNoDate:         "No Date",
	taskview.FilterWithDate:       "With Date",
	taskview.FilterPriorityHigh:   "High",
	taskview.FilterPriorityMedium: "Medium",
	taskview.FilterPriorityLow:    "Low",
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var mainContent string
	switch m.view {
	case ViewMonth:
		mainContent = m.renderMonthView()
	case ViewWeek:
		mainContent = m.renderWeekView()
	case ViewDay:
		mainContent = m.renderDayView()
	default:
		sidebar := m.renderSidebar()
		taskList := m.renderTaskList()
		mainContent = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, taskList)
	}

	statusBar := m.renderStatusBar()

	switch m.mode {
	case ModeAddTask, ModeEditTask, ModeDueDate, ModeDueTime:
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderModal(),
			lipgloss.WithWhitespaceChars(" "),
		)
	case ModeConfirmClear:
		mainContent = lipgloss.Place(
			m.width, m.height-2,
			lipgloss.Center, lipgloss.Center,
			m.renderConfirmModal(),
			lipgloss.WithWhitespaceChars(" "),
		)
	case ModeHelp:
		mainContent = m.renderHelp()
	}

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, statusBar)
}

func (m Model) renderSidebar() string {
	sidebarWidth := 24
	now := time.Now()
	tasks := m.store.Tasks()

	var s string
	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render("Todocal") + "\n"
	s += HelpStyle.Render(now.Format("Mon Jan 2 15:04")) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render("───────────────────") + "\n\n"

	for i, f := range taskview.Filters {
		count := taskview.Count(tasks, f, now)

		cursor := "  "
		style := FilterItemStyle
		if i == m.filterIdx {
			cursor = "❯ "
			if m.pane == PaneSidebar {
				style = FilterItemSelectedStyle
			}
		}

		line := fmt.Sprintf("%s%-11s %3d", cursor, filterLabels[f], count)
		s += style.Render(line) + "\n"
	}

	s += "\n" + lipgloss.NewStyle().Foreground(Border).Render("───────────────────") + "\n"
	s += HelpStyle.Render("v calendar views")

	return SidebarStyle.Width(sidebarWidth).Height(m.height - 2).Render(s)
}

func (m Model) renderTaskList() string {
	width := m.width - 26
	now := time.Now()
	var s string

	header := fmt.Sprintf("%s (%d tasks)", filterLabels[m.currentFilter()], m.page.TotalItems)
	if m.sortKey != "" {
		header += "  ·  sorted by " + m.sortKey
	}
	s += lipgloss.NewStyle().Bold(true).Foreground(Primary).Render(header) + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(repeat("─", width-4)) + "\n\n"

	if len(m.page.Items) == 0 {
		s += HelpStyle.Render("  No tasks. Press 'a' to add one.")
	}

	for i, t := range m.page.Items {
		cursor := "  "
		style := TaskItemStyle
		if i == m.taskCursor && m.pane == PaneTaskList {
			cursor = "❯ "
			style = TaskItemSelectedStyle
		}

		isMatch := false
		for _, idx := range m.matchIndices {
			if idx == i {
				isMatch = true
				break
			}
		}
		if isMatch && i != m.taskCursor {
			style = lipgloss.NewStyle().Foreground(Highlight)
		}

		icon := "[ ]"
		if t.Completed {
			icon = "[x]"
			style = TaskDoneStyle
		}

		textWidth := width - 40
		if textWidth < 20 {
			textWidth = 20
		}
		text := truncate(t.Text, textWidth)

		due := ""
		if t.HasDueDate() {
			info := dateutil.ClassifyDueDate(t.DueDate, now)
			label := info.Label
			if t.DueTime != "" {
				label += " " + t.DueTime
			}
			due = GetDueStyle(info.Class).Render(label)
		}

		age := HelpStyle.Render(dateutil.FormatRelativeAge(t.CreatedAt, now))

		check := style.Render(cursor + icon)
		desc := style.Render(fmt.Sprintf(" %-*s ", textWidth, text))

		s += check + desc + FormatPriority(t.EffectivePriority()) + "  " + due + "  " + age + "\n"
	}

	if m.page.TotalPages > 1 {
		s += "\n" + HelpStyle.Render(fmt.Sprintf("  page %d/%d  [ prev  ] next", m.page.Number, m.page.TotalPages))
	}

	return TaskListStyle.Width(width).Height(m.height - 2).Render(s)
}

func (m Model) renderMonthView() string {
	now := time.Now()
	cells := calendar.MonthGrid(m.anchor.Year(), m.anchor.Month(), m.store.Tasks(), now)

	cellWidth := (m.width - 4) / 7
	if cellWidth < 6 {
		cellWidth = 6
	}
	if cellWidth > 16 {
		cellWidth = 16
	}

	var s string
	s += HeaderStyle.Render(m.anchor.Format("January 2006")) + "\n"

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	var head string
	for _, wd := range weekdays {
		head += lipgloss.NewStyle().Bold(true).Width(cellWidth).Render(" " + wd)
	}
	s += head + "\n"
	s += lipgloss.NewStyle().Foreground(Border).Render(repeat("─", cellWidth*7)) + "\n"

	for row := 0; row < 6; row++ {
		var line string
		for col := 0; col < 7; col++ {
			c := cells[row*7+col]
			label := fmt.Sprintf("%2d", c.Day)
			switch {
			case c.Today:
				label = CalTodayStyle.Render(label)
			case !c.InMonth:
				label = CalFillerStyle.Render(label)
			}
			badge := "   "
			if n := len(c.Tasks); n > 0 {
				badge = CalTaskStyle.Render(fmt.Sprintf("•%d ", n))
			}
			cell := " " + label + " " + badge
			line += lipgloss.NewStyle().Width(cellWidth).Render(cell)
		}
		s += line + "\n"
	}

	s += "\n" + HelpStyle.Render("←/→ change month  g today  v next view")
	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).Render(s)
}

func (m Model) renderWeekView() string {
	now := time.Now()
	cells := calendar.WeekDays(m.anchor, m.store.Tasks(), now)

	var s string
	s += HeaderStyle.Render("Week of "+calendar.WeekStart(m.anchor).Format("Jan 2, 2006")) + "\n\n"

	for _, c := range cells {
		day, _ := time.ParseInLocation(dateutil.DayLayout, c.Date, now.Location())
		head := day.Format("Mon Jan 2")
		if c.Today {
			head = CalTodayStyle.Render(head)
		} else {
			head = lipgloss.NewStyle().Bold(true).Render(head)
		}
		s += head + "\n"
		if len(c.Tasks) == 0 {
			s += HelpStyle.Render("    ·") + "\n"
			continue
		}
		for _, t := range c.Tasks {
			s += m.renderCalTask(t) + "\n"
		}
	}

	s += "\n" + HelpStyle.Render("←/→ change week  g today  v next view")
	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).Render(s)
}

// renderDayView lays the day's timed tasks on a 24-hour axis and lists
// all-day tasks below it.
func (m Model) renderDayView() string {
	now := time.Now()
	cell := calendar.DayCell(m.anchor, m.store.Tasks(), now)

	var s string
	head := m.anchor.Format("Monday, January 2, 2006")
	if cell.Today {
		head = CalTodayStyle.Render(head)
	}
	s += HeaderStyle.Render(head) + "\n\n"

	blocks := calendar.TimeBlocks(cell.Tasks)
	byHour := make(map[int][]calendar.TimeBlock)
	for _, b := range blocks {
		byHour[b.Offset/60] = append(byHour[b.Offset/60], b)
	}

	nowHour := -1
	if cell.Today {
		nowHour = calendar.CurrentTimeOffset(now) / 60
	}

	for h, label := range calendar.HourLabels() {
		gutter := HelpStyle.Render(label)
		if h == nowHour {
			gutter = CalTodayStyle.Render(label + " ◀")
		}
		s += gutter
		for _, b := range byHour[h] {
			s += "  " + m.renderCalTask(b.Task)
		}
		s += "\n"
	}

	allDay := make([]model.Task, 0, len(cell.Tasks))
	for _, t := range cell.Tasks {
		if t.DueTime == "" {
			allDay = append(allDay, t)
		}
	}
	if len(allDay) > 0 {
		s += "\n" + lipgloss.NewStyle().Bold(true).Render("All day") + "\n"
		for _, t := range allDay {
			s += m.renderCalTask(t) + "\n"
		}
	}

	s += "\n" + HelpStyle.Render("←/→ change day  g today  v list view")
	return TaskListStyle.Width(m.width - 2).Height(m.height - 2).Render(s)
}

func (m Model) renderCalTask(t model.Task) string {
	icon := "○"
	if t.Completed {
		icon = "✓"
	}
	at := ""
	if t.DueTime != "" {
		at = t.DueTime + " "
	}
	line := fmt.Sprintf("    %s %s%s", icon, at, truncate(t.Text, 40))
	if t.Completed {
		return TaskDoneStyle.Render(line)
	}
	return GetPriorityStyle(t.EffectivePriority()).Render(line)
}

func (m Model) renderStatusBar() string {
	if m.mode == ModeSearch {
		matches := ""
		if len(m.matchIndices) > 0 {
			matches = fmt.Sprintf(" [%d/%d]", m.matchCursor+1, len(m.matchIndices))
		} else if m.searchText != "" {
			matches = " [no match]"
		}
		return StatusBarStyle.Width(m.width).Render("/" + m.input.View() + matches)
	}

	help := "/:search  a:add  e:edit  t:due  x:done  d:del  s:sort  v:view  ?:help  q:quit"
	if m.searchText != "" {
		if len(m.matchIndices) > 0 {
			help = fmt.Sprintf("/%s  [%d/%d matches]  n:next  N:prev  Esc:clear",
				m.searchText, m.matchCursor+1, len(m.matchIndices))
		} else {
			help = fmt.Sprintf("/%s  [no matches]  Esc:clear", m.searchText)
		}
	} else if m.message != "" {
		help = m.message
	}

	return StatusBarStyle.Width(m.width).Render(help)
}

func (m Model) renderModal() string {
	title := "Add Task"
	hint := "Enter:save  Esc:cancel"

	switch m.mode {
	case ModeEditTask:
		title = "Edit Task"
	case ModeDueDate:
		title = "Set Due Date"
		var picks []string
		for _, p := range dateutil.QuickPicks(time.Now()) {
			picks = append(picks, fmt.Sprintf("%s %s", strings.ToLower(p.Label), p.Day))
		}
		hint = strings.Join(picks, "  ") + "\nEnter:next  Esc:cancel"
	case ModeDueTime:
		title = "Set Due Time"
		var examples []string
		for _, min := range dateutil.MinuteOptions() {
			examples = append(examples, dateutil.HourOptions()[9]+":"+min)
		}
		hint = "e.g. " + strings.Join(examples, ", ") + "\nEnter:save  Esc:cancel"
	}

	content := lipgloss.NewStyle().Bold(true).Render(title) + "\n\n"
	content += m.input.View() + "\n\n"
	content += HelpStyle.Render(hint)

	return ModalStyle.Render(content)
}

func (m Model) renderConfirmModal() string {
	content := lipgloss.NewStyle().Bold(true).Render("Clear completed tasks?") + "\n\n"
	content += HelpStyle.Render("y:confirm  any other key:cancel")
	return ModalStyle.Render(content)
}

func (m Model) renderHelp() string {
	help := `
╭──── Keyboard Shortcuts ────╮
│                            │
│  Navigation                │
│  ──────────                │
│  j/↓     Move down         │
│  k/↑     Move up           │
│  h/l     Switch pane       │
│  Tab     Switch pane       │
│  G       Go to bottom      │
│  [/]     Prev/next page    │
│                            │
│  Actions                   │
│  ───────                   │
│  a       Add task          │
│  e       Edit task         │
│  t       Set due date      │
│  x/Enter Toggle done       │
│  X       Toggle all        │
│  d       Delete            │
│  C       Clear completed   │
│  1/2/3   Set priority      │
│  s       Cycle sort        │
│                            │
│  Calendar                  │
│  ────────                  │
│  v       Cycle views       │
│  ←/→     Shift period      │
│  g       Back to today     │
│                            │
│  ?       Toggle help       │
│  q       Quit              │
│                            │
╰────────────────────────────╯

      Press any key to close
`
	return lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center, help)
}
