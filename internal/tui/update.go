package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/todocal/todocal/internal/dateutil"
	"github.com/todocal/todocal/internal/logger"
	"github.com/todocal/todocal/internal/model"
	"github.com/todocal/todocal/internal/store"
	"github.com/todocal/todocal/internal/taskview"
)

// tickMsg is sent every minute so due-date urgency stays current
type tickMsg time.Time

// Init initializes the model with a tick command
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Every(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// Midnight may have passed; re-derive every date-relative view
		m.loadData()
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeAddTask, ModeEditTask:
			return m.updateInput(msg)
		case ModeDueDate, ModeDueTime:
			return m.updateDue(msg)
		case ModeSearch:
			return m.updateSearch(msg)
		case ModeConfirmClear:
			return m.updateConfirmClear(msg)
		case ModeHelp:
			m.mode = ModeNormal
			return m, nil
		}
		return m.handleNormalKeys(msg)
	}

	return m, nil
}

// handleNormalKeys handles key presses in normal mode
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Tab):
		if m.pane == PaneSidebar {
			m.pane = PaneTaskList
		} else {
			m.pane = PaneSidebar
		}

	case key.Matches(msg, keys.Left):
		if m.view == ViewList {
			m.pane = PaneSidebar
		} else {
			m.shiftAnchor(-1)
		}

	case key.Matches(msg, keys.Right):
		if m.view == ViewList {
			m.pane = PaneTaskList
		} else {
			m.shiftAnchor(1)
		}

	case key.Matches(msg, keys.Up):
		m.handleUp()

	case key.Matches(msg, keys.Down):
		m.handleDown()

	case msg.String() == "G":
		m.handleGoBottom()

	case msg.String() == "1", msg.String() == "2", msg.String() == "3":
		m.handlePriority(msg.String())

	case key.Matches(msg, keys.Add):
		return m.startAddTask()

	case key.Matches(msg, keys.Edit):
		return m.startEditTask()

	case key.Matches(msg, keys.Due):
		return m.startDue()

	case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
		m.handleToggleDone()

	case msg.String() == "X":
		m.handleToggleAll()

	case key.Matches(msg, keys.Delete):
		m.handleDelete()

	case key.Matches(msg, keys.Sort):
		m.handleCycleSort()

	case key.Matches(msg, keys.View):
		m.view = (m.view + 1) % 4
		m.anchor = time.Now()

	case key.Matches(msg, keys.Today):
		m.anchor = time.Now()

	case key.Matches(msg, keys.PrevPage):
		if m.pageNum > 1 {
			m.pageNum--
			m.taskCursor = 0
			m.loadData()
		}

	case key.Matches(msg, keys.NextPage):
		if m.pageNum < m.page.TotalPages {
			m.pageNum++
			m.taskCursor = 0
			m.loadData()
		}

	case msg.String() == "/":
		return m.startSearch()

	case msg.String() == "n":
		m.handleNextMatch()

	case msg.String() == "N":
		m.handlePrevMatch()

	case key.Matches(msg, keys.Clear):
		m.mode = ModeConfirmClear

	case key.Matches(msg, keys.Escape):
		if m.searchText != "" {
			m.searchText = ""
			m.matchIndices = nil
			m.message = "Search cleared"
		}

	case key.Matches(msg, keys.Help):
		m.mode = ModeHelp
	}

	return m, nil
}

func (m *Model) shiftAnchor(dir int) {
	switch m.view {
	case ViewMonth:
		m.anchor = m.anchor.AddDate(0, dir, 0)
	case ViewWeek:
		m.anchor = m.anchor.AddDate(0, 0, 7*dir)
	case ViewDay:
		m.anchor = m.anchor.AddDate(0, 0, dir)
	}
}

func (m *Model) handleUp() {
	if m.pane == PaneSidebar {
		if m.filterIdx > 0 {
			m.filterIdx--
			m.taskCursor = 0
			m.pageNum = 1
			m.loadData()
		}
	} else {
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	}
}

func (m *Model) handleDown() {
	if m.pane == PaneSidebar {
		if m.filterIdx < len(taskview.Filters)-1 {
			m.filterIdx++
			m.taskCursor = 0
			m.pageNum = 1
			m.loadData()
		}
	} else {
		if m.taskCursor < len(m.page.Items)-1 {
			m.taskCursor++
		}
	}
}

func (m *Model) handleGoBottom() {
	if m.pane == PaneSidebar {
		m.filterIdx = len(taskview.Filters) - 1
		m.taskCursor = 0
		m.pageNum = 1
		m.loadData()
	} else {
		m.taskCursor = len(m.page.Items) - 1
		if m.taskCursor < 0 {
			m.taskCursor = 0
		}
	}
}

func (m *Model) handlePriority(k string) {
	if m.pane != PaneTaskList {
		return
	}
	task := m.currentTask()
	if task == nil {
		return
	}
	priority := model.PriorityMedium
	switch k {
	case "1":
		priority = model.PriorityHigh
	case "3":
		priority = model.PriorityLow
	}
	if _, err := m.store.SetPriority(task.ID, priority); err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return
	}
	m.loadData()
	m.message = fmt.Sprintf("Priority set to %s", model.PriorityLabel(priority))
}

func (m Model) startAddTask() (tea.Model, tea.Cmd) {
	m.mode = ModeAddTask
	m.input.SetValue("")
	m.input.Placeholder = "Enter task..."
	m.input.Focus()
	return m, textinput.Blink
}

func (m Model) startEditTask() (tea.Model, tea.Cmd) {
	if m.pane == PaneTaskList {
		if task := m.currentTask(); task != nil {
			m.mode = ModeEditTask
			m.input.SetValue(task.Text)
			m.input.Placeholder = "Edit task..."
			m.input.Focus()
			m.input.CursorEnd()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) startDue() (tea.Model, tea.Cmd) {
	if m.pane != PaneTaskList {
		return m, nil
	}
	task := m.currentTask()
	if task == nil {
		return m, nil
	}
	m.mode = ModeDueDate
	m.dueTargetID = task.ID
	m.input.SetValue(task.DueDay())
	m.input.Placeholder = "YYYY-MM-DD, today, tomorrow, week (empty clears)"
	m.input.Focus()
	m.input.CursorEnd()
	return m, textinput.Blink
}

func (m Model) startSearch() (tea.Model, tea.Cmd) {
	m.mode = ModeSearch
	m.input.SetValue(m.searchText)
	m.input.Placeholder = "/"
	m.input.Focus()
	return m, textinput.Blink
}

func (m *Model) handleToggleDone() {
	if m.pane != PaneTaskList {
		return
	}
	task := m.currentTask()
	if task == nil {
		return
	}
	if _, err := m.store.Toggle(task.ID); err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return
	}
	m.loadData()
}

func (m *Model) handleToggleAll() {
	if err := m.store.ToggleAll(); err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return
	}
	m.loadData()
	m.message = "Toggled all tasks"
}

func (m *Model) handleDelete() {
	if m.pane != PaneTaskList {
		return
	}
	task := m.currentTask()
	if task == nil {
		return
	}
	text := task.Text
	if _, err := m.store.Remove(task.ID); err != nil {
		m.message = fmt.Sprintf("Error: %v", err)
		return
	}
	m.loadData()
	m.message = fmt.Sprintf("Deleted: %s", text)
}

func (m *Model) handleCycleSort() {
	order := []string{taskview.SortDate, taskview.SortDueDate, taskview.SortAlphabetical, taskview.SortStatus}
	next := order[0]
	for i, k := range order {
		if k == m.sortKey {
			next = order[(i+1)%len(order)]
			break
		}
	}
	m.applySort(next)
	m.loadData()
	m.message = fmt.Sprintf("Sorted by %s", next)
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.mode = ModeNormal
			return m, nil
		}

		switch m.mode {
		case ModeAddTask:
			task, err := m.store.Add(value, "", "", "")
			if err != nil {
				m.message = fmt.Sprintf("Error adding task: %v", err)
			} else {
				logger.Debug("Task added from TUI", logger.F("id", task.ID))
				// jump to the end of the view so the new task is visible
				m.pageNum = taskview.LastPage(len(m.visible)+1, m.pageSize())
				m.message = fmt.Sprintf("Added: %s", value)
			}
		case ModeEditTask:
			if task := m.currentTask(); task != nil {
				if _, err := m.store.SetText(task.ID, value); err != nil {
					if errors.Is(err, store.ErrEmptyText) {
						m.message = "Task text cannot be empty"
					} else {
						m.message = fmt.Sprintf("Error: %v", err)
					}
				} else {
					m.message = fmt.Sprintf("Updated: %s", value)
				}
			}
		}

		m.loadData()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateDue drives the two-step due composer: date first, then time.
func (m Model) updateDue(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, keys.Enter):
		value := strings.TrimSpace(m.input.Value())

		if m.mode == ModeDueDate {
			day, err := resolveQuickDate(value, time.Now())
			if err != nil {
				m.message = err.Error()
				return m, nil
			}
			if day == "" {
				// clearing the date drops the time with it
				if _, err := m.store.SetDue(m.dueTargetID, "", ""); err != nil {
					m.message = fmt.Sprintf("Error: %v", err)
				} else {
					m.message = "Due date cleared"
				}
				m.loadData()
				m.mode = ModeNormal
				return m, nil
			}
			m.dueDate = day
			m.mode = ModeDueTime
			m.input.SetValue("")
			m.input.Placeholder = "HH:MM, e.g. " + dateutil.DefaultDueTime + " (empty for all-day)"
			return m, nil
		}

		// ModeDueTime
		if value != "" && !model.ValidDueTime(value) {
			m.message = fmt.Sprintf("Invalid time %q (want HH:MM)", value)
			return m, nil
		}
		if _, err := m.store.SetDue(m.dueTargetID, m.dueDate, value); err != nil {
			m.message = fmt.Sprintf("Error: %v", err)
		} else if value != "" {
			m.message = fmt.Sprintf("Due %s %s", dateutil.FormatDueDisplay(m.dueDate, time.Now().Location()), value)
		} else {
			m.message = fmt.Sprintf("Due %s", dateutil.FormatDueDisplay(m.dueDate, time.Now().Location()))
		}
		m.loadData()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resolveQuickDate accepts a plain day or a quick-pick label.
func resolveQuickDate(value string, now time.Time) (string, error) {
	switch strings.ToLower(value) {
	case "":
		return "", nil
	case "today":
		return dateutil.Today(now), nil
	case "tomorrow":
		return dateutil.Tomorrow(now), nil
	case "week":
		return dateutil.DaysFromNow(now, 7), nil
	}
	if !model.ValidDueDate(value) || value == "" {
		return "", fmt.Errorf("invalid date %q (want YYYY-MM-DD)", value)
	}
	return value, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		m.mode = ModeNormal
		m.searchText = ""
		m.matchIndices = nil
		m.loadData()
		return m, nil

	case key.Matches(msg, keys.Up):
		if len(m.matchIndices) > 0 && m.matchCursor > 0 {
			m.matchCursor--
		}
		return m, nil

	case key.Matches(msg, keys.Down):
		if len(m.matchIndices) > 0 && m.matchCursor < len(m.matchIndices)-1 {
			m.matchCursor++
		}
		return m, nil

	case key.Matches(msg, keys.Enter):
		if len(m.matchIndices) > 0 && m.matchCursor < len(m.matchIndices) {
			m.taskCursor = m.matchIndices[m.matchCursor]
		}
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// Live search as the user types
	m.searchText = m.input.Value()
	m.applySearch()
	return m, cmd
}

func (m Model) updateConfirmClear(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		removed, err := m.store.ClearCompleted()
		if err != nil {
			m.message = fmt.Sprintf("Error: %v", err)
		} else {
			m.message = fmt.Sprintf("Removed %d completed tasks", removed)
		}
		m.loadData()
	}
	m.mode = ModeNormal
	return m, nil
}

func (m *Model) handleNextMatch() {
	if len(m.matchIndices) > 0 {
		m.matchCursor = (m.matchCursor + 1) % len(m.matchIndices)
		m.taskCursor = m.matchIndices[m.matchCursor]
		m.message = fmt.Sprintf("[%d/%d] matches", m.matchCursor+1, len(m.matchIndices))
	}
}

func (m *Model) handlePrevMatch() {
	if len(m.matchIndices) > 0 {
		m.matchCursor--
		if m.matchCursor < 0 {
			m.matchCursor = len(m.matchIndices) - 1
		}
		m.taskCursor = m.matchIndices[m.matchCursor]
		m.message = fmt.Sprintf("[%d/%d] matches", m.matchCursor+1, len(m.matchIndices))
	}
}
