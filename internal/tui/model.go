package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/todocal/todocal/internal/config"
	"github.com/todocal/todocal/internal/logger"
	"github.com/todocal/todocal/internal/model"
	"github.com/todocal/todocal/internal/store"
	"github.com/todocal/todocal/internal/taskview"
)

// Pane represents which pane is focused
type Pane int

const (
	PaneSidebar Pane = iota
	PaneTaskList
)

// Mode represents the current UI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeEditTask
	ModeDueDate
	ModeDueTime
	ModeSearch
	ModeConfirmClear
	ModeHelp
)

// View represents the main pane layout
type View int

const (
	ViewList View = iota
	ViewMonth
	ViewWeek
	ViewDay
)

// Model is the main TUI model
type Model struct {
	store *store.Store
	cfg   *config.Config

	// Visible slice of the collection: filtered, then paged
	visible []model.Task
	page    taskview.Page

	// UI state
	width      int
	height     int
	pane       Pane
	mode       Mode
	view       View
	filterIdx  int // index into taskview.Filters
	taskCursor int
	pageNum    int
	sortKey    string

	// Calendar anchor, shifted by month/week/day depending on view
	anchor time.Time

	// Input
	input textinput.Model

	// Due-date composer carries state across the two input steps
	dueTargetID int64
	dueDate     string

	// Search (vim-style, over the visible page)
	searchText   string
	matchIndices []int
	matchCursor  int

	message string
}

// NewModel creates a new TUI model
func NewModel(s *store.Store, cfg *config.Config) Model {
	logger.Info("Initializing TUI model")

	ti := textinput.New()
	ti.Placeholder = "Enter task..."
	ti.CharLimit = 256
	ti.Width = 50

	m := Model{
		store:   s,
		cfg:     cfg,
		pane:    PaneSidebar,
		mode:    ModeNormal,
		view:    ViewList,
		input:   ti,
		pageNum: 1,
		anchor:  time.Now(),
		sortKey: cfg.DefaultSort,
	}

	if m.sortKey != "" {
		m.applySort(m.sortKey)
	}
	m.loadData()
	m.message = startupAlert(s.Tasks())
	logger.Debug("TUI model initialized", logger.F("tasks", s.Len()))
	return m
}

// startupAlert builds the one-shot due-date summary shown when the app
// opens. Empty when nothing needs attention.
func startupAlert(tasks []model.Task) string {
	stats := taskview.Collect(tasks, time.Now())
	if stats.Overdue == 0 && stats.Today == 0 && stats.Tomorrow == 0 {
		return ""
	}
	parts := []string{}
	if stats.Overdue > 0 {
		parts = append(parts, fmt.Sprintf("%d overdue", stats.Overdue))
	}
	if stats.Today > 0 {
		parts = append(parts, fmt.Sprintf("%d due today", stats.Today))
	}
	if stats.Tomorrow > 0 {
		parts = append(parts, fmt.Sprintf("%d due tomorrow", stats.Tomorrow))
	}
	return "⚠ " + strings.Join(parts, ", ")
}

// loadData rebuilds the visible slice from the collection: current filter,
// then the current page. The cursor clamps to the page that remains.
func (m *Model) loadData() {
	now := time.Now()
	m.visible = taskview.Filter(m.store.Tasks(), m.currentFilter(), now)
	m.pageNum = taskview.ClampPage(m.pageNum, len(m.visible), m.pageSize())
	m.page = taskview.Paginate(m.visible, m.pageSize(), m.pageNum)
	if m.taskCursor >= len(m.page.Items) {
		m.taskCursor = len(m.page.Items) - 1
	}
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
	m.applySearch()
}

func (m *Model) pageSize() int {
	if m.cfg.PageSize < 1 {
		return 10
	}
	return m.cfg.PageSize
}

func (m *Model) currentFilter() string {
	if m.filterIdx < 0 || m.filterIdx >= len(taskview.Filters) {
		return taskview.FilterAll
	}
	return taskview.Filters[m.filterIdx]
}

func (m *Model) currentTask() *model.Task {
	if m.taskCursor < len(m.page.Items) {
		return &m.page.Items[m.taskCursor]
	}
	return nil
}

// applySort reorders the whole collection and persists the order.
func (m *Model) applySort(key string) {
	tasks := append([]model.Task(nil), m.store.Tasks()...)
	taskview.Sort(tasks, key)
	if err := m.store.SetOrder(tasks); err != nil {
		logger.Error("Failed to persist sort order", logger.F("error", err))
	}
	m.sortKey = key
}

// applySearch recomputes match indices over the current page.
func (m *Model) applySearch() {
	m.matchIndices = nil
	m.matchCursor = 0
	if m.searchText == "" {
		return
	}
	matches := taskview.SearchText(m.page.Items, m.searchText)
	byID := make(map[int64]bool, len(matches))
	for _, t := range matches {
		byID[t.ID] = true
	}
	for i, t := range m.page.Items {
		if byID[t.ID] {
			m.matchIndices = append(m.matchIndices, i)
		}
	}
}
