package tui

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todocal/todocal/internal/config"
	"github.com/todocal/todocal/internal/store"
	"github.com/todocal/todocal/internal/taskview"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "todocal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	cfg := &config.Config{PageSize: 3, ConfirmDelete: true}
	return NewModel(s, cfg)
}

func TestFilterLabels_CoverEverySelector(t *testing.T) {
	for _, f := range taskview.Filters {
		assert.NotEmpty(t, filterLabels[f], "selector %q has no sidebar label", f)
	}
}

func TestNewModel_StartsOnAllFilter(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, taskview.FilterAll, m.currentFilter())
	assert.Equal(t, 1, m.page.Number)
	assert.Empty(t, m.page.Items)
}

func TestLoadData_Paginates(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 7; i++ {
		_, err := m.store.Add("task", "", "", "")
		require.NoError(t, err)
	}

	m.loadData()
	assert.Len(t, m.page.Items, 3)
	assert.Equal(t, 3, m.page.TotalPages)
	assert.Equal(t, 7, m.page.TotalItems)
}

func TestLoadData_ClampsCursorAfterShrink(t *testing.T) {
	m := newTestModel(t)
	a, _ := m.store.Add("a", "", "", "")
	_, _ = m.store.Add("b", "", "", "")
	m.loadData()
	m.taskCursor = 1

	_, err := m.store.Remove(a.ID)
	require.NoError(t, err)
	m.loadData()
	assert.Equal(t, 0, m.taskCursor)
}

func TestApplySearch_MatchesWithinPage(t *testing.T) {
	m := newTestModel(t)
	_, _ = m.store.Add("buy milk", "", "", "")
	_, _ = m.store.Add("walk dog", "", "", "")
	_, _ = m.store.Add("buy bread", "", "", "")
	m.loadData()

	m.searchText = "buy"
	m.applySearch()
	assert.Equal(t, []int{0, 2}, m.matchIndices)
}

func TestCurrentTask_NilOnEmptyPage(t *testing.T) {
	m := newTestModel(t)
	assert.Nil(t, m.currentTask())
}

func TestRenderTaskList_ShowsCreationAge(t *testing.T) {
	m := newTestModel(t)
	_, err := m.store.Add("buy milk", "", "", "")
	require.NoError(t, err)
	m.loadData()
	m.width = 120
	m.height = 40

	out := m.renderTaskList()
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, "today", "a just-added task shows its relative age")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "long st...", truncate("long string here", 10))
}
