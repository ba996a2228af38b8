package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/todocal/todocal/internal/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todocal.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestAdd(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.Add("  buy milk  ", "2024-06-01", "09:00", model.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "buy milk", task.Text)
	assert.Equal(t, "2024-06-01", task.DueDate)
	assert.Equal(t, "09:00", task.DueTime)
	assert.Equal(t, model.PriorityHigh, task.Priority)
	assert.False(t, task.Completed)
	assert.NotZero(t, task.ID)
	assert.Equal(t, 1, s.Len())
}

func TestAdd_RejectsBlankText(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Add("   ", "", "", "")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Equal(t, 0, s.Len(), "collection unchanged after a rejected add")
}

func TestAdd_NormalizesBlankDueFields(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.Add("x", "   ", "  ", "")
	require.NoError(t, err)
	assert.Empty(t, task.DueDate)
	assert.Empty(t, task.DueTime)
	assert.Equal(t, model.PriorityMedium, task.Priority)
}

func TestAdd_UniqueIDsUnderRapidCalls(t *testing.T) {
	s, _ := newTestStore(t)

	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		task, err := s.Add("t", "", "", "")
		require.NoError(t, err)
		assert.False(t, seen[task.ID], "id %d issued twice", task.ID)
		seen[task.ID] = true
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, path := newTestStore(t)

	_, err := s.Add("first", "2024-06-01", "09:00", model.PriorityHigh)
	require.NoError(t, err)
	_, err = s.Add("second", "", "", "")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	require.Equal(t, 2, reopened.Len())
	tasks := reopened.Tasks()
	assert.Equal(t, "first", tasks[0].Text)
	assert.Equal(t, "2024-06-01", tasks[0].DueDate)
	assert.Equal(t, "09:00", tasks[0].DueTime)
	assert.Equal(t, model.PriorityHigh, tasks[0].Priority)
	assert.Equal(t, "second", tasks[1].Text)
	assert.Equal(t, model.PriorityMedium, tasks[1].Priority)
}

func TestLoad_MissingSlotStartsEmpty(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_GarbageSlotResetsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todocal.db")

	kv, err := OpenKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(slotKey, "{not json"))
	require.NoError(t, kv.Close())

	s, err := Open(path)
	require.NoError(t, err, "a garbage slot is recovered, not surfaced")
	defer s.Close()
	assert.Equal(t, 0, s.Len())
}

func TestLoad_NonArraySlotResetsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todocal.db")

	kv, err := OpenKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(slotKey, `{"id": 1}`))
	require.NoError(t, kv.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, 0, s.Len())
}

func TestLoad_DefaultsMissingPriority(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todocal.db")

	kv, err := OpenKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(slotKey, `[
		{"id": 1, "text": "old record", "completed": false, "createdAt": "2023-01-01T00:00:00Z"},
		{"id": 2, "text": "newer", "completed": true, "createdAt": "2023-01-02T00:00:00Z", "priority": "low"}
	]`))
	require.NoError(t, kv.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, model.PriorityMedium, tasks[0].Priority)
	assert.Equal(t, model.PriorityLow, tasks[1].Priority)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("x", "", "", "")
	require.NoError(t, err)

	removed, err := s.Remove(task.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 0, s.Len())

	removed, err = s.Remove(task.ID)
	require.NoError(t, err)
	assert.False(t, removed, "removing an absent id is a no-op")
}

func TestToggle(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("x", "", "", "")
	require.NoError(t, err)

	ok, err := s.Toggle(task.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := s.Get(task.ID)
	assert.True(t, got.Completed)

	ok, err = s.Toggle(task.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ = s.Get(task.ID)
	assert.False(t, got.Completed)
}

func TestSetText(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("before", "", "", "")
	require.NoError(t, err)

	ok, err := s.SetText(task.ID, "  after  ")
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := s.Get(task.ID)
	assert.Equal(t, "after", got.Text)

	_, err = s.SetText(task.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)

	ok, err = s.SetText(99999, "whatever")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSetDue(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("x", "2024-06-01", "09:00", "")
	require.NoError(t, err)

	// clearing the date drops the time as well
	ok, err := s.SetDue(task.ID, "", "10:00")
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := s.Get(task.ID)
	assert.Empty(t, got.DueDate)
	assert.Empty(t, got.DueTime)
}

func TestSetPriority(t *testing.T) {
	s, _ := newTestStore(t)
	task, err := s.Add("x", "", "", "")
	require.NoError(t, err)

	ok, err := s.SetPriority(task.ID, model.PriorityHigh)
	require.NoError(t, err)
	assert.True(t, ok)
	got, _ := s.Get(task.ID)
	assert.Equal(t, model.PriorityHigh, got.Priority)

	_, err = s.SetPriority(task.ID, "bogus")
	require.NoError(t, err)
	got, _ = s.Get(task.ID)
	assert.Equal(t, model.PriorityMedium, got.Priority)
}

func TestToggleAll(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("a", "", "", "")
	b, _ := s.Add("b", "", "", "")

	// mixed state completes everything
	_, err := s.Toggle(a.ID)
	require.NoError(t, err)
	require.NoError(t, s.ToggleAll())
	for _, task := range s.Tasks() {
		assert.True(t, task.Completed)
	}

	// all complete flips everything back
	require.NoError(t, s.ToggleAll())
	for _, task := range s.Tasks() {
		assert.False(t, task.Completed)
	}
	_ = b
}

func TestClearCompleted(t *testing.T) {
	s, _ := newTestStore(t)
	a, _ := s.Add("keep", "", "", "")
	b, _ := s.Add("drop", "", "", "")
	_, err := s.Toggle(b.ID)
	require.NoError(t, err)

	removed, err := s.ClearCompleted()
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, a.ID, s.Tasks()[0].ID)
}

func TestClearAll(t *testing.T) {
	s, path := newTestStore(t)
	_, _ = s.Add("a", "", "", "")
	_, _ = s.Add("b", "", "", "")

	removed, err := s.ClearAll()
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Close())

	// the slot is gone, not rewritten as an empty array
	kv, err := OpenKV(path)
	require.NoError(t, err)
	defer kv.Close()
	_, ok, err := kv.Get(slotKey)
	require.NoError(t, err)
	assert.False(t, ok)

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()
	assert.Equal(t, 0, reopened.Len())
}

func TestImportMerge(t *testing.T) {
	s, _ := newTestStore(t)
	_, _ = s.Add("existing", "", "", "")

	added, err := s.ImportMerge([]model.Task{
		{ID: 42, Text: "imported", CreatedAt: "2023-01-01T00:00:00Z"},
		{ID: 43, Text: "imported bad due", DueDate: "junk", Priority: "urgent"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	require.Equal(t, 3, s.Len())

	tasks := s.Tasks()
	assert.Equal(t, int64(42), tasks[1].ID, "imported ids kept verbatim")
	assert.Equal(t, model.PriorityMedium, tasks[1].Priority)
	assert.Empty(t, tasks[2].DueDate, "malformed due date sanitized")
	assert.Equal(t, model.PriorityMedium, tasks[2].Priority)
}

func TestImportMerge_EmptyIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	_, _ = s.Add("existing", "", "", "")

	added, err := s.ImportMerge(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 1, s.Len())
}

func TestImportJSON_InvalidAborts(t *testing.T) {
	s, _ := newTestStore(t)
	_, _ = s.Add("existing", "", "", "")

	_, err := s.ImportJSON([]byte("nonsense"))
	require.Error(t, err)
	assert.Equal(t, 1, s.Len(), "no partial merge on parse failure")
}

func TestExportImportRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)
	_, _ = s.Add("a", "2024-06-01", "09:00", model.PriorityHigh)
	_, _ = s.Add("b", "", "", "")

	data, err := s.ExportJSON()
	require.NoError(t, err)

	other, _ := newTestStore(t)
	added, err := other.ImportJSON(data)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	want := s.Tasks()
	got := other.Tasks()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i])
	}
}

func TestImportJSON_EmptyArray(t *testing.T) {
	s, _ := newTestStore(t)
	added, err := s.ImportJSON([]byte("[]"))
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}
