// Package store owns the task collection and its single-slot persistence.
//
// The whole collection serializes as one JSON array into one slot; every
// mutation rewrites the slot in full. An unparseable slot is logged and
// reset to an empty collection rather than surfaced as an error.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/todocal/todocal/internal/logger"
	"github.com/todocal/todocal/internal/model"
)

// slotKey is the single persisted slot holding the task collection.
const slotKey = "tasks"

// ErrEmptyText is returned when adding or renaming a task with blank text.
var ErrEmptyText = errors.New("task text is empty")

// Store holds the in-memory task collection backed by one KV slot.
type Store struct {
	kv     *KV
	tasks  []model.Task
	lastID int64
}

// Open opens the slot store at dbPath and loads the collection.
func Open(dbPath string) (*Store, error) {
	kv, err := OpenKV(dbPath)
	if err != nil {
		return nil, err
	}
	s := &Store{kv: kv}
	s.load()
	return s, nil
}

// OpenDefault opens the store at the default path.
func OpenDefault() (*Store, error) {
	path, err := DefaultDBPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Close closes the underlying slot store.
func (s *Store) Close() error {
	return s.kv.Close()
}

// load reads the persisted slot. A missing slot starts empty; a slot that
// does not parse as a task array is logged and reset to empty. Every loaded
// task is normalized (priority defaulted, malformed due fields cleared).
func (s *Store) load() {
	s.tasks = []model.Task{}

	raw, ok, err := s.kv.Get(slotKey)
	if err != nil {
		logger.Error("Failed to read task slot", logger.F("error", err))
		return
	}
	if !ok {
		return
	}

	var tasks []model.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		logger.Error("Failed to parse task slot, resetting to empty", logger.F("error", err))
		return
	}
	for i := range tasks {
		tasks[i].Normalize()
		if tasks[i].ID > s.lastID {
			s.lastID = tasks[i].ID
		}
	}
	s.tasks = tasks
}

// Save serializes the full collection and writes it back to the slot.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := s.kv.Set(slotKey, string(data)); err != nil {
		return fmt.Errorf("failed to write task slot: %w", err)
	}
	return nil
}

// Tasks returns the live collection in its current order. Callers must not
// reorder it directly; taskview.Sort goes through SetOrder so the new order
// persists.
func (s *Store) Tasks() []model.Task {
	return s.tasks
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id int64) (model.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// nextID derives a new unique id from the current timestamp in
// milliseconds, bumping past the last issued id on collision.
func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// Add appends a new task. Text must be non-empty after trimming; blank
// due date and time normalize to absent.
func (s *Store) Add(text, dueDate, dueTime, priority string) (model.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Task{}, ErrEmptyText
	}

	t := model.NewTask(s.nextID(), text)
	t.DueDate = strings.TrimSpace(dueDate)
	t.DueTime = strings.TrimSpace(dueTime)
	if model.ValidPriority(priority) {
		t.Priority = priority
	}
	t.Normalize()

	s.tasks = append(s.tasks, t)
	if err := s.Save(); err != nil {
		return model.Task{}, err
	}
	logger.Debug("Task added", logger.F("id", t.ID), logger.F("due", t.DueDate))
	return t, nil
}

// Remove deletes the task with the given id. Removing an absent id is a
// no-op, not an error.
func (s *Store) Remove(id int64) (bool, error) {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true, s.Save()
		}
	}
	return false, nil
}

// Toggle flips the completion flag of the task with the given id.
func (s *Store) Toggle(id int64) (bool, error) {
	return s.update(id, func(t *model.Task) {
		t.Completed = !t.Completed
	})
}

// SetCompleted sets the completion flag of the task with the given id.
func (s *Store) SetCompleted(id int64, completed bool) (bool, error) {
	return s.update(id, func(t *model.Task) {
		t.Completed = completed
	})
}

// SetText replaces the task text. Blank text is rejected.
func (s *Store) SetText(id int64, text string) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, ErrEmptyText
	}
	return s.update(id, func(t *model.Task) {
		t.Text = text
	})
}

// SetDue replaces the due date and time. Blank values clear them; a time
// without a date is dropped.
func (s *Store) SetDue(id int64, dueDate, dueTime string) (bool, error) {
	return s.update(id, func(t *model.Task) {
		t.DueDate = strings.TrimSpace(dueDate)
		t.DueTime = strings.TrimSpace(dueTime)
		t.Normalize()
	})
}

// SetPriority replaces the task priority. Unknown values coerce to medium.
func (s *Store) SetPriority(id int64, priority string) (bool, error) {
	if !model.ValidPriority(priority) {
		priority = model.PriorityMedium
	}
	return s.update(id, func(t *model.Task) {
		t.Priority = priority
	})
}

// update applies fn to the task with the given id and persists. An absent
// id is a no-op.
func (s *Store) update(id int64, fn func(*model.Task)) (bool, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			fn(&s.tasks[i])
			return true, s.Save()
		}
	}
	return false, nil
}

// ToggleAll sets every task to the negation of "are they all completed":
// all done flips everything back to active, anything else completes the lot.
func (s *Store) ToggleAll() error {
	allCompleted := len(s.tasks) > 0
	for _, t := range s.tasks {
		if !t.Completed {
			allCompleted = false
			break
		}
	}
	for i := range s.tasks {
		s.tasks[i].Completed = !allCompleted
	}
	return s.Save()
}

// ClearCompleted removes every completed task and returns how many went.
func (s *Store) ClearCompleted() (int, error) {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, s.Save()
}

// ClearAll empties the collection and returns how many tasks were removed.
// The slot itself is deleted; the next load starts empty either way.
func (s *Store) ClearAll() (int, error) {
	removed := len(s.tasks)
	s.tasks = []model.Task{}
	if err := s.kv.Delete(slotKey); err != nil {
		return removed, fmt.Errorf("failed to delete task slot: %w", err)
	}
	return removed, nil
}

// ImportMerge appends externally supplied tasks to the end of the
// collection. Records are sanitized (priority defaulted, malformed due
// fields cleared) but otherwise kept verbatim, ids included.
func (s *Store) ImportMerge(tasks []model.Task) (int, error) {
	if len(tasks) == 0 {
		return 0, nil
	}
	for _, t := range tasks {
		t.Normalize()
		s.tasks = append(s.tasks, t)
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return len(tasks), s.Save()
}

// ExportJSON returns the full collection as a pretty-printed JSON array.
func (s *Store) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.tasks, "", "  ")
}

// ImportJSON parses data as a JSON task array and merges it in. A parse
// failure aborts with no partial merge.
func (s *Store) ImportJSON(data []byte) (int, error) {
	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return 0, fmt.Errorf("not a valid task array: %w", err)
	}
	return s.ImportMerge(tasks)
}

// SetOrder replaces the collection order with tasks and persists it.
// Sorting owns the reordering; the store only records the result. The
// slice must be a permutation of the current collection.
func (s *Store) SetOrder(tasks []model.Task) error {
	s.tasks = tasks
	return s.Save()
}
