package model

import (
	"strings"
	"time"
)

// Priority levels for tasks
const (
	PriorityHigh   = "high"   // Red
	PriorityMedium = "medium" // Yellow (default)
	PriorityLow    = "low"    // Green
)

// Task represents a single todo item
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
	DueDate   string `json:"dueDate,omitempty"` // YYYY-MM-DD, empty means no due date
	DueTime   string `json:"dueTime,omitempty"` // HH:MM, only meaningful with DueDate
	Priority  string `json:"priority"`
}

// NewTask creates a new task with defaults
func NewTask(id int64, text string) Task {
	return Task{
		ID:        id,
		Text:      text,
		Completed: false,
		CreatedAt: time.Now().Format(time.RFC3339),
		Priority:  PriorityMedium,
	}
}

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Normalize coerces a task loaded from persisted or imported JSON into the
// strict shape: missing/unknown priority defaults to medium, malformed due
// fields are cleared, text is trimmed.
func (t *Task) Normalize() {
	t.Text = strings.TrimSpace(t.Text)
	if !ValidPriority(t.Priority) {
		t.Priority = PriorityMedium
	}
	if !ValidDueDate(t.DueDay()) {
		t.DueDate = ""
	}
	if t.DueDate == "" || !ValidDueTime(t.DueTime) {
		t.DueTime = ""
	}
}

// DueDay returns the calendar-day portion of the due date. Data from older
// exports may carry a trailing time component; only the first 10 characters
// (YYYY-MM-DD) take part in any date comparison.
func (t *Task) DueDay() string {
	if len(t.DueDate) > 10 {
		return t.DueDate[:10]
	}
	return t.DueDate
}

// HasDueDate reports whether the task has a due date set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != ""
}

// EffectivePriority returns the task priority with missing or unknown
// values treated as medium.
func (t *Task) EffectivePriority() string {
	if ValidPriority(t.Priority) {
		return t.Priority
	}
	return PriorityMedium
}

// ValidDueDate reports whether s is empty or a well-formed YYYY-MM-DD day.
func ValidDueDate(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidDueTime reports whether s is empty or a well-formed HH:MM time.
func ValidDueTime(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// PriorityLabel returns the display label for a priority value, treating
// anything unknown as medium.
func PriorityLabel(p string) string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityLow:
		return "Low"
	default:
		return "Medium"
	}
}

// OtherPriorities returns the priority levels other than current, in
// high/medium/low order. The edit flow offers these as the choices the
// boundary layer collects from the user.
func OtherPriorities(current string) []string {
	if !ValidPriority(current) {
		current = PriorityMedium
	}
	out := make([]string, 0, 2)
	for _, p := range []string{PriorityHigh, PriorityMedium, PriorityLow} {
		if p != current {
			out = append(out, p)
		}
	}
	return out
}
