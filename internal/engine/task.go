package engine

import (
	"time"

	"github.com/google/uuid"
)

// Priority ranks a task's urgency. Higher values sort first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "medium"
	}
}

// Task is a single entry in the list. ID and CreatedAt are set once by the
// store and never change; everything else is mutated through the store.
type Task struct {
	ID        uuid.UUID
	Text      string
	Completed bool
	CreatedAt time.Time
	Priority  Priority
	DueDate   *time.Time
	Category  *string
}

func (t Task) HasDueDate() bool { return t.DueDate != nil }

func (t Task) HasCategory() bool { return t.Category != nil }

// CategoryName returns the category, or "" when the task has none. The
// store never holds an empty category, so "" is unambiguous here.
func (t Task) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return *t.Category
}
