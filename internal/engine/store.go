package engine

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by mutators referencing an id the store no
// longer holds.
var ErrNotFound = errors.New("task not found")

// Store owns the canonical ordered sequence of tasks. Filtering produces
// views over All(); only the Sort* methods change the stored order.
type Store struct {
	tasks []Task

	// now is swapped out in tests to pin CreatedAt values.
	now func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Create appends a new task with a fresh id. Text is trimmed first; blank
// input is silently ignored and reported via the second return value.
func (s *Store) Create(text string, p Priority, due *time.Time, category string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	t := Task{
		ID:        uuid.New(),
		Text:      text,
		CreatedAt: s.now(),
		Priority:  p,
		DueDate:   cloneTime(due),
		Category:  normalizeCategory(category),
	}
	s.tasks = append(s.tasks, t)
	return t, true
}

// Update replaces the mutable fields of the task with the given id,
// keeping ID, CreatedAt, Completed and its position in the sequence.
// Blank text skips the whole update, mirroring Create's rule.
func (s *Store) Update(id uuid.UUID, text string, p Priority, due *time.Time, category string) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	t := &s.tasks[i]
	t.Text = text
	t.Priority = p
	t.DueDate = cloneTime(due)
	t.Category = normalizeCategory(category)
	return nil
}

// Delete removes the task permanently. Remaining tasks keep their order.
func (s *Store) Delete(id uuid.UUID) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return nil
}

// Toggle flips the completion flag and touches nothing else.
func (s *Store) Toggle(id uuid.UUID) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return nil
}

// All returns a snapshot of the current order. Callers may not mutate the
// store through it.
func (s *Store) All() []Task {
	return slices.Clone(s.tasks)
}

func (s *Store) Len() int { return len(s.tasks) }

// SortByPriority reorders the stored sequence high, medium, low. Ties keep
// their current relative order.
func (s *Store) SortByPriority() {
	slices.SortStableFunc(s.tasks, func(a, b Task) int {
		return int(b.Priority) - int(a.Priority)
	})
}

// SortByDate reorders ascending by due date, falling back to CreatedAt for
// tasks without one.
func (s *Store) SortByDate() {
	slices.SortStableFunc(s.tasks, func(a, b Task) int {
		return effectiveDate(a).Compare(effectiveDate(b))
	})
}

// SortByCategory reorders lexicographically by category name, with
// uncategorized tasks after every named one.
func (s *Store) SortByCategory() {
	slices.SortStableFunc(s.tasks, func(a, b Task) int {
		switch {
		case a.Category == nil && b.Category == nil:
			return 0
		case a.Category == nil:
			return 1
		case b.Category == nil:
			return -1
		default:
			return strings.Compare(*a.Category, *b.Category)
		}
	})
}

func (s *Store) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.tasks, func(t Task) bool { return t.ID == id })
}

func effectiveDate(t Task) time.Time {
	if t.DueDate != nil {
		return *t.DueDate
	}
	return t.CreatedAt
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// normalizeCategory trims the input and maps blank to absent, so "" is
// never stored as a category.
func normalizeCategory(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
