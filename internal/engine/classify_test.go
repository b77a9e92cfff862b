package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func taskDue(due *time.Time) Task {
	return Task{Text: "t", DueDate: due}
}

func TestDueStatusOf(t *testing.T) {
	now := time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	assert.Equal(t, DueNone, DueStatusOf(taskDue(nil), now))
	assert.Equal(t, DueOverdue, DueStatusOf(taskDue(&yesterday), now))
	assert.Equal(t, DueToday, DueStatusOf(taskDue(&now), now))
	assert.Equal(t, DueUpcoming, DueStatusOf(taskDue(&tomorrow), now))
}

func TestDueStatusIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2026, time.March, 2, 0, 5, 0, 0, time.UTC)

	lateToday := time.Date(2026, time.March, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DueToday, DueStatusOf(taskDue(&lateToday), now))

	lateYesterday := time.Date(2026, time.March, 1, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DueOverdue, DueStatusOf(taskDue(&lateYesterday), now))

	earlyTomorrow := time.Date(2026, time.March, 3, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, DueUpcoming, DueStatusOf(taskDue(&earlyTomorrow), now))
}

func TestCategoriesFirstSeenDistinct(t *testing.T) {
	s := newTestStore()
	s.Create("1", PriorityMedium, nil, "work")
	s.Create("2", PriorityMedium, nil, "")
	s.Create("3", PriorityMedium, nil, "home")
	s.Create("4", PriorityMedium, nil, "work")
	s.Create("5", PriorityMedium, nil, "errands")

	assert.Equal(t, []string{"work", "home", "errands"}, Categories(s.All()))
}

func TestCategoriesEmptyInput(t *testing.T) {
	assert.Empty(t, Categories(nil))
}

func TestStats(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -2)
	future := now.AddDate(0, 0, 2)

	s := newTestStore()
	s.Create("overdue", PriorityMedium, &past, "")
	s.Create("upcoming", PriorityMedium, &future, "")
	s.Create("undated", PriorityMedium, nil, "")
	done, _ := s.Create("done but past due", PriorityMedium, &past, "")
	s.Toggle(done.ID)

	sum := Stats(s.All(), now)

	assert.Equal(t, Summary{Total: 4, Active: 3, Completed: 1, Overdue: 1}, sum)
}
