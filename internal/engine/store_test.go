package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

// newTestStore pins the clock so every created task gets a later CreatedAt
// than the one before it.
func newTestStore() *Store {
	s := NewStore()
	tick := 0
	s.now = func() time.Time {
		tick++
		return testBase.Add(time.Duration(tick) * time.Minute)
	}
	return s
}

func TestCreateAppendsTrimmedTask(t *testing.T) {
	s := newTestStore()

	task, ok := s.Create("  Buy milk  ", PriorityHigh, nil, "")
	require.True(t, ok)

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, "Buy milk", all[0].Text)
	assert.Equal(t, PriorityHigh, all[0].Priority)
	assert.False(t, all[0].Completed)
	assert.Nil(t, all[0].DueDate)
	assert.Nil(t, all[0].Category)
	assert.Equal(t, task.ID, all[0].ID)
	assert.False(t, all[0].CreatedAt.IsZero())
}

func TestCreateBlankTextIsNoOp(t *testing.T) {
	s := newTestStore()
	s.Create("keep me", PriorityMedium, nil, "")

	_, ok := s.Create("   ", PriorityMedium, nil, "")
	assert.False(t, ok)
	_, ok = s.Create("", PriorityLow, nil, "")
	assert.False(t, ok)

	assert.Equal(t, 1, s.Len())
}

func TestCreateNormalizesCategory(t *testing.T) {
	s := newTestStore()

	withCat, _ := s.Create("a", PriorityMedium, nil, "  home ")
	require.NotNil(t, withCat.Category)
	assert.Equal(t, "home", *withCat.Category)

	without, _ := s.Create("b", PriorityMedium, nil, "   ")
	assert.Nil(t, without.Category)
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s := newTestStore()
	seen := make(map[uuid.UUID]struct{})
	for i := 0; i < 50; i++ {
		task, ok := s.Create("task", PriorityMedium, nil, "")
		require.True(t, ok)
		_, dup := seen[task.ID]
		require.False(t, dup)
		seen[task.ID] = struct{}{}
	}
}

func TestUpdateReplacesMutableFieldsOnly(t *testing.T) {
	s := newTestStore()
	s.Create("first", PriorityLow, nil, "")
	target, _ := s.Create("second", PriorityLow, nil, "old")
	s.Create("third", PriorityLow, nil, "")

	require.NoError(t, s.Toggle(target.ID))

	due := testBase.AddDate(0, 0, 3)
	require.NoError(t, s.Update(target.ID, " renamed ", PriorityHigh, &due, " work "))

	all := s.All()
	got := all[1]
	assert.Equal(t, "renamed", got.Text)
	assert.Equal(t, PriorityHigh, got.Priority)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	require.NotNil(t, got.Category)
	assert.Equal(t, "work", *got.Category)

	// Identity fields and position survive the update.
	assert.Equal(t, target.ID, got.ID)
	assert.True(t, got.CreatedAt.Equal(target.CreatedAt))
	assert.True(t, got.Completed)
}

func TestUpdateBlankTextSkipsSilently(t *testing.T) {
	s := newTestStore()
	task, _ := s.Create("unchanged", PriorityMedium, nil, "home")

	require.NoError(t, s.Update(task.ID, "   ", PriorityHigh, nil, ""))

	got := s.All()[0]
	assert.Equal(t, "unchanged", got.Text)
	assert.Equal(t, PriorityMedium, got.Priority)
	require.NotNil(t, got.Category)
	assert.Equal(t, "home", *got.Category)
}

func TestUpdateClearsOptionalFields(t *testing.T) {
	s := newTestStore()
	due := testBase.AddDate(0, 0, 1)
	task, _ := s.Create("t", PriorityMedium, &due, "home")

	require.NoError(t, s.Update(task.ID, "t", PriorityMedium, nil, ""))

	got := s.All()[0]
	assert.Nil(t, got.DueDate)
	assert.Nil(t, got.Category)
}

func TestDeletePreservesRemainingOrder(t *testing.T) {
	s := newTestStore()
	a, _ := s.Create("a", PriorityMedium, nil, "")
	b, _ := s.Create("b", PriorityMedium, nil, "")
	c, _ := s.Create("c", PriorityMedium, nil, "")

	require.NoError(t, s.Delete(b.ID))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, a.ID, all[0].ID)
	assert.Equal(t, c.ID, all[1].ID)
}

func TestToggleTwiceRestoresState(t *testing.T) {
	s := newTestStore()
	task, _ := s.Create("t", PriorityMedium, nil, "")

	require.NoError(t, s.Toggle(task.ID))
	assert.True(t, s.All()[0].Completed)

	require.NoError(t, s.Toggle(task.ID))
	assert.False(t, s.All()[0].Completed)
}

func TestMutatorsSignalNotFoundAfterDelete(t *testing.T) {
	s := newTestStore()
	task, _ := s.Create("t", PriorityMedium, nil, "")
	require.NoError(t, s.Delete(task.ID))

	assert.ErrorIs(t, s.Update(task.ID, "x", PriorityLow, nil, ""), ErrNotFound)
	assert.ErrorIs(t, s.Toggle(task.ID), ErrNotFound)
	assert.ErrorIs(t, s.Delete(task.ID), ErrNotFound)
}

func TestAllReturnsSnapshot(t *testing.T) {
	s := newTestStore()
	s.Create("a", PriorityMedium, nil, "")

	view := s.All()
	view[0].Text = "mutated"

	assert.Equal(t, "a", s.All()[0].Text)
}
