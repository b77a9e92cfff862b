package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maru/internal/engine"
)

func TestParseDueInput(t *testing.T) {
	now := time.Date(2026, time.March, 2, 15, 45, 0, 0, time.UTC)
	today := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	got, err := parseDueInput("", now)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseDueInput("today", now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(today))

	got, err = parseDueInput("tomorrow", now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(today.AddDate(0, 0, 1)))

	got, err = parseDueInput("+7d", now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(today.AddDate(0, 0, 7)))

	got, err = parseDueInput("2026-04-01", now)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDueInputRejectsGarbage(t *testing.T) {
	now := time.Now()
	for _, in := range []string{"soonish", "+xd", "03/02/2026"} {
		_, err := parseDueInput(in, now)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParsePriority(t *testing.T) {
	cases := map[string]engine.Priority{
		"":       engine.PriorityMedium,
		"medium": engine.PriorityMedium,
		"LOW":    engine.PriorityLow,
		" high ": engine.PriorityHigh,
		"h":      engine.PriorityHigh,
		"l":      engine.PriorityLow,
	}
	for in, want := range cases {
		got, err := parsePriority(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := parsePriority("urgent")
	assert.Error(t, err)
}
