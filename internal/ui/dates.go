package ui

import (
	"strconv"
	"strings"
	"time"
)

// parseDueInput turns editor input into an optional due date. Empty means
// no due date. Besides YYYY-MM-DD it accepts the shortcuts "today",
// "tomorrow" and "+Nd" (N days from today), all at midnight local time.
func parseDueInput(v string, now time.Time) (*time.Time, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return nil, nil
	}

	today := midnight(now)
	switch v {
	case "today":
		return &today, nil
	case "tomorrow":
		d := today.AddDate(0, 0, 1)
		return &d, nil
	}
	if days, ok := strings.CutPrefix(v, "+"); ok {
		if n, ok := strings.CutSuffix(days, "d"); ok {
			offset, err := strconv.Atoi(n)
			if err != nil {
				return nil, err
			}
			d := today.AddDate(0, 0, offset)
			return &d, nil
		}
	}

	t, err := time.ParseInLocation("2006-01-02", v, now.Location())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func formatDue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
