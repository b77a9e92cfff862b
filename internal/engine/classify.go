package engine

import "time"

// DueStatus classifies a task's due date against the current day.
type DueStatus int

const (
	DueNone DueStatus = iota
	DueOverdue
	DueToday
	DueUpcoming
)

func (d DueStatus) String() string {
	switch d {
	case DueOverdue:
		return "overdue"
	case DueToday:
		return "due today"
	case DueUpcoming:
		return "upcoming"
	default:
		return "none"
	}
}

// DueStatusOf compares the date portion of the task's due date with the
// date portion of now. Both sides are reduced to midnight first so
// time-of-day never shifts the result across a day boundary.
func DueStatusOf(t Task, now time.Time) DueStatus {
	if t.DueDate == nil {
		return DueNone
	}
	due := dateOnly(*t.DueDate)
	today := dateOnly(now)
	switch {
	case due.Before(today):
		return DueOverdue
	case due.Equal(today):
		return DueToday
	default:
		return DueUpcoming
	}
}

// Categories returns the distinct category names present in the sequence,
// in first-seen order.
func Categories(tasks []Task) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tasks {
		if t.Category == nil {
			continue
		}
		if _, ok := seen[*t.Category]; ok {
			continue
		}
		seen[*t.Category] = struct{}{}
		out = append(out, *t.Category)
	}
	return out
}

// Summary holds the counts shown in the status area. It is recomputed from
// the sequence on every read, never cached.
type Summary struct {
	Total     int
	Active    int
	Completed int
	Overdue   int
}

func Stats(tasks []Task, now time.Time) Summary {
	var sum Summary
	sum.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			sum.Completed++
			continue
		}
		sum.Active++
		if DueStatusOf(t, now) == DueOverdue {
			sum.Overdue++
		}
	}
	return sum
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
