package engine

import "strings"

// CompletionFilter selects tasks by completion state.
type CompletionFilter int

const (
	CompletionAll CompletionFilter = iota
	CompletionActive
	CompletionCompleted
)

func (f CompletionFilter) String() string {
	switch f {
	case CompletionActive:
		return "active"
	case CompletionCompleted:
		return "completed"
	default:
		return "all"
	}
}

type categoryFilterKind int

const (
	catAny categoryFilterKind = iota
	catNone
	catNamed
)

// CategoryFilter selects tasks by category: everything, only tasks without
// one, or an exact name.
type CategoryFilter struct {
	kind categoryFilterKind
	name string
}

func AnyCategory() CategoryFilter { return CategoryFilter{kind: catAny} }

func Uncategorized() CategoryFilter { return CategoryFilter{kind: catNone} }

func CategoryNamed(name string) CategoryFilter {
	return CategoryFilter{kind: catNamed, name: name}
}

func (f CategoryFilter) String() string {
	switch f.kind {
	case catNone:
		return "uncategorized"
	case catNamed:
		return f.name
	default:
		return "all"
	}
}

func (f CategoryFilter) matches(t Task) bool {
	switch f.kind {
	case catNone:
		return t.Category == nil
	case catNamed:
		return t.Category != nil && *t.Category == f.name
	default:
		return true
	}
}

// Filter returns the subsequence matching all three predicates, preserving
// the relative order of the input. Search is a case-insensitive substring
// match; empty search matches everything.
func Filter(tasks []Task, search string, cf CompletionFilter, cat CategoryFilter) []Task {
	needle := strings.ToLower(search)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !strings.Contains(strings.ToLower(t.Text), needle) {
			continue
		}
		if cf == CompletionActive && t.Completed {
			continue
		}
		if cf == CompletionCompleted && !t.Completed {
			continue
		}
		if !cat.matches(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}
