package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"maru/internal/config"
	"maru/internal/engine"
)

type styles struct {
	title    lipgloss.Style
	dim      lipgloss.Style
	done     lipgloss.Style
	overdue  lipgloss.Style
	dueToday lipgloss.Style
	upcoming lipgloss.Style
	category lipgloss.Style
	high     lipgloss.Style
	low      lipgloss.Style
}

func newStyles(dark bool) styles {
	dimColor := lipgloss.Color("243")
	if !dark {
		dimColor = lipgloss.Color("245")
	}
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		dim:      lipgloss.NewStyle().Foreground(dimColor),
		done:     lipgloss.NewStyle().Foreground(dimColor).Strikethrough(true),
		overdue:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dueToday: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		upcoming: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		category: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		high:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		low:      lipgloss.NewStyle().Foreground(dimColor),
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("maru"))
	b.WriteString("\n\n")

	if m.edit != nil {
		b.WriteString("Edit task (tab/shift+tab to move, enter to save/next, esc to cancel)")
		b.WriteString("\n\n")
		b.WriteString(m.renderEditBox())
		b.WriteString("\n")
		b.WriteString("Field: " + m.currentEditLabel())
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(m.status)
		return b.String()
	}

	b.WriteString(m.renderSummary())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n\n")

	vis := m.visible()
	if len(vis) == 0 {
		if m.store.Len() == 0 {
			b.WriteString("No tasks yet. Press 'a' to add one.")
		} else {
			b.WriteString("No tasks match the current filters.")
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList(vis))
	}

	b.WriteString("\n")
	switch m.mode {
	case modeAdd:
		b.WriteString("Add task: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeSearch:
		b.WriteString("Search: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.styles.dim.Render(renderHelp(m.cfg.Keys)))

	return b.String()
}

func (m Model) renderSummary() string {
	sum := engine.Stats(m.store.All(), time.Now())
	line := fmt.Sprintf("%d tasks • %d active • %d done", sum.Total, sum.Active, sum.Completed)
	if sum.Overdue > 0 {
		line += " • " + m.styles.overdue.Render(fmt.Sprintf("%d overdue", sum.Overdue))
	}
	return line
}

func (m Model) renderFilters() string {
	parts := []string{
		"showing: " + m.done.String(),
		"category: " + m.categoryFilter().String(),
	}
	if m.search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.search))
	}
	return m.styles.dim.Render(strings.Join(parts, " • "))
}

func (m Model) renderTaskList(vis []engine.Task) string {
	now := time.Now()
	var b strings.Builder
	for i, t := range vis {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = ">"
		}

		checkbox := "[ ]"
		if t.Completed {
			checkbox = "[x]"
		}

		text := t.Text
		if t.Completed {
			text = m.styles.done.Render(text)
		}

		b.WriteString(fmt.Sprintf("%s %s %s%s", cursor, checkbox, m.priorityMarker(t.Priority), text))

		if badge := m.dueBadge(t, now); badge != "" {
			b.WriteString("  " + badge)
		}
		if t.HasCategory() {
			b.WriteString("  " + m.styles.category.Render("#"+t.CategoryName()))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) priorityMarker(p engine.Priority) string {
	switch p {
	case engine.PriorityHigh:
		return m.styles.high.Render("! ")
	case engine.PriorityLow:
		return m.styles.low.Render("~ ")
	default:
		return ""
	}
}

func (m Model) dueBadge(t engine.Task, now time.Time) string {
	status := engine.DueStatusOf(t, now)
	if status == engine.DueNone {
		return ""
	}
	label := fmt.Sprintf("%s (%s)", formatDue(t.DueDate), status)
	switch status {
	case engine.DueOverdue:
		return m.styles.overdue.Render(label)
	case engine.DueToday:
		return m.styles.dueToday.Render(label)
	default:
		return m.styles.upcoming.Render(label)
	}
}

func (m Model) renderEditBox() string {
	if m.edit == nil {
		return ""
	}
	fields := editFields()
	values := []string{
		m.edit.text,
		m.edit.priority,
		m.edit.due,
		m.edit.category,
	}
	var b strings.Builder
	for i, name := range fields {
		prefix := " "
		if i == m.edit.index {
			prefix = ">"
		}
		val := values[i]
		if strings.TrimSpace(val) == "" {
			val = "(empty)"
		}
		b.WriteString(fmt.Sprintf("%s %-44s : %s\n", prefix, name, val))
	}
	return b.String()
}

func renderHelp(k config.Keymap) string {
	return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s edit • %s search • %s filter • %s category • %s/%s/%s sort • %s quit",
		k.Up, k.Down, k.Add, k.Toggle, k.Delete, k.Edit, k.Search, k.CycleDone, k.CycleCategory,
		k.SortPriority, k.SortDate, k.SortCategory, k.Quit)
}
