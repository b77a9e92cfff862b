package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"maru/internal/engine"
)

// editState holds the field editor over a single task. Values stay strings
// until save, when they are parsed and handed to the store.
type editState struct {
	taskID   uuid.UUID
	text     string
	priority string
	due      string
	category string
	index    int
}

func editFields() []string {
	return []string{
		"text",
		"priority (low/medium/high)",
		"due date (YYYY-MM-DD, today, tomorrow, +7d)",
		"category",
	}
}

func (es editState) currentLabel() string {
	return editFields()[es.index]
}

func (es editState) currentValue() string {
	switch es.index {
	case 0:
		return es.text
	case 1:
		return es.priority
	case 2:
		return es.due
	default:
		return es.category
	}
}

func (es *editState) setCurrentValue(v string) {
	switch es.index {
	case 0:
		es.text = v
	case 1:
		es.priority = v
	case 2:
		es.due = v
	default:
		es.category = v
	}
}

func (m Model) startEdit(t engine.Task) (tea.Model, tea.Cmd) {
	m.edit = &editState{
		taskID:   t.ID,
		text:     t.Text,
		priority: t.Priority.String(),
		due:      formatDue(t.DueDate),
		category: t.CategoryName(),
		index:    0,
	}
	m.input.SetValue(m.edit.currentValue())
	m.input.Placeholder = m.edit.currentLabel()
	m.input.Focus()
	m.mode = modeEdit
	m.status = "Edit: tab/shift+tab to move, enter to save/next, esc to cancel"
	return m, nil
}

func (m Model) updateEditMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case "tab", "down":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.index = wrapIndex(m.edit.index+1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		m.status = m.editPrompt()
		return m, nil
	case "shift+tab", "up":
		m.edit.setCurrentValue(m.input.Value())
		m.edit.index = wrapIndex(m.edit.index-1, len(editFields()))
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		m.status = m.editPrompt()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.edit.setCurrentValue(m.input.Value())
		if m.edit.index >= len(editFields())-1 {
			return m.saveEdit()
		}
		m.edit.index++
		m.input.SetValue(m.edit.currentValue())
		m.input.Placeholder = m.edit.currentLabel()
		m.status = m.editPrompt()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) saveEdit() (tea.Model, tea.Cmd) {
	if m.edit == nil {
		return m, nil
	}
	text := strings.TrimSpace(m.edit.text)
	if text == "" {
		m.status = "Text cannot be empty"
		return m, nil
	}
	priority, err := parsePriority(m.edit.priority)
	if err != nil {
		m.status = fmt.Sprintf("priority invalid: %v", err)
		return m, nil
	}
	due, err := parseDueInput(m.edit.due, time.Now())
	if err != nil {
		m.status = fmt.Sprintf("due date invalid: %v", err)
		return m, nil
	}

	taskID := m.edit.taskID
	if err := m.store.Update(taskID, text, priority, due, m.edit.category); err != nil {
		if errors.Is(err, engine.ErrNotFound) {
			m.status = "Task no longer exists"
		} else {
			m.status = fmt.Sprintf("save failed: %v", err)
		}
		m.edit = nil
		m.mode = modeList
		m.input.Blur()
		return m, nil
	}
	m.log.Info("updated task", zap.String("id", taskID.String()))

	m.edit = nil
	m.mode = modeList
	m.input.Blur()

	for i, t := range m.visible() {
		if t.ID == taskID {
			m.cursor = clampCursor(i, len(m.visible()))
			break
		}
	}
	m.status = "Saved"
	return m, nil
}

func (m Model) editPrompt() string {
	if m.edit == nil {
		return ""
	}
	return fmt.Sprintf("Editing %s (field %d of %d). Enter to advance, Esc to cancel.",
		m.edit.currentLabel(), m.edit.index+1, len(editFields()))
}

func (m Model) currentEditLabel() string {
	if m.edit == nil {
		return ""
	}
	return m.edit.currentLabel()
}

func parsePriority(v string) (engine.Priority, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "medium", "m":
		return engine.PriorityMedium, nil
	case "low", "l":
		return engine.PriorityLow, nil
	case "high", "h":
		return engine.PriorityHigh, nil
	default:
		return engine.PriorityMedium, fmt.Errorf("unknown priority %q", v)
	}
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
