package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"maru/internal/config"
	"maru/internal/engine"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeSearch
)

type Model struct {
	store  *engine.Store
	cfg    config.Config
	log    *zap.Logger
	styles styles

	cursor int
	mode   mode
	input  textinput.Model
	status string

	search   string
	done     engine.CompletionFilter
	catCycle int // 0 all, 1 uncategorized, 2+i the i-th known category

	confirmDel bool
	pendingDel *engine.Task

	edit *editState
}

func Run(store *engine.Store, cfg config.Config, log *zap.Logger) error {
	ti := textinput.New()
	ti.Placeholder = "Task text"
	ti.CharLimit = 256
	ti.Width = 40

	m := Model{
		store:  store,
		cfg:    cfg,
		log:    log,
		styles: newStyles(cfg.DarkMode),
		input:  ti,
		mode:   modeList,
		done:   completionFromName(cfg.DefaultFilter),
		status: "Press 'a' to add, space to toggle, 'd' to delete.",
	}

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func completionFromName(v string) engine.CompletionFilter {
	switch strings.ToLower(v) {
	case "active":
		return engine.CompletionActive
	case "completed", "done":
		return engine.CompletionCompleted
	default:
		return engine.CompletionAll
	}
}

// visible is the view model: the canonical sequence run through the active
// filters. It is recomputed on every read and never stored back.
func (m Model) visible() []engine.Task {
	return engine.Filter(m.store.All(), m.search, m.done, m.categoryFilter())
}

func (m Model) categoryFilter() engine.CategoryFilter {
	switch m.catCycle {
	case 0:
		return engine.AnyCategory()
	case 1:
		return engine.Uncategorized()
	default:
		cats := engine.Categories(m.store.All())
		i := m.catCycle - 2
		if i >= len(cats) {
			return engine.AnyCategory()
		}
		return engine.CategoryNamed(cats[i])
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.edit != nil {
			return m.updateEditMode(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch m.mode {
	case modeAdd:
		return m.updateAddMode(key, msg)
	case modeSearch:
		return m.updateSearchMode(key, msg)
	default:
		return m.updateListMode(key)
	}
}

func (m Model) updateAddMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.status = "Text cannot be empty"
			return m, nil
		}
		task, ok := m.store.Create(text, engine.PriorityMedium, nil, "")
		if ok {
			m.log.Info("added task", zap.String("id", task.ID.String()))
			m.status = "Added task"
			m.cursor = clampCursor(len(m.visible())-1, len(m.visible()))
		}
		m.input.SetValue("")
		m.input.Blur()
		m.mode = modeList
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Search cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		m.search = strings.TrimSpace(m.input.Value())
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		if m.search == "" {
			m.status = "Search cleared"
		} else {
			m.status = fmt.Sprintf("Searching for %q", m.search)
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	vis := m.visible()
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.Down, "down":
		if len(vis) == 0 {
			return m, nil
		}
		m.cursor = clampCursor(m.cursor+1, len(vis))
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(vis))
		}
	case m.cfg.Keys.Add:
		m.mode = modeAdd
		m.input.Placeholder = "Task text"
		m.input.Focus()
		m.status = "Add mode: type the task and press Enter"
	case m.cfg.Keys.Search:
		m.mode = modeSearch
		m.input.Placeholder = "Search"
		m.input.SetValue(m.search)
		m.input.Focus()
		m.status = "Search: type and press Enter, empty clears"
	case m.cfg.Keys.Toggle:
		if len(vis) == 0 {
			return m, nil
		}
		task := vis[m.cursor]
		if err := m.store.Toggle(task.ID); err != nil {
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, nil
		}
		m.log.Debug("toggled task", zap.String("id", task.ID.String()))
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.status = "Toggled task"
	case m.cfg.Keys.Delete:
		if len(vis) == 0 {
			return m, nil
		}
		t := vis[m.cursor]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Text)
	case m.cfg.Keys.Edit:
		if len(vis) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		return m.startEdit(vis[m.cursor])
	case m.cfg.Keys.CycleDone:
		m.done = nextCompletion(m.done)
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.status = fmt.Sprintf("Showing %s tasks", m.done)
	case m.cfg.Keys.CycleCategory:
		cats := engine.Categories(m.store.All())
		m.catCycle = (m.catCycle + 1) % (2 + len(cats))
		m.cursor = clampCursor(m.cursor, len(m.visible()))
		m.status = fmt.Sprintf("Category filter: %s", m.categoryFilter())
	case m.cfg.Keys.SortPriority:
		m.store.SortByPriority()
		m.log.Debug("sorted by priority")
		m.status = "Sorted by priority"
	case m.cfg.Keys.SortDate:
		m.store.SortByDate()
		m.log.Debug("sorted by date")
		m.status = "Sorted by date"
	case m.cfg.Keys.SortCategory:
		m.store.SortByCategory()
		m.log.Debug("sorted by category")
		m.status = "Sorted by category"
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.confirmDel = false
			return m, nil
		}
		if err := m.store.Delete(m.pendingDel.ID); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
		} else {
			m.log.Info("deleted task", zap.String("id", m.pendingDel.ID.String()))
			m.cursor = clampCursor(m.cursor, len(m.visible()))
			m.status = "Deleted task"
		}
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func nextCompletion(f engine.CompletionFilter) engine.CompletionFilter {
	switch f {
	case engine.CompletionAll:
		return engine.CompletionActive
	case engine.CompletionActive:
		return engine.CompletionCompleted
	default:
		return engine.CompletionAll
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
