// Package tui implements the terminal board over the entity services.
package tui

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/quadodev/quado/internal/config"
	"github.com/quadodev/quado/internal/models"
	"github.com/quadodev/quado/internal/reminder"
	"github.com/quadodev/quado/internal/services/board"
	"github.com/quadodev/quado/internal/services/group"
	"github.com/quadodev/quado/internal/services/settings"
	"github.com/quadodev/quado/internal/services/task"
)

// Mode is the current interaction mode; it decides where key presses go
type Mode int

const (
	ModeNormal Mode = iota
	ModeTaskForm
	ModeGroupInput
	ModeConfirmDeleteTask
	ModeConfirmDeleteGroup
	ModeDetail
	ModeHelp
)

// Services bundles everything the board talks to
type Services struct {
	Groups   group.Service
	Tasks    task.Service
	Settings settings.Service
	Board    board.Service
}

// allGroups is the group filter value that shows every group's tasks
const allGroups = -1

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	svcs   Services
	cfg    *config.Config
	gate   *reminder.Gate
	styles Styles

	groups   []*models.Group
	tasks    []*models.Task
	settings models.Settings

	width  int
	height int
	mode   Mode

	// groupFilter indexes into groups, or allGroups
	groupFilter int
	// pane is the selected quadrant in cards mode
	pane models.Quadrant
	// cursor is the selected row within the pane (cards) or list
	cursor int

	form       *taskForm
	input      *groupInput
	pendTask   *models.Task
	pendGroup  *models.Group
	detailTask *models.Task

	statusLine      string
	reminderShowing bool
}

// InitialModel creates the TUI model and loads the first board snapshot
func InitialModel(ctx context.Context, svcs Services, cfg *config.Config, gate *reminder.Gate) Model {
	m := Model{
		ctx:         ctx,
		svcs:        svcs,
		cfg:         cfg,
		gate:        gate,
		styles:      newStyles(cfg.ColorScheme),
		groupFilter: allGroups,
	}
	if err := m.refresh(); err != nil {
		slog.Error("failed to load initial board", "error", err)
	}
	return m
}

// Init starts the reminder ticker.
// Implements the tea.Model interface.
func (m Model) Init() tea.Cmd {
	return m.reminderTick()
}

// refresh reloads the whole board and clamps the selection to it
func (m *Model) refresh() error {
	b, err := m.svcs.Board.GetBoard(m.ctx)
	if err != nil {
		return err
	}
	m.groups = b.Groups
	m.tasks = b.Tasks
	m.settings = b.Settings

	if m.groupFilter >= len(m.groups) {
		m.groupFilter = allGroups
	}
	m.clampCursor()
	return nil
}

// currentGroup returns the filtered group, or nil when showing all groups
func (m *Model) currentGroup() *models.Group {
	if m.groupFilter == allGroups || m.groupFilter >= len(m.groups) {
		return nil
	}
	return m.groups[m.groupFilter]
}

// groupName resolves a group ID for display
func (m *Model) groupName(id int64) string {
	for _, g := range m.groups {
		if g.ID == id {
			return g.Name
		}
	}
	return ""
}

// visibleTasks applies the group filter and the hide-done preference,
// preserving the most-recently-updated order the store returns
func (m *Model) visibleTasks() []*models.Task {
	current := m.currentGroup()

	visible := make([]*models.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if current != nil && t.GroupID != current.ID {
			continue
		}
		if m.settings.HideDone && t.Status == models.StatusDone {
			continue
		}
		visible = append(visible, t)
	}
	return visible
}

// paneTasks buckets the visible tasks into one quadrant
func (m *Model) paneTasks(q models.Quadrant) []*models.Task {
	var bucket []*models.Task
	for _, t := range m.visibleTasks() {
		if t.Quadrant() == q {
			bucket = append(bucket, t)
		}
	}
	return bucket
}

// currentTasks returns the rows the cursor moves over in the active view
func (m *Model) currentTasks() []*models.Task {
	if m.settings.ViewMode == models.ViewModeList {
		return m.visibleTasks()
	}
	return m.paneTasks(m.pane)
}

// selectedTask returns the task under the cursor, or nil
func (m *Model) selectedTask() *models.Task {
	tasks := m.currentTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return tasks[m.cursor]
}

// clampCursor keeps the cursor inside the current row set
func (m *Model) clampCursor() {
	n := len(m.currentTasks())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setStatus puts transient feedback in the status bar
func (m *Model) setStatus(line string) {
	m.statusLine = line
}
