package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/quadodev/quado/internal/models"
	"github.com/quadodev/quado/internal/services/task"
)

// handleNormalMode dispatches key events in ModeNormal
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.cfg.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return m, tea.Quit
	case km.ShowHelp:
		m.mode = ModeHelp
		return m, nil

	// Tasks
	case km.AddTask:
		return m.openAddTask()
	case km.EditTask:
		return m.openEditTask()
	case km.ViewTask:
		return m.openDetail()
	case km.DeleteTask:
		return m.confirmDeleteTask()
	case km.ToggleDone:
		return m.toggleDone()
	case km.CycleStatus:
		return m.cycleStatus()
	case km.ToggleImportant:
		return m.toggleFlag(func(req *task.UpsertTaskRequest) { req.Important = !req.Important })
	case km.ToggleUrgent:
		return m.toggleFlag(func(req *task.UpsertTaskRequest) { req.Urgent = !req.Urgent })

	// Groups
	case km.CreateGroup:
		return m.openCreateGroup()
	case km.RenameGroup:
		return m.openRenameGroup()
	case km.DeleteGroup:
		return m.confirmDeleteGroup()
	case km.PrevGroup:
		return m.cycleGroupFilter(-1)
	case km.NextGroup:
		return m.cycleGroupFilter(1)

	// Navigation
	case km.PrevTask, "up":
		m.cursor--
		m.clampCursor()
		return m, nil
	case km.NextTask, "down":
		m.cursor++
		m.clampCursor()
		return m, nil
	case km.PrevPane, "left":
		return m.movePane(-1)
	case km.NextPane, "right":
		return m.movePane(1)

	// View
	case km.ToggleView:
		next := models.ViewModeList
		if m.settings.ViewMode == models.ViewModeList {
			next = models.ViewModeCards
		}
		return m.saveSettings(func(s *models.Settings) { s.ViewMode = next })
	case km.ToggleHideDone:
		return m.saveSettings(func(s *models.Settings) { s.HideDone = !s.HideDone })
	case km.ToggleConcise:
		return m.saveSettings(func(s *models.Settings) { s.ConciseMode = !s.ConciseMode })
	}

	return m, nil
}

// movePane changes the selected quadrant in cards mode
func (m Model) movePane(delta int) (tea.Model, tea.Cmd) {
	if m.settings.ViewMode != models.ViewModeCards {
		return m, nil
	}
	quadrants := models.Quadrants()
	next := (int(m.pane) + delta + len(quadrants)) % len(quadrants)
	m.pane = quadrants[next]
	m.clampCursor()
	return m, nil
}

// cycleGroupFilter steps through all-groups plus every group
func (m Model) cycleGroupFilter(delta int) (tea.Model, tea.Cmd) {
	// Positions: allGroups, 0, 1, ... len-1, wrapping around
	span := len(m.groups) + 1
	pos := m.groupFilter + 1
	pos = (pos + delta + span) % span
	m.groupFilter = pos - 1
	m.cursor = 0
	return m, nil
}

// openDetail shows the selected task's content as rendered markdown
func (m Model) openDetail() (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil {
		return m, nil
	}
	m.detailTask = t
	m.mode = ModeDetail
	return m, nil
}

// toggleDone flips the done checkbox. Unchecking always lands on todo,
// never on a remembered doing state; the checkbox is that simple on purpose.
func (m Model) toggleDone() (tea.Model, tea.Cmd) {
	return m.mutateSelected(func(req *task.UpsertTaskRequest) {
		if req.Status == string(models.StatusDone) {
			req.Status = string(models.StatusTodo)
		} else {
			req.Status = string(models.StatusDone)
		}
	})
}

// cycleStatus advances todo -> doing -> done -> todo
func (m Model) cycleStatus() (tea.Model, tea.Cmd) {
	return m.mutateSelected(func(req *task.UpsertTaskRequest) {
		req.Status = string(models.Status(req.Status).Next())
	})
}

// toggleFlag flips one priority flag on the selected task
func (m Model) toggleFlag(mutate func(*task.UpsertTaskRequest)) (tea.Model, tea.Cmd) {
	return m.mutateSelected(mutate)
}

// mutateSelected applies a change to the selected task and persists it
func (m Model) mutateSelected(mutate func(*task.UpsertTaskRequest)) (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil {
		return m, nil
	}

	req := requestFromTask(t)
	mutate(&req)

	if _, err := m.svcs.Tasks.UpsertTask(m.ctx, req); err != nil {
		m.reportError("update task", err)
		return m, nil
	}
	if err := m.refresh(); err != nil {
		m.reportError("reload board", err)
	}
	return m, nil
}

// saveSettings applies a change to the settings and persists it
func (m Model) saveSettings(mutate func(*models.Settings)) (tea.Model, tea.Cmd) {
	next := m.settings
	mutate(&next)

	if err := m.svcs.Settings.SetSettings(m.ctx, next); err != nil {
		m.reportError("save settings", err)
		return m, nil
	}
	m.settings = next
	m.clampCursor()
	return m, nil
}

// requestFromTask builds an upsert request carrying a task's current state
func requestFromTask(t *models.Task) task.UpsertTaskRequest {
	return task.UpsertTaskRequest{
		ID:        t.ID,
		GroupID:   t.GroupID,
		Title:     t.Title,
		Content:   t.Content,
		Status:    string(t.Status),
		Important: t.Important,
		Urgent:    t.Urgent,
	}
}
