package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
)

// confirmDeleteTask asks before removing the selected task
func (m Model) confirmDeleteTask() (tea.Model, tea.Cmd) {
	t := m.selectedTask()
	if t == nil {
		return m, nil
	}
	m.pendTask = t
	m.mode = ModeConfirmDeleteTask
	return m, nil
}

// confirmDeleteGroup asks before removing the filtered group. The prompt
// spells out that the group's tasks go with it.
func (m Model) confirmDeleteGroup() (tea.Model, tea.Cmd) {
	g := m.currentGroup()
	if g == nil {
		m.setStatus("select a group to delete it")
		return m, nil
	}
	m.pendGroup = g
	m.mode = ModeConfirmDeleteGroup
	return m, nil
}

// handleConfirmKey resolves a pending delete confirmation
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		return m.executePendingDelete()
	case "n", "esc":
		m.pendTask = nil
		m.pendGroup = nil
		m.mode = ModeNormal
	}
	return m, nil
}

// executePendingDelete performs the confirmed deletion
func (m Model) executePendingDelete() (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeConfirmDeleteTask:
		if err := m.svcs.Tasks.DeleteTask(m.ctx, m.pendTask.ID); err != nil {
			m.reportError("delete task", err)
		} else {
			m.setStatus("deleted " + m.pendTask.Title)
		}
	case ModeConfirmDeleteGroup:
		// Owned tasks disappear with the group via the cascade
		if err := m.svcs.Groups.DeleteGroup(m.ctx, m.pendGroup.ID); err != nil {
			m.reportError("delete group", err)
		} else {
			m.setStatus("deleted group " + m.pendGroup.Name)
			m.groupFilter = allGroups
		}
	}

	m.pendTask = nil
	m.pendGroup = nil
	m.mode = ModeNormal
	if err := m.refresh(); err != nil {
		m.reportError("reload board", err)
	}
	return m, nil
}

// confirmMessage renders the question for the active confirmation
func (m *Model) confirmMessage() string {
	switch m.mode {
	case ModeConfirmDeleteTask:
		return fmt.Sprintf("Delete task %q?", m.pendTask.Title)
	case ModeConfirmDeleteGroup:
		n := 0
		for _, t := range m.tasks {
			if t.GroupID == m.pendGroup.ID {
				n++
			}
		}
		return fmt.Sprintf("Delete group %q and its %d task(s)?", m.pendGroup.Name, n)
	}
	return ""
}
