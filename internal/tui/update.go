package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
)

// reminderTickMsg fires once a minute to poll the reminder gate
type reminderTickMsg time.Time

// reminderTick schedules the next reminder poll
func (m Model) reminderTick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return reminderTickMsg(t)
	})
}

// Update handles all messages and updates the model accordingly.
// Implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reminderTickMsg:
		m.pollReminder()
		return m, m.reminderTick()

	case tea.KeyMsg:
		// Any key clears the banner, then the press is handled normally
		if m.reminderShowing {
			m.reminderShowing = false
			m.gate.Dismiss()
		}
		m.statusLine = ""

		switch m.mode {
		case ModeNormal:
			return m.handleNormalMode(msg)
		case ModeTaskForm:
			return m.handleTaskFormKey(msg)
		case ModeGroupInput:
			return m.handleGroupInputKey(msg)
		case ModeConfirmDeleteTask, ModeConfirmDeleteGroup:
			return m.handleConfirmKey(msg)
		case ModeDetail, ModeHelp:
			return m.handleOverlayKey(msg)
		}
		return m, nil
	}

	// Forms consume every other message kind too (cursor blink and such)
	switch m.mode {
	case ModeTaskForm:
		return m, m.form.update(msg)
	case ModeGroupInput:
		return m, m.input.update(msg)
	}
	return m, nil
}

// pollReminder shows the break banner when the gate allows it
func (m *Model) pollReminder() {
	if m.cfg.Reminder.Disabled || m.reminderShowing {
		return
	}

	due, err := m.gate.Due(m.ctx)
	if err != nil {
		slog.Error("failed to check reminder gate", "error", err)
		return
	}
	if !due || !m.gate.TryShow() {
		return
	}

	m.reminderShowing = true
	if err := m.gate.MarkFired(m.ctx); err != nil {
		slog.Error("failed to persist reminder time", "error", err)
	}
}

// handleOverlayKey closes the detail and help overlays
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.mode = ModeNormal
		m.detailTask = nil
	}
	return m, nil
}
