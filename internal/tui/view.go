package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/quadodev/quado/internal/models"
)

// View renders the current state of the application.
// Implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(m.cfg.ColorScheme.Background)

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderBoard()
	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}

	var modal string
	switch m.mode {
	case ModeTaskForm:
		modal = m.renderTaskForm()
	case ModeGroupInput:
		modal = m.renderGroupInput()
	case ModeConfirmDeleteTask, ModeConfirmDeleteGroup:
		modal = m.styles.ConfirmBox.Render(m.confirmMessage() + "\n\n" + m.styles.Subtle.Render("y confirm · n cancel"))
	case ModeDetail:
		modal = m.renderDetail()
	case ModeHelp:
		modal = m.renderHelp()
	}
	if layer := centeredLayer(modal, m.width, m.height); layer != nil {
		layers = append(layers, layer)
	}

	if m.reminderShowing {
		if layer := m.reminderLayer(); layer != nil {
			layers = append(layers, layer)
		}
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// centeredLayer positions content in the middle of the screen
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2

	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}

// reminderLayer floats the break banner near the bottom of the screen
func (m *Model) reminderLayer() *lipgloss.Layer {
	banner := m.styles.Banner.Render("Time for a break — drink some water. Any key dismisses this.")

	x := (m.width - lipgloss.Width(banner)) / 2
	y := m.height - 3

	return lipgloss.NewLayer(banner).X(max(x, 0)).Y(max(y, 0))
}

// renderBoard draws the base screen: header, task area, status bar
func (m *Model) renderBoard() string {
	header := m.renderHeader()
	status := m.renderStatusBar()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status)
	if bodyHeight < 4 {
		bodyHeight = 4
	}

	var body string
	if m.settings.ViewMode == models.ViewModeList {
		body = m.renderList(m.width, bodyHeight)
	} else {
		body = m.renderQuadrants(m.width, bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// renderHeader draws the title, the group tabs and the view indicators
func (m *Model) renderHeader() string {
	tabs := []string{}
	if m.groupFilter == allGroups {
		tabs = append(tabs, m.styles.ActiveTab.Render("All"))
	} else {
		tabs = append(tabs, m.styles.Tab.Render("All"))
	}
	for i, g := range m.groups {
		if i == m.groupFilter {
			tabs = append(tabs, m.styles.ActiveTab.Render(g.Name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(g.Name))
		}
	}

	var flags []string
	if m.settings.ViewMode == models.ViewModeList {
		flags = append(flags, "list")
	} else {
		flags = append(flags, "cards")
	}
	if m.settings.HideDone {
		flags = append(flags, "hide-done")
	}
	if m.settings.ConciseMode {
		flags = append(flags, "concise")
	}
	indicators := m.styles.Indicator.Render(strings.Join(flags, " · "))

	left := m.styles.AppTitle.Render("quado") + strings.Join(tabs, "")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(indicators)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + indicators
}

// renderStatusBar shows transient feedback, or the key hints when idle
func (m *Model) renderStatusBar() string {
	line := m.statusLine
	if line == "" {
		km := m.cfg.KeyMappings
		line = fmt.Sprintf("%s add · %s edit · %s done · %s/%s priority · %s view · %s help · %s quit",
			km.AddTask, km.EditTask, km.ToggleDone, km.ToggleImportant, km.ToggleUrgent,
			km.ToggleView, km.ShowHelp, km.Quit)
	}
	return m.styles.StatusBar.Render(truncate(line, m.width-2))
}

// renderQuadrants draws the four priority panes in a two-by-two grid
func (m *Model) renderQuadrants(width, height int) string {
	paneWidth := width/2 - 2
	paneHeight := height/2 - 2

	quadrants := models.Quadrants()
	panes := make([]string, len(quadrants))
	for i, q := range quadrants {
		panes[i] = m.renderPane(q, paneWidth, paneHeight)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, panes[0], panes[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, panes[2], panes[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}

// renderPane draws one quadrant's box and its tasks
func (m *Model) renderPane(q models.Quadrant, width, height int) string {
	tasks := m.paneTasks(q)
	active := q == m.pane

	title := m.styles.PaneTitle.Render(fmt.Sprintf("%s (%d)", q.Label(), len(tasks)))
	lines := []string{title}

	innerWidth := width - 4
	maxRows := height - 2
	for i, t := range tasks {
		if len(lines)-1 >= maxRows {
			lines = append(lines, m.styles.Subtle.Render(fmt.Sprintf("… %d more", len(tasks)-i)))
			break
		}
		selected := active && i == m.cursor
		lines = append(lines, m.renderTaskRow(t, innerWidth, selected, false))
		if !m.settings.ConciseMode && t.Content != "" && len(lines)-1 < maxRows {
			preview := truncate(firstLine(t.Content), innerWidth-4)
			lines = append(lines, m.styles.Subtle.Render("    "+preview))
		}
	}
	if len(tasks) == 0 {
		lines = append(lines, m.styles.Subtle.Render("nothing here"))
	}

	style := m.styles.Pane
	if active {
		style = m.styles.ActivePane
	}
	return style.Width(width).Height(height).Render(strings.Join(lines, "\n"))
}

// renderList draws the flat most-recently-updated view
func (m *Model) renderList(width, height int) string {
	tasks := m.visibleTasks()
	innerWidth := width - 4

	lines := make([]string, 0, len(tasks))
	maxRows := height - 2
	for i, t := range tasks {
		if i >= maxRows {
			lines = append(lines, m.styles.Subtle.Render(fmt.Sprintf("… %d more", len(tasks)-i)))
			break
		}
		lines = append(lines, m.renderTaskRow(t, innerWidth, i == m.cursor, true))
	}
	if len(tasks) == 0 {
		lines = append(lines, m.styles.Subtle.Render("no tasks — press "+m.cfg.KeyMappings.AddTask+" to add one"))
	}

	return m.styles.Pane.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// renderTaskRow draws a single task line
func (m *Model) renderTaskRow(t *models.Task, width int, selected, withMeta bool) string {
	marker := statusMarker(t.Status)

	flags := ""
	if t.Important {
		flags += m.styles.ImportantFlag.Render("!")
	}
	if t.Urgent {
		flags += m.styles.UrgentFlag.Render("~")
	}

	text := t.Title
	if withMeta {
		if name := m.groupName(t.GroupID); name != "" {
			text += "  " + m.styles.Subtle.Render("#"+name)
		}
	}

	line := fmt.Sprintf("%s %s%s", marker, truncate(text, width-6), flags)

	switch {
	case selected:
		return m.styles.SelectedRow.Render(line)
	case t.Status == models.StatusDone:
		return m.styles.DoneRow.Render(line)
	default:
		return m.styles.Row.Render(line)
	}
}

// renderTaskForm draws the task editor modal
func (m *Model) renderTaskForm() string {
	if m.form == nil {
		return ""
	}

	title := "New Task"
	box := m.styles.CreateBox
	if m.form.editingID != 0 {
		title = "Edit Task"
		box = m.styles.FormBox
	}

	header := m.styles.PaneTitle.Render(title) +
		m.styles.Subtle.Render("  in #"+m.groupName(m.form.groupID))
	help := m.styles.Subtle.Render("tab switch field · " + m.cfg.KeyMappings.SaveForm + " save · esc cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		"",
		m.form.title.View(),
		"",
		m.form.content.View(),
		"",
		help,
	)
	return box.Width(min(m.width*3/4, 80)).Render(content)
}

// renderGroupInput draws the group name prompt modal
func (m *Model) renderGroupInput() string {
	if m.input == nil {
		return ""
	}

	box := m.styles.CreateBox
	if m.input.editingID != 0 {
		box = m.styles.FormBox
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.PaneTitle.Render(m.input.prompt),
		"",
		m.input.input.View(),
		"",
		m.styles.Subtle.Render("enter save · esc cancel"),
	)
	return box.Width(min(m.width/2, 50)).Render(content)
}

// statusMarker is the one-cell glyph for a task status
func statusMarker(s models.Status) string {
	switch s {
	case models.StatusDone:
		return "✓"
	case models.StatusDoing:
		return "◐"
	default:
		return "○"
	}
}

// firstLine returns the first line of a multi-line string
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// truncate limits a string to width code points with an ellipsis
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
