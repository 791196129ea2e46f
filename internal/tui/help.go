package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// renderHelp draws the key binding overlay from the active configuration
func (m *Model) renderHelp() string {
	km := m.cfg.KeyMappings

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Tasks", [][2]string{
			{km.AddTask, "add task"},
			{km.EditTask, "edit task"},
			{km.ViewTask, "view task"},
			{km.DeleteTask, "delete task"},
			{km.ToggleDone, "toggle done"},
			{km.CycleStatus, "cycle status"},
			{km.ToggleImportant, "toggle important"},
			{km.ToggleUrgent, "toggle urgent"},
		}},
		{"Groups", [][2]string{
			{km.CreateGroup, "create group"},
			{km.RenameGroup, "rename group"},
			{km.DeleteGroup, "delete group"},
			{km.PrevGroup + " / " + km.NextGroup, "switch group"},
		}},
		{"View", [][2]string{
			{km.PrevPane + " / " + km.NextPane, "switch pane"},
			{km.PrevTask + " / " + km.NextTask, "move selection"},
			{km.ToggleView, "cards / list"},
			{km.ToggleHideDone, "hide done"},
			{km.ToggleConcise, "concise mode"},
		}},
		{"Other", [][2]string{
			{km.ShowHelp, "this help"},
			{km.Quit, "quit"},
		}},
	}

	var b strings.Builder
	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.PaneTitle.Render(section.title))
		b.WriteString("\n")
		for _, entry := range section.keys {
			fmt.Fprintf(&b, "  %s %s\n",
				m.styles.Row.Render(fmt.Sprintf("%-10s", entry[0])),
				m.styles.Subtle.Render(entry[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("esc close"))

	content := b.String()
	return m.styles.HelpBox.Width(min(lipgloss.Width(content)+8, m.width-4)).Render(content)
}
