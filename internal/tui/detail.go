package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
)

// Glamour renderers are expensive to build, so they are cached per width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached markdown renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderMarkdown renders task content as markdown, falling back to the raw
// text when glamour fails
func renderMarkdown(content string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimSpace(rendered)
}

// renderDetail draws the full task view modal
func (m *Model) renderDetail() string {
	t := m.detailTask
	if t == nil {
		return ""
	}

	boxWidth := min(m.width*3/4, 90)
	innerWidth := boxWidth - 6

	meta := fmt.Sprintf("#%s · %s · %s", m.groupName(t.GroupID), t.Status, t.Quadrant().Label())

	body := m.styles.Subtle.Render("No notes")
	if t.Content != "" {
		body = renderMarkdown(t.Content, innerWidth)
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.PaneTitle.Render(truncate(t.Title, innerWidth)),
		m.styles.Subtle.Render(meta),
		"",
		body,
		"",
		m.styles.Subtle.Render("esc close"),
	)
	return m.styles.DetailBox.Width(boxWidth).Render(content)
}
