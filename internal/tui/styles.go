package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/quadodev/quado/internal/config"
)

// Styles holds every lipgloss style the board renders with, derived from
// the configured color scheme
type Styles struct {
	AppTitle  lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Indicator lipgloss.Style

	Pane       lipgloss.Style
	ActivePane lipgloss.Style
	PaneTitle  lipgloss.Style

	Row         lipgloss.Style
	SelectedRow lipgloss.Style
	DoneRow     lipgloss.Style
	Subtle      lipgloss.Style

	ImportantFlag lipgloss.Style
	UrgentFlag    lipgloss.Style

	StatusBar lipgloss.Style

	FormBox    lipgloss.Style
	CreateBox  lipgloss.Style
	ConfirmBox lipgloss.Style
	DetailBox  lipgloss.Style
	HelpBox    lipgloss.Style

	Banner lipgloss.Style
}

// newStyles builds the style set from a color scheme
func newStyles(scheme config.ColorScheme) Styles {
	return Styles{
		AppTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Accent)).
			Padding(0, 1),
		Indicator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.PaneBorder)).
			Padding(0, 1),
		ActivePane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.SelectedBorder)).
			Padding(0, 1),
		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(scheme.Title)),

		Row: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Normal)),
		SelectedRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Title)).
			Background(lipgloss.Color(scheme.SelectedBg)).
			Bold(true),
		DoneRow: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Done)).
			Strikethrough(true),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)),

		ImportantFlag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Important)).
			Bold(true),
		UrgentFlag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Urgent)).
			Bold(true),

		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.Subtle)).
			Padding(0, 1),

		FormBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Edit)).
			Padding(1, 2),
		CreateBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Create)).
			Padding(1, 2),
		ConfirmBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Delete)).
			Padding(1, 2),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.Accent)).
			Padding(1, 2),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(scheme.PaneBorder)).
			Padding(1, 2),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(scheme.BannerFg)).
			Background(lipgloss.Color(scheme.BannerBg)).
			Bold(true).
			Padding(0, 2),
	}
}
