package config

// ColorScheme defines all configurable color values. The scheme is the
// terminal incarnation of the theme preference.
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Creation dialogs
	Edit   string `yaml:"edit"`   // Edit dialogs
	Delete string `yaml:"delete"` // Delete confirmations

	// UI element colors
	Background     string `yaml:"background"`
	PaneBorder     string `yaml:"pane_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`
	Done   string `yaml:"done"` // Completed tasks

	// Priority flag colors
	Important string `yaml:"important"`
	Urgent    string `yaml:"urgent"`

	// Reminder banner
	BannerFg string `yaml:"banner_fg"`
	BannerBg string `yaml:"banner_bg"`
}

// DefaultColorScheme returns the default preset
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		Create:         "#04B575",
		Edit:           "#3C82F6",
		Delete:         "#ED567A",
		Background:     "#1A1B26",
		PaneBorder:     "#3B4261",
		SelectedBorder: "#874BFD",
		SelectedBg:     "#2F334D",
		Title:          "#C0CAF5",
		Subtle:         "#565F89",
		Normal:         "#A9B1D6",
		Done:           "#565F89",
		Important:      "#E0AF68",
		Urgent:         "#F7768E",
		BannerFg:       "#1A1B26",
		BannerBg:       "#7AA2F7",
	}
}

// monochromeScheme is for terminals (or users) that want no color at all
func monochromeScheme() ColorScheme {
	return ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		Create:         "#FFFFFF",
		Edit:           "#FFFFFF",
		Delete:         "#FFFFFF",
		Background:     "#000000",
		PaneBorder:     "#666666",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#333333",
		Title:          "#FFFFFF",
		Subtle:         "#888888",
		Normal:         "#CCCCCC",
		Done:           "#666666",
		Important:      "#FFFFFF",
		Urgent:         "#FFFFFF",
		BannerFg:       "#000000",
		BannerBg:       "#FFFFFF",
	}
}

// getPreset returns a preset color scheme by name
func getPreset(name string) ColorScheme {
	switch name {
	case "monochrome":
		return monochromeScheme()
	default:
		return DefaultColorScheme()
	}
}

// applyDefaults loads the named preset, then keeps any custom values set on
// top of it
func (c *ColorScheme) applyDefaults() {
	preset := getPreset(c.Preset)

	if c.Accent == "" {
		c.Accent = preset.Accent
	}
	if c.Create == "" {
		c.Create = preset.Create
	}
	if c.Edit == "" {
		c.Edit = preset.Edit
	}
	if c.Delete == "" {
		c.Delete = preset.Delete
	}
	if c.Background == "" {
		c.Background = preset.Background
	}
	if c.PaneBorder == "" {
		c.PaneBorder = preset.PaneBorder
	}
	if c.SelectedBorder == "" {
		c.SelectedBorder = preset.SelectedBorder
	}
	if c.SelectedBg == "" {
		c.SelectedBg = preset.SelectedBg
	}
	if c.Title == "" {
		c.Title = preset.Title
	}
	if c.Subtle == "" {
		c.Subtle = preset.Subtle
	}
	if c.Normal == "" {
		c.Normal = preset.Normal
	}
	if c.Done == "" {
		c.Done = preset.Done
	}
	if c.Important == "" {
		c.Important = preset.Important
	}
	if c.Urgent == "" {
		c.Urgent = preset.Urgent
	}
	if c.BannerFg == "" {
		c.BannerFg = preset.BannerFg
	}
	if c.BannerBg == "" {
		c.BannerBg = preset.BannerBg
	}
}
