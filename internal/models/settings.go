package models

// View modes accepted by the settings store; anything else normalizes to cards
const (
	ViewModeCards = "cards"
	ViewModeList  = "list"
)

// Settings is the fixed set of user preferences persisted as key/value pairs.
// Theme travels with the entity for callers that want it but is not stored in
// the database; the terminal app reads its color scheme from config instead.
type Settings struct {
	HideDone    bool
	AlwaysOnTop bool
	ViewMode    string
	ConciseMode bool
	Theme       string
}

// DefaultSettings returns the built-in preference defaults
func DefaultSettings() Settings {
	return Settings{
		HideDone:    false,
		AlwaysOnTop: true,
		ViewMode:    ViewModeCards,
		ConciseMode: false,
	}
}
