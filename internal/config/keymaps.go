package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	AddTask         string `yaml:"add_task"`
	EditTask        string `yaml:"edit_task"`
	DeleteTask      string `yaml:"delete_task"`
	ViewTask        string `yaml:"view_task"`
	ToggleDone      string `yaml:"toggle_done"`
	CycleStatus     string `yaml:"cycle_status"`
	ToggleImportant string `yaml:"toggle_important"`
	ToggleUrgent    string `yaml:"toggle_urgent"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Groups
	CreateGroup string `yaml:"create_group"`
	RenameGroup string `yaml:"rename_group"`
	DeleteGroup string `yaml:"delete_group"`
	PrevGroup   string `yaml:"prev_group"`
	NextGroup   string `yaml:"next_group"`

	// Navigation
	PrevPane string `yaml:"prev_pane"`
	NextPane string `yaml:"next_pane"`
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// View
	ToggleView     string `yaml:"toggle_view"`
	ToggleHideDone string `yaml:"toggle_hide_done"`
	ToggleConcise  string `yaml:"toggle_concise"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		AddTask:         "a",
		EditTask:        "e",
		DeleteTask:      "d",
		ViewTask:        "enter",
		ToggleDone:      "x",
		CycleStatus:     "s",
		ToggleImportant: "i",
		ToggleUrgent:    "u",
		SaveForm:        "ctrl+s",

		// Groups
		CreateGroup: "C",
		RenameGroup: "R",
		DeleteGroup: "X",
		PrevGroup:   "[",
		NextGroup:   "]",

		// Navigation
		PrevPane: "h",
		NextPane: "l",
		PrevTask: "k",
		NextTask: "j",

		// View
		ToggleView:     "v",
		ToggleHideDone: "z",
		ToggleConcise:  "c",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.EditTask == "" {
		k.EditTask = defaults.EditTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ViewTask == "" {
		k.ViewTask = defaults.ViewTask
	}
	if k.ToggleDone == "" {
		k.ToggleDone = defaults.ToggleDone
	}
	if k.CycleStatus == "" {
		k.CycleStatus = defaults.CycleStatus
	}
	if k.ToggleImportant == "" {
		k.ToggleImportant = defaults.ToggleImportant
	}
	if k.ToggleUrgent == "" {
		k.ToggleUrgent = defaults.ToggleUrgent
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.CreateGroup == "" {
		k.CreateGroup = defaults.CreateGroup
	}
	if k.RenameGroup == "" {
		k.RenameGroup = defaults.RenameGroup
	}
	if k.DeleteGroup == "" {
		k.DeleteGroup = defaults.DeleteGroup
	}
	if k.PrevGroup == "" {
		k.PrevGroup = defaults.PrevGroup
	}
	if k.NextGroup == "" {
		k.NextGroup = defaults.NextGroup
	}
	if k.PrevPane == "" {
		k.PrevPane = defaults.PrevPane
	}
	if k.NextPane == "" {
		k.NextPane = defaults.NextPane
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ToggleView == "" {
		k.ToggleView = defaults.ToggleView
	}
	if k.ToggleHideDone == "" {
		k.ToggleHideDone = defaults.ToggleHideDone
	}
	if k.ToggleConcise == "" {
		k.ToggleConcise = defaults.ToggleConcise
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
