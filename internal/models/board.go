package models

// Board bundles everything the UI needs to render in a single load
type Board struct {
	Groups   []*Group
	Tasks    []*Task
	Settings Settings
	Statuses []Status
}
