package models

// Task is a unit of work owned by a group.
// Timestamps are unix epoch milliseconds.
type Task struct {
	ID        int64
	GroupID   int64
	Title     string
	Content   string
	Status    Status
	Important bool
	Urgent    bool
	CreatedAt int64
	UpdatedAt int64
}

// Quadrant buckets tasks by the important/urgent flag pair.
// It is derived for display, never stored.
type Quadrant int

const (
	QuadrantUrgentImportant Quadrant = iota
	QuadrantImportant
	QuadrantUrgent
	QuadrantNeither
)

// Quadrants returns all quadrants in display order
func Quadrants() []Quadrant {
	return []Quadrant{QuadrantUrgentImportant, QuadrantImportant, QuadrantUrgent, QuadrantNeither}
}

// Quadrant derives the display quadrant from the two priority flags
func (t *Task) Quadrant() Quadrant {
	switch {
	case t.Important && t.Urgent:
		return QuadrantUrgentImportant
	case t.Important:
		return QuadrantImportant
	case t.Urgent:
		return QuadrantUrgent
	default:
		return QuadrantNeither
	}
}

// Label returns the display name for a quadrant
func (q Quadrant) Label() string {
	switch q {
	case QuadrantUrgentImportant:
		return "Urgent & Important"
	case QuadrantImportant:
		return "Important"
	case QuadrantUrgent:
		return "Urgent"
	default:
		return "Later"
	}
}
