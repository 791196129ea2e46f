package models

import "fmt"

// Status is the lifecycle state of a task
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses returns the closed status set in display order
func Statuses() []Status {
	return []Status{StatusTodo, StatusDoing, StatusDone}
}

// ParseStatus validates a raw status string against the closed set
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusTodo, StatusDoing, StatusDone:
		return Status(s), nil
	default:
		return "", fmt.Errorf("invalid task status %q", s)
	}
}

// Next cycles todo -> doing -> done -> todo
func (s Status) Next() Status {
	switch s {
	case StatusTodo:
		return StatusDoing
	case StatusDoing:
		return StatusDone
	default:
		return StatusTodo
	}
}
