package task

import (
	"errors"

	"github.com/quadodev/quado/internal/database"
)

// Domain errors for the task service
var (
	// Validation errors
	ErrInvalidTaskID  = errors.New("invalid task ID")
	ErrInvalidGroupID = errors.New("task must belong to a group")
	ErrEmptyTitle     = errors.New("task title cannot be empty")
	ErrTitleTooLong   = errors.New("task title cannot exceed 200 characters")
	ErrContentTooLong = errors.New("task content cannot exceed 1000 characters")
	ErrInvalidStatus  = errors.New("invalid task status")

	// Mapped at the storage layer and passed through unchanged
	ErrTaskNotFound  = database.ErrTaskNotFound
	ErrGroupNotFound = database.ErrGroupNotFound
)
