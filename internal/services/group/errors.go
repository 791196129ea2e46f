package group

import (
	"errors"

	"github.com/quadodev/quado/internal/database"
)

// Domain errors for the group service
var (
	// Validation errors
	ErrEmptyName      = errors.New("group name cannot be empty")
	ErrNameTooLong    = errors.New("group name cannot exceed 50 characters")
	ErrInvalidGroupID = errors.New("invalid group ID")

	// Mapped at the storage layer and passed through unchanged
	ErrGroupNotFound = database.ErrGroupNotFound
	ErrDuplicateName = database.ErrDuplicateGroupName
)
