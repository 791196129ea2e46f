package tui

import (
	"errors"
	"log/slog"

	"github.com/quadodev/quado/internal/services/group"
	"github.com/quadodev/quado/internal/services/task"
)

// domainErrors are safe to show the user verbatim: validation problems,
// duplicate names and missing rows. Anything else is an infrastructure
// failure whose detail belongs in the log, not the status bar.
var domainErrors = []error{
	group.ErrEmptyName,
	group.ErrNameTooLong,
	group.ErrInvalidGroupID,
	group.ErrGroupNotFound,
	group.ErrDuplicateName,
	task.ErrInvalidTaskID,
	task.ErrInvalidGroupID,
	task.ErrEmptyTitle,
	task.ErrTitleTooLong,
	task.ErrContentTooLong,
	task.ErrInvalidStatus,
	task.ErrTaskNotFound,
}

// userFacingError maps an operation failure to a status bar line
func userFacingError(op string, err error) string {
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			return err.Error()
		}
	}
	slog.Error("operation failed", "op", op, "error", err)
	return "the store is not ready; details are in the log"
}

// reportError records err and puts the mapped message in the status bar
func (m *Model) reportError(op string, err error) {
	m.setStatus(userFacingError(op, err))
}
