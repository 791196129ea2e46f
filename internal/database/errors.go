package database

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"
)

// Domain errors mapped from storage results. Not-found conditions come from
// zero-rows-affected writes, duplicate-name from the UNIQUE constraint code,
// so neither depends on engine error text.
var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrDuplicateGroupName = errors.New("group name already exists")
)

// isUniqueViolation reports whether err carries SQLite's UNIQUE constraint
// code. Other constraint violations must not be mistaken for duplicates.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code() == sqlitelib.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
