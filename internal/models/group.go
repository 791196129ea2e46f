package models

// Group is a named bucket that owns zero or more tasks.
// Deleting a group deletes its tasks through the foreign key cascade.
// Timestamps are unix epoch milliseconds.
type Group struct {
	ID        int64
	Name      string
	CreatedAt int64
	UpdatedAt int64
}
