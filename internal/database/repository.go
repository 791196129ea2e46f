package database

import "database/sql"

// Repository provides a unified surface over all data operations.
// It composes the domain-specific repositories using struct embedding.
type Repository struct {
	*GroupRepo
	*TaskRepo
	*SettingsRepo

	db *sql.DB
}

// NewRepository creates a new Repository wrapping the given database
// connection
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		GroupRepo:    &GroupRepo{db: db},
		TaskRepo:     &TaskRepo{db: db},
		SettingsRepo: &SettingsRepo{db: db},
		db:           db,
	}
}

// Close releases the underlying connection. Safe to call on a nil or
// already-closed repository.
func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
