package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/quadodev/quado/internal/models"
	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory database with the full schema and seeded
// defaults, mirroring what InitDB produces for a fresh file
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	// A second pool connection to :memory: would see a different empty
	// database, so pin the pool to one connection like InitDB does
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	if err := ensureDefaults(ctx, db); err != nil {
		t.Fatalf("Failed to seed defaults: %v", err)
	}

	return db
}

// setupTestRepository wraps a fresh test database in a Repository
func setupTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(setupTestDB(t))
}

// mustCreateGroup creates a group directly, failing the test on error
func mustCreateGroup(t *testing.T, repo *Repository, name string) int64 {
	t.Helper()
	group, err := repo.CreateGroup(context.Background(), name)
	if err != nil {
		t.Fatalf("Failed to create group %q: %v", name, err)
	}
	return group.ID
}

// mustCreateTask creates a task directly, failing the test on error
func mustCreateTask(t *testing.T, repo *Repository, groupID int64, title string) int64 {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), &models.Task{
		GroupID: groupID,
		Title:   title,
		Status:  models.StatusTodo,
	})
	if err != nil {
		t.Fatalf("Failed to create task %q: %v", title, err)
	}
	return task.ID
}
