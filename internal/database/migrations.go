package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrationSteps is the ordered, idempotent schema definition. Every
// statement must be safe to re-run against an already-migrated file; new
// steps are appended, never reordered.
var migrationSteps = []string{
	`CREATE TABLE IF NOT EXISTS groups (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		group_id INTEGER NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		content TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL CHECK (status IN ('todo','doing','done')),
		important INTEGER NOT NULL DEFAULT 0 CHECK (important IN (0,1)),
		urgent INTEGER NOT NULL DEFAULT 0 CHECK (urgent IN (0,1)),
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_group_status ON tasks(group_id, status)`,
}

// runMigrations creates the schema and upgrades database files written by
// older versions of the app
func runMigrations(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrationSteps {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply migration: %w", err)
		}
	}

	if err := ensureTaskColumns(ctx, db); err != nil {
		return err
	}

	// This index covers columns ensureTaskColumns may have just added, so it
	// runs after the column check rather than in migrationSteps
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_tasks_important_urgent ON tasks(important, urgent)`); err != nil {
		return fmt.Errorf("failed to create priority index: %w", err)
	}

	return nil
}

// ensureTaskColumns upgrades tasks tables created before the priority flags
// existed. It introspects the live column set and adds whatever is missing
// with a safe default, leaving existing rows untouched.
func ensureTaskColumns(ctx context.Context, db *sql.DB) error {
	cols := make(map[string]bool)

	rows, err := db.QueryContext(ctx, `PRAGMA table_info(tasks)`)
	if err != nil {
		return fmt.Errorf("failed to read tasks schema: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notnull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return fmt.Errorf("failed to scan tasks schema row: %w", err)
		}
		cols[name] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating tasks schema: %w", err)
	}

	for _, col := range []string{"important", "urgent"} {
		if cols[col] {
			continue
		}
		stmt := fmt.Sprintf(`ALTER TABLE tasks ADD COLUMN %s INTEGER NOT NULL DEFAULT 0 CHECK (%s IN (0,1))`, col, col)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to add tasks.%s: %w", col, err)
		}
	}

	return nil
}
