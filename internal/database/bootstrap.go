package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// defaultGroupName seeds the first group so creating a task is never
// impossible on a fresh install
const defaultGroupName = "Default"

// defaultSettingValues holds the initial stored value for every recognized
// user-facing settings key
var defaultSettingValues = map[string]string{
	SettingAlwaysOnTop: "1",
	SettingHideDone:    "0",
	SettingViewMode:    "cards",
	SettingConciseMode: "0",
}

// ensureDefaults seeds the settings keys and the default group. Both writes
// are insert-if-absent, so values a user has changed survive every startup.
func ensureDefaults(ctx context.Context, db *sql.DB) error {
	if err := ensureDefaultSettings(ctx, db); err != nil {
		return err
	}
	return ensureDefaultGroup(ctx, db)
}

func ensureDefaultSettings(ctx context.Context, db *sql.DB) error {
	for key, value := range defaultSettingValues {
		if _, err := db.ExecContext(ctx,
			`INSERT OR IGNORE INTO settings(key, value) VALUES(?, ?)`,
			key, value,
		); err != nil {
			return fmt.Errorf("failed to seed setting %q: %w", key, err)
		}
	}
	return nil
}

func ensureDefaultGroup(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(1) FROM groups`).Scan(&count); err != nil {
		return fmt.Errorf("failed to count groups: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	if _, err := db.ExecContext(ctx,
		`INSERT INTO groups(name, created_at, updated_at) VALUES(?, ?, ?)`,
		defaultGroupName, now, now,
	); err != nil {
		return fmt.Errorf("failed to create default group: %w", err)
	}
	return nil
}
