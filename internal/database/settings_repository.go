package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
)

// Settings keys recognized by the store. SettingLastReminderAt is internal
// bookkeeping for the reminder gate, not part of the user-facing settings.
const (
	SettingAlwaysOnTop    = "alwaysOnTop"
	SettingHideDone       = "hideDone"
	SettingViewMode       = "viewMode"
	SettingConciseMode    = "conciseMode"
	SettingLastReminderAt = "lastReminderAt"
)

// SettingsRepo handles the key/value settings table.
type SettingsRepo struct {
	db *sql.DB
}

// GetAllSettings retrieves every stored key/value pair
func (r *SettingsRepo) GetAllSettings(ctx context.Context) (map[string]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan settings row: %w", err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating settings rows: %w", err)
	}
	return values, nil
}

// GetSetting retrieves one stored value; ok is false when the key is absent
func (r *SettingsRepo) GetSetting(ctx context.Context, key string) (value string, ok bool, err error) {
	err = r.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get setting %q: %w", key, err)
	}
	return value, true, nil
}

// SetSetting upserts a single key
func (r *SettingsRepo) SetSetting(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO settings(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	); err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}
