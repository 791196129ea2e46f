package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/quadodev/quado/internal/database"
	"github.com/quadodev/quado/internal/models"
)

// maxViewModeRunes caps the stored viewMode before the allow-list check, so
// a corrupted oversized value falls back to cards instead of being compared
const maxViewModeRunes = 20

// Service defines all settings-related business operations
type Service interface {
	GetSettings(ctx context.Context) (models.Settings, error)
	SetSettings(ctx context.Context, settings models.Settings) error

	// LastReminderAt tracks the reminder gate outside the user-facing
	// settings entity. Zero means the reminder never fired.
	LastReminderAt(ctx context.Context) (int64, error)
	SetLastReminderAt(ctx context.Context, unixMilli int64) error
}

// repository defines the data access methods needed by the settings service.
// This interface is private to the service layer.
type repository interface {
	GetAllSettings(ctx context.Context) (map[string]string, error)
	GetSetting(ctx context.Context, key string) (value string, ok bool, err error)
	SetSetting(ctx context.Context, key, value string) error
}

// service implements Service with a private repository
type service struct {
	repo repository
}

// NewService creates a new settings service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetSettings starts from the built-in defaults and overlays every stored
// recognized key. Missing keys fall back to defaults and unknown keys are
// ignored, so settings written by newer versions don't break older ones.
func (s *service) GetSettings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()

	stored, err := s.repo.GetAllSettings(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	for key, value := range stored {
		switch key {
		case database.SettingAlwaysOnTop:
			settings.AlwaysOnTop = parseBool(value)
		case database.SettingHideDone:
			settings.HideDone = parseBool(value)
		case database.SettingViewMode:
			settings.ViewMode = normalizeViewMode(value)
		case database.SettingConciseMode:
			settings.ConciseMode = parseBool(value)
		}
	}

	return settings, nil
}

// SetSettings upserts each user-facing key independently. The first failure
// is returned rather than swallowed, leaving the earlier keys written.
func (s *service) SetSettings(ctx context.Context, settings models.Settings) error {
	if err := s.repo.SetSetting(ctx, database.SettingAlwaysOnTop, boolTo01(settings.AlwaysOnTop)); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, database.SettingHideDone, boolTo01(settings.HideDone)); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, database.SettingViewMode, normalizeViewMode(settings.ViewMode)); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, database.SettingConciseMode, boolTo01(settings.ConciseMode)); err != nil {
		return err
	}
	return nil
}

// LastReminderAt returns the last reminder fire time in unix milliseconds,
// or 0 when it never fired. Blank or non-positive stored values also read
// back as 0.
func (s *service) LastReminderAt(ctx context.Context) (int64, error) {
	value, ok, err := s.repo.GetSetting(ctx, database.SettingLastReminderAt)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}

	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse stored reminder time: %w", err)
	}
	if ts <= 0 {
		return 0, nil
	}
	return ts, nil
}

// SetLastReminderAt stores the reminder fire time in unix milliseconds
func (s *service) SetLastReminderAt(ctx context.Context, unixMilli int64) error {
	if unixMilli <= 0 {
		unixMilli = 0
	}
	return s.repo.SetSetting(ctx, database.SettingLastReminderAt, strconv.FormatInt(unixMilli, 10))
}

// parseBool coerces the stored text forms of a flag
func parseBool(value string) bool {
	return value == "1" || strings.EqualFold(value, "true")
}

// boolTo01 encodes a flag the way the settings table stores it
func boolTo01(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// normalizeViewMode folds any unrecognized view mode to cards
func normalizeViewMode(v string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if utf8.RuneCountInString(v) > maxViewModeRunes {
		return models.ViewModeCards
	}
	switch v {
	case models.ViewModeList, models.ViewModeCards:
		return v
	default:
		return models.ViewModeCards
	}
}
