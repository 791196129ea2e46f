package config

import "testing"

func TestDefault_FillsEverything(t *testing.T) {
	cfg := Default()

	if cfg.Reminder.Disabled {
		t.Error("Reminder should be enabled by default")
	}
	if cfg.Reminder.IntervalMinutes != 60 {
		t.Errorf("Default reminder interval = %d, want 60", cfg.Reminder.IntervalMinutes)
	}
	if cfg.Update.Check {
		t.Error("Update check should be opt-in")
	}
	if cfg.KeyMappings.Quit == "" || cfg.KeyMappings.AddTask == "" {
		t.Error("Default key mappings missing")
	}
	if cfg.ColorScheme.Accent == "" || cfg.ColorScheme.Background == "" {
		t.Error("Default color scheme missing")
	}
}

func TestApplyDefaults_KeepsCustomValues(t *testing.T) {
	cfg := Config{}
	cfg.KeyMappings.Quit = "Q"
	cfg.ColorScheme.Accent = "#FF0000"
	cfg.Reminder.IntervalMinutes = 30

	cfg.applyDefaults()

	if cfg.KeyMappings.Quit != "Q" {
		t.Errorf("Custom quit binding lost: %q", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddTask != "a" {
		t.Errorf("Missing binding not defaulted: %q", cfg.KeyMappings.AddTask)
	}
	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Custom accent lost: %q", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.PaneBorder == "" {
		t.Error("Missing color not defaulted")
	}
	if cfg.Reminder.IntervalMinutes != 30 {
		t.Errorf("Custom reminder interval lost: %d", cfg.Reminder.IntervalMinutes)
	}
}

func TestColorScheme_MonochromePreset(t *testing.T) {
	cfg := Config{}
	cfg.ColorScheme.Preset = "monochrome"
	cfg.applyDefaults()

	if cfg.ColorScheme.Accent != "#FFFFFF" {
		t.Errorf("Monochrome accent = %q, want #FFFFFF", cfg.ColorScheme.Accent)
	}
}

func TestColorScheme_UnknownPresetFallsBack(t *testing.T) {
	cfg := Config{}
	cfg.ColorScheme.Preset = "solarized-disco"
	cfg.applyDefaults()

	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Unknown preset should fall back to default, got accent %q", cfg.ColorScheme.Accent)
	}
}
