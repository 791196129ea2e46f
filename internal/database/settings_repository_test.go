package database

import (
	"context"
	"testing"
)

func TestSetSetting_InsertsAndOverwrites(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	if err := repo.SetSetting(ctx, SettingViewMode, "list"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}
	value, ok, err := repo.GetSetting(ctx, SettingViewMode)
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if !ok || value != "list" {
		t.Errorf("Expected stored list, got %q (present=%v)", value, ok)
	}

	if err := repo.SetSetting(ctx, SettingViewMode, "cards"); err != nil {
		t.Fatalf("SetSetting overwrite failed: %v", err)
	}
	value, _, err = repo.GetSetting(ctx, SettingViewMode)
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if value != "cards" {
		t.Errorf("Expected overwritten value cards, got %q", value)
	}
}

func TestGetSetting_AbsentKey(t *testing.T) {
	repo := setupTestRepository(t)

	_, ok, err := repo.GetSetting(context.Background(), "noSuchKey")
	if err != nil {
		t.Fatalf("GetSetting failed: %v", err)
	}
	if ok {
		t.Error("Absent key should report not present, not an error")
	}
}

func TestGetAllSettings_IncludesUnrecognizedKeys(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	// The storage layer stores arbitrary keys; filtering to recognized ones
	// happens above it
	if err := repo.SetSetting(ctx, "futureFeature", "42"); err != nil {
		t.Fatalf("SetSetting failed: %v", err)
	}

	values, err := repo.GetAllSettings(ctx)
	if err != nil {
		t.Fatalf("GetAllSettings failed: %v", err)
	}
	if values["futureFeature"] != "42" {
		t.Errorf("Expected stored unknown key to surface, got %q", values["futureFeature"])
	}
	if len(values) != 5 {
		t.Errorf("Expected 4 seeded keys plus 1, got %d entries", len(values))
	}
}
