package database

import (
	"context"
	"testing"
)

func TestEnsureDefaults_SeedsSettings(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	values, err := repo.GetAllSettings(context.Background())
	if err != nil {
		t.Fatalf("Failed to read settings: %v", err)
	}

	want := map[string]string{
		SettingAlwaysOnTop: "1",
		SettingHideDone:    "0",
		SettingViewMode:    "cards",
		SettingConciseMode: "0",
	}
	for key, expected := range want {
		if values[key] != expected {
			t.Errorf("Setting %s = %q, want %q", key, values[key], expected)
		}
	}
}

func TestEnsureDefaults_SeedsDefaultGroup(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	groups, err := repo.ListGroups(context.Background())
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("Expected exactly one seeded group, got %d", len(groups))
	}
	if groups[0].Name != defaultGroupName {
		t.Errorf("Seeded group named %q, want %q", groups[0].Name, defaultGroupName)
	}
}

func TestEnsureDefaults_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewRepository(db)

	// A user-modified setting must never be reset by a later startup
	if err := repo.SetSetting(ctx, SettingHideDone, "1"); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}

	if err := ensureDefaults(ctx, db); err != nil {
		t.Fatalf("Second bootstrap run failed: %v", err)
	}

	value, ok, err := repo.GetSetting(ctx, SettingHideDone)
	if err != nil {
		t.Fatalf("Failed to read setting: %v", err)
	}
	if !ok || value != "1" {
		t.Errorf("Bootstrap overwrote a user setting: got %q (present=%v), want \"1\"", value, ok)
	}

	groups, err := repo.ListGroups(ctx)
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 1 {
		t.Errorf("Second bootstrap created another default group, have %d groups", len(groups))
	}
}

func TestEnsureDefaults_LeavesExistingGroupsAlone(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewRepository(db)

	mustCreateGroup(t, repo, "Work")

	if err := ensureDefaults(ctx, db); err != nil {
		t.Fatalf("Bootstrap with existing groups failed: %v", err)
	}

	groups, err := repo.ListGroups(ctx)
	if err != nil {
		t.Fatalf("Failed to list groups: %v", err)
	}
	if len(groups) != 2 {
		t.Errorf("Expected the seeded group plus one user group, got %d", len(groups))
	}
}
