package board

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/quadodev/quado/internal/database"
	"github.com/quadodev/quado/internal/models"
	"github.com/quadodev/quado/internal/services/group"
	"github.com/quadodev/quado/internal/services/settings"
	"github.com/quadodev/quado/internal/services/task"
)

func setupService(t *testing.T) Service {
	t.Helper()

	db, err := database.InitDB(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	repo := database.NewRepository(db)
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return NewService(
		group.NewService(repo),
		task.NewService(repo, repo),
		settings.NewService(repo),
	)
}

func TestGetBoard_FreshStore(t *testing.T) {
	svc := setupService(t)

	board, err := svc.GetBoard(context.Background())
	if err != nil {
		t.Fatalf("GetBoard failed: %v", err)
	}

	if len(board.Groups) != 1 {
		t.Errorf("Expected the seeded default group, got %d groups", len(board.Groups))
	}
	if len(board.Tasks) != 0 {
		t.Errorf("Expected no tasks on a fresh store, got %d", len(board.Tasks))
	}
	if board.Settings.ViewMode != models.ViewModeCards {
		t.Errorf("Expected default view mode cards, got %q", board.Settings.ViewMode)
	}

	want := []models.Status{models.StatusTodo, models.StatusDoing, models.StatusDone}
	if len(board.Statuses) != len(want) {
		t.Fatalf("Expected %d statuses, got %d", len(want), len(board.Statuses))
	}
	for i, status := range want {
		if board.Statuses[i] != status {
			t.Errorf("Statuses[%d] = %q, want %q", i, board.Statuses[i], status)
		}
	}
}
