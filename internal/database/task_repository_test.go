package database

import (
	"context"
	"errors"
	"testing"

	"github.com/quadodev/quado/internal/models"
)

// setUpdatedAt pins a task's updated_at directly so ordering tests do not
// depend on wall-clock resolution
func setUpdatedAt(t *testing.T, repo *Repository, taskID, ts int64) {
	t.Helper()
	if _, err := repo.db.Exec(`UPDATE tasks SET updated_at = ? WHERE id = ?`, ts, taskID); err != nil {
		t.Fatalf("Failed to pin updated_at: %v", err)
	}
}

func TestCreateTask_RoundTrip(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, repo, "Work")

	created, err := repo.CreateTask(ctx, &models.Task{
		GroupID:   groupID,
		Title:     "Write the report",
		Content:   "## Notes\n- quarterly numbers",
		Status:    models.StatusDoing,
		Important: true,
		Urgent:    false,
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("Expected a positive assigned ID, got %d", created.ID)
	}

	task, err := repo.GetTaskByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if task.Title != "Write the report" || task.Content != "## Notes\n- quarterly numbers" {
		t.Errorf("Task fields did not round-trip: %+v", task)
	}
	if task.Status != models.StatusDoing {
		t.Errorf("Status = %q, want doing", task.Status)
	}
	if !task.Important || task.Urgent {
		t.Errorf("Flags did not round-trip: important=%v urgent=%v", task.Important, task.Urgent)
	}
}

func TestCreateTask_AllStatusesRoundTrip(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, repo, "Work")

	for _, status := range models.Statuses() {
		created, err := repo.CreateTask(ctx, &models.Task{
			GroupID: groupID,
			Title:   "task " + string(status),
			Status:  status,
		})
		if err != nil {
			t.Fatalf("CreateTask with status %s failed: %v", status, err)
		}
		got, err := repo.GetTaskByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetTaskByID failed: %v", err)
		}
		if got.Status != status {
			t.Errorf("Status %s did not round-trip, got %s", status, got.Status)
		}
	}
}

func TestListTasks_MostRecentlyUpdatedFirst(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, repo, "Work")

	a := mustCreateTask(t, repo, groupID, "A")
	b := mustCreateTask(t, repo, groupID, "B")
	c := mustCreateTask(t, repo, groupID, "C")

	setUpdatedAt(t, repo, a, 1000)
	setUpdatedAt(t, repo, b, 2000)
	setUpdatedAt(t, repo, c, 3000)

	// Touching B pushes it to the front
	task, err := repo.GetTaskByID(ctx, b)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if _, err := repo.UpdateTask(ctx, task); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("Expected 3 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != b || tasks[1].ID != c || tasks[2].ID != a {
		t.Errorf("Expected order B, C, A, got %d, %d, %d", tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}
}

func TestListTasks_TiesBrokenByIDDescending(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, repo, "Work")

	a := mustCreateTask(t, repo, groupID, "A")
	b := mustCreateTask(t, repo, groupID, "B")
	c := mustCreateTask(t, repo, groupID, "C")

	for _, id := range []int64{a, b, c} {
		setUpdatedAt(t, repo, id, 5000)
	}

	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if tasks[0].ID != c || tasks[1].ID != b || tasks[2].ID != a {
		t.Errorf("Identical timestamps should order by ID descending, got %d, %d, %d",
			tasks[0].ID, tasks[1].ID, tasks[2].ID)
	}
}

func TestUpdateTask_PersistsAllMutableFields(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, repo, "Work")
	otherGroup := mustCreateGroup(t, repo, "Personal")
	id := mustCreateTask(t, repo, groupID, "draft")

	updated, err := repo.UpdateTask(ctx, &models.Task{
		ID:        id,
		GroupID:   otherGroup,
		Title:     "final",
		Content:   "moved and finished",
		Status:    models.StatusDone,
		Important: true,
		Urgent:    true,
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if updated.GroupID != otherGroup || updated.Title != "final" || updated.Status != models.StatusDone {
		t.Errorf("Update did not persist: %+v", updated)
	}
	if !updated.Important || !updated.Urgent {
		t.Errorf("Flags did not persist: important=%v urgent=%v", updated.Important, updated.Urgent)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.UpdateTask(context.Background(), &models.Task{
		ID:      9999,
		GroupID: 1,
		Title:   "ghost",
		Status:  models.StatusTodo,
	})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	groupID := mustCreateGroup(t, repo, "Work")
	id := mustCreateTask(t, repo, groupID, "doomed")

	if err := repo.DeleteTask(ctx, id); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := repo.GetTaskByID(ctx, id); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected deleted task to be gone, got %v", err)
	}

	if err := repo.DeleteTask(ctx, id); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestGetTaskByID_NotFound(t *testing.T) {
	repo := setupTestRepository(t)

	_, err := repo.GetTaskByID(context.Background(), 9999)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}
