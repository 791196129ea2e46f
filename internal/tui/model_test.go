package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/quadodev/quado/internal/models"
	"github.com/quadodev/quado/internal/services/task"
)

// boardModel builds a model with in-memory board data and no services;
// good enough for the pure selection and filtering helpers
func boardModel() *Model {
	return &Model{
		groups: []*models.Group{
			{ID: 1, Name: "Work"},
			{ID: 2, Name: "Home"},
		},
		tasks: []*models.Task{
			{ID: 1, GroupID: 1, Title: "ship release", Status: models.StatusDoing, Important: true, Urgent: true},
			{ID: 2, GroupID: 1, Title: "write docs", Status: models.StatusTodo, Important: true},
			{ID: 3, GroupID: 2, Title: "fix faucet", Status: models.StatusTodo, Urgent: true},
			{ID: 4, GroupID: 2, Title: "water plants", Status: models.StatusDone},
		},
		settings:    models.DefaultSettings(),
		groupFilter: allGroups,
	}
}

func TestVisibleTasks_AllGroups(t *testing.T) {
	m := boardModel()

	if got := len(m.visibleTasks()); got != 4 {
		t.Errorf("Expected all 4 tasks visible, got %d", got)
	}
}

func TestVisibleTasks_GroupFilter(t *testing.T) {
	m := boardModel()
	m.groupFilter = 0 // Work

	visible := m.visibleTasks()
	if len(visible) != 2 {
		t.Fatalf("Expected 2 Work tasks, got %d", len(visible))
	}
	for _, task := range visible {
		if task.GroupID != 1 {
			t.Errorf("Task %d leaked through the group filter", task.ID)
		}
	}
}

func TestVisibleTasks_HideDone(t *testing.T) {
	m := boardModel()
	m.settings.HideDone = true

	for _, task := range m.visibleTasks() {
		if task.Status == models.StatusDone {
			t.Errorf("Done task %d visible despite hideDone", task.ID)
		}
	}
	if got := len(m.visibleTasks()); got != 3 {
		t.Errorf("Expected 3 tasks with done hidden, got %d", got)
	}
}

func TestPaneTasks_Bucketing(t *testing.T) {
	m := boardModel()

	tests := []struct {
		quadrant models.Quadrant
		wantIDs  []int64
	}{
		{models.QuadrantUrgentImportant, []int64{1}},
		{models.QuadrantImportant, []int64{2}},
		{models.QuadrantUrgent, []int64{3}},
		{models.QuadrantNeither, []int64{4}},
	}

	for _, tt := range tests {
		bucket := m.paneTasks(tt.quadrant)
		if len(bucket) != len(tt.wantIDs) {
			t.Errorf("%s: expected %d tasks, got %d", tt.quadrant.Label(), len(tt.wantIDs), len(bucket))
			continue
		}
		for i, id := range tt.wantIDs {
			if bucket[i].ID != id {
				t.Errorf("%s[%d]: expected task %d, got %d", tt.quadrant.Label(), i, id, bucket[i].ID)
			}
		}
	}
}

func TestSelectedTask_CardsAndList(t *testing.T) {
	m := boardModel()

	m.pane = models.QuadrantUrgent
	m.cursor = 0
	if got := m.selectedTask(); got == nil || got.ID != 3 {
		t.Errorf("Cards selection: expected task 3, got %+v", got)
	}

	m.settings.ViewMode = models.ViewModeList
	m.cursor = 1
	if got := m.selectedTask(); got == nil || got.ID != 2 {
		t.Errorf("List selection: expected task 2, got %+v", got)
	}
}

func TestClampCursor(t *testing.T) {
	m := boardModel()
	m.settings.ViewMode = models.ViewModeList

	m.cursor = 99
	m.clampCursor()
	if m.cursor != 3 {
		t.Errorf("Cursor past the end should clamp to 3, got %d", m.cursor)
	}

	m.cursor = -2
	m.clampCursor()
	if m.cursor != 0 {
		t.Errorf("Negative cursor should clamp to 0, got %d", m.cursor)
	}

	m.tasks = nil
	m.clampCursor()
	if m.cursor != 0 {
		t.Errorf("Cursor on an empty board should be 0, got %d", m.cursor)
	}
}

func TestDefaultGroupID(t *testing.T) {
	m := boardModel()

	if got := m.defaultGroupID(); got != 1 {
		t.Errorf("All-groups filter should default to the first group, got %d", got)
	}

	m.groupFilter = 1
	if got := m.defaultGroupID(); got != 2 {
		t.Errorf("Filtered view should default to the filtered group, got %d", got)
	}

	m.groups = nil
	m.groupFilter = allGroups
	if got := m.defaultGroupID(); got != 0 {
		t.Errorf("No groups should yield 0, got %d", got)
	}
}

func TestUserFacingError(t *testing.T) {
	if got := userFacingError("save task", task.ErrEmptyTitle); got != task.ErrEmptyTitle.Error() {
		t.Errorf("Validation errors should pass through verbatim, got %q", got)
	}

	infra := errors.New("disk I/O error")
	got := userFacingError("save task", infra)
	if strings.Contains(got, "disk I/O") {
		t.Errorf("Infrastructure detail leaked to the user: %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a longer string", 8, "a longe…"},
		{"任务标题很长的情况", 5, "任务标题…"},
		{"anything", 0, ""},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestStatusMarker(t *testing.T) {
	if statusMarker(models.StatusDone) == statusMarker(models.StatusTodo) {
		t.Error("Done and todo should render distinct markers")
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); got != "one" {
		t.Errorf("firstLine = %q, want %q", got, "one")
	}
	if got := firstLine("only"); got != "only" {
		t.Errorf("firstLine = %q, want %q", got, "only")
	}
}
