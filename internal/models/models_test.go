package models

import "testing"

func TestParseStatus_Valid(t *testing.T) {
	for _, s := range []string{"todo", "doing", "done"} {
		status, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) returned error: %v", s, err)
		}
		if string(status) != s {
			t.Errorf("ParseStatus(%q) = %q, want round-trip unchanged", s, status)
		}
	}
}

func TestParseStatus_Invalid(t *testing.T) {
	for _, s := range []string{"archived", "Done", "TODO", "", "in-progress"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) should have failed", s)
		}
	}
}

func TestStatus_Next(t *testing.T) {
	tests := []struct {
		from Status
		want Status
	}{
		{StatusTodo, StatusDoing},
		{StatusDoing, StatusDone},
		{StatusDone, StatusTodo},
	}

	for _, tt := range tests {
		if got := tt.from.Next(); got != tt.want {
			t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
		}
	}
}

func TestTask_Quadrant(t *testing.T) {
	tests := []struct {
		important bool
		urgent    bool
		want      Quadrant
	}{
		{true, true, QuadrantUrgentImportant},
		{true, false, QuadrantImportant},
		{false, true, QuadrantUrgent},
		{false, false, QuadrantNeither},
	}

	for _, tt := range tests {
		task := &Task{Important: tt.important, Urgent: tt.urgent}
		if got := task.Quadrant(); got != tt.want {
			t.Errorf("Quadrant(important=%v, urgent=%v) = %v, want %v", tt.important, tt.urgent, got, tt.want)
		}
	}
}

func TestQuadrants_Order(t *testing.T) {
	quadrants := Quadrants()
	if len(quadrants) != 4 {
		t.Fatalf("Expected 4 quadrants, got %d", len(quadrants))
	}
	if quadrants[0] != QuadrantUrgentImportant {
		t.Error("Urgent & Important should display first")
	}
	if quadrants[3] != QuadrantNeither {
		t.Error("Later should display last")
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.HideDone {
		t.Error("HideDone should default to false")
	}
	if !s.AlwaysOnTop {
		t.Error("AlwaysOnTop should default to true")
	}
	if s.ViewMode != ViewModeCards {
		t.Errorf("ViewMode should default to %q, got %q", ViewModeCards, s.ViewMode)
	}
	if s.ConciseMode {
		t.Error("ConciseMode should default to false")
	}
}
