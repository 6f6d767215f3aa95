package store

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/bymeSatya/TaskPilot-AI/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasks.json"), zap.NewNop())
}

func TestLoadAllMissingFile(t *testing.T) {
	s := newTestStore(t)
	if got := s.LoadAll(); len(got) != 0 {
		t.Errorf("LoadAll on missing file = %d tasks, want 0", len(got))
	}
}

func TestLoadAllCorruptFile(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}
	if got := s.LoadAll(); len(got) != 0 {
		t.Errorf("LoadAll on corrupt file = %d tasks, want 0", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	stamp := "2025-08-20T10:00:00Z"
	tasks := []models.Task{
		{
			ID:          "TASK-1",
			Title:       "Fix pipeline",
			Description: "nightly load failing",
			Status:      models.StatusOpen,
			Tags:        []string{"etl"},
			CreatedAt:   stamp,
			DueDays:     5,
			Activity: []models.Activity{
				{At: stamp, Who: "satya", Text: "created"},
			},
		},
		{
			ID:          "TASK-2",
			Title:       "Rotate keys",
			Status:      models.StatusClosed,
			CreatedAt:   stamp,
			CompletedAt: &stamp,
			DueDays:     3,
		},
	}
	if err := s.SaveAll(tasks); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	got := s.LoadAll()
	if len(got) != 2 {
		t.Fatalf("LoadAll = %d tasks, want 2", len(got))
	}
	if got[0].ID != "TASK-1" || got[1].ID != "TASK-2" {
		t.Errorf("order = %s, %s; want TASK-1, TASK-2", got[0].ID, got[1].ID)
	}
	if len(got[0].Activity) != 1 || got[0].Activity[0].Text != "created" {
		t.Errorf("activity not preserved: %+v", got[0].Activity)
	}
	if got[1].CompletedAt == nil || *got[1].CompletedAt != stamp {
		t.Errorf("CompletedAt not preserved: %v", got[1].CompletedAt)
	}

	// Saving what was just loaded must be stable on the next load.
	if err := s.SaveAll(got); err != nil {
		t.Fatalf("SaveAll(LoadAll()): %v", err)
	}
	again := s.LoadAll()
	if len(again) != 2 || again[0].Title != got[0].Title || again[1].DueDays != got[1].DueDays {
		t.Errorf("round trip not idempotent: %+v", again)
	}
}

func TestLoadAllNormalizesLegacyStatus(t *testing.T) {
	s := newTestStore(t)
	raw := `[
  {"id": "TASK-1", "title": "old one", "status": "Completed", "created_at": "2025-08-01T00:00:00"},
  {"id": "TASK-2", "title": "older one", "status": "done", "created_at": "2025-08-02"}
]`
	if err := os.WriteFile(s.Path(), []byte(raw), 0o644); err != nil {
		t.Fatalf("write legacy file: %v", err)
	}

	got := s.LoadAll()
	if len(got) != 2 {
		t.Fatalf("LoadAll = %d tasks, want 2", len(got))
	}
	for _, task := range got {
		if task.Status != models.StatusClosed {
			t.Errorf("task %s status = %q, want %q", task.ID, task.Status, models.StatusClosed)
		}
		if task.DueDays != models.DefaultDueDays {
			t.Errorf("task %s due days = %d, want default %d", task.ID, task.DueDays, models.DefaultDueDays)
		}
	}
}

func TestSaveAllCreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tasks.json")
	s := New(path, zap.NewNop())
	if err := s.SaveAll([]models.Task{{ID: "TASK-1", Title: "x", Status: models.StatusOpen}}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	if got := s.LoadAll(); len(got) != 1 {
		t.Errorf("LoadAll after nested save = %d tasks, want 1", len(got))
	}
}

func TestSaveAllReportsWriteFailure(t *testing.T) {
	// A directory at the file path makes the final rename fail, no matter
	// which user runs the tests.
	dir := t.TempDir()
	blocked := filepath.Join(dir, "tasks.json")
	if err := os.Mkdir(blocked, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	s := New(blocked, zap.NewNop())
	if err := s.SaveAll([]models.Task{{ID: "TASK-1", Title: "x"}}); err == nil {
		t.Fatal("SaveAll over a directory succeeded, want error")
	}
}

func TestSaveAllDoesNotTruncateOnFailure(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveAll([]models.Task{{ID: "TASK-1", Title: "keep me", Status: models.StatusOpen}}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	// Simulate a failed rewrite by pointing a second store at a path whose
	// parent cannot be created, then confirm the original file is intact.
	bad := New(filepath.Join(s.Path(), "impossible", "tasks.json"), zap.NewNop())
	if err := bad.SaveAll(nil); err == nil {
		t.Fatal("SaveAll under a file path succeeded, want error")
	}
	if got := s.LoadAll(); len(got) != 1 || got[0].Title != "keep me" {
		t.Errorf("original collection damaged: %+v", got)
	}
}
