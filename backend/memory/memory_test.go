package memory

import (
	"errors"
	"testing"

	"github.com/trainlog-io/trainlog/backend"
)

func TestMemoryLog_AccessCreatesAndRetainsEntries(t *testing.T) {
	log := NewLog()

	entry := log.Entry(5)
	if length, _ := entry.Len(); length != 0 {
		t.Errorf("fresh entry has %d fields, want 0", length)
	}

	count, err := log.Count()
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("got count %d, want 1 after a single access", count)
	}
	steps, err := log.Steps()
	if err != nil {
		t.Fatalf("failed to list steps: %v", err)
	}
	if len(steps) != 1 || steps[0] != 5 {
		t.Errorf("got steps %v, want [5]", steps)
	}
}

func TestMemoryLog_EntriesShareTheLiveMapping(t *testing.T) {
	log := NewLog()

	if err := log.Entry(0).Set("field", 45); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	value, err := log.Entry(0).Get("field")
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if value != 45 {
		t.Errorf("got %v, want 45", value)
	}
	if _, err := log.Entry(0).Get("other"); !errors.Is(err, backend.ErrNoSuchField) {
		t.Errorf("got %v, want ErrNoSuchField", err)
	}
}

func TestMemoryLog_StepsKeepInsertionOrder(t *testing.T) {
	log := NewLog()
	for _, step := range []uint64{0, 1, 2, 7} {
		if err := log.Entry(step).Set("field", int(step)); err != nil {
			t.Fatalf("failed to write step %d: %v", step, err)
		}
	}
	steps, err := log.Steps()
	if err != nil {
		t.Fatalf("failed to list steps: %v", err)
	}
	want := []uint64{0, 1, 2, 7}
	if len(steps) != len(want) {
		t.Fatalf("got %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("got %v, want %v", steps, want)
		}
	}
}

func TestMemoryLog_ExportImportRoundTrip(t *testing.T) {
	log := NewLog()
	log.Entry(0).Set("field", 45)
	log.Entry(1).Set("loss", 0.5)
	log.Entry(3).Set("loss", 0.25)

	exported, err := log.ExportEntries()
	if err != nil {
		t.Fatalf("failed to export: %v", err)
	}

	restored := NewLog()
	if err := restored.ImportEntries(exported); err != nil {
		t.Fatalf("failed to import: %v", err)
	}

	steps, _ := restored.Steps()
	want := []uint64{0, 1, 3}
	if len(steps) != len(want) {
		t.Fatalf("got steps %v, want %v", steps, want)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("got steps %v, want %v", steps, want)
		}
	}
	if value, _ := restored.Entry(0).Get("field"); value != 45 {
		t.Errorf("got %v, want 45", value)
	}
	if value, _ := restored.Entry(3).Get("loss"); value != 0.25 {
		t.Errorf("got %v, want 0.25", value)
	}
}

func TestMemoryLog_StatusAndInfoAreRetained(t *testing.T) {
	log := NewLog()
	if err := log.Status().Set("iterations_done", 3); err != nil {
		t.Fatalf("failed to write status: %v", err)
	}
	if value, err := log.Status().Get("iterations_done"); err != nil || value != 3 {
		t.Errorf("got %v, %v; want 3", value, err)
	}
	if err := log.Info().Set("created", 1700000000); err != nil {
		t.Fatalf("failed to write info: %v", err)
	}
	if value, err := log.Info().Get("created"); err != nil || value != 1700000000 {
		t.Errorf("got %v, %v; want 1700000000", value, err)
	}
}
