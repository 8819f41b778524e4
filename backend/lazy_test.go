package backend

import (
	"errors"
	"testing"

	"golang.org/x/exp/maps"
)

// lazyOverMap builds a lazy entry over a plain map standing in for a
// database, counting how often the store is actually read.
func lazyOverMap(store map[string]any, reads *int) *LazyEntry {
	return NewLazyEntry(
		func() (map[string]any, error) {
			*reads++
			return maps.Clone(store), nil
		},
		func(field string, value any) error {
			store[field] = value
			return nil
		},
		func(field string) error {
			delete(store, field)
			return nil
		},
	)
}

func TestLazyEntry_MaterializesExactlyOnce(t *testing.T) {
	reads := 0
	entry := lazyOverMap(map[string]any{"loss": 0.5, "acc": 0.9}, &reads)

	if _, err := entry.Get("loss"); err != nil {
		t.Fatalf("failed to read field: %v", err)
	}
	if _, err := entry.Fields(); err != nil {
		t.Fatalf("failed to list fields: %v", err)
	}
	if _, err := entry.Len(); err != nil {
		t.Fatalf("failed to get length: %v", err)
	}
	if _, err := entry.Snapshot(); err != nil {
		t.Fatalf("failed to snapshot: %v", err)
	}
	if reads != 1 {
		t.Errorf("store was read %d times, want 1", reads)
	}
}

func TestLazyEntry_WritesBypassTheCache(t *testing.T) {
	reads := 0
	store := map[string]any{"loss": 0.5}
	entry := lazyOverMap(store, &reads)

	// materialize, then write through the same object
	if value, err := entry.Get("loss"); err != nil || value != 0.5 {
		t.Fatalf("got %v, %v; want 0.5", value, err)
	}
	if err := entry.Set("loss", 0.25); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if store["loss"] != 0.25 {
		t.Errorf("write did not reach the store: %v", store["loss"])
	}

	// the materialized object keeps serving its cached snapshot
	if value, _ := entry.Get("loss"); value != 0.5 {
		t.Errorf("cached entry returned %v, want the stale 0.5", value)
	}

	// a fresh entry sees the write
	fresh := lazyOverMap(store, &reads)
	if value, _ := fresh.Get("loss"); value != 0.25 {
		t.Errorf("fresh entry returned %v, want 0.25", value)
	}
}

func TestLazyEntry_DeleteReachesTheStore(t *testing.T) {
	reads := 0
	store := map[string]any{"loss": 0.5}
	entry := lazyOverMap(store, &reads)

	if err := entry.Delete("loss"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, exists := store["loss"]; exists {
		t.Errorf("field still present in the store")
	}
	if reads != 0 {
		t.Errorf("delete materialized the entry")
	}
}

func TestLazyEntry_EmptyStepYieldsEmptyMapping(t *testing.T) {
	entry := NewLazyEntry(
		func() (map[string]any, error) { return nil, nil },
		func(string, any) error { return nil },
		func(string) error { return nil },
	)
	length, err := entry.Len()
	if err != nil {
		t.Fatalf("failed to get length: %v", err)
	}
	if length != 0 {
		t.Errorf("got length %d, want 0", length)
	}
	if _, err := entry.Get("foo"); !errors.Is(err, ErrNoSuchField) {
		t.Errorf("got %v, want ErrNoSuchField", err)
	}
}

func TestEagerEntry_ReflectsTheLiveMapping(t *testing.T) {
	fields := map[string]any{}
	a := NewEagerEntry(fields)
	b := NewEagerEntry(fields)

	if err := a.Set("field", 45); err != nil {
		t.Fatalf("failed to write: %v", err)
	}
	if value, err := b.Get("field"); err != nil || value != 45 {
		t.Errorf("second view got %v, %v; want 45", value, err)
	}
	if err := b.Delete("field"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, err := a.Get("field"); !errors.Is(err, ErrNoSuchField) {
		t.Errorf("got %v, want ErrNoSuchField", err)
	}
}

func TestEagerEntry_FieldsAreSorted(t *testing.T) {
	entry := NewEagerEntry(map[string]any{"b": 2, "a": 1, "c": 3})
	fields, err := entry.Fields()
	if err != nil {
		t.Fatalf("failed to list fields: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(fields) != len(want) {
		t.Fatalf("got %v, want %v", fields, want)
	}
	for i, field := range want {
		if fields[i] != field {
			t.Errorf("got %v, want %v", fields, want)
			break
		}
	}
}

func TestEagerEntry_SnapshotIsACopy(t *testing.T) {
	entry := NewEagerEntry(map[string]any{"field": 45})
	snapshot, err := entry.Snapshot()
	if err != nil {
		t.Fatalf("failed to snapshot: %v", err)
	}
	snapshot["field"] = 0
	if value, _ := entry.Get("field"); value != 45 {
		t.Errorf("mutating the snapshot changed the entry: %v", value)
	}
}
