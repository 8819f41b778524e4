package backend

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// LazyEntry is an Entry that defers reading from durable storage until
// its contents are first accessed. The first Get, Fields, Len or
// Snapshot call materializes the full field mapping exactly once and
// caches it for the lifetime of the entry object.
//
// Writes bypass the cache: Set and Delete push the change straight to
// the backend, and an already materialized cache is not refreshed. An
// entry is meant to be obtained, read once and worked with locally;
// callers that need to observe their own writes must request a fresh
// entry from the backend.
type LazyEntry struct {
	materialize func() (map[string]any, error)
	write       func(field string, value any) error
	remove      func(field string) error

	loaded bool
	cache  map[string]any
}

// NewLazyEntry creates an entry backed by the given storage callbacks.
// Materializing a step with no stored data must yield an empty (or
// nil) mapping, not an error.
func NewLazyEntry(
	materialize func() (map[string]any, error),
	write func(field string, value any) error,
	remove func(field string) error,
) *LazyEntry {
	return &LazyEntry{materialize: materialize, write: write, remove: remove}
}

func (e *LazyEntry) load() (map[string]any, error) {
	if e.loaded {
		return e.cache, nil
	}
	fields, err := e.materialize()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	e.cache = fields
	e.loaded = true
	return e.cache, nil
}

func (e *LazyEntry) Get(field string) (any, error) {
	fields, err := e.load()
	if err != nil {
		return nil, err
	}
	value, exists := fields[field]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchField, field)
	}
	return value, nil
}

func (e *LazyEntry) Set(field string, value any) error {
	return e.write(field, value)
}

func (e *LazyEntry) Delete(field string) error {
	return e.remove(field)
}

func (e *LazyEntry) Fields() ([]string, error) {
	fields, err := e.load()
	if err != nil {
		return nil, err
	}
	names := maps.Keys(fields)
	slices.Sort(names)
	return names, nil
}

func (e *LazyEntry) Len() (int, error) {
	fields, err := e.load()
	if err != nil {
		return 0, err
	}
	return len(fields), nil
}

func (e *LazyEntry) Snapshot() (map[string]any, error) {
	fields, err := e.load()
	if err != nil {
		return nil, err
	}
	return maps.Clone(fields), nil
}
