package backend

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// EagerEntry is an Entry view over a live in-process field mapping.
// All operations act on the mapping directly, so the entry always
// reflects the latest state and no caching is involved.
type EagerEntry struct {
	fields map[string]any
}

// NewEagerEntry creates an entry over the given mapping. The mapping
// stays owned by the caller; changes made through the entry are
// visible to every other view of the same mapping.
func NewEagerEntry(fields map[string]any) *EagerEntry {
	if fields == nil {
		fields = map[string]any{}
	}
	return &EagerEntry{fields: fields}
}

func (e *EagerEntry) Get(field string) (any, error) {
	value, exists := e.fields[field]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchField, field)
	}
	return value, nil
}

func (e *EagerEntry) Set(field string, value any) error {
	e.fields[field] = value
	return nil
}

func (e *EagerEntry) Delete(field string) error {
	delete(e.fields, field)
	return nil
}

func (e *EagerEntry) Fields() ([]string, error) {
	fields := maps.Keys(e.fields)
	slices.Sort(fields)
	return fields, nil
}

func (e *EagerEntry) Len() (int, error) {
	return len(e.fields), nil
}

func (e *EagerEntry) Snapshot() (map[string]any, error) {
	return maps.Clone(e.fields), nil
}
