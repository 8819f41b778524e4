// Package memory provides the in-memory log backend: a default
// constructing, insertion ordered table of per-step field mappings.
// It is the fastest option for local iteration, but its data only
// survives a process restart inside serialized log snapshots.
package memory

import (
	"github.com/trainlog-io/trainlog/backend"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Log is the in-memory backend. Accessing an absent step creates and
// retains an empty field mapping, so all entries of one step share a
// single live map and reads always reflect the latest state.
type Log struct {
	order   []uint64
	entries map[uint64]map[string]any
	info    map[string]any
	status  map[string]any
}

// NewLog creates an empty in-memory log backend.
func NewLog() *Log {
	return &Log{
		entries: map[uint64]map[string]any{},
		info:    map[string]any{},
		status:  map[string]any{},
	}
}

func (l *Log) Entry(step uint64) backend.Entry {
	return backend.NewEagerEntry(l.fields(step))
}

// fields returns the live mapping of the given step, creating and
// retaining an empty one on first access.
func (l *Log) fields(step uint64) map[string]any {
	fields, exists := l.entries[step]
	if !exists {
		fields = map[string]any{}
		l.entries[step] = fields
		l.order = append(l.order, step)
	}
	return fields
}

func (l *Log) Steps() ([]uint64, error) {
	return slices.Clone(l.order), nil
}

func (l *Log) Count() (uint64, error) {
	return uint64(len(l.entries)), nil
}

func (l *Log) Info() backend.Entry {
	return backend.NewEagerEntry(l.info)
}

func (l *Log) Status() backend.Entry {
	return backend.NewEagerEntry(l.status)
}

func (l *Log) Close() error {
	return nil
}

// ExportEntries implements backend.Exporter, listing all entries in
// insertion order.
func (l *Log) ExportEntries() ([]backend.StepEntry, error) {
	entries := make([]backend.StepEntry, 0, len(l.order))
	for _, step := range l.order {
		entries = append(entries, backend.StepEntry{
			Step:   step,
			Fields: maps.Clone(l.entries[step]),
		})
	}
	return entries, nil
}

// ImportEntries implements backend.Exporter, replacing the backend
// content with the given entries.
func (l *Log) ImportEntries(entries []backend.StepEntry) error {
	l.order = nil
	l.entries = map[uint64]map[string]any{}
	for _, entry := range entries {
		fields := l.fields(entry.Step)
		for field, value := range entry.Fields {
			fields[field] = value
		}
	}
	return nil
}
