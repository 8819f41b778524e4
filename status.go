package trainlog

import (
	"fmt"

	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/common"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Status names always present in a log.
const (
	IterationsDone = "iterations_done"
	EpochsDone     = "epochs_done"
	EpochEnds      = "epoch_ends"
)

// ErrNoSuchStatus is reported when reading an absent status name.
const ErrNoSuchStatus = common.ConstError("no such status name")

// StatusRecord tracks the progress of the training loop: iterations
// and epochs done, and any further names the loop or its extensions
// record. Names on the exclusion list stay readable and writable but
// are hidden from iteration, which keeps per-step tidbits out of
// printed logs.
//
// The record keeps an authoritative in-process copy of all values and
// writes every change through to the backend's status storage. Reads
// never touch the backend after construction; progress counters are
// read-modify-written every iteration and must not be served from a
// stale remote snapshot.
type StatusRecord struct {
	values  map[string]any
	store   backend.Entry
	exclude map[string]struct{}
}

// newStatusRecord attaches a status record to the given backend status
// entry, seeding the local copy with whatever a previous process has
// persisted for the same run. The base counters are created at zero
// unless resumed values exist.
func newStatusRecord(store backend.Entry, exclude []string) (*StatusRecord, error) {
	values, err := store.Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to load status; %w", err)
	}
	record := &StatusRecord{
		values:  values,
		store:   store,
		exclude: map[string]struct{}{},
	}
	for _, name := range exclude {
		record.exclude[name] = struct{}{}
	}
	for _, name := range []string{IterationsDone, EpochsDone} {
		if _, exists := record.values[name]; !exists {
			if err := record.Set(name, 0); err != nil {
				return nil, err
			}
		}
	}
	return record, nil
}

// Get returns the value recorded under the given name.
func (s *StatusRecord) Get(name string) (any, error) {
	value, exists := s.values[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchStatus, name)
	}
	return value, nil
}

// Int returns the value recorded under the given name as an integer
// counter, accepting the numeric types status values resume with.
func (s *StatusRecord) Int(name string) (int, error) {
	value, err := s.Get(name)
	if err != nil {
		return 0, err
	}
	switch number := value.(type) {
	case int:
		return number, nil
	case int32:
		return int(number), nil
	case int64:
		return int(number), nil
	case float64:
		return int(number), nil
	}
	return 0, fmt.Errorf("status %s is not an integer: %v", name, value)
}

// Set records a value and writes it through to the backend.
func (s *StatusRecord) Set(name string, value any) error {
	if err := s.store.Set(name, value); err != nil {
		return err
	}
	s.values[name] = value
	return nil
}

// Names lists the recorded status names in sorted order, with the
// exclusion list applied.
func (s *StatusRecord) Names() []string {
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		if _, hidden := s.exclude[name]; hidden {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len counts the status names visible to iteration.
func (s *StatusRecord) Len() int {
	return len(s.Names())
}

// AppendEpochEnd records that an epoch finished at the given step,
// extending the epoch_ends list and incrementing the epoch counter.
func (s *StatusRecord) AppendEpochEnd(step int) error {
	var ends []any
	if value, exists := s.values[EpochEnds]; exists {
		if list, ok := value.([]any); ok {
			ends = list
		}
	}
	ends = append(ends, step)
	if err := s.Set(EpochEnds, ends); err != nil {
		return err
	}
	epochs, err := s.Int(EpochsDone)
	if err != nil {
		return err
	}
	return s.Set(EpochsDone, epochs+1)
}

// snapshot returns a copy of all values, ignoring the exclusion list.
func (s *StatusRecord) snapshot() map[string]any {
	return maps.Clone(s.values)
}
