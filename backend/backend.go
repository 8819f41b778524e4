package backend

import "github.com/trainlog-io/trainlog/common"

//go:generate mockgen -source backend.go -destination backend_mocks.go -package backend

// ErrNoSuchField is reported when reading an entry field that is not
// present.
const ErrNoSuchField = common.ConstError("no such field")

// An Entry is the field/value mapping recorded at one step of a
// training run. Two kinds exist: eager entries acting directly on a
// live in-process mapping, and lazy entries deferring the read from
// durable storage until the contents are first accessed.
type Entry interface {

	// Get returns the value recorded under the given field, or an
	// ErrNoSuchField error if the field is absent.
	Get(field string) (any, error)

	// Set records a value under the given field.
	Set(field string, value any) error

	// Delete removes the given field. Deleting an absent field is not
	// an error.
	Delete(field string) error

	// Fields lists the recorded field names in sorted order.
	Fields() ([]string, error)

	// Len returns the number of recorded fields.
	Len() (int, error)

	// Snapshot returns a copy of the full field mapping.
	Snapshot() (map[string]any, error)
}

// A Backend owns the physical storage of log entries and of the run's
// info and status records.
//
// Backends are not safe for concurrent use; the log assumes a single
// writer appending entries in non-decreasing step order.
type Backend interface {

	// Entry returns the entry recorded at the given step. Reading a
	// step that was never written yields an empty entry, never an
	// error.
	Entry(step uint64) Entry

	// Steps lists all steps with recorded data. Database backends
	// report ascending step order; the in-memory backend reports
	// insertion order, which coincides for callers honoring the
	// append-in-order contract.
	Steps() ([]uint64, error)

	// Count returns the number of steps with recorded data.
	Count() (uint64, error)

	// Info provides access to the run's metadata record.
	Info() Entry

	// Status provides access to the run's status record. Backends
	// without physical status storage return a process-local entry.
	Status() Entry

	// Close releases all resources held by the backend.
	Close() error
}

// An Exporter is a backend whose entry data lives in process memory
// and must therefore travel inside serialized log snapshots. Database
// backends do not implement it; their data stays in the database and
// snapshots carry the configuration needed to reconnect.
type Exporter interface {

	// ExportEntries returns all recorded entries in step insertion
	// order.
	ExportEntries() ([]StepEntry, error)

	// ImportEntries replaces the backend content with the given
	// entries.
	ImportEntries(entries []StepEntry) error
}

// StepEntry is one exported log entry together with its step.
type StepEntry struct {
	Step   uint64         `json:"step"`
	Fields map[string]any `json:"fields"`
}
