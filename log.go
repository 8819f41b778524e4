// Package trainlog implements a log of training progress: a
// step-indexed store of key/value metrics produced by an iterative
// training loop, together with a mutable status record describing the
// loop's progress.
//
// A log can be stored in a variety of backends. The in-memory backend
// keeps values in a nested mapping; it is simple and fast, but the log
// is hard to access for analysis during training and only survives a
// restart inside serialized snapshots. The database backends (sqlite,
// mongo, leveldb) keep results in durable, queryable storage and allow
// many experiments to share one physical database, scoped by a run
// identifier.
package trainlog

import (
	"errors"
	"fmt"
	"time"

	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/common"
)

// ErrInvalidTimestamp is reported when reading a negative step.
const ErrInvalidTimestamp = common.ConstError("invalid timestamp")

// infoCreated is the info field recording the run's creation time.
const infoCreated = "created"

// Log is the log of training progress. Information is represented as
// entries of step, key, value records; the Status record describes the
// current state of the loop (iterations and epochs done).
type Log struct {
	// Status is the status record of the training loop.
	Status *StatusRecord

	params  Parameters
	run     common.RunID
	backend backend.Backend
}

// New creates or resumes a training log as configured by the given
// parameters. A malformed run identity or an unknown or unreachable
// backend fails construction immediately.
func New(params Parameters) (*Log, error) {
	run, err := resolveRun(params.Run)
	if err != nil {
		return nil, err
	}
	b, err := openBackend(params, run)
	if err != nil {
		return nil, err
	}
	log := &Log{params: params, run: run, backend: b}
	if log.Status, err = newStatusRecord(b.Status(), params.StatusExclude); err != nil {
		b.Close()
		return nil, err
	}
	if err := log.ensureCreated(); err != nil {
		b.Close()
		return nil, err
	}
	return log, nil
}

func resolveRun(run string) (common.RunID, error) {
	if run == "" {
		return common.NewRunID()
	}
	return common.ParseRunID(run)
}

// ensureCreated stamps the info record with the creation time of the
// run, keeping an existing stamp when resuming.
func (l *Log) ensureCreated() error {
	info := l.backend.Info()
	if _, err := info.Get(infoCreated); err == nil {
		return nil
	} else if !errors.Is(err, backend.ErrNoSuchField) {
		return err
	}
	return info.Set(infoCreated, time.Now().Unix())
}

// Entry returns the entry recorded at the given step. Steps must be
// non-negative; reading a step that was never written yields an empty
// entry. Database backends return a lazy entry that queries storage on
// first access only, so obtaining an entry just for writing performs
// no read.
func (l *Log) Entry(step int) (backend.Entry, error) {
	if step < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTimestamp, step)
	}
	return l.backend.Entry(uint64(step)), nil
}

// CurrentEntry returns the entry of the iteration in progress.
func (l *Log) CurrentEntry() (backend.Entry, error) {
	done, err := l.Status.Int(IterationsDone)
	if err != nil {
		return nil, err
	}
	return l.Entry(done)
}

// PreviousEntry returns the entry of the last completed iteration. It
// fails before the first iteration has completed.
func (l *Log) PreviousEntry() (backend.Entry, error) {
	done, err := l.Status.Int(IterationsDone)
	if err != nil {
		return nil, err
	}
	return l.Entry(done - 1)
}

// Steps lists all steps with recorded data in ascending order.
func (l *Log) Steps() ([]uint64, error) {
	return l.backend.Steps()
}

// Len returns the number of steps with recorded data.
func (l *Log) Len() (uint64, error) {
	return l.backend.Count()
}

// Run returns the identity of the recorded experiment.
func (l *Log) Run() common.RunID {
	return l.run
}

// Info provides access to the run's metadata record.
func (l *Log) Info() backend.Entry {
	return l.backend.Info()
}

// Close releases the backend and all resources held by it.
func (l *Log) Close() error {
	return l.backend.Close()
}
