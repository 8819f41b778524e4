// Package ldb provides an embedded LevelDB log backend. Entries of
// many runs share one key space in a single database directory, scoped
// by the run identifier.
package ldb

import (
	"encoding/binary"
	"fmt"

	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/common"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const entryKeySpace = byte('e')

const stepSize = 8 // step number size (uint64)

// entry key prefix length up to (and excluding) the field name
const fieldOffset = 1 + common.RunIDSize + stepSize

// newEntryKey composes the key of one field of one step. It consists of
// * the key space byte
// * the run identifier
// * the step number, big endian so iteration order is ascending
// * the field name
func newEntryKey(run common.RunID, step uint64, field string) []byte {
	key := make([]byte, 0, fieldOffset+len(field))
	key = append(key, entryKeySpace)
	key = append(key, run[:]...)
	var stepBytes [stepSize]byte
	binary.BigEndian.PutUint64(stepBytes[:], step)
	key = append(key, stepBytes[:]...)
	key = append(key, field...)
	return key
}

// getEntryRange provides the key range covering all fields of one step.
func getEntryRange(run common.RunID, step uint64) *util.Range {
	return util.BytesPrefix(newEntryKey(run, step, ""))
}

// getRunRange provides the key range covering all entries of one run.
func getRunRange(run common.RunID) *util.Range {
	prefix := make([]byte, 0, 1+common.RunIDSize)
	prefix = append(prefix, entryKeySpace)
	prefix = append(prefix, run[:]...)
	return util.BytesPrefix(prefix)
}

// Log is the LevelDB backend. Field values are stored one key/value
// pair per (run, step, field); writes overwrite in place, unlike the
// append-only relational backend.
//
// The key space stores entries only. Status and info records are
// process-local and travel inside serialized log snapshots.
type Log struct {
	db  *leveldb.DB
	run common.RunID

	info   map[string]any
	status map[string]any
}

// NewLog opens the database directory, creating it if absent, and
// scopes all further operations to the given run.
func NewLog(path string, run common.RunID) (*Log, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("leveldb backend unavailable at %s; %w", path, err)
	}
	return &Log{
		db:     db,
		run:    run,
		info:   map[string]any{},
		status: map[string]any{},
	}, nil
}

func (l *Log) Entry(step uint64) backend.Entry {
	return backend.NewLazyEntry(
		func() (map[string]any, error) { return l.materialize(step) },
		func(field string, value any) error { return l.write(step, field, value) },
		func(field string) error { return l.remove(step, field) },
	)
}

func (l *Log) materialize(step uint64) (map[string]any, error) {
	iter := l.db.NewIterator(getEntryRange(l.run, step), nil)
	defer iter.Release()
	fields := map[string]any{}
	for iter.Next() {
		field := string(iter.Key()[fieldOffset:])
		value, err := common.DecodeValue(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s of entry %d; %w", field, step, err)
		}
		fields[field] = value
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to read entry %d; %w", step, err)
	}
	return fields, nil
}

func (l *Log) write(step uint64, field string, value any) error {
	data, err := common.EncodeValue(value)
	if err != nil {
		return err
	}
	if err := l.db.Put(newEntryKey(l.run, step, field), data, nil); err != nil {
		return fmt.Errorf("failed to write field %s of entry %d; %w", field, step, err)
	}
	return nil
}

func (l *Log) remove(step uint64, field string) error {
	if err := l.db.Delete(newEntryKey(l.run, step, field), nil); err != nil {
		return fmt.Errorf("failed to delete field %s of entry %d; %w", field, step, err)
	}
	return nil
}

func (l *Log) Steps() ([]uint64, error) {
	iter := l.db.NewIterator(getRunRange(l.run), nil)
	defer iter.Release()
	var steps []uint64
	for iter.Next() {
		step := binary.BigEndian.Uint64(iter.Key()[1+common.RunIDSize : fieldOffset])
		if len(steps) == 0 || steps[len(steps)-1] != step {
			steps = append(steps, step)
		}
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("failed to list steps; %w", err)
	}
	return steps, nil
}

func (l *Log) Count() (uint64, error) {
	steps, err := l.Steps()
	if err != nil {
		return 0, err
	}
	return uint64(len(steps)), nil
}

func (l *Log) Info() backend.Entry {
	return backend.NewEagerEntry(l.info)
}

func (l *Log) Status() backend.Entry {
	return backend.NewEagerEntry(l.status)
}

func (l *Log) Close() error {
	return l.db.Close()
}
