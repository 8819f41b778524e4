// Package sqlite provides the embedded relational log backend. Entries
// of many runs share one append-only table in a single database file.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/common"

	_ "github.com/mattn/go-sqlite3"
)

var (
	// See https://www.sqlite.org/pragma.html
	kConfigureConnection = []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
)

const (
	kCreateLogTable = "CREATE TABLE IF NOT EXISTS log (run BLOB NOT NULL, iteration INTEGER NOT NULL, key TEXT NOT NULL, value BLOB)"
	kCreateLogIndex = "CREATE INDEX IF NOT EXISTS log_run_iteration ON log(run, iteration)"

	kAddRowStmt      = "INSERT INTO log(run, iteration, key, value) VALUES (?,?,?,?)"
	kGetEntryStmt    = "SELECT key, value FROM log WHERE run = ? AND iteration = ? ORDER BY rowid"
	kDeleteFieldStmt = "DELETE FROM log WHERE run = ? AND iteration = ? AND key = ?"
	kGetStepsStmt    = "SELECT DISTINCT iteration FROM log WHERE run = ? ORDER BY iteration"
	kGetCountStmt    = "SELECT COUNT(DISTINCT iteration) FROM log WHERE run = ?"
)

// Log is the SQLite backend. Writes are append-only inserts, so
// repeated writes to one key accumulate rows; materialization folds
// the rows in insertion order, making the last written value win.
//
// The physical table stores entries only. Status and info records are
// process-local and travel inside serialized log snapshots.
type Log struct {
	db  *sql.DB
	run common.RunID

	addRowStmt      *sql.Stmt
	getEntryStmt    *sql.Stmt
	deleteFieldStmt *sql.Stmt
	getStepsStmt    *sql.Stmt
	getCountStmt    *sql.Stmt

	info   map[string]any
	status map[string]any
}

// NewLog opens the database file, creating it and the log table if
// absent, and scopes all further operations to the given run.
func NewLog(file string, run common.RunID) (*Log, error) {
	db, err := sql.Open("sqlite3", "file:"+file)
	if err != nil {
		return nil, fmt.Errorf("sqlite backend unavailable; %w", err)
	}
	for _, cmd := range kConfigureConnection {
		if _, err := db.Exec(cmd); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to configure connection with %s; %w", cmd, err)
		}
	}
	if _, err := db.Exec(kCreateLogTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create log table; %w", err)
	}
	if _, err := db.Exec(kCreateLogIndex); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create log index; %w", err)
	}

	addRow, err := db.Prepare(kAddRowStmt)
	if err != nil {
		db.Close()
		return nil, err
	}
	getEntry, err := db.Prepare(kGetEntryStmt)
	if err != nil {
		db.Close()
		return nil, err
	}
	deleteField, err := db.Prepare(kDeleteFieldStmt)
	if err != nil {
		db.Close()
		return nil, err
	}
	getSteps, err := db.Prepare(kGetStepsStmt)
	if err != nil {
		db.Close()
		return nil, err
	}
	getCount, err := db.Prepare(kGetCountStmt)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Log{
		db:              db,
		run:             run,
		addRowStmt:      addRow,
		getEntryStmt:    getEntry,
		deleteFieldStmt: deleteField,
		getStepsStmt:    getSteps,
		getCountStmt:    getCount,
		info:            map[string]any{},
		status:          map[string]any{},
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
	rows, err := l.getEntryStmt.Query(l.run[:], step)
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %d; %w", step, err)
	}
	defer rows.Close()
	fields := map[string]any{}
	for rows.Next() {
		var key string
		var data []byte
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("failed to read entry %d; %w", step, err)
		}
		value, err := common.DecodeValue(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s of entry %d; %w", key, step, err)
		}
		fields[key] = value
	}
	return fields, rows.Err()
}

func (l *Log) write(step uint64, field string, value any) error {
	data, err := common.EncodeValue(value)
	if err != nil {
		return err
	}
	if _, err := l.addRowStmt.Exec(l.run[:], step, field, data); err != nil {
		return fmt.Errorf("failed to add log row; %w", err)
	}
	return nil
}

func (l *Log) remove(step uint64, field string) error {
	if _, err := l.deleteFieldStmt.Exec(l.run[:], step, field); err != nil {
		return fmt.Errorf("failed to delete field %s of entry %d; %w", field, step, err)
	}
	return nil
}

func (l *Log) Steps() ([]uint64, error) {
	rows, err := l.getStepsStmt.Query(l.run[:])
	if err != nil {
		return nil, fmt.Errorf("failed to list steps; %w", err)
	}
	defer rows.Close()
	var steps []uint64
	for rows.Next() {
		var step uint64
		if err := rows.Scan(&step); err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, rows.Err()
}

func (l *Log) Count() (uint64, error) {
	rows, err := l.getCountStmt.Query(l.run[:])
	if err != nil {
		return 0, fmt.Errorf("failed to count steps; %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		var count uint64
		err = rows.Scan(&count)
		return count, err
	}
	return 0, rows.Err()
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
