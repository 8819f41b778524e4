package trainlog

import (
	"encoding/json"
	"fmt"

	"github.com/trainlog-io/trainlog/backend"
)

// logSnapshot is the serialized form of a log: configuration, identity
// and in-process records only. Live database connections and file
// handles are never part of it; Restore reacquires them from the
// configuration.
type logSnapshot struct {
	Parameters Parameters          `json:"parameters"`
	Run        string              `json:"run"`
	Status     map[string]any      `json:"status"`
	Info       map[string]any      `json:"info"`
	Entries    []backend.StepEntry `json:"entries,omitempty"`
}

// Snapshot serializes the log for checkpointing. Backends holding
// their entry data in process memory embed it; database backends
// contribute only the configuration needed to reconnect, their data
// stays in the database.
func (l *Log) Snapshot() ([]byte, error) {
	info, err := l.backend.Info().Snapshot()
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot info; %w", err)
	}
	snap := logSnapshot{
		Parameters: l.params,
		Run:        l.run.String(),
		Status:     l.Status.snapshot(),
		Info:       info,
	}
	if exporter, ok := l.backend.(backend.Exporter); ok {
		if snap.Entries, err = exporter.ExportEntries(); err != nil {
			return nil, fmt.Errorf("failed to snapshot entries; %w", err)
		}
	}
	return json.Marshal(snap)
}

// Restore rebuilds a log from a snapshot, reconnecting to the
// configured backend before any further access. The restored log
// carries the snapshot's identity, so database backends transparently
// resume the same experiment.
func Restore(data []byte) (*Log, error) {
	var snap logSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot; %w", err)
	}
	params := snap.Parameters
	params.Run = snap.Run

	log, err := New(params)
	if err != nil {
		return nil, err
	}
	if exporter, ok := log.backend.(backend.Exporter); ok {
		if err := exporter.ImportEntries(snap.Entries); err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to restore entries; %w", err)
		}
	}
	for name, value := range snap.Status {
		if err := log.Status.Set(name, value); err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to restore status; %w", err)
		}
	}
	info := log.backend.Info()
	for field, value := range snap.Info {
		if err := info.Set(field, value); err != nil {
			log.Close()
			return nil, fmt.Errorf("failed to restore info; %w", err)
		}
	}
	return log, nil
}
