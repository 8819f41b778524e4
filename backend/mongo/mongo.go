// Package mongo provides the document-store log backend. Entries, info
// and status records of many runs share one MongoDB database, scoped
// by the run identifier, so results can be queried and compared across
// experiments while training is still going on.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/common"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"golang.org/x/exp/slices"
)

const (
	defaultHost = "localhost"
	defaultPort = 27017

	experimentsCollection = "experiments"
	entriesCollection     = "entries"

	connectTimeout = 10 * time.Second
)

// Config locates the MongoDB deployment and database holding the log.
// Host and Port may be left zero to use the local default deployment.
type Config struct {
	Database string
	Host     string
	Port     int
}

// Log is the document-store backend. It keeps one metadata document
// per run in the experiments collection and one document per recorded
// step in the entries collection.
type Log struct {
	client      *mongo.Client
	experiments *mongo.Collection
	entries     *mongo.Collection
	run         common.RunID
}

// NewLog connects to the configured deployment and registers the run.
// An unreachable server is reported at construction time, not on first
// use.
func NewLog(config Config, run common.RunID) (*Log, error) {
	if config.Host == "" {
		config.Host = defaultHost
	}
	if config.Port == 0 {
		config.Port = defaultPort
	}
	uri := fmt.Sprintf("mongodb://%s:%d", config.Host, config.Port)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo backend unavailable; %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo backend unavailable at %s; %w", uri, err)
	}

	db := client.Database(config.Database)
	log := &Log{
		client:      client,
		experiments: db.Collection(experimentsCollection),
		entries:     db.Collection(entriesCollection),
		run:         run,
	}
	if err := log.ensureExperiment(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return log, nil
}

// ensureExperiment registers the run in the experiments collection.
// The update only sets fields on insert, so reconnecting to an
// existing run never overwrites its metadata.
func (l *Log) ensureExperiment() error {
	_, err := l.experiments.UpdateOne(context.Background(),
		bson.M{"_id": l.run.String()},
		bson.M{"$setOnInsert": bson.M{
			"created": time.Now().Unix(),
			"info":    bson.M{},
			"status":  bson.M{},
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to register experiment %v; %w", l.run, err)
	}
	return nil
}

func (l *Log) Entry(step uint64) backend.Entry {
	return backend.NewLazyEntry(
		func() (map[string]any, error) { return l.materialize(step) },
		func(field string, value any) error { return l.write(step, field, value) },
		func(field string) error { return l.remove(step, field) },
	)
}

func (l *Log) materialize(step uint64) (map[string]any, error) {
	projection := bson.M{"_id": false, "experiment": false, "iteration": false}
	result := l.entries.FindOne(context.Background(),
		l.entryFilter(step),
		options.FindOne().SetProjection(projection))

	var fields map[string]any
	if err := result.Decode(&fields); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read entry %d; %w", step, err)
	}
	return fields, nil
}

func (l *Log) write(step uint64, field string, value any) error {
	_, err := l.entries.UpdateOne(context.Background(),
		l.entryFilter(step),
		bson.M{"$set": bson.M{field: Normalize(value)}},
		options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to write field %s of entry %d; %w", field, step, err)
	}
	return nil
}

func (l *Log) remove(step uint64, field string) error {
	_, err := l.entries.UpdateOne(context.Background(),
		l.entryFilter(step),
		bson.M{"$unset": bson.M{field: ""}})
	if err != nil {
		return fmt.Errorf("failed to delete field %s of entry %d; %w", field, step, err)
	}
	return nil
}

func (l *Log) entryFilter(step uint64) bson.M {
	return bson.M{"experiment": l.run.String(), "iteration": int64(step)}
}

func (l *Log) runFilter() bson.M {
	return bson.M{"experiment": l.run.String()}
}

func (l *Log) Steps() ([]uint64, error) {
	raw, err := l.entries.Distinct(context.Background(), "iteration", l.runFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to list steps; %w", err)
	}
	steps := make([]uint64, 0, len(raw))
	for _, value := range raw {
		switch step := value.(type) {
		case int32:
			steps = append(steps, uint64(step))
		case int64:
			steps = append(steps, uint64(step))
		case float64:
			steps = append(steps, uint64(step))
		default:
			return nil, fmt.Errorf("unexpected iteration value %v (%T)", value, value)
		}
	}
	slices.Sort(steps)
	return steps, nil
}

func (l *Log) Count() (uint64, error) {
	count, err := l.entries.CountDocuments(context.Background(), l.runFilter())
	if err != nil {
		return 0, fmt.Errorf("failed to count steps; %w", err)
	}
	return uint64(count), nil
}

func (l *Log) Info() backend.Entry {
	return l.metadataEntry("info")
}

func (l *Log) Status() backend.Entry {
	return l.metadataEntry("status")
}

// metadataEntry wraps one subdocument of the run's experiment document
// with the same one-field-at-a-time write semantics as log entries.
func (l *Log) metadataEntry(section string) backend.Entry {
	return backend.NewLazyEntry(
		func() (map[string]any, error) { return l.materializeMetadata(section) },
		func(field string, value any) error {
			_, err := l.experiments.UpdateOne(context.Background(),
				bson.M{"_id": l.run.String()},
				bson.M{"$set": bson.M{section + "." + field: Normalize(value)}},
				options.Update().SetUpsert(true))
			if err != nil {
				return fmt.Errorf("failed to write %s.%s; %w", section, field, err)
			}
			return nil
		},
		func(field string) error {
			_, err := l.experiments.UpdateOne(context.Background(),
				bson.M{"_id": l.run.String()},
				bson.M{"$unset": bson.M{section + "." + field: ""}})
			if err != nil {
				return fmt.Errorf("failed to delete %s.%s; %w", section, field, err)
			}
			return nil
		},
	)
}

func (l *Log) materializeMetadata(section string) (map[string]any, error) {
	result := l.experiments.FindOne(context.Background(),
		bson.M{"_id": l.run.String()},
		options.FindOne().SetProjection(bson.M{"_id": false, section: true}))

	var document bson.M
	if err := result.Decode(&document); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read %s of experiment %v; %w", section, l.run, err)
	}
	fields := map[string]any{}
	if sub, ok := document[section].(bson.M); ok {
		for field, value := range sub {
			fields[field] = value
		}
	}
	return fields, nil
}

func (l *Log) Close() error {
	return l.client.Disconnect(context.Background())
}

// Normalize converts array and slice values of any element type and
// nesting depth into plain []any trees, the document representation of
// multidimensional numeric data. Byte slices keep their binary form;
// all other values pass through unchanged.
func Normalize(value any) any {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return value
		}
		out := make([]any, v.Len())
		for i := range out {
			out[i] = Normalize(v.Index(i).Interface())
		}
		return out
	default:
		return value
	}
}
