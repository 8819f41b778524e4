package trainlog

import (
	"fmt"

	"github.com/trainlog-io/trainlog/backend"
	"github.com/trainlog-io/trainlog/backend/ldb"
	"github.com/trainlog-io/trainlog/backend/memory"
	"github.com/trainlog-io/trainlog/backend/mongo"
	"github.com/trainlog-io/trainlog/backend/sqlite"
	"github.com/trainlog-io/trainlog/common"
)

// BackendType selects the storage strategy of a log.
type BackendType string

const (
	Memory  BackendType = "memory"
	SQLite  BackendType = "sqlite"
	Mongo   BackendType = "mongo"
	LevelDB BackendType = "leveldb"
)

// UnsupportedConfiguration is the error returned if unsupported
// configuration parameters have been specified.
const UnsupportedConfiguration = common.ConstError("unsupported configuration")

// Parameters defines the configuration of a log instance.
type Parameters struct {
	// Backend selects the storage strategy. Left empty, the in-memory
	// backend is used.
	Backend BackendType `json:"backend"`

	// Path is the database location of the file backends (sqlite
	// database file, leveldb directory).
	Path string `json:"path,omitempty"`

	// Database, Host and Port locate the document store. Host and Port
	// may be left zero to use the local default deployment.
	Database string `json:"database,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`

	// Run is the hex-encoded identity of the experiment to record or
	// resume. Left empty, a fresh random identity is generated.
	Run string `json:"run,omitempty"`

	// StatusExclude lists status names hidden from status iteration.
	StatusExclude []string `json:"status_exclude,omitempty"`
}

// openBackend resolves the configured backend. An unknown selector is
// reported as an UnsupportedConfiguration error; an unreachable
// database is reported here, at construction time.
func openBackend(params Parameters, run common.RunID) (backend.Backend, error) {
	switch params.Backend {
	case Memory, "":
		return memory.NewLog(), nil
	case SQLite:
		return sqlite.NewLog(params.Path, run)
	case Mongo:
		config := mongo.Config{
			Database: params.Database,
			Host:     params.Host,
			Port:     params.Port,
		}
		return mongo.NewLog(config, run)
	case LevelDB:
		return ldb.NewLog(params.Path, run)
	}
	return nil, fmt.Errorf("%w: unknown backend %q", UnsupportedConfiguration, params.Backend)
}
