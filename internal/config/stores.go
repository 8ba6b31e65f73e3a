package config

import (
	"fmt"
	"io"

	"todo/internal/logging"
	"todo/internal/registry"
	"todo/internal/repository/jsonfile"
	"todo/internal/repository/sqlite"
)

// Stores are the two collection stores a Registry is built from.
type Stores struct {
	Pending   registry.Store
	Completed registry.Store

	closer io.Closer
}

// Close releases the backend, if it holds anything open.
func (s *Stores) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// CreateStores creates the pending and completed stores for the configured backend
func CreateStores(config *Config) (*Stores, error) {
	switch config.Storage.Backend {
	case BackendJSON:
		return createJSONStores(config)
	case BackendSQLite:
		db, err := sqlite.Open(config.GetDatabasePath(), config.GetDirPermissions())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		logging.Debugf("opened task database %s\n", db.Path())
		return newSQLiteStores(db), nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: "unknown backend " + config.Storage.Backend}
	}
}

// CreateTestStores creates stores on an in-memory database for testing
func CreateTestStores() (*Stores, error) {
	db, err := sqlite.Open(sqlite.MemoryPath, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}
	return newSQLiteStores(db), nil
}

func createJSONStores(config *Config) (*Stores, error) {
	dirPerm := config.GetDirPermissions()
	// Documents get the directory mode without execute bits, e.g. 0755 -> 0644.
	perms := []jsonfile.Option{
		jsonfile.WithDirPermissions(dirPerm),
		jsonfile.WithFilePermissions(dirPerm &^ 0111),
	}

	pending, err := jsonfile.New(config.GetPendingPath(), perms...)
	if err != nil {
		return nil, err
	}
	completed, err := jsonfile.New(config.GetCompletedPath(), perms...)
	if err != nil {
		return nil, err
	}
	return &Stores{Pending: pending, Completed: completed}, nil
}

func newSQLiteStores(db *sqlite.Database) *Stores {
	return &Stores{
		Pending:   db.Store("pending"),
		Completed: db.Store("completed"),
		closer:    db,
	}
}
