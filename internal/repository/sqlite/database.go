package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database, used by tests and the testing environment.
const MemoryPath = ":memory:"

// Database owns the connection shared by the per-collection stores
type Database struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at dbPath and applies migrations.
// The parent directory is created with dirPerm.
func Open(dbPath string, dirPerm os.FileMode) (*Database, error) {
	if dbPath != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), dirPerm); err != nil {
			return nil, errors.NewPersistenceError("create directory for", dbPath, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewPersistenceError("open", dbPath, err)
	}
	// One connection: an in-memory database is per connection, and there is a single writer anyway.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewPersistenceError("migrate", dbPath, err)
	}
	if logging.DebugEnabled() {
		if versions, err := migrations.AppliedVersions(db); err == nil {
			logging.Debugf("sqlite schema migrations applied: %v\n", versions)
		}
	}

	return &Database{db: db, path: dbPath}, nil
}

// Store returns the store for one named collection, such as "pending" or "completed".
func (d *Database) Store(collection string) *Store {
	return &Store{
		db:         d.db,
		collection: collection,
		location:   d.path + "#" + collection,
	}
}

// Path returns the database file path
func (d *Database) Path() string {
	return d.path
}

// Close closes the database connection
func (d *Database) Close() error {
	return d.db.Close()
}
