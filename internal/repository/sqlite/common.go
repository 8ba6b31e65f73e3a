package sqlite

import (
	"context"
	"database/sql"

	"todo/internal/errors"
)

// HandlePersistenceError converts database errors to structured app errors
func HandlePersistenceError(operation string, location string, err error) error {
	return errors.NewPersistenceError(operation, location, err)
}

// QueryMultiple executes a query that returns multiple rows and scans them
func QueryMultiple[T any](ctx context.Context, db *sql.DB, location string, query string, scanFunc func(Rows) ([]*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, HandlePersistenceError("query", location, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, HandlePersistenceError("scan", location, err)
	}

	return results, nil
}

// WithTx runs fn inside a transaction, rolling back if fn or the commit fails
func WithTx(ctx context.Context, db *sql.DB, location string, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return HandlePersistenceError("begin transaction on", location, err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return HandlePersistenceError("commit", location, err)
	}
	return nil
}
