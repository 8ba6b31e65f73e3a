package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todo/internal/domain"
)

// Store persists one task collection as the rows of the tasks table sharing a collection name.
type Store struct {
	db         *sql.DB
	collection string
	location   string
}

// Location identifies the database file and collection, e.g. "/home/u/.td/td.db#pending"
func (s *Store) Location() string {
	return s.location
}

// Load returns the collection in saved order. An unknown collection is empty.
func (s *Store) Load(ctx context.Context) ([]*domain.Task, error) {
	query := `
	SELECT collection, position, id, title, description, due_date, priority, completed
	FROM tasks
	WHERE collection = ?
	ORDER BY position ASC`

	rows, err := QueryMultiple(ctx, s.db, s.location, query, ScanTaskRows, s.collection)
	if err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(rows))
	for _, row := range rows {
		t, err := FromRow(*row)
		if err != nil {
			return nil, HandlePersistenceError("decode", s.location, fmt.Errorf("position %d: %w", row.Position, err))
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save replaces every row of the collection in one transaction.
func (s *Store) Save(ctx context.Context, tasks []*domain.Task) error {
	return WithTx(ctx, s.db, s.location, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE collection = ?`, s.collection); err != nil {
			return HandlePersistenceError("clear", s.location, err)
		}

		stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tasks (collection, position, id, title, description, due_date, priority, completed)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return HandlePersistenceError("prepare insert for", s.location, err)
		}
		defer stmt.Close()

		for i, t := range tasks {
			row := ToRow(s.collection, int64(i), t)
			_, err := stmt.ExecContext(ctx,
				row.Collection, row.Position, row.ID, row.Title, row.Description,
				row.DueDate, row.Priority, BoolToDB(row.Completed))
			if err != nil {
				return HandlePersistenceError("save", s.location, err)
			}
		}
		return nil
	})
}
