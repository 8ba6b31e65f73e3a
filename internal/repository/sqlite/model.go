package sqlite

import (
	"todo/internal/domain"
)

// TaskRow is one row of the tasks table. Rows of a collection are ordered by Position.
type TaskRow struct {
	Collection  string
	Position    int64
	ID          string
	Title       string
	Description string
	DueDate     string
	Priority    string
	Completed   bool
}

// ToRow converts a domain task into its row at the given position.
func ToRow(collection string, position int64, t *domain.Task) TaskRow {
	return TaskRow{
		Collection:  collection,
		Position:    position,
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		DueDate:     FormatDateForDB(t.DueDate()),
		Priority:    t.Priority().String(),
		Completed:   t.IsCompleted(),
	}
}

// FromRow rebuilds a domain task, enforcing the entity rules on the stored values.
func FromRow(row TaskRow) (*domain.Task, error) {
	due, err := ParseDateFromDB(row.DueDate)
	if err != nil {
		return nil, err
	}
	return domain.RestoreTask(row.ID, row.Title, row.Description, due, row.Priority, row.Completed)
}
