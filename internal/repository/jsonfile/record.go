package jsonfile

import (
	"todo/internal/domain"
)

// record is the on-disk shape of one task. The document root is a JSON array of records.
type record struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Completed   bool   `json:"completed"`
}

func toRecord(t *domain.Task) record {
	return record{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		DueDate:     domain.FormatDate(t.DueDate()),
		Priority:    t.Priority().String(),
		Completed:   t.IsCompleted(),
	}
}

func toRecords(tasks []*domain.Task) []record {
	records := make([]record, len(tasks))
	for i, t := range tasks {
		records[i] = toRecord(t)
	}
	return records
}

// fromRecord rebuilds a task, enforcing the entity rules on what was read.
func fromRecord(r record) (*domain.Task, error) {
	due, err := domain.ParseDate(r.DueDate)
	if err != nil {
		return nil, err
	}
	return domain.RestoreTask(r.ID, r.Title, r.Description, due, r.Priority, r.Completed)
}
