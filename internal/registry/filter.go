package registry

import (
	"time"

	"todo/internal/domain"
)

// FilterByStatus returns the tasks whose completion flag equals completed,
// taken from the collection that holds tasks in that state.
func (r *Registry) FilterByStatus(completed bool) []*domain.Task {
	source := r.pending
	if completed {
		source = r.completed
	}
	return filter(source, func(t *domain.Task) bool {
		return t.IsCompleted() == completed
	})
}

// FilterByPriority returns pending tasks with the given priority, compared
// case-insensitively. An unknown priority matches nothing.
func (r *Registry) FilterByPriority(priority string) []*domain.Task {
	return filter(r.pending, func(t *domain.Task) bool {
		return t.Priority().Matches(priority)
	})
}

// FilterByDueDate returns pending tasks due on exactly the calendar day of due.
func (r *Registry) FilterByDueDate(due time.Time) []*domain.Task {
	return filter(r.pending, func(t *domain.Task) bool {
		return domain.SameDay(t.DueDate(), due)
	})
}

func filter(tasks []*domain.Task, keep func(*domain.Task) bool) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
