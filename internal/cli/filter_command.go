package cli

import (
	"context"
	"strings"

	"todo/internal/domain"
	"todo/internal/errors"
)

// Filter kinds accepted by FilterCommand
const (
	FilterStatus   = "status"
	FilterPriority = "priority"
	FilterDue      = "due"
)

// FilterCommand handles the filter command
type FilterCommand struct {
	app  *App
	kind string
}

// NewFilterCommand creates a filter command handler for one filter kind
func NewFilterCommand(app *App, kind string) *FilterCommand {
	return &FilterCommand{app: app, kind: kind}
}

// Execute runs the filter; args[0] is the value to filter by
func (c *FilterCommand) Execute(ctx context.Context, args []string) error {
	value := strings.TrimSpace(args[0])

	var tasks []*domain.Task
	switch c.kind {
	case FilterStatus:
		completed, err := parseStatus(value)
		if err != nil {
			return c.app.errors.Handle("filter tasks", err)
		}
		tasks = c.app.registry.FilterByStatus(completed)
	case FilterPriority:
		tasks = c.app.registry.FilterByPriority(value)
	case FilterDue:
		due, err := parseDue(value)
		if err != nil {
			return c.app.errors.Handle("filter tasks", err)
		}
		tasks = c.app.registry.FilterByDueDate(due)
	default:
		return errors.NewInvalidInputError("filter", c.kind, "unknown filter")
	}

	c.app.printTasks(tasks)
	return nil
}

func parseStatus(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "pending", "open", "todo":
		return false, nil
	case "completed", "complete", "done":
		return true, nil
	}
	return false, errors.NewInvalidInputError("status", s, "status must be pending or completed")
}
