package cli

import (
	"context"
	"fmt"
)

// ReopenCommand moves a completed task back to the pending list
type ReopenCommand struct {
	app *App
}

// NewReopenCommand creates a new reopen command handler
func NewReopenCommand(app *App) *ReopenCommand {
	return &ReopenCommand{app: app}
}

// Execute runs the reopen command; args[0] is the task ID or a prefix of it
func (c *ReopenCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.findTask(args[0])
	if err != nil {
		return c.app.errors.Handle("reopen task", err)
	}

	if !task.IsCompleted() {
		fmt.Fprintf(c.app.out, "Task %s is not completed\n", task.ShortID())
		return nil
	}

	if err := c.app.registry.Reopen(ctx, task); err != nil {
		return c.app.errors.Handle("reopen task", err)
	}

	fmt.Fprintf(c.app.out, "Reopened task %s: %s\n", task.ShortID(), task.Title())
	return nil
}
