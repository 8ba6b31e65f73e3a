package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command; args[0] is the task ID or a prefix of it
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.findTask(args[0])
	if err != nil {
		return c.app.errors.Handle("delete task", err)
	}

	if err := c.app.registry.Delete(ctx, task); err != nil {
		return c.app.errors.Handle("delete task", err)
	}

	fmt.Fprintf(c.app.out, "Deleted task %s: %s\n", task.ShortID(), task.Title())
	return nil
}
