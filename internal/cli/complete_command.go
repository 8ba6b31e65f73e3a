package cli

import (
	"context"
	"fmt"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	app *App
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app}
}

// Execute runs the complete command; args[0] is the task ID or a prefix of it
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.findTask(args[0])
	if err != nil {
		return c.app.errors.Handle("complete task", err)
	}

	if task.IsCompleted() {
		fmt.Fprintf(c.app.out, "Task %s is already completed\n", task.ShortID())
		return nil
	}

	if err := c.app.registry.Complete(ctx, task); err != nil {
		return c.app.errors.Handle("complete task", err)
	}

	fmt.Fprintf(c.app.out, "Completed task %s: %s\n", task.ShortID(), task.Title())
	return nil
}
