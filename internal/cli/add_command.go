package cli

import (
	"context"
	"fmt"

	"todo/internal/domain"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App

	Title       string
	Description string
	Due         string
	Priority    string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	due, err := parseDue(c.Due)
	if err != nil {
		return c.app.errors.Handle("add task", err)
	}

	task, err := domain.NewTask(c.Title, c.Description, due, c.Priority)
	if err != nil {
		return c.app.errors.Handle("add task", err)
	}

	if err := c.app.registry.Add(ctx, task); err != nil {
		return c.app.errors.Handle("add task", err)
	}

	fmt.Fprintf(c.app.out, "Added task %s\n", task.ShortID())
	fmt.Fprintln(c.app.out, c.app.formatTask(task))
	return nil
}
