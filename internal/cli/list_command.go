package cli

import (
	"context"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App

	Completed bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute lists pending tasks, or completed ones when Completed is set
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if c.Completed {
		c.app.printTasks(c.app.registry.Completed())
		return nil
	}
	c.app.printTasks(c.app.registry.Pending())
	return nil
}
