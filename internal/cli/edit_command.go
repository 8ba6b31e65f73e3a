package cli

import (
	"context"
	"fmt"

	"todo/internal/registry"
)

// EditCommand handles the edit command. Empty fields are left unchanged.
type EditCommand struct {
	app *App

	Title       string
	Description string
	Due         string
	Priority    string
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// Execute runs the edit command; args[0] is the task ID or a prefix of it
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.findTask(args[0])
	if err != nil {
		return c.app.errors.Handle("edit task", err)
	}

	req := registry.EditRequest{
		Title:       optional(c.Title),
		Description: optional(c.Description),
		Priority:    optional(c.Priority),
	}
	if c.Due != "" {
		due, err := parseDue(c.Due)
		if err != nil {
			return c.app.errors.Handle("edit task", err)
		}
		req.DueDate = &due
	}

	before := task.Clone()
	if err := c.app.registry.Edit(ctx, task, req); err != nil {
		return c.app.errors.Handle("edit task", err)
	}

	if before.Equal(task) {
		fmt.Fprintf(c.app.out, "No changes to task %s\n", task.ShortID())
	} else {
		fmt.Fprintf(c.app.out, "Updated task %s\n", task.ShortID())
	}
	fmt.Fprintln(c.app.out, c.app.formatTask(task))
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
