package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/registry"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds what the command handlers share: the task registry, the
// active configuration and the output stream.
type App struct {
	registry *registry.Registry
	config   *config.Config
	out      io.Writer
	errors   *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(reg *registry.Registry, cfg *config.Config, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &App{
		registry: reg,
		config:   cfg,
		out:      out,
		errors:   NewErrorHandler(),
	}
}

// Registry returns the registry the commands operate on
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// findTask resolves a full or shortened task ID typed by the user.
func (a *App) findTask(id string) (*domain.Task, error) {
	return a.registry.FindByPrefix(id)
}

// printTasks writes one line per task, or a notice when there are none.
func (a *App) printTasks(tasks []*domain.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(a.out, a.formatTask(t))
	}
}

func (a *App) formatTask(t *domain.Task) string {
	status := " "
	if t.IsCompleted() {
		status = "x"
	}
	return fmt.Sprintf("[%s] %s  %s | %s | Due: %s (%s) | Priority: %s",
		status, t.ShortID(), t.Title(), t.Description(),
		t.DueDate().Format(a.config.Display.DateFormat), relativeDue(t.DueDate()), t.Priority())
}

// relativeDue describes a due date relative to today, e.g. "3 days from now".
func relativeDue(due time.Time) string {
	today := domain.NormalizeDate(timeNow())
	if domain.SameDay(due, today) {
		return "today"
	}
	return humanize.RelTime(due, today, "overdue", "from now")
}

// parseDue accepts a YYYY-MM-DD date, or "today"/"tomorrow".
func parseDue(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return domain.NormalizeDate(timeNow()), nil
	case "tomorrow":
		return domain.NormalizeDate(timeNow()).AddDate(0, 0, 1), nil
	}
	return domain.ParseDate(s)
}
