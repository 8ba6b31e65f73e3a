package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"todo/internal/config"
	"todo/internal/domain"
	"todo/internal/errors"
	"todo/internal/logging"
	"todo/internal/registry"
)

// StoreFactory builds the collection stores for a loaded configuration
type StoreFactory func(cfg *config.Config) (*config.Stores, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
	stores *config.Stores

	newStores StoreFactory
	out       io.Writer
	errOut    io.Writer
}

// RootOption configures a RootCommand
type RootOption func(*RootCommand)

// WithApp runs commands against an existing App instead of loading
// configuration and stores. Used by tests.
func WithApp(app *App) RootOption {
	return func(r *RootCommand) {
		r.app = app
		r.config = app.config
	}
}

// WithStoreFactory replaces config.CreateStores
func WithStoreFactory(f StoreFactory) RootOption {
	return func(r *RootCommand) { r.newStores = f }
}

// WithOutput redirects command output and diagnostics
func WithOutput(out, errOut io.Writer) RootOption {
	return func(r *RootCommand) {
		r.out = out
		r.errOut = errOut
	}
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opts ...RootOption) *RootCommand {
	root := &RootCommand{
		newStores: config.CreateStores,
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
	for _, opt := range opts {
		opt(root)
	}

	root.cmd = &cobra.Command{
		Use:   "td",
		Short: "A command-line task manager",
		Long: `td is a command-line application for keeping a personal to-do list.

Tasks have a title, a description, a due date and a priority (High, Medium
or Low). Pending and completed tasks are stored separately under the data
directory.

EXAMPLES:
  td add -t "Buy milk" -d "2% milk" --due 2025-01-10 -p high
  td list                                  # Pending tasks
  td list --completed                      # Completed tasks
  td edit 3f2a --priority low              # Tasks are addressed by ID prefix
  td complete 3f2a
  td filter priority high
  td filter due tomorrow

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config file > defaults

  The config file is $TD_CONFIG, or config.yaml in the data directory.

  TD_DATA_DIR                              Data directory (default: ~/.td)
  TD_BACKEND                               Storage backend: json or sqlite (default: json)
  TD_PENDING_FILE                          Pending tasks document (default: pending.json)
  TD_COMPLETED_FILE                        Completed tasks document (default: completed.json)
  TD_DB_FILENAME                           SQLite database filename (default: td.db)
  TD_DIR_PERMISSIONS                       Octal mode for created directories (default: 755)
  TD_LOG_LEVEL                             Log level (default: warn)
  TD_LOG_FORMAT                            Log format: text or json (default: text)
  TD_DATE_FORMAT                           Due date display layout (default: 2006-01-02)
  TD_APP_TIMEOUT                           Application timeout (default: 30s)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.bootstrap(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return root.Close()
		},
	}
	root.cmd.SetOut(root.out)
	root.cmd.SetErr(root.errOut)

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with ctx as the parent of every command context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides the command line arguments, like cobra.Command.SetArgs
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Close releases the stores opened by bootstrap
func (r *RootCommand) Close() error {
	if r.stores == nil {
		return nil
	}
	err := r.stores.Close()
	r.stores = nil
	return err
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("data-dir", "", "Data directory (overrides TD_DATA_DIR)")
	flags.String("backend", "", "Storage backend, json or sqlite (overrides TD_BACKEND)")
	flags.String("log-level", "", "Log level (overrides TD_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, text or json (overrides TD_LOG_FORMAT)")
	flags.String("date-format", "", "Due date display layout (overrides TD_DATE_FORMAT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TD_APP_TIMEOUT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	add := NewAddCommand(nil)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new task",
		Long: `Add a new pending task. All four fields are required.

Due dates use YYYY-MM-DD, or "today" / "tomorrow".
Priorities are High, Medium or Low, in any case.`,
		Args: cobra.NoArgs,
		RunE: r.run(func(app *App) Command {
			add.app = app
			return add
		}),
	}
	addCmd.Flags().StringVarP(&add.Title, "title", "t", "", "Task title")
	addCmd.Flags().StringVarP(&add.Description, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&add.Due, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVarP(&add.Priority, "priority", "p", "", "Priority ("+priorityNames()+")")
	for _, name := range []string{"title", "description", "due", "priority"} {
		_ = addCmd.MarkFlagRequired(name)
	}

	edit := NewEditCommand(nil)
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit the fields of a task. Only the flags given are changed.

If any new value is invalid the task is left exactly as it was.`,
		Args: cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			edit.app = app
			return edit
		}),
	}
	editCmd.Flags().StringVarP(&edit.Title, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&edit.Description, "description", "d", "", "New description")
	editCmd.Flags().StringVar(&edit.Due, "due", "", "New due date (YYYY-MM-DD)")
	editCmd.Flags().StringVarP(&edit.Priority, "priority", "p", "", "New priority ("+priorityNames()+")")

	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a pending or completed task. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			return NewDeleteCommand(app)
		}),
	}

	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			return NewCompleteCommand(app)
		}),
	}

	reopenCmd := &cobra.Command{
		Use:   "reopen <id>",
		Short: "Move a completed task back to pending",
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			return NewReopenCommand(app)
		}),
	}

	list := NewListCommand(nil)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List pending tasks in the order they were added, or completed tasks with --completed.",
		Args:  cobra.NoArgs,
		RunE: r.run(func(app *App) Command {
			list.app = app
			return list
		}),
	}
	listCmd.Flags().BoolVarP(&list.Completed, "completed", "c", false, "List completed tasks")

	filterCmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter tasks by status, priority or due date",
		Long: `Filter tasks.

Examples:
  td filter status completed      # Completed tasks
  td filter priority alta         # Pending tasks with High priority
  td filter due 2025-01-10        # Pending tasks due on that day`,
	}
	filterCmd.AddCommand(
		r.filterSubcommand(FilterStatus, "status <pending|completed>", "Tasks with the given status"),
		r.filterSubcommand(FilterPriority, "priority <priority>", "Pending tasks with the given priority"),
		r.filterSubcommand(FilterDue, "due <YYYY-MM-DD>", "Pending tasks due on the given day"),
	)

	r.cmd.AddCommand(
		addCmd,
		editCmd,
		deleteCmd,
		completeCmd,
		reopenCmd,
		listCmd,
		filterCmd,
	)
}

func (r *RootCommand) filterSubcommand(kind, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: r.run(func(app *App) Command {
			return NewFilterCommand(app, kind)
		}),
	}
}

// priorityNames lists the canonical priorities for flag help, e.g. "High, Medium, Low".
func priorityNames() string {
	names := make([]string, 0, 3)
	for _, p := range domain.Priorities() {
		names = append(names, p.String())
	}
	return strings.Join(names, ", ")
}

// run adapts a command handler to cobra, bounding it by the application timeout.
func (r *RootCommand) run(handler func(app *App) Command) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if r.app == nil {
			return fmt.Errorf("application not initialized")
		}
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, cancel := context.WithTimeout(parent, r.getAppTimeout())
		defer cancel()

		return handler(r.app).Execute(ctx, args)
	}
}

// bootstrap loads configuration, applies flag overrides, then opens the
// stores and loads the registry. A registry that failed to load is still
// used; the failure has already been logged.
func (r *RootCommand) bootstrap(ctx context.Context) error {
	if r.app != nil {
		return r.applyFlags(r.config)
	}

	cfg, err := config.NewLoader().LoadWithOverrides(r.overridesFromFlags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	r.config = cfg

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, r.errOut)
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	logging.SetDefault(logger)

	stores, err := r.newStores(cfg)
	if err != nil {
		return NewErrorHandler().Handle("open task storage", err)
	}
	r.stores = stores

	if ctx == nil {
		ctx = context.Background()
	}
	reg, err := registry.New(ctx, stores.Pending, stores.Completed,
		registry.WithLogger(logger.WithField("component", "registry")))
	if err != nil {
		if !errors.IsPersistenceError(err) {
			return NewErrorHandler().Handle("load tasks", err)
		}
		logger.WithFields(logrus.Fields{
			"pending":   stores.Pending.Location(),
			"completed": stores.Completed.Location(),
		}).Debug("continuing with the collections that could be loaded")
	}

	r.app = NewApp(reg, cfg, r.out)
	return nil
}

// overridesFromFlags collects the global flags that were set explicitly
func (r *RootCommand) overridesFromFlags() *config.ConfigOverrides {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if dataDir, _ := flags.GetString("data-dir"); dataDir != "" {
		overrides.DataDir = &dataDir
	}
	if backend, _ := flags.GetString("backend"); backend != "" {
		overrides.Backend = &backend
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		overrides.LogLevel = &level
	}
	if format, _ := flags.GetString("log-format"); format != "" {
		overrides.LogFormat = &format
	}
	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		overrides.DateFormat = &dateFormat
	}
	if timeout, _ := flags.GetDuration("app-timeout"); timeout > 0 {
		overrides.Timeout = &timeout
	}

	return overrides
}

// applyFlags updates an injected configuration with the display and
// timeout flags. Storage flags have no effect once stores exist.
func (r *RootCommand) applyFlags(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("configuration not initialized")
	}
	overrides := r.overridesFromFlags()
	if overrides.DateFormat != nil {
		cfg.Display.DateFormat = *overrides.DateFormat
	}
	if overrides.Timeout != nil {
		cfg.Application.Timeout = *overrides.Timeout
	}
	return nil
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second // Default timeout
}
