package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Storage backends
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the task manager
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Logging     LoggingConfig     `yaml:"logging"`
	Display     DisplayConfig     `yaml:"display"`
	Application ApplicationConfig `yaml:"application"`
}

// StorageConfig holds where and how the task collections are persisted
type StorageConfig struct {
	DataDir        string `yaml:"data_dir" env:"TD_DATA_DIR"`
	Backend        string `yaml:"backend" env:"TD_BACKEND"`
	PendingFile    string `yaml:"pending_file" env:"TD_PENDING_FILE"`
	CompletedFile  string `yaml:"completed_file" env:"TD_COMPLETED_FILE"`
	DBFilename     string `yaml:"db_filename" env:"TD_DB_FILENAME"`
	DirPermissions uint32 `yaml:"dir_permissions" env:"TD_DIR_PERMISSIONS"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `yaml:"level" env:"TD_LOG_LEVEL"`
	Format string `yaml:"format" env:"TD_LOG_FORMAT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `yaml:"date_format" env:"TD_DATE_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"TD_APP_TIMEOUT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Storage: StorageConfig{
			DataDir:        filepath.Join(homeDir, ".td"),
			Backend:        BackendJSON,
			PendingFile:    "pending.json",
			CompletedFile:  "completed.json",
			DBFilename:     "td.db",
			DirPermissions: 0755,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
	}
}

// GetPendingPath returns the full path of the pending collection document
func (c *Config) GetPendingPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.PendingFile)
}

// GetCompletedPath returns the full path of the completed collection document
func (c *Config) GetCompletedPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.CompletedFile)
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.DBFilename)
}

// GetDirPermissions returns the mode used for created directories
func (c *Config) GetDirPermissions() os.FileMode {
	return os.FileMode(c.Storage.DirPermissions)
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse are ignored.
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("TD_DATA_DIR"); dir != "" {
		c.Storage.DataDir = dir
	}
	if backend := os.Getenv("TD_BACKEND"); backend != "" {
		c.Storage.Backend = strings.ToLower(backend)
	}
	if name := os.Getenv("TD_PENDING_FILE"); name != "" {
		c.Storage.PendingFile = name
	}
	if name := os.Getenv("TD_COMPLETED_FILE"); name != "" {
		c.Storage.CompletedFile = name
	}
	if filename := os.Getenv("TD_DB_FILENAME"); filename != "" {
		c.Storage.DBFilename = filename
	}
	if perms := os.Getenv("TD_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Logging configuration
	if level := os.Getenv("TD_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if format := os.Getenv("TD_LOG_FORMAT"); format != "" {
		c.Logging.Format = format
	}

	// Display configuration
	if format := os.Getenv("TD_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Application configuration
	if timeout := os.Getenv("TD_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.DataDir == "" {
		return &ConfigError{Field: "storage.data_dir", Message: "data directory cannot be empty"}
	}
	switch c.Storage.Backend {
	case BackendJSON:
		if c.Storage.PendingFile == "" {
			return &ConfigError{Field: "storage.pending_file", Message: "pending file name cannot be empty"}
		}
		if c.Storage.CompletedFile == "" {
			return &ConfigError{Field: "storage.completed_file", Message: "completed file name cannot be empty"}
		}
		if c.GetPendingPath() == c.GetCompletedPath() {
			return &ConfigError{Field: "storage.completed_file", Message: "pending and completed tasks must be stored in different files"}
		}
	case BackendSQLite:
		if c.Storage.DBFilename == "" {
			return &ConfigError{Field: "storage.db_filename", Message: "database filename cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.backend", Message: "backend must be one of: " + BackendJSON + ", " + BackendSQLite}
	}
	if c.Storage.DirPermissions == 0 || c.Storage.DirPermissions > 0777 {
		return &ConfigError{Field: "storage.dir_permissions", Message: "directory permissions must be an octal mode between 0001 and 0777"}
	}

	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: err.Error()}
	}
	if f := strings.ToLower(c.Logging.Format); f != "text" && f != "json" {
		return &ConfigError{Field: "logging.format", Message: "log format must be text or json"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
