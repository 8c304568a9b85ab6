package domain

import (
	"context"
	"time"
)

// ProcessLauncher runs shell commands with captured output.
type ProcessLauncher interface {
	// Launch runs cmd through its shell and waits for it to exit.
	// A result is returned for every process that ran, whatever its exit code.
	// An error is returned only when the process could not be run or was
	// stopped by ctx.
	Launch(ctx context.Context, cmd *ShellCommand) (*ExecResult, error)
}

// HistoryRepository manages execution history persistence.
type HistoryRepository interface {
	// Add appends an entry and returns its assigned ID.
	Add(entry HistoryEntry) (int, error)

	// List returns up to limit entries, newest first. limit <= 0 returns all entries.
	List(limit int) ([]HistoryEntry, error)

	// Clear removes all entries.
	Clear() error
}

// Logger writes diagnostic messages outside the user's terminal streams.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards all messages.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- project).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)

	// LoadProject returns only the project configuration.
	LoadProject() (*Config, error)
}

// ConfigInfo describes a configuration file location.
type ConfigInfo struct {
	Path    string // Absolute path to the file
	Content string // File content (empty if missing)
	Exists  bool   // Whether the file exists
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// InitGlobalConfig writes content to the global config file.
	InitGlobalConfig(content string, force bool) error

	// InitProjectConfig writes content to the project config file.
	InitProjectConfig(content string, force bool) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
