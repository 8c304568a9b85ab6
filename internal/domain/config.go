package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Exec     ExecConfig    `toml:"exec"`
	Log      LogConfig     `toml:"log"`
	Output   OutputConfig  `toml:"output"`
	History  HistoryConfig `toml:"history"`
}

// ExecConfig holds command execution settings from [exec] section.
type ExecConfig struct {
	Shell     string `toml:"shell,omitempty"`      // Shell interpreter (default: "sh", "cmd" on Windows)
	ShellFlag string `toml:"shell_flag,omitempty"` // Flag passing the command line to the shell (default: "-c")
	Timeout   string `toml:"timeout,omitempty"`    // Go duration string; empty or "0" disables the timeout
	Dir       string `toml:"dir,omitempty"`        // Working directory for commands
	Confirm   *bool  `toml:"confirm,omitempty"`    // Ask before executing (default: true)
}

// OutputConfig holds terminal output settings from [output] section.
type OutputConfig struct {
	Color *bool `toml:"color,omitempty"` // Color warnings (default: true)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// HistoryConfig holds execution history settings from [history] section.
type HistoryConfig struct {
	Enabled *bool `toml:"enabled,omitempty"` // Record executed commands (default: true)
	Limit   int   `toml:"limit,omitempty"`   // Default number of entries shown by "history list"
}

// Default configuration values.
const (
	DefaultLogLevel     = "info"
	DefaultHistoryLimit = 20
)

// TimeoutDuration parses the configured timeout.
// An empty value means no timeout.
func (c ExecConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: exec.timeout %q: %w", ErrInvalidConfig, c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: exec.timeout must not be negative", ErrInvalidConfig)
	}
	return d, nil
}

// ConfirmEnabled reports whether commands require confirmation.
func (c ExecConfig) ConfirmEnabled() bool {
	return c.Confirm == nil || *c.Confirm
}

// ColorEnabled reports whether warnings are colored.
func (c OutputConfig) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// IsEnabled reports whether history recording is on.
func (c HistoryConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := c.Exec.TimeoutDuration(); err != nil {
		return err
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("%w: history.limit must not be negative", ErrInvalidConfig)
	}
	return nil
}

// ShellCommand builds the ShellCommand for a normalized line using this configuration.
// dir overrides exec.dir when non-empty.
func (c *Config) ShellCommand(line, dir string) *ShellCommand {
	cmd := NewShellCommand(line, c.Exec.Dir)
	if dir != "" {
		cmd.Dir = dir
	}
	if c.Exec.Shell != "" {
		cmd.Shell = c.Exec.Shell
		cmd.ShellFlag = c.Exec.ShellFlag
		if cmd.ShellFlag == "" {
			_, cmd.ShellFlag = DefaultShell()
		}
	}
	return cmd
}

// Directory and file names for aicli.
const (
	AppDirName            = "aicli"        // Directory name under XDG config/state homes
	ConfigFileName        = "config.toml"  // Global config file name
	ProjectConfigFileName = ".aicli.toml"  // Config file name in the project root
	HistoryFileName       = "history.json" // History store file name
	LogFileName           = "aicli.log"    // Log file name
)

// GlobalConfigDir returns the global config directory path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// ProjectConfigPath returns the project config path.
func ProjectConfigPath(projectRoot string) string {
	return filepath.Join(projectRoot, ProjectConfigFileName)
}

// StateDir returns the state directory path.
// stateHome is typically XDG_STATE_HOME or ~/.local/state (resolved by caller).
func StateDir(stateHome string) string {
	return filepath.Join(stateHome, AppDirName)
}

// HistoryPath returns the path to the history store.
func HistoryPath(stateDir string) string {
	return filepath.Join(stateDir, HistoryFileName)
}

// LogPath returns the path to the log file.
func LogPath(stateDir string) string {
	return filepath.Join(stateDir, "logs", LogFileName)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	shell, flag := DefaultShell()
	return &Config{
		Exec: ExecConfig{
			Shell:     shell,
			ShellFlag: flag,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		History: HistoryConfig{
			Limit: DefaultHistoryLimit,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Shell        string
	ShellFlag    string
	LogLevel     string
	HistoryLimit int
}

// RenderConfigTemplate renders the config template with the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		Shell:        cfg.Exec.Shell,
		ShellFlag:    cfg.Exec.ShellFlag,
		LogLevel:     cfg.Log.Level,
		HistoryLimit: cfg.History.Limit,
	}

	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Template is embedded and tested; a failure here is a programming error.
		panic(fmt.Sprintf("render config template: %v", err))
	}
	return buf.String()
}
