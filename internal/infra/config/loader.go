// Package config provides configuration loading functionality.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/aicli/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	projectRoot   string // Directory holding .aicli.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/aicli)
}

// NewLoader creates a new Loader.
func NewLoader(projectRoot string) *Loader {
	return &Loader{
		projectRoot:   projectRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(projectRoot, globalConfDir string) *Loader {
	return &Loader{
		projectRoot:   projectRoot,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (defaults <- global <- project).
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	project, err := l.LoadProject()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if project != nil {
		base = mergeConfigs(base, project)
	}

	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadProject returns only the project configuration.
func (l *Loader) LoadProject() (*domain.Config, error) {
	if l.projectRoot == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(domain.ProjectConfigPath(l.projectRoot))
}

// loadFile loads a configuration from a file.
// Unknown keys do not fail the load; they are reported in Config.Warnings.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg domain.Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strictErr *toml.StrictMissingError
		if !errors.As(err, &strictErr) {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		for _, e := range strictErr.Errors {
			cfg.Warnings = append(cfg.Warnings,
				fmt.Sprintf("unknown key in %s: %s", filepath.Base(path), strings.Join(e.Key(), ".")))
		}
	}

	return &cfg, nil
}

// mergeConfigs overlays the values set in override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	res := *base
	res.Warnings = append(append([]string{}, base.Warnings...), override.Warnings...)

	if override.Exec.Shell != "" {
		res.Exec.Shell = override.Exec.Shell
		// A shell change without a flag keeps the platform default flag.
		res.Exec.ShellFlag = override.Exec.ShellFlag
		if res.Exec.ShellFlag == "" {
			_, res.Exec.ShellFlag = domain.DefaultShell()
		}
	} else if override.Exec.ShellFlag != "" {
		res.Exec.ShellFlag = override.Exec.ShellFlag
	}
	if override.Exec.Timeout != "" {
		res.Exec.Timeout = override.Exec.Timeout
	}
	if override.Exec.Dir != "" {
		res.Exec.Dir = override.Exec.Dir
	}
	if override.Exec.Confirm != nil {
		res.Exec.Confirm = override.Exec.Confirm
	}
	if override.Output.Color != nil {
		res.Output.Color = override.Output.Color
	}
	if override.Log.Level != "" {
		res.Log.Level = override.Log.Level
	}
	if override.History.Enabled != nil {
		res.History.Enabled = override.History.Enabled
	}
	if override.History.Limit != 0 {
		res.History.Limit = override.History.Limit
	}

	return &res
}
