package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/aicli/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	projectRoot   string // Directory holding .aicli.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/aicli)
}

// NewManager creates a new Manager.
func NewManager(projectRoot string) *Manager {
	return &Manager{
		projectRoot:   projectRoot,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(projectRoot, globalConfDir string) *Manager {
	return &Manager{
		projectRoot:   projectRoot,
		globalConfDir: globalConfDir,
	}
}

// GetProjectConfigInfo returns information about the project config file.
func (m *Manager) GetProjectConfigInfo() domain.ConfigInfo {
	if m.projectRoot == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(domain.ProjectConfigPath(m.projectRoot))
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(filepath.Join(m.globalConfDir, domain.ConfigFileName))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitProjectConfig writes content to the project config file.
func (m *Manager) InitProjectConfig(content string, force bool) error {
	if m.projectRoot == "" {
		return errors.New("project directory not available")
	}
	return m.initConfig(domain.ProjectConfigPath(m.projectRoot), content, force)
}

// InitGlobalConfig writes content to the global config file.
func (m *Manager) InitGlobalConfig(content string, force bool) error {
	if m.globalConfDir == "" {
		return errors.New("global config directory not available")
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0o700); err != nil {
		return err
	}

	return m.initConfig(filepath.Join(m.globalConfDir, domain.ConfigFileName), content, force)
}

// initConfig creates a config file, refusing to overwrite unless force is set.
func (m *Manager) initConfig(path, content string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}
	return os.WriteFile(path, []byte(content), 0o600)
}
