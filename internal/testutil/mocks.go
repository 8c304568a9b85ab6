// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/aicli/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// SpyLauncher is a test double for domain.ProcessLauncher that records every launch.
// Fields are ordered to minimize memory padding.
type SpyLauncher struct {
	Result   *domain.ExecResult
	LaunchFn func(ctx context.Context, cmd *domain.ShellCommand) (*domain.ExecResult, error)
	Err      error
	Calls    []*domain.ShellCommand
	mu       sync.Mutex
}

// NewSpyLauncher creates a SpyLauncher that returns an exit-0 result with the given output.
func NewSpyLauncher(stdout, stderr string, exitCode int) *SpyLauncher {
	return &SpyLauncher{
		Result: &domain.ExecResult{
			Stdout:   stdout,
			Stderr:   stderr,
			ExitCode: exitCode,
		},
	}
}

// Ensure SpyLauncher implements domain.ProcessLauncher interface.
var _ domain.ProcessLauncher = (*SpyLauncher)(nil)

// Launch records the call and returns the configured result or error.
func (m *SpyLauncher) Launch(ctx context.Context, cmd *domain.ShellCommand) (*domain.ExecResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, cmd)
	m.mu.Unlock()

	if m.LaunchFn != nil {
		return m.LaunchFn(ctx, cmd)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result == nil {
		return &domain.ExecResult{Command: cmd.Line}, nil
	}
	result := *m.Result
	result.Command = cmd.Line
	return &result, nil
}

// CallCount returns the number of recorded launches.
func (m *SpyLauncher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockHistoryRepository is a test double for domain.HistoryRepository.
// Fields are ordered to minimize memory padding.
type MockHistoryRepository struct {
	AddErr   error
	ListErr  error
	ClearErr error
	Entries  []domain.HistoryEntry
	NextIDN  int
	Cleared  bool
}

// NewMockHistoryRepository creates a new MockHistoryRepository.
func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{NextIDN: 1}
}

// Ensure MockHistoryRepository implements domain.HistoryRepository interface.
var _ domain.HistoryRepository = (*MockHistoryRepository)(nil)

// Add appends the entry and assigns an ID.
func (m *MockHistoryRepository) Add(entry domain.HistoryEntry) (int, error) {
	if m.AddErr != nil {
		return 0, m.AddErr
	}
	entry.ID = m.NextIDN
	m.NextIDN++
	m.Entries = append(m.Entries, entry)
	return entry.ID, nil
}

// List returns entries newest first.
func (m *MockHistoryRepository) List(limit int) ([]domain.HistoryEntry, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]domain.HistoryEntry, 0, len(m.Entries))
	for i := len(m.Entries) - 1; i >= 0; i-- {
		out = append(out, m.Entries[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Clear removes all entries.
func (m *MockHistoryRepository) Clear() error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.Entries = nil
	m.Cleared = true
	return nil
}

// MockLogger is a test double for domain.Logger that keeps messages in memory.
type MockLogger struct {
	Messages []string
	mu       sync.Mutex
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Messages = append(m.Messages, fmt.Sprintf("[%s] [%s] %s", level, category, msg))
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning message.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error message.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config        *domain.Config
	GlobalConfig  *domain.Config
	ProjectConfig *domain.Config
	LoadErr       error
	GlobalErr     error
	ProjectErr    error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config or error.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	if m.GlobalErr != nil {
		return nil, m.GlobalErr
	}
	if m.GlobalConfig != nil {
		return m.GlobalConfig, nil
	}
	return m.Config, nil
}

// LoadProject returns the configured project config or error.
func (m *MockConfigLoader) LoadProject() (*domain.Config, error) {
	if m.ProjectErr != nil {
		return nil, m.ProjectErr
	}
	if m.ProjectConfig != nil {
		return m.ProjectConfig, nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitProjectErr    error
	InitGlobalErr     error
	ProjectConfigInfo domain.ConfigInfo
	GlobalConfigInfo  domain.ConfigInfo
	WrittenContent    string
	InitProjectCalled bool
	InitGlobalCalled  bool
	Forced            bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		ProjectConfigInfo: domain.ConfigInfo{
			Path:   "/test/.aicli.toml",
			Exists: false,
		},
		GlobalConfigInfo: domain.ConfigInfo{
			Path:   "/home/test/.config/aicli/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetProjectConfigInfo returns the configured project config info.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo {
	return m.ProjectConfigInfo
}

// GetGlobalConfigInfo returns the configured global config info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalConfigInfo
}

// InitProjectConfig records the call and returns configured error.
func (m *MockConfigManager) InitProjectConfig(content string, force bool) error {
	m.InitProjectCalled = true
	m.WrittenContent = content
	m.Forced = force
	return m.InitProjectErr
}

// InitGlobalConfig records the call and returns configured error.
func (m *MockConfigManager) InitGlobalConfig(content string, force bool) error {
	m.InitGlobalCalled = true
	m.WrittenContent = content
	m.Forced = force
	return m.InitGlobalErr
}
