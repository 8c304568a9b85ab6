// Package app provides the dependency injection container for the application.
package app

import (
	"io"
	"os"
	"path/filepath"

	"github.com/runoshun/aicli/internal/domain"
	"github.com/runoshun/aicli/internal/infra/config"
	"github.com/runoshun/aicli/internal/infra/executor"
	"github.com/runoshun/aicli/internal/infra/git"
	"github.com/runoshun/aicli/internal/infra/jsonstore"
	"github.com/runoshun/aicli/internal/infra/logging"
	"github.com/runoshun/aicli/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir     string // Directory aicli was started in
	ProjectRoot string // Git work tree root, or WorkDir outside a repository
	StateDir    string // Path to $XDG_STATE_HOME/aicli
	HistoryPath string // Path to history.json
}

// newConfig resolves application paths for the given directory.
func newConfig(dir string) Config {
	stateDir := defaultStateDir()
	historyPath := ""
	if stateDir != "" {
		historyPath = domain.HistoryPath(stateDir)
	}
	return Config{
		WorkDir:     dir,
		ProjectRoot: git.ProjectRoot(dir),
		StateDir:    stateDir,
		HistoryPath: historyPath,
	}
}

// defaultStateDir returns $XDG_STATE_HOME/aicli, falling back to ~/.local/state/aicli.
func defaultStateDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		stateHome = filepath.Join(home, ".local", "state")
	}
	return domain.StateDir(stateHome)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Launcher      domain.ProcessLauncher
	History       domain.HistoryRepository // nil when no state directory is available
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Configuration
	Config Config
}

// New creates a new Container rooted at the given directory.
// Unlike most commands in a repository tool, aicli works outside git repositories too.
func New(dir string) (*Container, error) {
	cfg := newConfig(dir)

	configLoader := config.NewLoader(cfg.ProjectRoot)
	configManager := config.NewManager(cfg.ProjectRoot)

	// Log level comes from config; a broken config is reported by the command itself.
	level := domain.DefaultLogLevel
	if appConfig, err := configLoader.Load(); err == nil {
		level = appConfig.Log.Level
	}
	logger := logging.New(cfg.StateDir, logging.ParseLevel(level))

	var history domain.HistoryRepository
	if cfg.HistoryPath != "" {
		history = jsonstore.New(cfg.HistoryPath)
	}

	return &Container{
		Launcher:      executor.NewClient(),
		History:       history,
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Logger:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	cfg Config,
	launcher domain.ProcessLauncher,
	history domain.HistoryRepository,
	configLoader domain.ConfigLoader,
	configManager domain.ConfigManager,
	clock domain.Clock,
	logger domain.Logger,
) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Launcher:      launcher,
		History:       history,
		Clock:         clock,
		ConfigLoader:  configLoader,
		ConfigManager: configManager,
		Logger:        logger,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.Logger.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// UseCase factory methods

// RunCommandUseCase returns a new RunCommand use case.
func (c *Container) RunCommandUseCase() *usecase.RunCommand {
	uc := usecase.NewRunCommand(c.Launcher, c.ConfigLoader, c.Clock, c.Logger)
	if c.History != nil {
		uc = uc.WithHistory(c.History)
	}
	return uc
}

// ListHistoryUseCase returns a new ListHistory use case.
func (c *Container) ListHistoryUseCase() *usecase.ListHistory {
	return usecase.NewListHistory(c.historyRepository(), c.ConfigLoader)
}

// ClearHistoryUseCase returns a new ClearHistory use case.
func (c *Container) ClearHistoryUseCase() *usecase.ClearHistory {
	return usecase.NewClearHistory(c.historyRepository())
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	logPath := ""
	if c.Config.StateDir != "" {
		logPath = domain.LogPath(c.Config.StateDir)
	}
	return usecase.NewShowLogs(logPath)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// ShowConfigTemplateUseCase returns a new ShowConfigTemplate use case.
func (c *Container) ShowConfigTemplateUseCase() *usecase.ShowConfigTemplate {
	return usecase.NewShowConfigTemplate()
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// historyRepository returns the configured repository, or one that
// reports ErrHistoryUnavailable when no state directory could be resolved.
func (c *Container) historyRepository() domain.HistoryRepository {
	if c.History != nil {
		return c.History
	}
	return unavailableHistory{}
}

type unavailableHistory struct{}

func (unavailableHistory) Add(domain.HistoryEntry) (int, error) {
	return 0, domain.ErrHistoryUnavailable
}

func (unavailableHistory) List(int) ([]domain.HistoryEntry, error) {
	return nil, domain.ErrHistoryUnavailable
}

func (unavailableHistory) Clear() error {
	return domain.ErrHistoryUnavailable
}
