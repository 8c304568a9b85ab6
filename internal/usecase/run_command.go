// Package usecase contains the application use cases.
package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/runoshun/aicli/internal/domain"
)

// RunCommandInput contains the parameters for running a shell command.
// Fields are ordered to minimize memory padding.
type RunCommandInput struct {
	Stdout  io.Writer     // Receives the banner and captured stdout (required)
	Stderr  io.Writer     // Receives the warnings block (required)
	Command string        // Raw command text, possibly wrapped in markdown fences
	Dir     string        // Working directory override (optional)
	Timeout time.Duration // Overrides exec.timeout when > 0
}

// RunCommandOutput contains the result of running a command.
type RunCommandOutput struct {
	Result *domain.ExecResult
}

// RunCommand is the use case for executing a shell command with captured output.
type RunCommand struct {
	launcher     domain.ProcessLauncher
	history      domain.HistoryRepository // optional
	configLoader domain.ConfigLoader
	clock        domain.Clock
	logger       domain.Logger
	styleWarning func(string) string
}

// NewRunCommand creates a new RunCommand use case.
func NewRunCommand(
	launcher domain.ProcessLauncher,
	configLoader domain.ConfigLoader,
	clock domain.Clock,
	logger domain.Logger,
) *RunCommand {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &RunCommand{
		launcher:     launcher,
		configLoader: configLoader,
		clock:        clock,
		logger:       logger,
		styleWarning: func(s string) string { return s },
	}
}

// WithHistory sets the repository executed commands are recorded in.
func (uc *RunCommand) WithHistory(history domain.HistoryRepository) *RunCommand {
	uc.history = history
	return uc
}

// WithWarningStyle sets the function used to render the warnings block.
func (uc *RunCommand) WithWarningStyle(style func(string) string) *RunCommand {
	if style != nil {
		uc.styleWarning = style
	}
	return uc
}

// Execute normalizes and runs the command, echoing its output.
// The "Executing:" banner is written before the process starts and stays
// written whatever the outcome.
func (uc *RunCommand) Execute(ctx context.Context, in RunCommandInput) (*RunCommandOutput, error) {
	line, err := domain.NormalizeCommand(in.Command)
	if err != nil {
		return nil, err
	}

	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	timeout := in.Timeout
	if timeout <= 0 {
		timeout, err = cfg.Exec.TimeoutDuration()
		if err != nil {
			return nil, err
		}
	}

	cmd := cfg.ShellCommand(line, in.Dir)

	_, _ = fmt.Fprintf(in.Stdout, "\nExecuting: %s\n\n%s\n\n", line, domain.BannerSeparator)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runID := uuid.NewString()
	uc.logger.Info("exec", fmt.Sprintf("run %s: %q in %q (shell=%s timeout=%s)", runID, line, cmd.Dir, cmd.Shell, timeout))
	startedAt := uc.clock.Now()

	result, runErr := uc.launcher.Launch(ctx, cmd)
	if runErr != nil {
		execErr := domain.NewLaunchError(runErr)
		uc.logger.Error("exec", fmt.Sprintf("run %s: %v", runID, execErr))
		uc.record(cfg, runID, cmd, startedAt, nil, execErr)
		return nil, execErr
	}

	if !result.Succeeded() {
		execErr := domain.NewCommandFailedError(result.ExitCode, result.Stderr)
		uc.logger.Warn("exec", fmt.Sprintf("run %s: exited with code %d", runID, result.ExitCode))
		uc.record(cfg, runID, cmd, startedAt, result, execErr)
		return &RunCommandOutput{Result: result}, execErr
	}

	if result.Stdout != "" {
		_, _ = io.WriteString(in.Stdout, result.Stdout)
		if !strings.HasSuffix(result.Stdout, "\n") {
			_, _ = io.WriteString(in.Stdout, "\n")
		}
	}
	if result.Stderr != "" {
		_, _ = fmt.Fprintln(in.Stderr, uc.styleWarning("Warnings:\n"+strings.TrimRight(result.Stderr, "\n")))
	}

	uc.logger.Info("exec", fmt.Sprintf("run %s: finished in %s", runID, result.Duration))
	uc.record(cfg, runID, cmd, startedAt, result, nil)
	return &RunCommandOutput{Result: result}, nil
}

// record appends the execution to history. Failures are logged only.
func (uc *RunCommand) record(cfg *domain.Config, runID string, cmd *domain.ShellCommand, startedAt time.Time, result *domain.ExecResult, err error) {
	if uc.history == nil || !cfg.History.IsEnabled() {
		return
	}
	entry := domain.NewHistoryEntry(cmd, startedAt, result, err)
	entry.RunID = runID
	if _, addErr := uc.history.Add(entry); addErr != nil {
		uc.logger.Warn("history", fmt.Sprintf("record %q: %v", cmd.Line, addErr))
	}
}
