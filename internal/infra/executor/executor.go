// Package executor provides shell command execution with captured output.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"github.com/runoshun/aicli/internal/domain"
)

// DefaultWaitDelay bounds how long Launch waits for output pipes to close
// after the process was killed by context cancellation.
const DefaultWaitDelay = time.Second

// Client implements domain.ProcessLauncher interface.
type Client struct {
	waitDelay time.Duration
}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{waitDelay: DefaultWaitDelay}
}

// Ensure Client implements domain.ProcessLauncher interface.
var _ domain.ProcessLauncher = (*Client)(nil)

// Launch runs the command through its shell and captures stdout and stderr.
func (c *Client) Launch(ctx context.Context, cmd *domain.ShellCommand) (*domain.ExecResult, error) {
	if cmd.Shell == "" {
		return nil, errors.New("no shell configured")
	}

	program, args := cmd.Argv()
	// #nosec G204 - running the user's command line through a shell is the purpose of this client
	execCmd := exec.CommandContext(ctx, program, args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr
	// A killed shell may leave children holding the pipes open.
	execCmd.WaitDelay = c.waitDelay

	start := time.Now()
	runErr := execCmd.Run()
	duration := time.Since(start)

	result := &domain.ExecResult{
		Command:  cmd.Line,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: duration,
	}

	// ErrWaitDelay: background children kept the pipes open after a clean exit.
	if runErr == nil || errors.Is(runErr, exec.ErrWaitDelay) {
		return result, nil
	}

	// The process was stopped by ctx, not by itself.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitCode(exitErr)
		return result, nil
	}
	return nil, fmt.Errorf("run %s: %w", program, runErr)
}

// exitCode returns the process exit code, or the negated signal number
// when the process was killed by a signal.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return -int(status.Signal())
	}
	return exitErr.ExitCode()
}
