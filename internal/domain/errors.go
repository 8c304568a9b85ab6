package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrEmptyCommand       = errors.New("Command cannot be empty") //nolint:staticcheck // user-facing message
	ErrCommandFailed      = errors.New("command failed")
	ErrLaunchFailed       = errors.New("command could not be executed")
	ErrConfigExists       = errors.New("config file already exists")
	ErrHistoryUnavailable = errors.New("history unavailable: no state directory")
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrNoLogFile          = errors.New("no log file found")
	ErrConfirmDeclined    = errors.New("execution cancelled")
	ErrInvalidOutputFmt   = errors.New("invalid output format")
	ErrNotGitRepository   = errors.New("not a git repository (or any of the parent directories)")
)

// ErrorKind tags the flavor of an ExecutionError.
type ErrorKind int

// Execution error kinds.
const (
	ErrorKindEmpty  ErrorKind = iota + 1 // Nothing left to run after normalization
	ErrorKindFailed                      // Process ran and exited non-zero
	ErrorKindLaunch                      // Process could not be run at all
)

// String returns the string representation of the kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindEmpty:
		return "empty"
	case ErrorKindFailed:
		return "failed"
	case ErrorKindLaunch:
		return "launch"
	default:
		return "unknown"
	}
}

// ExecutionError is returned by the command executor.
// Fields are ordered to minimize memory padding.
type ExecutionError struct {
	Err      error // Underlying cause for ErrorKindLaunch
	Stderr   string
	Kind     ErrorKind
	ExitCode int
}

// NewEmptyCommandError returns the error for a command that is empty after normalization.
func NewEmptyCommandError() *ExecutionError {
	return &ExecutionError{Kind: ErrorKindEmpty}
}

// NewCommandFailedError returns the error for a process that exited non-zero.
func NewCommandFailedError(exitCode int, stderr string) *ExecutionError {
	return &ExecutionError{Kind: ErrorKindFailed, ExitCode: exitCode, Stderr: stderr}
}

// NewLaunchError returns the error for a process that could not be run.
func NewLaunchError(err error) *ExecutionError {
	return &ExecutionError{Kind: ErrorKindLaunch, Err: err}
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	switch e.Kind {
	case ErrorKindEmpty:
		return ErrEmptyCommand.Error()
	case ErrorKindFailed:
		return fmt.Sprintf("Command failed with exit code %d:\n%s", e.ExitCode, e.Stderr)
	default:
		desc := "unknown error"
		if e.Err != nil {
			desc = e.Err.Error()
		}
		return fmt.Sprintf("Error executing command: %s", desc)
	}
}

// Is reports whether target is the sentinel for this error's kind.
func (e *ExecutionError) Is(target error) bool {
	switch target {
	case ErrEmptyCommand:
		return e.Kind == ErrorKindEmpty
	case ErrCommandFailed:
		return e.Kind == ErrorKindFailed
	case ErrLaunchFailed:
		return e.Kind == ErrorKindLaunch
	}
	return false
}

// Unwrap returns the underlying cause of a launch failure.
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// AsExecutionError extracts an ExecutionError from err.
func AsExecutionError(err error) (*ExecutionError, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr, true
	}
	return nil, false
}
