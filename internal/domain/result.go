package domain

import "time"

// ExecResult holds the captured output of a finished process.
// Fields are ordered to minimize memory padding.
type ExecResult struct {
	Command  string        // Command line that was executed
	Stdout   string        // Captured standard output
	Stderr   string        // Captured standard error
	Duration time.Duration // Wall-clock time from start to exit
	ExitCode int           // Process exit code
}

// Succeeded reports whether the process exited with code 0.
func (r *ExecResult) Succeeded() bool {
	return r.ExitCode == 0
}

// Outcome values recorded in history.
const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
	OutcomeError   = "error"
)

// HistoryEntry records a single command execution.
// Fields are ordered to minimize memory padding.
type HistoryEntry struct {
	StartedAt time.Time     `json:"startedAt" yaml:"started_at"`
	RunID     string        `json:"runID" yaml:"run_id"`
	Command   string        `json:"command" yaml:"command"`
	Dir       string        `json:"dir,omitempty" yaml:"dir,omitempty"`
	Outcome   string        `json:"outcome" yaml:"outcome"`
	Error     string        `json:"error,omitempty" yaml:"error,omitempty"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	ID        int           `json:"id" yaml:"id"`
	ExitCode  int           `json:"exitCode" yaml:"exit_code"`
}

// NewHistoryEntry builds a history entry from an execution outcome.
// result may be nil when the process could not be run.
func NewHistoryEntry(cmd *ShellCommand, startedAt time.Time, result *ExecResult, err error) HistoryEntry {
	entry := HistoryEntry{
		Command:   cmd.Line,
		Dir:       cmd.Dir,
		StartedAt: startedAt,
		Outcome:   OutcomeSuccess,
	}
	if result != nil {
		entry.ExitCode = result.ExitCode
		entry.Duration = result.Duration
	}
	if err != nil {
		entry.Outcome = OutcomeError
		if execErr, ok := AsExecutionError(err); ok && execErr.Kind == ErrorKindFailed {
			entry.Outcome = OutcomeFailed
			entry.ExitCode = execErr.ExitCode
		}
		entry.Error = err.Error()
	}
	return entry
}
