package domain

import (
	"runtime"
	"strings"
)

// Fence tokens that wrap AI-generated commands in markdown code blocks.
// The tagged form is stripped first so no stray "bash" is left behind.
const (
	FenceTokenBash = "```bash"
	FenceToken     = "```"
)

// BannerSeparator is printed under the "Executing: ..." announcement.
var BannerSeparator = strings.Repeat("=", 40)

// NormalizeCommand strips whitespace and markdown fence tokens from a command line.
// Fences are removed wherever they appear, not only at the edges.
// Returns ErrEmptyCommand wrapped in an ExecutionError when nothing is left.
func NormalizeCommand(raw string) (string, error) {
	line := strings.TrimSpace(raw)
	line = strings.ReplaceAll(line, FenceTokenBash, "")
	line = strings.ReplaceAll(line, FenceToken, "")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", NewEmptyCommandError()
	}
	return line, nil
}

// ShellCommand represents a command line to be interpreted by a shell.
// This type is used to pass command information between layers
// without exposing implementation details.
type ShellCommand struct {
	Line      string // Normalized command line
	Shell     string // Shell interpreter (e.g. "sh")
	ShellFlag string // Flag that makes the shell read the line (e.g. "-c")
	Dir       string // Working directory; empty means the current directory
}

// NewShellCommand creates a ShellCommand for the given line using the platform default shell.
func NewShellCommand(line, dir string) *ShellCommand {
	shell, flag := DefaultShell()
	return &ShellCommand{
		Line:      line,
		Shell:     shell,
		ShellFlag: flag,
		Dir:       dir,
	}
}

// Argv returns the program and arguments used to launch the command.
func (c *ShellCommand) Argv() (string, []string) {
	if c.ShellFlag == "" {
		return c.Shell, []string{c.Line}
	}
	return c.Shell, []string{c.ShellFlag, c.Line}
}

// DefaultShell returns the shell interpreter and its command flag for the current platform.
func DefaultShell() (shell, flag string) {
	if runtime.GOOS == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}
