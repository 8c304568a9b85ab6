package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/aicli/internal/app"
	"github.com/runoshun/aicli/internal/domain"
	"github.com/runoshun/aicli/internal/tui/confirm"
	"github.com/runoshun/aicli/internal/usecase"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// confirmFunc is a function variable for the confirmation prompt, allowing it to be mocked in tests.
var confirmFunc = confirm.Run

// isTerminalFunc reports whether a stream is attached to a terminal. Mocked in tests.
var isTerminalFunc = isTerminal

// warningColor is ANSI yellow.
const warningColor = lipgloss.Color("3")

// newRunCommand creates the run command.
func newRunCommand(c *app.Container) *cobra.Command {
	var opts struct {
		dir     string
		timeout time.Duration
		yes     bool
	}

	cmd := &cobra.Command{
		Use:   "run [flags] [command...]",
		Short: "Execute a shell command",
		Long: `Execute a shell command and print its captured output.

The command words are joined with spaces and passed to the configured shell
(sh -c by default). Markdown code fences such as ` + "```bash" + ` are removed first,
so a snippet copied from a chat can be run as is.

Use "-" as the only argument, or pipe text without arguments, to read the
command from stdin. Flags must come before the command.

Output:
  stdout is printed when the command succeeds; anything written to stderr
  is shown afterwards as a yellow "Warnings:" block. A non-zero exit is
  reported with the exit code and stderr, and aicli exits with that code.`,
		Example: `  aicli run ls -la
  aicli run --dir /tmp -- 'du -sh * | sort -h'
  pbpaste | aicli run`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readCommandText(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if !opts.yes && cfg.Exec.ConfirmEnabled() &&
				isTerminalFunc(cmd.InOrStdin()) && isTerminalFunc(cmd.OutOrStdout()) &&
				isTerminalFunc(cmd.ErrOrStderr()) {
				// Empty commands go straight to the use case, which rejects them.
				if line, normErr := domain.NormalizeCommand(text); normErr == nil {
					ok, err := confirmFunc(line, cmd.InOrStdin(), cmd.ErrOrStderr())
					if err != nil {
						return err
					}
					if !ok {
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s.\n", domain.ErrConfirmDeclined)
						return nil
					}
				}
			}

			uc := c.RunCommandUseCase().
				WithWarningStyle(warningStyle(cmd.ErrOrStderr(), cfg.Output.ColorEnabled()))
			_, err = uc.Execute(cmd.Context(), usecase.RunCommandInput{
				Command: text,
				Dir:     opts.dir,
				Timeout: opts.timeout,
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
			})
			return err
		},
	}

	// Everything after the first positional argument belongs to the command.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.dir, "dir", "C", "", "Working directory for the command")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", 0, "Abort the command after this duration (e.g. 30s)")
	cmd.Flags().BoolVarP(&opts.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// readCommandText returns the raw command text from args or stdin.
func readCommandText(args []string, stdin io.Reader) (string, error) {
	readStdin := len(args) == 1 && args[0] == "-"
	if len(args) == 0 && stdin != nil && !isTerminalFunc(stdin) {
		readStdin = true
	}
	if !readStdin {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read command from stdin: %w", err)
	}
	return string(data), nil
}

// warningStyle returns a function coloring text yellow on w.
// Lines are styled one at a time so no padding is added to multi-line blocks.
func warningStyle(w io.Writer, color bool) func(string) string {
	if !color {
		return nil
	}
	style := lipgloss.NewRenderer(w).NewStyle().Foreground(warningColor)
	return func(s string) string {
		lines := strings.Split(s, "\n")
		for i, line := range lines {
			if line != "" {
				lines[i] = style.Render(line)
			}
		}
		return strings.Join(lines, "\n")
	}
}

// isTerminal reports whether v is a file descriptor attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits in int
}
