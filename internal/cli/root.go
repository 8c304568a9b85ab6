// Package cli provides the command-line interface for aicli.
package cli

import (
	"fmt"

	"github.com/runoshun/aicli/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupExec  = "exec"
	groupSetup = "setup"
)

// NewRootCommand creates the root command for aicli.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "aicli",
		Short: "Run shell commands suggested by AI assistants",
		Long: `aicli executes shell commands, typically ones copied from an AI assistant.

Markdown code fences around the command are removed before it runs, the
command's output is captured and echoed back, and every execution is
recorded in a local history.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			cfg, err := c.ConfigLoader.Load()
			if err != nil {
				// Commands that need the config report the error themselves
				return nil
			}

			for _, w := range cfg.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupExec, Title: "Execution:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	runCmd := newRunCommand(c)
	runCmd.GroupID = groupExec

	historyCmd := newHistoryCommand(c)
	historyCmd.GroupID = groupExec

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupExec

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		runCmd,
		historyCmd,
		logsCmd,
		configCmd,
	)

	return root
}
