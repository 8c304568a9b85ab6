package cli

import (
	"fmt"

	"github.com/runoshun/aicli/internal/app"
	"github.com/runoshun/aicli/internal/usecase"
	"github.com/spf13/cobra"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var opts usecase.ShowLogsInput

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the aicli log",
		Long: `Show the aicli log file.

Every execution is logged with its command line, working directory, exit
status and duration. The verbosity is set by log.level in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowLogsUseCase().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}
