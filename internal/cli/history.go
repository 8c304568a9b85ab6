package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/runoshun/aicli/internal/app"
	"github.com/runoshun/aicli/internal/domain"
	"github.com/runoshun/aicli/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats for history list.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear executed commands",
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newHistoryListCommand(c))
	cmd.AddCommand(newHistoryClearCommand(c))

	return cmd
}

// newHistoryListCommand creates the history list subcommand.
func newHistoryListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		output string
		limit  int
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List executed commands, newest first",
		Long: `List executed commands, newest first.

By default the number of entries comes from history.limit in the config.
Use --limit -1 to list everything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch opts.output {
			case outputText, outputJSON, outputYAML:
			default:
				return fmt.Errorf("%w: %q (use text, json or yaml)", domain.ErrInvalidOutputFmt, opts.output)
			}

			out, err := c.ListHistoryUseCase().Execute(cmd.Context(), usecase.ListHistoryInput{
				Limit: opts.limit,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch opts.output {
			case outputJSON:
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(out.Entries)
			case outputYAML:
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(out.Entries); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			}

			if len(out.Entries) == 0 {
				_, _ = fmt.Fprintln(w, "No commands recorded.")
				return nil
			}
			printHistory(w, out.Entries)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 0, "Maximum number of entries (default from history.limit, -1 for all)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputText, "Output format: text, json or yaml")

	return cmd
}

// newHistoryClearCommand creates the history clear subcommand.
func newHistoryClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all recorded commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.ClearHistoryUseCase().Execute(cmd.Context(), usecase.ClearHistoryInput{}); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	}
}

// printHistory prints entries as an aligned table.
func printHistory(w io.Writer, entries []domain.HistoryEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTARTED\tEXIT\tDURATION\tOUTCOME\tCOMMAND")

	for _, e := range entries {
		exitStr := "-"
		if e.Outcome != domain.OutcomeError {
			exitStr = fmt.Sprintf("%d", e.ExitCode)
		}

		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.StartedAt.Local().Format("2006-01-02 15:04:05"),
			exitStr,
			e.Duration.Round(time.Millisecond),
			e.Outcome,
			firstLine(e.Command),
		)
	}
}

// firstLine returns the first line of s, marking truncated multi-line text.
func firstLine(s string) string {
	line, rest, found := strings.Cut(s, "\n")
	if found && strings.TrimSpace(rest) != "" {
		return line + " ..."
	}
	return line
}
