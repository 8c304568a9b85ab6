package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/aicli/internal/app"
	"github.com/runoshun/aicli/internal/domain"
	"github.com/runoshun/aicli/internal/usecase"
	"github.com/spf13/cobra"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Manage aicli configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	// Add subcommands
	cmd.AddCommand(newConfigShowCommand(c))
	cmd.AddCommand(newConfigTemplateCommand(c))
	cmd.AddCommand(newConfigInitCommand(c))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were loaded and the final merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			// Display loaded files section
			_, _ = fmt.Fprintln(w, "[Loaded from]")
			printConfigSource(w, out.GlobalConfig)
			printConfigSource(w, out.ProjectConfig)
			_, _ = fmt.Fprintln(w)

			// Display effective config in TOML format
			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}
}

func printConfigSource(w io.Writer, info domain.ConfigInfo) {
	if info.Exists {
		_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
	} else {
		_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
	}
}

// formatEffectiveConfig writes cfg as TOML with every default spelled out.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	resolved := *cfg
	confirm := cfg.Exec.ConfirmEnabled()
	color := cfg.Output.ColorEnabled()
	enabled := cfg.History.IsEnabled()
	resolved.Exec.Confirm = &confirm
	resolved.Output.Color = &color
	resolved.History.Enabled = &enabled

	data, err := toml.Marshal(&resolved)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print the default configuration template",
		Long: `Print a configuration template with all available options.

Redirect the output to a file to start a configuration by hand:
  aicli config template > .aicli.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ShowConfigTemplateUseCase().Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}

// newConfigInitCommand creates the config init subcommand.
func newConfigInitCommand(c *app.Container) *cobra.Command {
	var opts usecase.InitConfigInput

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file from the template",
		Long: `Create a configuration file from the default template.

By default the project file (.aicli.toml at the repository root) is created.
Use --global to create ~/.config/aicli/config.toml instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.InitConfigUseCase().Execute(cmd.Context(), opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Global, "global", "g", false, "Create the global config file")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}
