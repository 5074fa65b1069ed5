package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/kimjansheden/logo/pkg/config"
	"github.com/kimjansheden/logo/pkg/errors"
	"github.com/kimjansheden/logo/pkg/logo"
)

// configCommand creates the config management command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with widget configuration files",
	}

	cmd.AddCommand(c.configInitCommand())
	cmd.AddCommand(c.configCheckCommand())

	return cmd
}

// configInitCommand creates the "config init" subcommand, which writes the
// default configuration as a starting point.
func (c *CLI) configInitCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Print the default configuration",
		Example: `  logo config init > logo.toml
  logo config init --format yaml -o logo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && !cmd.Flags().Changed("format") {
				if f, err := config.FormatFromPath(output); err == nil {
					format = f
				}
			}

			if output == "" {
				return config.Encode(cmd.OutOrStdout(), logo.DefaultConfig(), format)
			}

			f, err := os.Create(output)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "create %s", output)
			}
			defer f.Close()
			if err := config.Encode(f, logo.DefaultConfig(), format); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Wrote default config")
			printFile(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTOML, "file format: toml, yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// configCheckCommand creates the "config check" subcommand.
func (c *CLI) configCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printSuccess(w, "%s is valid", args[0])
			printKeyValue(w, "Href", cfg.Href)
			printKeyValue(w, "Image", cfg.ImageSrc)
			printDetail(w, "tolerances: bottom %d, left %d, right %d",
				cfg.Tolerances.Bottom, cfg.Tolerances.Left, cfg.Tolerances.Right)
			return nil
		},
	}
}
