package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kimjansheden/logo/pkg/buildinfo"
	"github.com/kimjansheden/logo/pkg/config"
	"github.com/kimjansheden/logo/pkg/edge"
	"github.com/kimjansheden/logo/pkg/logo"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "logo"

	// defaultAddr is where the preview server listens unless --addr is given.
	defaultAddr = ":8080"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag switches the logger to debug level before any command runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Logo renders the \"made by\" logo widget",
		Long:         `Logo builds the linked logo widget with its hover tooltip from a Tailwind class string, placing the tooltip away from the screen edge the widget is pinned to.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Widget Flags
// =============================================================================

// widgetFlags are the flags every widget-building command shares.
type widgetFlags struct {
	configPath      string
	bottomTolerance int
	sideTolerance   int
}

// register adds the flags to cmd.
func (f *widgetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (.toml, .yaml or .yml)")
	cmd.Flags().IntVar(&f.bottomTolerance, "bottom-tolerance", edge.DefaultBottomTolerance, "largest bottom-N still treated as pinned to the bottom edge")
	cmd.Flags().IntVar(&f.sideTolerance, "side-tolerance", logo.DefaultSideTolerance, "largest left-N/right-N still treated as pinned to a side")
}

// resolve loads the config file, if any, and applies tolerance flags the user
// set explicitly on top of it.
func (f *widgetFlags) resolve(cmd *cobra.Command) (logo.Config, error) {
	cfg := logo.DefaultConfig()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return logo.Config{}, err
		}
		cfg = loaded
		loggerFromContext(cmd.Context()).Debugf("Loaded config %s", f.configPath)
	}

	if cmd.Flags().Changed("bottom-tolerance") {
		cfg.Tolerances.Bottom = f.bottomTolerance
	}
	if cmd.Flags().Changed("side-tolerance") {
		cfg.Tolerances.Left = f.sideTolerance
		cfg.Tolerances.Right = f.sideTolerance
	}
	return cfg, cfg.Validate()
}
