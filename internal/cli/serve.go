package cli

import (
	"github.com/spf13/cobra"

	"github.com/kimjansheden/logo/internal/server"
)

// serveCommand creates the serve command, which runs the preview server
// until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr  string
		flags widgetFlags
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve live widget previews over HTTP",
		Long: `Serve live widget previews over HTTP.

Routes:
  /                 preview page         (?class=...)
  /widget           HTML fragment        (?class=...)
  /api/v1/inspect   JSON build report    (?class=...)
  /healthz          liveness probe`,
		Example: `  logo serve
  logo serve --addr 127.0.0.1:9000 --config logo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			printInfo(cmd.OutOrStdout(), "Preview at %s", StyleLink.Render(previewURL(addr)))
			return server.New(cfg, logger).ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	flags.register(cmd)

	return cmd
}

// previewURL turns a listen address into a URL a browser can open.
func previewURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr + "/"
	}
	return "http://" + addr + "/"
}
