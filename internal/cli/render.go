package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kimjansheden/logo/pkg/classes"
	"github.com/kimjansheden/logo/pkg/errors"
	"github.com/kimjansheden/logo/pkg/logo"
	"github.com/kimjansheden/logo/pkg/observability"
)

// Output formats for the render command.
const (
	formatHTML = "html" // bare widget fragment
	formatPage = "page" // standalone document loading Tailwind
	formatJSON = "json" // inspection report
)

const pageTitle = "Logo preview"

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatHTML: true, formatPage: true, formatJSON: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	class  string // class string passed to the widget
	format string // html, page or json
	output string // output file path; stdout when empty
}

// renderCommand creates the render command, which writes the widget markup.
//
// Default settings:
//   - format: html (fragment only)
//   - output: stdout
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatHTML}
	var flags widgetFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the logo widget as HTML or JSON",
		Example: `  logo render --class "fixed bottom-4 right-4"
  logo render --class "h-10 w-10" --format page -o preview.html
  logo render --config logo.toml --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.class, "class", "", "class string for the widget (positioning goes on the container, the rest on the image)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: html (default), page, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.register(cmd)

	return cmd
}

// validateFormat checks that format is one of validFormats.
func validateFormat(format string) error {
	if !validFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %s (must be 'html', 'page', or 'json')", format)
	}
	return nil
}

// runRender builds the widget and writes it to opts.output, or to stdout
// when no output file is given.
func runRender(ctx context.Context, stdout io.Writer, cfg logo.Config, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	widget := logo.Build(opts.class, logo.WithConfig(cfg), logo.WithLogger(logger))
	observability.Widget().OnBuild(ctx, opts.class, widget.Placement.String(), time.Since(prog.start))
	data, err := renderWidget(widget, opts.class, opts.format)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", opts.output)
	}
	prog.done("Rendered " + opts.format)
	printSuccess(stdout, "Wrote %s", opts.format)
	printFile(stdout, opts.output)
	return nil
}

// renderWidget encodes widget in the requested format.
func renderWidget(widget logo.Widget, class, format string) ([]byte, error) {
	var buf bytes.Buffer
	var err error

	switch format {
	case formatHTML:
		err = widget.Render(&buf)
		buf.WriteByte('\n')
	case formatPage:
		err = widget.RenderPage(&buf, pageTitle)
		buf.WriteByte('\n')
	case formatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		err = enc.Encode(logo.Report{
			Input:  class,
			Tokens: classes.Explain(class),
			Widget: widget,
		})
	default:
		return nil, validateFormat(format)
	}

	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return buf.Bytes(), nil
}
