package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kimjansheden/logo/pkg/classes"
	"github.com/kimjansheden/logo/pkg/logo"
)

// inspectCommand creates the inspect command, which explains a build.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		class string
		flags widgetFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how a class string is split and where the tooltip goes",
		Example: `  logo inspect --class "fixed bottom-4 right-4 h-10 w-10"
  logo inspect --class "absolute m-2 top-0" --side-tolerance 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			report := logo.Inspect(class, logo.WithConfig(cfg), logo.WithLogger(logger))
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "class string to inspect")
	flags.register(cmd)

	return cmd
}

// printReport writes the token table followed by the resolved placement and
// the final class attribute of each element.
func printReport(w io.Writer, r logo.Report) {
	fmt.Fprintln(w, StyleTitle.Render("Tokens"))
	fmt.Fprintln(w, tokenTable(r.Tokens))
	fmt.Fprintln(w)

	widget := r.Widget
	tol := widget.Config.Tolerances
	printKeyValue(w, "Proximity", strings.Join([]string{
		renderFlag("bottom", widget.Proximity.Bottom),
		renderFlag("left", widget.Proximity.Left),
		renderFlag("right", widget.Proximity.Right),
	}, " "))
	printKeyValue(w, "Tolerances", fmt.Sprintf("bottom %d, left %d, right %d", tol.Bottom, tol.Left, tol.Right))
	printKeyValue(w, "Placement", widget.Placement.String())
	printKeyValue(w, "Container", widget.ContainerClass())
	printKeyValue(w, "Image", widget.ImageClass())
	printKeyValue(w, "Tooltip", widget.TooltipClass())
}

// tokenTable renders one row per token. Empty input yields a single
// placeholder row so the table keeps its shape.
func tokenTable(tokens []classes.Token) string {
	rows := make([][]string, 0, len(tokens))
	for i, tok := range tokens {
		rows = append(rows, []string{strconv.Itoa(i + 1), tok.Value, tok.Category.String(), elementFor(tok.Category)})
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"", orDash(""), "", ""})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Token", "Category", "Goes on").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row >= len(tokens) || col == 0 {
				return base.Foreground(colorDim)
			}
			if tokens[row].Category.IsContainer() {
				return base.Inherit(styleContainer)
			}
			return base.Inherit(styleSubject)
		})

	return t.Render()
}

func elementFor(c classes.Category) string {
	if c.IsContainer() {
		return "container"
	}
	return "image"
}
