package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kimjansheden/logo/pkg/classes"
	"github.com/kimjansheden/logo/pkg/errors"
	"github.com/kimjansheden/logo/pkg/logo"
)

// Preview styles
var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	inputStyle  = lipgloss.NewStyle().Foreground(colorWhite)
	cursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Blink(true)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	hintStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// previewCommand creates the preview command, an interactive editor that
// rebuilds the widget on every keystroke.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		class string
		flags widgetFlags
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Edit a class string interactively and watch the widget update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewPreviewModel(cfg, class),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := p.Run()
			if err != nil {
				return err
			}

			if m, ok := final.(PreviewModel); ok && m.Accepted {
				fmt.Fprintln(cmd.OutOrStdout(), m.Widget.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "initial class string")
	flags.register(cmd)

	return cmd
}

// =============================================================================
// PreviewModel - Interactive class string editor
// =============================================================================

// PreviewModel is the bubbletea model behind the preview command. Input holds
// the class string being edited; Widget is rebuilt from it after each edit.
type PreviewModel struct {
	Config   logo.Config
	Input    string
	Widget   logo.Widget
	Tokens   []classes.Token
	Err      error
	Accepted bool
	Width    int
}

// NewPreviewModel creates a preview model starting from class.
func NewPreviewModel(cfg logo.Config, class string) PreviewModel {
	m := PreviewModel{Config: cfg, Input: class, Width: 80}
	m.rebuild()
	return m
}

// rebuild refreshes the widget from the current input. Input that fails
// validation keeps the last good widget and records the error.
func (m *PreviewModel) rebuild() {
	if err := errors.ValidateClassString(m.Input); err != nil {
		m.Err = err
		return
	}
	m.Err = nil
	m.Tokens = classes.Explain(m.Input)
	m.Widget = logo.Build(m.Input, logo.WithConfig(m.Config))
}

func (m PreviewModel) Init() tea.Cmd {
	return nil
}

func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			if m.Err != nil {
				return m, nil
			}
			m.Accepted = true
			return m, tea.Quit
		case tea.KeyBackspace:
			if r := []rune(m.Input); len(r) > 0 {
				m.Input = string(r[:len(r)-1])
			}
		case tea.KeyCtrlU:
			m.Input = ""
		case tea.KeyCtrlW:
			m.Input = dropLastWord(m.Input)
		case tea.KeySpace:
			m.Input += " "
		case tea.KeyRunes:
			m.Input += string(msg.Runes)
		default:
			return m, nil
		}
		m.rebuild()
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	}
	return m, nil
}

func (m PreviewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Logo Preview"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("type classes  ⌫ delete  ^W word  ^U clear  ⏎ print markup  esc quit"))
	b.WriteString("\n\n")

	b.WriteString(promptStyle.Render("class ") + inputStyle.Render(m.Input) + cursorStyle.Render("█"))
	b.WriteString("\n")
	if m.Err != nil {
		b.WriteString(errorStyle.Render(errors.UserMessage(m.Err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(tokenTable(m.Tokens))
	b.WriteString("\n\n")

	w := m.Widget
	lines := [][2]string{
		{"Proximity", strings.Join([]string{
			renderFlag("bottom", w.Proximity.Bottom),
			renderFlag("left", w.Proximity.Left),
			renderFlag("right", w.Proximity.Right),
		}, " ")},
		{"Placement", w.Placement.String()},
		{"Container", wrapClasses(w.ContainerClass(), m.Width)},
		{"Image", wrapClasses(w.ImageClass(), m.Width)},
		{"Tooltip", wrapClasses(w.TooltipClass(), m.Width)},
	}
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	for _, l := range lines {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, keyStyle.Render(l[0]), " ", StyleValue.Render(l[1])))
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// dropLastWord removes the trailing token and any whitespace after it.
func dropLastWord(s string) string {
	s = strings.TrimRight(s, " \t")
	if i := strings.LastIndexAny(s, " \t"); i >= 0 {
		return s[:i+1]
	}
	return ""
}

// wrapClasses breaks a class attribute across lines so it fits next to the
// 13-column label.
func wrapClasses(s string, width int) string {
	limit := width - 13
	if limit < 20 {
		limit = 20
	}

	var lines []string
	var line string
	for _, tok := range strings.Fields(s) {
		if line != "" && len(line)+1+len(tok) > limit {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += tok
	}
	if line != "" {
		lines = append(lines, line)
	}
	return orDash(strings.Join(lines, "\n"))
}
