package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for logo.

To load completions:

Bash:
  $ source <(logo completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ logo completion bash > /etc/bash_completion.d/logo
  # macOS:
  $ logo completion bash > $(brew --prefix)/etc/bash_completion.d/logo

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ logo completion zsh > "${fpath[1]}/_logo"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ logo completion fish | source

  # To load completions for each session, execute once:
  $ logo completion fish > ~/.config/fish/completions/logo.fish

PowerShell:
  PS> logo completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> logo completion powershell > logo.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
