package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const completionLongHelp = `Generate shell completion scripts for orang.

To load completions:

Bash:
  # Load completions in the current shell session:
  $ source <(orang completion bash)

  # Load completions for every new session (Linux):
  $ orang completion bash > /etc/bash_completion.d/orang

  # Load completions for every new session (macOS):
  $ orang completion bash > $(brew --prefix)/etc/bash_completion.d/orang

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # Load completions for every new session:
  $ orang completion zsh > "${fpath[1]}/_orang"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ orang completion fish > ~/.config/fish/completions/orang.fish

PowerShell:
  # Load completions in the current shell session:
  PS> orang completion powershell | Out-String | Invoke-Expression

  # Load completions for every new session:
  PS> orang completion powershell >> $PROFILE
`

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion scripts",
		Long:      completionLongHelp,
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
}
