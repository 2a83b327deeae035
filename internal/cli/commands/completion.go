package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/finwire/finfield/field"
)

// NewCompletionCommand creates the completion command for shell completions
func NewCompletionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for finfield. Field tags complete
from the registry.

Bash:

  $ source <(finfield completion bash)

Zsh:

  $ finfield completion zsh > "${fpath[1]}/_finfield"

Fish:

  $ finfield completion fish | source

PowerShell:

  PS> finfield completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeTags completes the first argument with registered field tags
func completeTags(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	reg := field.DefaultRegistry()
	if registryPath != "" {
		loaded, err := field.LoadRegistryFile(registryPath)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		reg = loaded
	}

	var tags []string
	for _, tag := range reg.Tags() {
		if strings.HasPrefix(tag, strings.ToUpper(toComplete)) {
			def, _ := reg.Lookup(tag)
			tags = append(tags, tag+"\t"+def.Format)
		}
	}
	return tags, cobra.ShellCompDirectiveNoFileComp
}
