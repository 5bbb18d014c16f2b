package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates a custom completion command without powershell.
// newCompletionCmd 创建不含 powershell 的自定义补全命令。
func newCompletionCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish]",
		Short: "Generate shell autocompletion script",
		Long: `Generate shell autocompletion script for advent.
生成 advent 的 shell 自动补全脚本。

Examples:
  advent completion bash > /etc/bash_completion.d/advent
  advent completion zsh  > "${fpath[1]}/_advent"
  advent completion fish > ~/.config/fish/completions/advent.fish`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", args[0])
			}
		},
	}
}
