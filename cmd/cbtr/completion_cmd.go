package main

import (
	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "completion <shell>",
		Short:       "Generate completion script",
		GroupID:     GroupConfig,
		Long:        `Generate shell completion script.`,
		ValidArgs:   []string{"bash", "zsh", "fish", "powershell"},
		Args:        exactArgs(1),
		Annotations: map[string]string{skipConfig: "true"},
		Example: `  # Fish
  cbtr completion fish > ~/.config/fish/completions/cbtr.fish

  # Bash
  cbtr completion bash > ~/.local/share/bash-completion/completions/cbtr

  # Zsh
  cbtr completion zsh > ~/.zfunc/_cbtr
  # Then add ~/.zfunc to fpath in .zshrc`,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			}
			return usageErrorf("unsupported shell %q", args[0])
		},
	}

	return cmd
}
