package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raphi011/cbtr/internal/applet"
	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/link"
	"github.com/raphi011/cbtr/internal/log"
	"github.com/raphi011/cbtr/internal/ui/prompt"
	"github.com/raphi011/cbtr/internal/ui/styles"
)

var errLinkCancelled = errors.New("cancelled")

func newLinkCmd(a *app) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "link <dir>",
		Short:   "Create applet links to cbtr",
		GroupID: GroupConfig,
		Args:    exactArgs(1),
		Long: `Create a symlink to the cbtr binary in dir for every short applet name
(f, c, b, t, r and the names in [aliases]).

Put dir on your PATH to run "b" instead of "cbtr run build". Existing files
are replaced with --force. Without it, cbtr asks before replacing each one
when run in a terminal, and skips them otherwise.`,
		Example: `  cbtr link ~/.local/bin
  cbtr link ~/.local/bin --force`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			self, err := os.Executable()
			if err != nil {
				return fmt.Errorf("locate cbtr binary: %w", err)
			}

			names := applet.NewTable(cfg.Aliases, nil).Aliases()
			results, err := link.Create(args[0], self, names, a.replacePolicy(force))
			for _, r := range results {
				switch r.Action {
				case link.Created, link.Replaced:
					l.Printf("%s %s %s\n", styles.SuccessStyle.Render(styles.SymbolMatch), r.Path, styles.MutedStyle.Render(string(r.Action)))
				case link.Unchanged:
					l.Printf("%s %s %s\n", styles.MutedStyle.Render(styles.SymbolSkip), r.Path, styles.MutedStyle.Render(string(r.Action)))
				}
			}
			if errors.Is(err, link.ErrExists) {
				return fmt.Errorf("%w\nuse --force to replace existing files", err)
			}
			return err
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace existing files")

	return cmd
}

// replacePolicy returns how "cbtr link" treats existing files: replace with
// force, ask on a terminal, skip otherwise.
func (a *app) replacePolicy(force bool) link.ReplaceFunc {
	if force {
		return link.Always
	}
	if !isTerminal(a.stdin) || !isTerminal(a.stderr) {
		return link.Never
	}
	return askReplace(func(path string) (prompt.Answer, error) {
		return prompt.AskReplace(a.stdin, a.stderr, path, link.Describe(path))
	})
}

// askReplace turns per-file answers into a [link.ReplaceFunc]. "all" and
// "cancel" hold for every later file without asking again.
func askReplace(ask func(path string) (prompt.Answer, error)) link.ReplaceFunc {
	var sticky *prompt.Answer
	return func(path string) (bool, error) {
		answer := prompt.AnswerNo
		if sticky != nil {
			answer = *sticky
		} else {
			var err error
			if answer, err = ask(path); err != nil {
				return false, err
			}
			if answer == prompt.AnswerAll || answer == prompt.AnswerCancel {
				sticky = &answer
			}
		}

		switch answer {
		case prompt.AnswerYes, prompt.AnswerAll:
			return true, nil
		case prompt.AnswerCancel:
			return false, errLinkCancelled
		default:
			return false, nil
		}
	}
}
