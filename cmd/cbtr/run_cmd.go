package main

import (
	"io"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	runcmd "github.com/raphi011/cbtr/internal/cmd"
	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/log"
)

func newRunCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "run <applet>",
		Short:   "Run the commands resolved for an applet",
		GroupID: GroupCore,
		Args:    exactArgs(1),
		Long: `Run the commands of the first matching entry that defines the applet.

Commands run in order in the current directory. The first one that fails
stops the sequence and cbtr exits with its status. When no entry matches,
cbtr exits with status 3.

Invoking cbtr through a link named after an applet (b, t, ...) runs this
command for that name.`,
		Example: `  cbtr run build            # Build with whatever tool the project uses
  cbtr run b                # Same, using the short name
  cbtr run test --dry-run   # Show what would run
  b                         # Via a link created by "cbtr link"`,
		ValidArgsFunction: a.completeApplets,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			l := log.FromContext(ctx)

			res, err := resolve(ctx, args[0], a.multicall != "")
			if err != nil {
				return err
			}
			l.Debug("resolved", "applet", res.Applet, "entry", res.Entry, "source", res.Source)

			return runcmd.RunSequence(ctx, res.Commands, runcmd.Options{
				Dir:    config.WorkDirFromContext(ctx),
				Stdin:  a.stdin,
				Stdout: a.stdout,
				Stderr: a.stderr,
				Indent: childIndent(cfg, a.stdout),
				DryRun: dryRun,
			})
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print the commands without running them")

	return cmd
}

// childIndent returns the configured prefix for child output lines. Output
// is only indented on a terminal so that piped output stays untouched.
func childIndent(cfg *config.Config, stdout io.Writer) string {
	if !isTerminal(stdout) {
		return ""
	}
	return cfg.Settings.Indent
}

// isTerminal reports whether stream (stdin, stdout or stderr) is a terminal.
func isTerminal(stream any) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
