package main

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/raphi011/cbtr/internal/log"
	"github.com/raphi011/cbtr/internal/output"
)

func newWhichCmd(a *app) *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:     "which <applet>",
		Short:   "Print the commands an applet would run",
		GroupID: GroupCore,
		Args:    exactArgs(1),
		Long: `Print the commands the applet resolves to in the current directory,
one per line, without running them.`,
		Example: `  cbtr which build          # e.g. "cargo build"
  cbtr which t --copy       # Also copy the commands to the clipboard`,
		ValidArgsFunction: a.completeApplets,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			res, err := resolve(ctx, args[0], false)
			if err != nil {
				return err
			}
			l.Debug("resolved", "applet", res.Applet, "entry", res.Entry, "source", res.Source)

			if copyToClipboard {
				if err := clipboard.WriteAll(strings.Join(res.Commands, "\n")); err != nil {
					l.Warn("failed to copy to clipboard", "err", err)
				}
			}

			out.Lines(res.Commands)
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the commands to the clipboard")

	return cmd
}
