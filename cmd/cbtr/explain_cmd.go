package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/output"
	"github.com/raphi011/cbtr/internal/rules"
	"github.com/raphi011/cbtr/internal/ui/static"
	"github.com/raphi011/cbtr/internal/ui/styles"
)

// explainResult is the JSON shape of "cbtr explain --json".
type explainResult struct {
	Applet   string       `json:"applet"`
	WorkDir  string       `json:"workdir"`
	RepoRoot string       `json:"repo_root,omitempty"`
	Entries  []explainRow `json:"entries"`
}

type explainRow struct {
	Entry   string `json:"entry"`
	Source  string `json:"source"`
	Matched bool   `json:"matched"`
	HasTool bool   `json:"has_tool"`
	Chosen  bool   `json:"chosen"`
}

func newExplainCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "explain <applet>",
		Short:   "Show how each entry fares for an applet",
		GroupID: GroupCore,
		Args:    exactArgs(1),
		Long: `Evaluate every config entry for the applet and show whether its
conditions hold, whether it defines the applet, and which entry is chosen.

Entries are listed in the order they are checked: local config first,
then global config.`,
		Example: `  cbtr explain build
  cbtr explain t --json`,
		ValidArgsFunction: a.completeApplets,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			loc := config.LocationFromContext(ctx)
			out := output.FromContext(ctx)

			key, err := appletKey(cfg, args[0], false)
			if err != nil {
				return err
			}
			steps, err := newResolver().Explain(ctx, cfg.Entries, key, loc)
			if err != nil {
				return err
			}

			if jsonOutput {
				result := explainResult{Applet: key, WorkDir: loc.WorkDir, RepoRoot: loc.RepoRoot, Entries: []explainRow{}}
				for _, s := range steps {
					result.Entries = append(result.Entries, explainRow{
						Entry:   s.Entry,
						Source:  s.Source,
						Matched: s.Matched,
						HasTool: s.HasTool,
						Chosen:  s.Chosen,
					})
				}
				if err := out.JSON(result); err != nil {
					return err
				}
			} else {
				printSteps(out.Styled(), key, steps)
			}

			if !slices.ContainsFunc(steps, func(s rules.Step) bool { return s.Chosen }) {
				return &rules.NoMatchError{Applet: key, WorkDir: loc.WorkDir}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func printSteps(w io.Writer, applet string, steps []rules.Step) {
	if len(steps) == 0 {
		fmt.Fprintln(w, styles.MutedStyle.Render("no entries configured"))
		return
	}

	rows := make([][]string, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, static.StepRow(applet, s))
	}
	fmt.Fprint(w, static.RenderTable(static.StepHeaders, rows))
}
