// Package static renders non-interactive tables for cbtr's inspection
// commands.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/cbtr/internal/rules"
	"github.com/raphi011/cbtr/internal/ui/styles"
)

// StepHeaders are the column headers matching [StepRow].
var StepHeaders = []string{"", "ENTRY", "STATUS", "SOURCE"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// StepRow formats one resolution step for applet as a table row.
func StepRow(applet string, s rules.Step) []string {
	symbol, status := stepStatus(applet, s)
	return []string{symbol, s.Entry, status, styles.MutedStyle.Render(s.Source)}
}

func stepStatus(applet string, s rules.Step) (symbol, status string) {
	switch {
	case s.Chosen:
		return styles.AccentStyle.Render(styles.SymbolChosen), styles.AccentStyle.Render("chosen")
	case s.Matched && s.HasTool:
		return styles.SuccessStyle.Render(styles.SymbolMatch), "matched, not reached"
	case s.Matched:
		return styles.WarningStyle.Render(styles.SymbolSkip), "matched, no " + applet + " tool"
	default:
		return styles.MutedStyle.Render(styles.SymbolNoMatch), "conditions not met"
	}
}
