package styles

import "strconv"

// Symbols prefixing output lines.
const (
	SymbolRun     = "▶"
	SymbolMatch   = "✓"
	SymbolNoMatch = "✗"
	SymbolSkip    = "○"
	SymbolChosen  = "●"
)

// Banner renders the line printed before a command runs.
func Banner(command string) string {
	return CommandStyle.Render(SymbolRun + " " + command)
}

// DryRun renders the line printed for a command that is not run.
func DryRun(command string) string {
	return MutedStyle.Render("[dry-run]") + " " + CommandStyle.Render(command)
}

// Failed renders the line printed after a command exits non-zero.
func Failed(command string, code int) string {
	return ErrorStyle.Render(SymbolNoMatch+" "+command) + MutedStyle.Render(" (exit "+strconv.Itoa(code)+")")
}
