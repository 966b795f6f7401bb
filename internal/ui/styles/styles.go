// Package styles provides shared lipgloss styles for cbtr's terminal output.
//
// Everything styled here is written through the log package, whose writer
// downsamples or strips the escape sequences to what the terminal supports.
package styles

import "charm.land/lipgloss/v2"

// Colors used throughout the output
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Accent highlights the chosen entry (pink)
	Accent = lipgloss.Color("212")

	// Success is used for checkmarks and positive outcomes (green)
	Success = lipgloss.Color("82")

	// Error is used for error messages (red)
	Error = lipgloss.Color("196")

	// Muted is used for skipped entries and secondary text (gray)
	Muted = lipgloss.Color("240")

	// Warning is used for entries that matched but were passed over (orange)
	Warning = lipgloss.Color("214")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// CommandStyle renders a command line about to run
	CommandStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// SuccessStyle applies the success color
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
