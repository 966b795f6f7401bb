package config

import (
	"fmt"
	"slices"
	"strings"
)

// Valid enum values for configuration fields.
var (
	ValidFormats = []string{string(FormatTOML), string(FormatYAML), string(FormatJSON)}
)

// ValidateFormat validates a config format name against ValidFormats.
// Exported for use in CLI flag validation.
func ValidateFormat(format string) error {
	return validateEnum(format, "format", ValidFormats)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// validateAlias checks an [aliases] entry. Aliases become file names when
// linked, so they may not contain path separators.
func validateAlias(alias, applet string) error {
	if alias == "" || strings.ContainsAny(alias, `/\`) || alias == "." || alias == ".." {
		return fmt.Errorf("invalid alias %q: must be a plain file name", alias)
	}
	if applet == "" {
		return fmt.Errorf("alias %q: applet is empty", alias)
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
