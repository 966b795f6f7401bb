// Package applet maps the name cbtr was invoked as to the applet key that is
// looked up in each entry's tools.
//
// The built-in names are the single letters f, c, b, t and r and their long
// forms. The [aliases] config table adds more, and every tool key defined by a
// config entry is reachable under its own name.
package applet

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/cbtr/internal/rules"
)

// Self is the program name under which cbtr runs its own command tree.
const Self = "cbtr"

// maxSuggestions caps the names offered for an unknown invocation.
const maxSuggestions = 3

// Defaults maps the built-in invocation names to applet keys.
var Defaults = map[string]string{
	"f":      "format",
	"c":      "check",
	"b":      "build",
	"t":      "test",
	"r":      "run",
	"format": "format",
	"check":  "check",
	"build":  "build",
	"test":   "test",
	"run":    "run",
}

// Table maps invoked names to applet keys.
type Table struct {
	names map[string]string
}

// NewTable builds the lookup table from the defaults, the tool keys of
// entries and the configured aliases, later sources overriding earlier ones.
func NewTable(aliases map[string]string, entries []rules.Entry) Table {
	names := maps.Clone(Defaults)
	for _, e := range entries {
		for key := range e.Tools {
			if _, ok := names[key]; !ok {
				names[key] = key
			}
		}
	}
	maps.Copy(names, aliases)
	return Table{names: names}
}

// Lookup returns the applet key for an invoked name.
func (t Table) Lookup(name string) (string, bool) {
	key, ok := t.names[name]
	return key, ok
}

// Names returns every known invocation name, sorted.
func (t Table) Names() []string {
	return slices.Sorted(maps.Keys(t.names))
}

// Aliases returns the names that differ from their applet key, sorted.
// These are the names worth linking.
func (t Table) Aliases() []string {
	var aliases []string
	for name, key := range t.names {
		if name != key {
			aliases = append(aliases, name)
		}
	}
	slices.Sort(aliases)
	return aliases
}

// Suggest returns up to three known names resembling name, best first.
func (t Table) Suggest(name string) []string {
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(name, t.Names())

	var out []string
	for _, m := range matches {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// ProgramName returns the name cbtr was invoked as: the base name of argv0
// without a Windows .exe suffix.
func ProgramName(argv0 string) string {
	name := filepath.Base(argv0)
	if ext := filepath.Ext(name); strings.EqualFold(ext, ".exe") {
		name = strings.TrimSuffix(name, ext)
	}
	return name
}

// IsSelf reports whether argv0 invokes cbtr itself rather than an applet.
func IsSelf(argv0 string) bool {
	return ProgramName(argv0) == Self
}
