package rules

import (
	"errors"
	"path/filepath"
)

// Direction is the order in which a file condition visits directories.
type Direction string

const (
	// Backwards searches from the working directory up to the repository root.
	Backwards Direction = "backwards"
	// Forwards searches from the repository root down to the working directory.
	Forwards Direction = "forwards"
)

// Directions lists the valid search directions.
var Directions = []Direction{Backwards, Forwards}

// Valid reports whether d is one of [Directions].
func (d Direction) Valid() bool {
	return d == Backwards || d == Forwards
}

// FileCondition requires every name in Names to be found along the
// directories selected by Direction.
type FileCondition struct {
	Names     []string
	Direction Direction
}

// Entry is one configured rule.
type Entry struct {
	Name   string // display only
	Source string // config file the entry was read from
	Bin    []string
	File   *FileCondition
	Tools  map[string][]string
}

// Unconditional reports whether the entry has neither a bin nor a file condition.
func (e Entry) Unconditional() bool {
	return len(e.Bin) == 0 && e.File == nil
}

// Commands returns the command list for applet, or nil if the entry
// does not define it.
func (e Entry) Commands(applet string) []string {
	return e.Tools[applet]
}

// Validate checks that the entry can be evaluated.
func (e Entry) Validate() error {
	if e.File == nil {
		return nil
	}
	if !e.File.Direction.Valid() {
		return &InvalidDirectionError{Entry: e.Name, Direction: string(e.File.Direction)}
	}
	for _, name := range e.File.Names {
		if name == "" || filepath.IsAbs(name) {
			return &InvalidFileError{Entry: e.Name, File: name}
		}
	}
	return nil
}

// Validate checks every entry and returns all problems joined.
func Validate(entries []Entry) error {
	var errs []error
	for _, e := range entries {
		if err := e.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
