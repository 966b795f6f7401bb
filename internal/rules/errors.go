package rules

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatchingEntry is matched by [NoMatchError].
	ErrNoMatchingEntry = errors.New("no matching entry")

	// ErrInvalidEntry is matched by configuration problems that prevent
	// an entry from being evaluated.
	ErrInvalidEntry = errors.New("invalid entry")
)

// NoMatchError reports that no entry both matched and defined the applet.
type NoMatchError struct {
	Applet  string
	WorkDir string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no %s tool matched config rules in %s", e.Applet, e.WorkDir)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatchingEntry
}

// InvalidDirectionError reports a file condition with an unknown search direction.
type InvalidDirectionError struct {
	Entry     string
	Direction string
}

func (e *InvalidDirectionError) Error() string {
	return fmt.Sprintf("entry %q: invalid search-direction %q: must be %q or %q",
		e.Entry, e.Direction, Backwards, Forwards)
}

func (e *InvalidDirectionError) Unwrap() error {
	return ErrInvalidEntry
}

// InvalidFileError reports a file condition name that cannot be searched for.
type InvalidFileError struct {
	Entry string
	File  string
}

func (e *InvalidFileError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("entry %q: file name is empty", e.Entry)
	}
	return fmt.Sprintf("entry %q: file name %q must be relative", e.Entry, e.File)
}

func (e *InvalidFileError) Unwrap() error {
	return ErrInvalidEntry
}
