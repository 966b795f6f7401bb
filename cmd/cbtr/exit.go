package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/rules"
)

// Exit codes. A failing command's own status is passed through unchanged.
const (
	exitOK      = 0
	exitFailure = 1
	exitNoMatch = 3
	exitUsage   = 64 // EX_USAGE
	exitConfig  = 78 // EX_CONFIG
)

// usageError marks bad invocations: unknown names, wrong argument counts,
// bad flags.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by the command tree to a process status.
func exitCode(err error) int {
	var coder interface{ ExitCode() int }
	var usage *usageError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &coder):
		return coder.ExitCode()
	case errors.Is(err, rules.ErrNoMatchingEntry):
		return exitNoMatch
	case errors.Is(err, config.ErrInvalid), errors.Is(err, rules.ErrInvalidEntry):
		return exitConfig
	case errors.As(err, &usage):
		return exitUsage
	default:
		return exitFailure
	}
}

// didYouMean formats suggestions for an unknown name, or "" when there are
// none.
func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	return "\n\nDid you mean this?\n\t" + strings.Join(suggestions, "\n\t")
}
