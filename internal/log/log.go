// Package log provides context-aware logging for cbtr.
//
// All diagnostics go to stderr so that stdout stays reserved for the output of
// the resolved commands and for data printed by the output package.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/colorprofile"
	charmlog "github.com/charmbracelet/log"
)

type ctxKey struct{}

// Logger writes user-facing messages and verbose diagnostics.
type Logger struct {
	out     io.Writer
	styled  io.Writer
	verbose bool
	quiet   bool
	levels  *charmlog.Logger
}

// New creates a new logger. quiet suppresses everything except errors and
// takes precedence over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	level := charmlog.InfoLevel
	switch {
	case quiet:
		level = charmlog.ErrorLevel
	case verbose:
		level = charmlog.DebugLevel
	}

	return &Logger{
		out:     out,
		styled:  colorprofile.NewWriter(out, os.Environ()),
		verbose: verbose,
		quiet:   quiet,
		levels: charmlog.NewWithOptions(out, charmlog.Options{
			Level:           level,
			ReportTimestamp: false,
		}),
	}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a logger writing to io.Discard if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return discard
}

var discard = New(io.Discard, false, false)

// Printf writes formatted output. Styled text is downsampled to what the
// writer supports. Suppressed when quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.styled, format, args...)
}

// Println writes a line of output. Suppressed when quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.styled, args...)
}

// Debug logs a message with key/value pairs when verbose.
// A trailing key without a value is dropped.
func (l *Logger) Debug(msg string, keyvals ...any) {
	if !l.IsVerbose() {
		return
	}
	l.levels.Debug(msg, pairs(keyvals)...)
}

// Info logs a message with key/value pairs unless quiet.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.levels.Info(msg, pairs(keyvals)...)
}

// Warn logs a warning unless quiet.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.levels.Warn(msg, pairs(keyvals)...)
}

// Error logs an error. Errors are printed even when quiet.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.levels.Error(msg, pairs(keyvals)...)
}

// Command logs an external command when verbose. The returned function
// must be called with the elapsed time once the command has finished.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}

	line := "$ " + strings.TrimSpace(name+" "+strings.Join(args, " "))
	if dir != "" {
		line = "[" + dir + "] " + line
	}

	return func(elapsed time.Duration) {
		fmt.Fprintf(l.out, "%s (%s)\n", line, elapsed.Round(time.Millisecond))
	}
}

// IsVerbose returns true if verbose output is enabled and not silenced by quiet.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}

func pairs(keyvals []any) []any {
	if len(keyvals)%2 != 0 {
		return keyvals[:len(keyvals)-1]
	}
	return keyvals
}
