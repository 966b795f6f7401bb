// Package output writes cbtr's primary data to stdout: resolved command
// lists, config paths and JSON dumps. Banners and diagnostics go to stderr
// through the log package, and child processes write to the terminal
// directly.
package output

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, ctxKey{}, New(w))
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Lines writes each string on its own line.
func (p *Printer) Lines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(p.w, line)
	}
}

// JSON writes v as indented JSON followed by a newline.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// Styled returns a writer that downsamples ANSI styling to what the
// underlying writer supports, stripping it entirely when that is not a
// terminal.
func (p *Printer) Styled() io.Writer {
	return colorprofile.NewWriter(p.w, os.Environ())
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
