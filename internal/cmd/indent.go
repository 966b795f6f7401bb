package cmd

import (
	"bytes"
	"io"
)

// indentWriter prefixes every line written through it. Lines may arrive
// split across writes.
type indentWriter struct {
	w       io.Writer
	prefix  []byte
	midLine bool
}

func newIndentWriter(w io.Writer, prefix string) *indentWriter {
	return &indentWriter{w: w, prefix: []byte(prefix)}
}

func (w *indentWriter) Write(p []byte) (int, error) {
	buf := make([]byte, 0, len(p)+len(w.prefix))
	for _, line := range bytes.SplitAfter(p, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if !w.midLine {
			buf = append(buf, w.prefix...)
		}
		buf = append(buf, line...)
		w.midLine = line[len(line)-1] != '\n'
	}

	if _, err := w.w.Write(buf); err != nil {
		return 0, err
	}
	return len(p), nil
}
