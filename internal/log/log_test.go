package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("running %s %d", "cargo", 2)
		if got := buf.String(); got != "running cargo 2" {
			t.Errorf("Printf output = %q, want %q", got, "running cargo 2")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})

	t.Run("strips styling for non-terminals", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("\x1b[1mbold\x1b[0m\n")
		if got := buf.String(); got != "bold\n" {
			t.Errorf("Printf output = %q, want %q", got, "bold\n")
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	t.Run("writes line output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Println("hello", "world")
		if got := buf.String(); got != "hello world\n" {
			t.Errorf("Println output = %q, want %q", got, "hello world\n")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Println("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Println wrote %q when quiet", buf.String())
		}
	})
}

func TestCommand(t *testing.T) {
	t.Parallel()

	t.Run("verbose with dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("/tmp", "cargo", "build")
		done(100 * time.Millisecond)
		got := buf.String()
		if !strings.Contains(got, "[/tmp] $ cargo build") {
			t.Errorf("Command output = %q, want to contain %q", got, "[/tmp] $ cargo build")
		}
		if !strings.Contains(got, "100ms") {
			t.Errorf("Command output = %q, want to contain duration", got)
		}
	})

	t.Run("verbose without dir", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		done := l.Command("", "echo", "hi")
		done(50 * time.Millisecond)
		if got := buf.String(); !strings.HasPrefix(got, "$ echo hi") {
			t.Errorf("Command output = %q, want prefix %q", got, "$ echo hi")
		}
	})

	t.Run("not verbose is no-op", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		done := l.Command("/tmp", "cargo", "build")
		done(100 * time.Millisecond)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		done := l.Command("/tmp", "cargo", "build")
		done(100 * time.Millisecond)
		if buf.Len() != 0 {
			t.Errorf("Command wrote %q when quiet", buf.String())
		}
	})
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("verbose key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("checking conditions", "entry", "rust", "dir", "/tmp")
		got := buf.String()
		if !strings.Contains(got, "checking conditions") {
			t.Errorf("Debug output = %q, want to contain message", got)
		}
		if !strings.Contains(got, "entry=rust") {
			t.Errorf("Debug output = %q, want to contain entry=rust", got)
		}
		if !strings.Contains(got, "dir=/tmp") {
			t.Errorf("Debug output = %q, want to contain dir=/tmp", got)
		}
	})

	t.Run("odd keyvals drops last", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("msg", "key1", "val1", "orphan")
		got := buf.String()
		if !strings.Contains(got, "key1=val1") {
			t.Errorf("Debug output = %q, want to contain key1=val1", got)
		}
		if strings.Contains(got, "orphan") {
			t.Errorf("Debug output = %q, should not contain orphan key", got)
		}
	})

	t.Run("not verbose is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("should not appear", "key", "val")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})

	t.Run("quiet overrides verbose", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, true)
		l.Debug("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when quiet", buf.String())
		}
	})
}

func TestLevels(t *testing.T) {
	t.Parallel()

	t.Run("warn printed by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Warn("not in a git repository")
		if !strings.Contains(buf.String(), "not in a git repository") {
			t.Errorf("Warn output = %q, want message", buf.String())
		}
	})

	t.Run("quiet keeps errors only", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Info("hidden info")
		l.Warn("hidden warning")
		l.Error("visible error", "code", 3)
		got := buf.String()
		if strings.Contains(got, "hidden") {
			t.Errorf("output = %q, want info and warn suppressed", got)
		}
		if !strings.Contains(got, "visible error") || !strings.Contains(got, "code=3") {
			t.Errorf("output = %q, want error with code=3", got)
		}
	})
}

func TestIsVerbose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		want    bool
	}{
		{"verbose only", true, false, true},
		{"quiet only", false, true, false},
		{"both", true, true, false},
		{"neither", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := New(io.Discard, tt.verbose, tt.quiet)
			if got := l.IsVerbose(); got != tt.want {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		l := New(&bytes.Buffer{}, true, false)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("fallback discard logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil for empty context")
		}
		l.Printf("should not appear anywhere")
		l.Debug("should not appear anywhere")
		if l.Writer() != io.Discard {
			t.Error("fallback logger should write to io.Discard")
		}
		if FromContext(context.Background()) != l {
			t.Error("fallback logger is rebuilt on every call")
		}
	})
}
