package output

import (
	"bytes"
	"context"
	"os"
	"testing"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := FromContext(WithPrinter(context.Background(), &buf))
		if p.Writer() != &buf {
			t.Error("Writer() should return the buffer passed to WithPrinter")
		}
	})

	t.Run("default to stdout when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p.Writer() != os.Stdout {
			t.Error("Writer() should default to os.Stdout")
		}
	})
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		write func(p *Printer)
		want  string
	}{
		{
			name:  "printf",
			write: func(p *Printer) { p.Printf("%s: %d", "entries", 2) },
			want:  "entries: 2",
		},
		{
			name: "println",
			write: func(p *Printer) {
				p.Println("line one")
				p.Println("line two")
			},
			want: "line one\nline two\n",
		},
		{
			name:  "lines",
			write: func(p *Printer) { p.Lines([]string{"cargo check", "cargo clippy"}) },
			want:  "cargo check\ncargo clippy\n",
		},
		{
			name:  "no lines",
			write: func(p *Printer) { p.Lines(nil) },
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.write(New(&buf))
			if got := buf.String(); got != tt.want {
				t.Errorf("wrote %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinter_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	v := struct {
		Applet   string   `json:"applet"`
		Commands []string `json:"commands"`
	}{"build", []string{"cargo build"}}

	if err := p.JSON(v); err != nil {
		t.Fatalf("JSON() error = %v", err)
	}
	want := "{\n  \"applet\": \"build\",\n  \"commands\": [\n    \"cargo build\"\n  ]\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("JSON() wrote %q, want %q", got, want)
	}

	if err := p.JSON(make(chan int)); err == nil {
		t.Error("JSON(chan) error = nil, want error")
	}
}

func TestPrinter_Styled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")

	var buf bytes.Buffer
	p := New(&buf)

	if _, err := p.Styled().Write([]byte("\x1b[1mbold\x1b[0m\n")); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "bold\n" {
		t.Errorf("Styled() wrote %q, want escapes stripped for a non-terminal", got)
	}
}
