package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/cbtr/internal/config"
)

func TestIsTerminal(t *testing.T) {
	t.Parallel()

	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { file.Close() })

	tests := []struct {
		name   string
		stream any
	}{
		{"reader", strings.NewReader("y\n")},
		{"buffer", &bytes.Buffer{}},
		{"regular file", file},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if isTerminal(tt.stream) {
				t.Errorf("isTerminal(%s) = true, want false", tt.name)
			}
		})
	}
}

func TestChildIndent_NotTerminal(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	if got := childIndent(&cfg, &bytes.Buffer{}); got != "" {
		t.Errorf("childIndent(buffer) = %q, want no indent", got)
	}
}
