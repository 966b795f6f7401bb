package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	runcmd "github.com/raphi011/cbtr/internal/cmd"
	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/rules"
)

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitOK},
		{"plain", errors.New("boom"), exitFailure},
		{"command status", &runcmd.ExitError{Command: "make", Code: 2}, 2},
		{"wrapped command status", fmt.Errorf("run: %w", &runcmd.ExitError{Command: "make", Code: 101}), 101},
		{"interrupted", &runcmd.ExitError{Command: "make", Code: runcmd.ExitInterrupted, Err: context.Canceled}, 130},
		{"no match", &rules.NoMatchError{Applet: "build", WorkDir: "/x"}, exitNoMatch},
		{"config", &config.Error{Path: "c.toml", Err: errors.New("bad")}, exitConfig},
		{"invalid direction", &rules.InvalidDirectionError{Entry: "e", Direction: "up"}, exitConfig},
		{"usage", usageErrorf("unknown applet %q", "x"), exitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestDidYouMean(t *testing.T) {
	t.Parallel()

	if got := didYouMean(nil); got != "" {
		t.Errorf("didYouMean(nil) = %q, want empty", got)
	}
	want := "\n\nDid you mean this?\n\tbuild\n\tb"
	if got := didYouMean([]string{"build", "b"}); got != want {
		t.Errorf("didYouMean() = %q, want %q", got, want)
	}
}
