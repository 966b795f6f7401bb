package main

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/raphi011/cbtr/internal/ui/prompt"
)

func TestReplacePolicy(t *testing.T) {
	t.Parallel()

	a := &app{stdin: strings.NewReader("y\n"), stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}

	replace, err := a.replacePolicy(true)("/tmp/b")
	if err != nil || !replace {
		t.Errorf("replacePolicy(force) = (%v, %v), want (true, nil)", replace, err)
	}

	// Without a terminal nothing is asked and existing files are kept.
	replace, err = a.replacePolicy(false)("/tmp/b")
	if err != nil || replace {
		t.Errorf("replacePolicy(no tty) = (%v, %v), want (false, nil)", replace, err)
	}
}

func TestAskReplace(t *testing.T) {
	t.Parallel()

	type decision struct {
		replace   bool
		cancelled bool
	}

	tests := []struct {
		name    string
		answers []prompt.Answer
		want    []decision
		asked   int
	}{
		{
			name:    "each file asked",
			answers: []prompt.Answer{prompt.AnswerYes, prompt.AnswerNo, prompt.AnswerYes},
			want:    []decision{{replace: true}, {}, {replace: true}},
			asked:   3,
		},
		{
			name:    "all stops asking",
			answers: []prompt.Answer{prompt.AnswerNo, prompt.AnswerAll},
			want:    []decision{{}, {replace: true}, {replace: true}},
			asked:   2,
		},
		{
			name:    "cancel stops asking",
			answers: []prompt.Answer{prompt.AnswerCancel},
			want:    []decision{{cancelled: true}, {cancelled: true}, {cancelled: true}},
			asked:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var asked []string
			replace := askReplace(func(path string) (prompt.Answer, error) {
				asked = append(asked, path)
				return tt.answers[len(asked)-1], nil
			})

			paths := []string{"bin/b", "bin/c", "bin/t"}
			for i, path := range paths {
				ok, err := replace(path)
				got := decision{replace: ok, cancelled: errors.Is(err, errLinkCancelled)}
				if err != nil && !got.cancelled {
					t.Fatalf("replace(%s) unexpected error %v", path, err)
				}
				if got != tt.want[i] {
					t.Errorf("replace(%s) = %+v, want %+v", path, got, tt.want[i])
				}
			}
			if !slices.Equal(asked, paths[:tt.asked]) {
				t.Errorf("asked about %v, want %v", asked, paths[:tt.asked])
			}
		})
	}
}

func TestAskReplace_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("no tty")
	replace := askReplace(func(string) (prompt.Answer, error) { return prompt.AnswerYes, boom })
	if ok, err := replace("bin/b"); ok || !errors.Is(err, boom) {
		t.Errorf("replace() = (%v, %v), want (false, %v)", ok, err, boom)
	}
}
