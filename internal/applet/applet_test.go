package applet

import (
	"slices"
	"testing"

	"github.com/raphi011/cbtr/internal/rules"
)

func TestTable_Lookup(t *testing.T) {
	t.Parallel()

	entries := []rules.Entry{
		{Name: "make", Tools: map[string][]string{"deploy": {"make deploy"}, "build": {"make"}}},
	}
	table := NewTable(map[string]string{"d": "deploy", "t": "tox"}, entries)

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"f", "format", true},
		{"c", "check", true},
		{"b", "build", true},
		{"r", "run", true},
		{"build", "build", true},
		{"deploy", "deploy", true},
		{"d", "deploy", true},
		{"t", "tox", true},
		{"test", "test", true},
		{"x", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := table.Lookup(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestTable_DefaultsUnchanged(t *testing.T) {
	t.Parallel()

	NewTable(map[string]string{"b": "bazel"}, nil)
	if Defaults["b"] != "build" {
		t.Errorf("Defaults[b] = %q, NewTable mutated the defaults", Defaults["b"])
	}
}

func TestTable_Names(t *testing.T) {
	t.Parallel()

	table := NewTable(map[string]string{"d": "deploy"}, nil)

	wantNames := []string{"b", "build", "c", "check", "d", "f", "format", "r", "run", "t", "test"}
	if got := table.Names(); !slices.Equal(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}

	wantAliases := []string{"b", "c", "d", "f", "r", "t"}
	if got := table.Aliases(); !slices.Equal(got, wantAliases) {
		t.Errorf("Aliases() = %v, want %v", got, wantAliases)
	}
}

func TestTable_Suggest(t *testing.T) {
	t.Parallel()

	table := NewTable(nil, nil)

	tests := []struct {
		name string
		want string
	}{
		{"bld", "build"},
		{"tst", "test"},
		{"chk", "check"},
		{"fmt", "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := table.Suggest(tt.name)
			if !slices.Contains(got, tt.want) {
				t.Errorf("Suggest(%q) = %v, want it to contain %q", tt.name, got, tt.want)
			}
			if len(got) > maxSuggestions {
				t.Errorf("Suggest(%q) returned %d names, want at most %d", tt.name, len(got), maxSuggestions)
			}
		})
	}

	if got := table.Suggest("zzz"); len(got) != 0 {
		t.Errorf("Suggest(zzz) = %v, want none", got)
	}
	if got := table.Suggest(""); got != nil {
		t.Errorf("Suggest(\"\") = %v, want nil", got)
	}
}

func TestProgramName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		argv0 string
		want  string
	}{
		{"cbtr", "cbtr"},
		{"/usr/local/bin/b", "b"},
		{"./bin/t", "t"},
		{"b.exe", "b"},
		{"B.EXE", "B"},
		{"build.sh", "build.sh"},
	}

	for _, tt := range tests {
		t.Run(tt.argv0, func(t *testing.T) {
			t.Parallel()
			if got := ProgramName(tt.argv0); got != tt.want {
				t.Errorf("ProgramName(%q) = %q, want %q", tt.argv0, got, tt.want)
			}
		})
	}

	if !IsSelf("/opt/cbtr/cbtr") || IsSelf("/opt/cbtr/b") {
		t.Error("IsSelf misreports the program name")
	}
}
