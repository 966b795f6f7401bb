package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/cbtr/internal/storage"
)

const defaultTOML = `# cbtr configuration
#
# Entries are checked top to bottom. The first entry whose conditions hold
# and which defines the invoked tool wins. Entries from a repo-local
# .cbtr.toml are checked before the ones in this file.

# [settings]
# indent = "   "   # prefix for tool output lines ("" passes output through untouched)

# Extra names cbtr can be invoked as (see "cbtr link"):
# [aliases]
# d = "deploy"

[[entry]]
name = "just"
bin = "just"
file = { name = "justfile", search-direction = "backwards" }
[entry.tools]
format = "just fmt"
check = "just check"
build = "just build"
test = "just test"
run = "just run"

[[entry]]
name = "rust"
bin = "cargo"
file = { name = "Cargo.toml", search-direction = "backwards" }
[entry.tools]
format = "cargo fmt"
check = ["cargo check", "cargo clippy"]
build = "cargo build"
test = "cargo test"
run = "cargo run"

[[entry]]
name = "go"
bin = "go"
file = { name = "go.mod" }
[entry.tools]
format = "go fmt ./..."
check = "go vet ./..."
build = "go build ./..."
test = "go test ./..."

[[entry]]
name = "poetry"
bin = "poetry"
file = { name = "pyproject.toml" }
[entry.tools]
build = "poetry build"
test = "poetry run pytest"
`

const defaultYAML = `# cbtr configuration
# Entries are checked top to bottom; the first match that defines the tool wins.

# settings:
#   indent: "   "
# aliases:
#   d: deploy

entry:
  - name: rust
    bin: cargo
    file:
      name: Cargo.toml
      search-direction: backwards
    tools:
      format: cargo fmt
      check: [cargo check, cargo clippy]
      build: cargo build
      test: cargo test
      run: cargo run

  - name: go
    bin: go
    file:
      name: go.mod
    tools:
      check: go vet ./...
      build: go build ./...
      test: go test ./...
`

const defaultJSON = `// cbtr configuration
// Entries are checked top to bottom; the first match that defines the tool wins.
{
  // "settings": { "indent": "   " },
  // "aliases": { "d": "deploy" },
  "entry": [
    {
      "name": "rust",
      "bin": "cargo",
      "file": { "name": "Cargo.toml", "search-direction": "backwards" },
      "tools": {
        "format": "cargo fmt",
        "check": ["cargo check", "cargo clippy"],
        "build": "cargo build",
        "test": "cargo test",
        "run": "cargo run",
      },
    },
  ],
}
`

const defaultLocal = `# cbtr local config
# Entries here are checked before the global config.

# [[entry]]
# name = "project"
# file = { name = "Makefile" }
# [entry.tools]
# build = "make"
# test = ["make lint", "make test"]
`

// Template returns the default config content for a format.
// local selects the short per-repo template, which only exists as TOML.
func Template(format Format, local bool) string {
	if local && format == FormatTOML {
		return defaultLocal
	}
	switch format {
	case FormatYAML:
		return defaultYAML
	case FormatJSON:
		return defaultJSON
	default:
		return defaultTOML
	}
}

// Init writes content to path, creating parent directories.
// If force is false an existing file is left alone and an error returned.
func Init(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path + " (use -f to overwrite)")
		}
	}

	if err := storage.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
