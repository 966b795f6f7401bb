package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/raphi011/cbtr/internal/rules"
)

// ErrInvalid is matched by every error caused by a config file's content.
var ErrInvalid = errors.New("invalid config")

// Error reports a config file that could not be read or parsed.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrInvalid, e.Err}
}

// DefaultIndent prefixes each line of child output when stdout is a terminal.
const DefaultIndent = "   "

// EnvConfig overrides the global config file location.
const EnvConfig = "CBTR_CONFIG"

// Settings holds presentation options.
type Settings struct {
	Indent string
}

// Config is the effective configuration for one invocation. It is built once
// by [Load] and not modified afterwards.
type Config struct {
	Settings Settings
	Aliases  map[string]string // invoked name -> applet key
	Entries  []rules.Entry     // local entries first, then global
	Sources  []string          // files that contributed, in precedence order
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Settings: Settings{Indent: DefaultIndent},
		Aliases:  map[string]string{},
	}
}

// LoadOptions tells [Load] where to look.
type LoadOptions struct {
	WorkDir    string
	RepoRoot   string // empty outside a repository
	GlobalPath string // explicit global config file, overrides discovery
}

// Load reads the local config (repo root, or working directory outside a
// repo) and the global config, and merges them with local entries first.
// Missing files are not errors.
func Load(opts LoadOptions) (*Config, error) {
	var global *File
	path, explicit, err := GlobalPath(opts.GlobalPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		global, err = loadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) && !explicit {
				global = nil
			} else {
				return nil, err
			}
		}
	}

	localDir := opts.RepoRoot
	if localDir == "" {
		localDir = opts.WorkDir
	}
	local, err := LoadLocal(localDir)
	if err != nil {
		return nil, err
	}

	return Merge(global, local), nil
}

// GlobalPath returns the global config file to use. An override (flag) wins,
// then $CBTR_CONFIG, then the first existing config.{toml,yaml,yml,json} in
// the config directory. When none exists the TOML path is returned so that
// callers can create it. explicit reports whether the path was requested by
// the user rather than discovered.
func GlobalPath(override string) (path string, explicit bool, err error) {
	if override != "" {
		return override, true, nil
	}
	if env := os.Getenv(EnvConfig); env != "" {
		return env, true, nil
	}

	dir, err := Dir()
	if err != nil {
		return "", false, err
	}
	if found := findConfigFile(dir, "config"); found != "" {
		return found, false, nil
	}
	return filepath.Join(dir, "config.toml"), false, nil
}

// Dir returns the global config directory: $XDG_CONFIG_HOME/cbtr,
// falling back to ~/.config/cbtr.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" && filepath.IsAbs(xdg) {
		return filepath.Join(xdg, "cbtr"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "cbtr"), nil
}

func loadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return Parse(data, FormatForPath(path), path)
}

// findConfigFile returns the first dir/base+ext that exists, trying
// [Extensions] in order.
func findConfigFile(dir, base string) string {
	for _, ext := range Extensions {
		candidate := filepath.Join(dir, base+ext)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}
