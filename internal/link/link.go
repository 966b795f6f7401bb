// Package link creates the symlinks through which cbtr is invoked under its
// applet names (b, t, ...). Each link points at the cbtr binary; the name of
// the link selects the applet.
package link

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrExists is returned for a name whose path is already taken by something
// other than a link to cbtr.
var ErrExists = errors.New("already exists")

// Action describes what [Create] did for one name.
type Action string

const (
	Created   Action = "created"
	Unchanged Action = "unchanged"
	Replaced  Action = "replaced"
	Skipped   Action = "skipped"
)

// Result is the outcome for one link.
type Result struct {
	Name   string
	Path   string
	Action Action
}

// ReplaceFunc decides whether an existing file at path may be replaced.
type ReplaceFunc func(path string) (bool, error)

// Always replaces every existing file.
func Always(string) (bool, error) { return true, nil }

// Never keeps every existing file.
func Never(string) (bool, error) { return false, nil }

// Create makes dir/<name> a symlink to target for every name, creating dir if
// needed. Links already pointing at target are left alone. Other files are
// only replaced when replace agrees; otherwise they are skipped and reported
// in the returned error, which matches [ErrExists].
func Create(dir, target string, names []string, replace ReplaceFunc) ([]Result, error) {
	if replace == nil {
		replace = Never
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create link dir: %w", err)
	}

	// Resolve symlinks so an existing link via /tmp and one via /private/tmp
	// compare equal on macOS.
	resolved, err := filepath.EvalSymlinks(target)
	if err != nil {
		return nil, fmt.Errorf("resolve target: %w", err)
	}

	var results []Result
	var errs []error
	for _, name := range names {
		path := filepath.Join(dir, name)
		action, err := link(path, resolved, replace)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
		}
		results = append(results, Result{Name: name, Path: path, Action: action})
	}

	return results, errors.Join(errs...)
}

func link(path, target string, replace ReplaceFunc) (Action, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, os.ErrNotExist) {
		if err := os.Symlink(target, path); err != nil {
			return Skipped, err
		}
		return Created, nil
	}
	if err != nil {
		return Skipped, err
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if dest, err := filepath.EvalSymlinks(path); err == nil && dest == target {
			return Unchanged, nil
		}
	}

	if info.IsDir() {
		return Skipped, fmt.Errorf("is a directory")
	}
	ok, err := replace(path)
	if err != nil {
		return Skipped, err
	}
	if !ok {
		return Skipped, ErrExists
	}

	if err := os.Remove(path); err != nil {
		return Skipped, fmt.Errorf("remove existing file: %w", err)
	}
	if err := os.Symlink(target, path); err != nil {
		return Skipped, err
	}
	return Replaced, nil
}

// Describe says what currently occupies path: "link to <dest>", "directory",
// "executable file", "file" or "nothing".
func Describe(path string) string {
	info, err := os.Lstat(path)
	switch {
	case err != nil:
		return "nothing"
	case info.Mode()&os.ModeSymlink != 0:
		dest, err := os.Readlink(path)
		if err != nil {
			return "link"
		}
		return "link to " + dest
	case info.IsDir():
		return "directory"
	case info.Mode().Perm()&0o111 != 0:
		return "executable file"
	default:
		return "file"
	}
}
