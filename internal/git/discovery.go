package git

import (
	"os"
	"path/filepath"
)

// MetadataDir is the name of the directory (or file, for worktrees and
// submodules) that marks a repository root.
const MetadataDir = ".git"

// FindRoot walks from start through its parents and returns the first
// directory containing [MetadataDir]. ok is false when the filesystem root
// is reached without finding one.
func FindRoot(start string) (root string, ok bool) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false
	}

	for {
		if isGitRepo(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// isGitRepo checks if a path is a git repository (has .git dir or file)
func isGitRepo(path string) bool {
	info, err := os.Stat(filepath.Join(path, MetadataDir))
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree)
	return info.IsDir() || info.Mode().IsRegular()
}
