package rules

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SearchDirs returns the directories a file condition visits, in visiting order.
//
// Outside a repository, or when the working directory is not below the
// repository root, only the working directory is searched.
func SearchDirs(c Context, d Direction) []string {
	cwd := filepath.Clean(c.WorkDir)
	if !c.InRepo() {
		return []string{cwd}
	}

	root := filepath.Clean(c.RepoRoot)
	rel, err := filepath.Rel(root, cwd)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return []string{cwd}
	}

	dirs := []string{root}
	if rel != "." {
		cur := root
		for _, part := range strings.Split(rel, string(filepath.Separator)) {
			cur = filepath.Join(cur, part)
			dirs = append(dirs, cur)
		}
	}

	if d == Backwards {
		slices.Reverse(dirs)
	}
	return dirs
}

// findFile returns the first dirs[i]/name that exists and is not a directory.
func findFile(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
