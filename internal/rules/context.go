package rules

import "path/filepath"

// Context is where a resolution runs from.
type Context struct {
	WorkDir  string
	RepoRoot string // empty outside a repository
}

// NewContext returns a Context with cleaned paths.
func NewContext(workDir, repoRoot string) Context {
	c := Context{WorkDir: filepath.Clean(workDir)}
	if repoRoot != "" {
		c.RepoRoot = filepath.Clean(repoRoot)
	}
	return c
}

// InRepo reports whether a repository root is known.
func (c Context) InRepo() bool {
	return c.RepoRoot != ""
}
