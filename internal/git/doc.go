// Package git locates the repository enclosing a directory.
//
// Discovery only looks at the filesystem: a directory is a repository root
// when it contains a .git directory, or a .git file as created for linked
// worktrees and submodules. The git binary is never invoked, so cbtr works
// the same whether or not git is installed.
//
// Not being inside a repository is a normal outcome. Callers treat the
// working directory as the whole search scope in that case.
package git
