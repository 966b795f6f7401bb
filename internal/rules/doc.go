// Package rules decides which commands an applet runs in a directory.
//
// A configuration is an ordered list of [Entry] values. Each entry may carry
// conditions (binaries that must be on PATH, files that must exist somewhere
// between the repository root and the working directory) and a tool table
// mapping applet keys such as "build" or "test" to command lists.
//
// # Resolution
//
// [Resolver.Resolve] walks the entries in order and returns the command list
// of the first entry whose conditions hold and which defines a non-empty list
// for the requested applet. Entries that match but lack the applet are
// skipped, so a general entry further down can still supply it.
//
// Nothing is scored or merged: the textual order of the configuration is the
// only precedence rule.
//
// # File search
//
// File conditions scan the directories returned by [SearchDirs]:
//
//   - backwards: working directory, its parents, ..., repository root
//   - forwards: repository root, ..., working directory
//
// Outside a repository both directions only look at the working directory.
package rules
