// Package prompt asks the user before "cbtr link" replaces a file that is not
// already a link to cbtr.
//
// Questions render on the given output (stderr in cbtr) so they never mix
// with data written to stdout. Callers only ask when both input and output
// are terminals.
package prompt
