// Package cmd runs the commands of a resolved entry.
//
// Commands run one after another in the working directory, inheriting the
// terminal's stdin, stdout and stderr. The first command that fails stops the
// sequence; its exit status is carried by [ExitError] so the caller can exit
// with the same code.
//
// # Command Lines
//
// Each command string is split with shell-like quoting and $VAR expansion:
//
//	cargo build --features "a b"   ->  [cargo build --features a b]
//	go test $PKG                   ->  [go test ./...]   (PKG=./...)
//
// A command containing unquoted shell operators (; & | < >) is passed to
// "sh -c" ("cmd /C" on Windows) unchanged instead.
package cmd
