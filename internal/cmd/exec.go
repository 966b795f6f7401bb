package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-shellwords"

	"github.com/raphi011/cbtr/internal/log"
	"github.com/raphi011/cbtr/internal/ui/styles"
)

// Exit codes for commands that did not report a status of their own.
const (
	ExitFailure       = 1
	ExitNotExecutable = 126
	ExitNotFound      = 127
	ExitInterrupted   = 130
)

// ErrEmptyCommand is returned for a command string with no words.
var ErrEmptyCommand = errors.New("empty command")

// ExitError reports a command that failed, was not startable or was
// interrupted. Code is the status cbtr exits with.
type ExitError struct {
	Command string
	Code    int
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("command %q exited with status %d", e.Command, e.Code)
	}
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the status to exit with.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Options configures [RunSequence].
type Options struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Indent prefixes every line of child output. Empty passes output
	// through untouched.
	Indent string

	// DryRun prints each command without running it.
	DryRun bool
}

// shellChars mark a command whose expansion or escaping is left to the shell.
const shellChars = "$\\`"

// Split turns a command string into program and arguments. Commands with
// shell operators, variables or backslashes are run through the shell
// unchanged.
func Split(command string) ([]string, error) {
	if strings.ContainsAny(command, shellChars) {
		return shellArgs(command), nil
	}

	p := shellwords.NewParser()

	args, err := p.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", command, err)
	}
	if len(args) == 0 && p.Position < 0 {
		return nil, ErrEmptyCommand
	}
	if p.Position >= 0 {
		return shellArgs(command), nil
	}
	return args, nil
}

func shellArgs(command string) []string {
	if runtime.GOOS == "windows" {
		return []string{"cmd", "/C", command}
	}
	return []string{"sh", "-c", command}
}

// RunSequence runs commands in order and stops at the first failure, which is
// returned as an [*ExitError]. Once ctx is done no further command starts.
func RunSequence(ctx context.Context, commands []string, opts Options) error {
	l := log.FromContext(ctx)

	for _, command := range commands {
		if err := ctx.Err(); err != nil {
			return &ExitError{Command: command, Code: ExitInterrupted, Err: err}
		}

		if opts.DryRun {
			l.Printf("%s\n", styles.DryRun(command))
			continue
		}

		l.Printf("%s\n", styles.Banner(command))
		if err := Run(ctx, command, opts); err != nil {
			var exitErr *ExitError
			if errors.As(err, &exitErr) {
				l.Printf("%s\n", styles.Failed(command, exitErr.Code))
			}
			return err
		}
	}
	return nil
}

// Run runs a single command and waits for it to finish.
func Run(ctx context.Context, command string, opts Options) error {
	args, err := Split(command)
	if err != nil {
		return err
	}

	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	if opts.Indent != "" {
		stdout = newIndentWriter(stdout, opts.Indent)
		stderr = newIndentWriter(stderr, opts.Indent)
	}

	c := exec.CommandContext(ctx, args[0], args[1:]...)
	c.Dir = opts.Dir
	c.Stdin = opts.Stdin
	c.Stdout = stdout
	c.Stderr = stderr
	c.WaitDelay = 5 * time.Second

	done := log.FromContext(ctx).Command(opts.Dir, args[0], args[1:]...)
	start := time.Now()
	err = c.Run()
	done(time.Since(start))

	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return &ExitError{Command: command, Code: ExitInterrupted, Err: ctxErr}
	}
	return &ExitError{Command: command, Code: exitCode(err), Err: err}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code
		}
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal())
		}
		return ExitFailure
	}

	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return ExitNotFound
	case errors.Is(err, fs.ErrPermission):
		return ExitNotExecutable
	default:
		return ExitFailure
	}
}
