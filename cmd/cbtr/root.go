package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/cbtr/internal/applet"
	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/git"
	"github.com/raphi011/cbtr/internal/log"
	"github.com/raphi011/cbtr/internal/output"
	"github.com/raphi011/cbtr/internal/rules"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// skipConfig is set as an annotation on commands that must work without
// (or with a broken) config.
const skipConfig = "cbtr/skip-config"

// app holds global flags and the process streams for one invocation.
type app struct {
	// Global flags
	verbose    bool
	quiet      bool
	configPath string
	chdir      string

	// multicall is the name cbtr was invoked as when it is not "cbtr".
	multicall string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Execute runs cbtr with the process arguments (including argv0) and returns
// the exit status.
func Execute(argv []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	return a.execute(ctx, argv)
}

func (a *app) execute(ctx context.Context, argv []string) int {
	root := newRootCmd(a)
	root.SetArgs(a.commandArgs(argv))
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	a.report(err)
	return exitCode(err)
}

// commandArgs maps the process arguments to the command tree. Invoked as
// anything other than cbtr, the program name selects the applet to run.
func (a *app) commandArgs(argv []string) []string {
	if len(argv) == 0 {
		return nil
	}
	if applet.IsSelf(argv[0]) {
		return argv[1:]
	}
	a.multicall = applet.ProgramName(argv[0])
	return append([]string{"run", a.multicall}, argv[1:]...)
}

// report prints err unless it is a failed command, whose output already
// explains what went wrong.
func (a *app) report(err error) {
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return
	}

	l := log.New(a.stderr, a.verbose, a.quiet)
	l.Error(err.Error())

	var usage *usageError
	if errors.As(err, &usage) && a.multicall == "" {
		fmt.Fprintln(a.stderr, "Run 'cbtr -h' for help")
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "cbtr",
		Short: "Run the right format, check, build, test or run command for the current project",
		Long: `cbtr maps short applet names to the build tool of the project you are in.

Entries from .cbtr.toml in the repository root and from the global config are
checked in order; the first entry whose bin and file conditions hold and which
defines the applet supplies the commands to run.

Link cbtr under its applet names (see "cbtr link") to run "b" for build,
"t" for test and so on.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{skipConfig: "true"},
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Show condition checks and executed commands")
	root.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "Suppress everything but errors and command output")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Global config file (default $XDG_CONFIG_HOME/cbtr/config.toml)")
	root.PersistentFlags().StringVarP(&a.chdir, "chdir", "C", "", "Run as if cbtr was started in `dir`")
	root.MarkFlagsMutuallyExclusive("verbose", "quiet")
	_ = root.MarkPersistentFlagFilename("config", "toml", "yaml", "yml", "json")
	_ = root.MarkPersistentFlagDirname("chdir")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// Version flag
	root.Version = versionString()
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	root.AddCommand(newRunCmd(a))
	root.AddCommand(newWhichCmd(a))
	root.AddCommand(newExplainCmd(a))

	// Config commands
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newLinkCmd(a))
	root.AddCommand(newCompletionCmd())

	return root
}

// prepare stores the logger, printer, location and config in the command's
// context.
func (a *app) prepare(cmd *cobra.Command) error {
	if a.verbose && a.quiet {
		return usageErrorf("--verbose and --quiet are mutually exclusive")
	}

	l := log.New(a.stderr, a.verbose, a.quiet)
	ctx := log.WithLogger(cmd.Context(), l)
	ctx = output.WithPrinter(ctx, a.stdout)

	loc, err := a.location()
	if err != nil {
		return err
	}
	ctx = config.WithLocation(ctx, loc)
	l.Debug("location", "workdir", loc.WorkDir, "repo", loc.RepoRoot)

	if !needsConfig(cmd) {
		cmd.SetContext(ctx)
		return nil
	}

	cfg, err := a.loadConfig(loc)
	if err != nil {
		return err
	}
	l.Debug("config loaded", "sources", cfg.Sources, "entries", len(cfg.Entries))

	cmd.SetContext(config.WithConfig(ctx, cfg))
	return nil
}

func needsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return cmd.Annotations[skipConfig] == ""
}

// location returns the working directory (after -C) and its repository root.
func (a *app) location() (rules.Context, error) {
	dir := a.chdir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return rules.Context{}, fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}

	dir, err := filepath.Abs(dir)
	if err != nil {
		return rules.Context{}, fmt.Errorf("resolve %s: %w", a.chdir, err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return rules.Context{}, usageErrorf("not a directory: %s", dir)
	}

	root, _ := git.FindRoot(dir)
	return rules.NewContext(dir, root), nil
}

func (a *app) loadConfig(loc rules.Context) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		WorkDir:    loc.WorkDir,
		RepoRoot:   loc.RepoRoot,
		GlobalPath: a.configPath,
	})
}

// noArgs rejects positional arguments with a usage error naming the closest
// subcommands.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return nil
	}
	return usageErrorf("unknown command %q for %q%s", args[0], cmd.CommandPath(), didYouMean(cmd.SuggestionsFor(args[0])))
}

// exactArgs is cobra.ExactArgs returning a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

// completeApplets completes invocation names from the defaults and the
// config of the current directory.
func (a *app) completeApplets(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var aliases map[string]string
	var entries []rules.Entry
	if loc, err := a.location(); err == nil {
		if cfg, err := a.loadConfig(loc); err == nil {
			aliases, entries = cfg.Aliases, cfg.Entries
		}
	}
	return applet.NewTable(aliases, entries).Names(), cobra.ShellCompDirectiveNoFileComp
}
