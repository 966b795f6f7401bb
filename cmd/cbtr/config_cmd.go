package main

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/log"
	"github.com/raphi011/cbtr/internal/output"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		Annotations: map[string]string{skipConfig: "true"},
		Long: `Manage cbtr configuration.

Global config: $XDG_CONFIG_HOME/cbtr/config.toml (or ~/.config/cbtr)
Local config:  .cbtr.toml in the repository root (or current directory)

YAML (.yaml, .yml) and JSON with comments (.json) are accepted as well.`,
		Example: `  cbtr config init          # Create default global config
  cbtr config init --local  # Create local repo config
  cbtr config show          # Show effective config
  cbtr config path          # Show config file locations`,
	}

	cmd.AddCommand(newConfigInitCmd(a))
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd(a))

	return cmd
}

func newConfigInitCmd(a *app) *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
		format string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  exactArgs(0),
		Long: `Create default config file.

Without flags, creates the global config. With --local, creates .cbtr.toml
in the repository root, or in the current directory outside a repository.`,
		Example: `  cbtr config init                # Create global config
  cbtr config init --local        # Create local repo config
  cbtr config init --format yaml  # Create global config as YAML
  cbtr config init -f             # Overwrite existing config
  cbtr config init -s             # Print config to stdout`,
		Annotations: map[string]string{skipConfig: "true"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.ValidateFormat(format); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			f := config.FormatTOML
			if format != "" {
				f = config.Format(format)
			}
			content := config.Template(f, local)

			if stdout {
				out.Printf("%s", content)
				return nil
			}

			path, err := initPath(a, config.LocationFromContext(ctx).RepoRoot, config.WorkDirFromContext(ctx), f, local)
			if err != nil {
				return err
			}
			if err := config.Init(path, content, force); err != nil {
				return err
			}

			l.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create per-repo .cbtr.toml instead of global config")
	cmd.Flags().StringVar(&format, "format", "", "Config format: "+strings.Join(config.ValidFormats, ", "))

	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return config.ValidFormats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// initPath returns the file "config init" writes: the local config in the
// repository root (or dir outside a repo), or the global config.
func initPath(a *app, repoRoot, dir string, format config.Format, local bool) (string, error) {
	ext := "." + string(format)
	if local {
		if repoRoot != "" {
			dir = repoRoot
		}
		return filepath.Join(dir, config.LocalConfigFileName+ext), nil
	}

	if a.configPath != "" {
		return a.configPath, nil
	}
	configDir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config"+ext), nil
}

// configView is the JSON shape of "cbtr config show --json".
type configView struct {
	Sources  []string          `json:"sources"`
	Settings settingsView      `json:"settings"`
	Aliases  map[string]string `json:"aliases"`
	Entries  []entryView       `json:"entries"`
}

type settingsView struct {
	Indent string `json:"indent"`
}

type entryView struct {
	Name   string              `json:"name"`
	Source string              `json:"source"`
	Bin    []string            `json:"bin,omitempty"`
	File   *fileView           `json:"file,omitempty"`
	Tools  map[string][]string `json:"tools"`
}

type fileView struct {
	Name            []string `json:"name"`
	SearchDirection string   `json:"search-direction"`
}

func newConfigView(cfg *config.Config) configView {
	v := configView{
		Sources:  append([]string{}, cfg.Sources...),
		Settings: settingsView{Indent: cfg.Settings.Indent},
		Aliases:  cfg.Aliases,
		Entries:  make([]entryView, 0, len(cfg.Entries)),
	}
	for _, e := range cfg.Entries {
		ev := entryView{Name: e.Name, Source: e.Source, Bin: e.Bin, Tools: e.Tools}
		if e.File != nil {
			ev.File = &fileView{Name: e.File.Names, SearchDirection: string(e.File.Direction)}
		}
		v.Entries = append(v.Entries, ev)
	}
	return v
}

func newConfigShowCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  exactArgs(0),
		Long: `Show effective configuration.

Entries are listed in the order they are checked, each with the file it
came from.`,
		Example: `  cbtr config show          # Show merged config
  cbtr config show --json   # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := config.FromContext(ctx)
			out := output.FromContext(ctx)

			view := newConfigView(cfg)
			if jsonOutput {
				return out.JSON(view)
			}

			if len(view.Sources) == 0 {
				out.Println("Config files: (none)")
			} else {
				out.Println("Config files:")
				for _, s := range view.Sources {
					out.Printf("  %s\n", s)
				}
			}
			out.Printf("\nsettings.indent: %q\n", view.Settings.Indent)

			if len(view.Aliases) > 0 {
				out.Println("\naliases:")
				for _, name := range sortedKeys(view.Aliases) {
					out.Printf("  %s = %s\n", name, view.Aliases[name])
				}
			}

			for i, e := range view.Entries {
				out.Printf("\n[%d] %s (%s)\n", i, e.Name, e.Source)
				if len(e.Bin) > 0 {
					out.Printf("  bin: %s\n", strings.Join(e.Bin, ", "))
				}
				if e.File != nil {
					out.Printf("  file: %s (%s)\n", strings.Join(e.File.Name, ", "), e.File.SearchDirection)
				}
				for _, tool := range sortedKeys(e.Tools) {
					out.Printf("  %s: %s\n", tool, strings.Join(e.Tools[tool], " && "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newConfigPathCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Show config file locations",
		Args:        exactArgs(0),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			loc := config.LocationFromContext(ctx)

			global, _, err := config.GlobalPath(a.configPath)
			if err != nil {
				return err
			}

			dir := loc.RepoRoot
			if dir == "" {
				dir = loc.WorkDir
			}
			local := config.LocalPath(dir)
			if local == "" {
				local = filepath.Join(dir, config.LocalConfigFileName+".toml") + " (not found)"
			}

			out.Printf("global: %s\n", global)
			out.Printf("local:  %s\n", local)
			return nil
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
