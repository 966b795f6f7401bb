package rules

import (
	"context"
	"slices"

	"github.com/raphi011/cbtr/internal/log"
)

// Resolution is the outcome of a successful [Resolver.Resolve].
type Resolution struct {
	Applet   string
	Entry    string
	Source   string
	Index    int
	Commands []string
}

// Step describes how one entry fared during resolution.
type Step struct {
	Index   int
	Entry   string
	Source  string
	Matched bool
	HasTool bool
	Chosen  bool
}

// Resolver evaluates entries against a [Context].
type Resolver struct {
	bins BinFinder
}

// NewResolver returns a Resolver that checks bin conditions with bins.
func NewResolver(bins BinFinder) *Resolver {
	return &Resolver{bins: bins}
}

// Matches reports whether all of the entry's conditions hold.
// Unmet conditions are not errors; an entry that fails [Entry.Validate]
// is refused and its validation error returned.
func (r *Resolver) Matches(ctx context.Context, e Entry, c Context) (bool, error) {
	if err := e.Validate(); err != nil {
		return false, err
	}

	l := log.FromContext(ctx)

	for _, bin := range e.Bin {
		path, ok := r.bins.Find(bin)
		if !ok {
			l.Debug("binary not on PATH", "entry", e.Name, "bin", bin)
			return false, nil
		}
		l.Debug("found binary", "entry", e.Name, "path", path)
	}

	if e.File != nil {
		dirs := SearchDirs(c, e.File.Direction)
		for _, name := range e.File.Names {
			path, ok := findFile(dirs, name)
			if !ok {
				l.Debug("file not found", "entry", e.Name, "file", name, "direction", string(e.File.Direction))
				return false, nil
			}
			l.Debug("found file", "entry", e.Name, "path", path)
		}
	}

	return true, nil
}

// Resolve returns the commands of the first entry that matches and defines
// a non-empty list for applet. All entries are validated before any is
// evaluated. If nothing qualifies the error is a [*NoMatchError].
func (r *Resolver) Resolve(ctx context.Context, entries []Entry, applet string, c Context) (Resolution, error) {
	if err := Validate(entries); err != nil {
		return Resolution{}, err
	}

	l := log.FromContext(ctx)

	for i, e := range entries {
		l.Debug("checking conditions", "entry", e.Name)

		ok, err := r.Matches(ctx, e, c)
		if err != nil {
			return Resolution{}, err
		}
		if !ok {
			continue
		}

		commands := e.Commands(applet)
		if len(commands) == 0 {
			l.Debug("entry matched without tool", "entry", e.Name, "applet", applet)
			continue
		}

		return Resolution{
			Applet:   applet,
			Entry:    e.Name,
			Source:   e.Source,
			Index:    i,
			Commands: slices.Clone(commands),
		}, nil
	}

	return Resolution{}, &NoMatchError{Applet: applet, WorkDir: c.WorkDir}
}

// Explain evaluates every entry and reports, per entry, whether it matched,
// whether it defines applet and whether Resolve would choose it.
func (r *Resolver) Explain(ctx context.Context, entries []Entry, applet string, c Context) ([]Step, error) {
	if err := Validate(entries); err != nil {
		return nil, err
	}

	steps := make([]Step, 0, len(entries))
	chosen := false
	for i, e := range entries {
		ok, err := r.Matches(ctx, e, c)
		if err != nil {
			return nil, err
		}
		step := Step{
			Index:   i,
			Entry:   e.Name,
			Source:  e.Source,
			Matched: ok,
			HasTool: len(e.Commands(applet)) > 0,
		}
		if step.Matched && step.HasTool && !chosen {
			step.Chosen = true
			chosen = true
		}
		steps = append(steps, step)
	}
	return steps, nil
}
