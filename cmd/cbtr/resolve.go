package main

import (
	"context"
	"os"

	"github.com/raphi011/cbtr/internal/applet"
	"github.com/raphi011/cbtr/internal/config"
	"github.com/raphi011/cbtr/internal/rules"
)

// appletKey maps an invoked name to its applet key. Names not in the table
// are used as keys directly, except under multicall where an unknown program
// name is a usage error.
func appletKey(cfg *config.Config, name string, multicall bool) (string, error) {
	table := applet.NewTable(cfg.Aliases, cfg.Entries)
	if key, ok := table.Lookup(name); ok {
		return key, nil
	}
	if multicall {
		return "", usageErrorf("unknown applet %q%s", name, didYouMean(table.Suggest(name)))
	}
	return name, nil
}

func newResolver() *rules.Resolver {
	return rules.NewResolver(rules.NewPathFinder(os.Getenv("PATH")))
}

// resolve runs the entry resolver for name with the config and location
// stored in ctx.
func resolve(ctx context.Context, name string, multicall bool) (rules.Resolution, error) {
	cfg := config.FromContext(ctx)
	key, err := appletKey(cfg, name, multicall)
	if err != nil {
		return rules.Resolution{}, err
	}
	return newResolver().Resolve(ctx, cfg.Entries, key, config.LocationFromContext(ctx))
}
