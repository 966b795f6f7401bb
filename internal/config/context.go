package config

import (
	"context"

	"github.com/raphi011/cbtr/internal/rules"
)

type configKey struct{}

type locationKey struct{}

// WithConfig returns a new context with the config stored in it.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the config from context.
// Returns an empty default config if none is stored.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(configKey{}).(*Config); ok {
		return cfg
	}
	cfg := Default()
	return &cfg
}

// WithLocation returns a new context with the working directory and
// repository root stored in it.
func WithLocation(ctx context.Context, loc rules.Context) context.Context {
	return context.WithValue(ctx, locationKey{}, loc)
}

// LocationFromContext returns the location stored by [WithLocation].
func LocationFromContext(ctx context.Context) rules.Context {
	loc, _ := ctx.Value(locationKey{}).(rules.Context)
	return loc
}

// WorkDirFromContext returns the working directory from context.
func WorkDirFromContext(ctx context.Context) string {
	return LocationFromContext(ctx).WorkDir
}
