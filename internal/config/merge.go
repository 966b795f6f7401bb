package config

import "maps"

// Merge builds the effective config from the global and local files, either
// of which may be nil. Local entries come first and nothing is reordered or
// deduplicated. Local settings and aliases override global ones by key.
func Merge(global, local *File) *Config {
	cfg := Default()

	// Global first so local overrides land on top.
	for _, f := range []*File{global, local} {
		if f == nil {
			continue
		}
		if f.Indent != nil {
			cfg.Settings.Indent = *f.Indent
		}
		maps.Copy(cfg.Aliases, f.Aliases)
	}

	for _, f := range []*File{local, global} {
		if f == nil {
			continue
		}
		cfg.Entries = append(cfg.Entries, f.Entries...)
		cfg.Sources = append(cfg.Sources, f.Path)
	}

	return &cfg
}
