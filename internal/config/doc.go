// Package config handles loading and validation of cbtr configuration.
//
// # Configuration Sources (checked first to last)
//
//   - Local: .cbtr.toml (or .yaml, .yml, .json) in the repository root, or in
//     the working directory when not inside a repository
//   - Global: --config flag, CBTR_CONFIG env var, or
//     $XDG_CONFIG_HOME/cbtr/config.toml (default ~/.config/cbtr)
//
// Local entries are placed before global entries. Either file may be missing;
// with neither present the entry list is empty.
//
// # Entries
//
// Entries are [[entry]] tables:
//
//	[[entry]]
//	name = "rust"
//	bin = "cargo"                 # string or list
//	file = { name = "Cargo.toml", search-direction = "backwards" }
//	[entry.tools]
//	build = "cargo build"
//	check = ["cargo check", "cargo clippy"]
//
// search-direction is "backwards" (default) or "forwards"; anything else is
// rejected when the file is loaded. Tool keys are free-form applet names.
//
// # Formats
//
// TOML is the primary format. Files ending in .yaml/.yml are read as YAML
// and .json as JSON with comments and trailing commas allowed.
package config
