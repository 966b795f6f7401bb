package config

// LocalConfigFileName is the base name of the per-repo config file.
// Any of [Extensions] may follow it, e.g. ".cbtr.toml".
const LocalConfigFileName = ".cbtr"

// LocalPath returns the local config file in dir, or "" if there is none.
func LocalPath(dir string) string {
	if dir == "" {
		return ""
	}
	return findConfigFile(dir, LocalConfigFileName)
}

// LoadLocal reads the per-repo config in dir.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on read, parse or validation failure.
func LoadLocal(dir string) (*File, error) {
	path := LocalPath(dir)
	if path == "" {
		return nil, nil
	}
	return loadFile(path)
}
