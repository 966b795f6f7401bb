// Package storage provides atomic file writes for cbtr's config files.
package storage

import (
	"os"
	"path/filepath"
)

// WriteFile atomically writes data to path.
// It ensures the parent directory exists, writes to a temp file in the same
// directory, then renames to the final path for atomic operation.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return err
	}
	if err := os.Chmod(tempPath, perm); err != nil {
		os.Remove(tempPath)
		return err
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return err
	}
	return nil
}
