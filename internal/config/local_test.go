package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLocal_NoFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local != nil {
		t.Fatalf("expected nil, got %+v", local)
	}
}

func TestLoadLocal_EmptyDir(t *testing.T) {
	t.Parallel()

	local, err := LoadLocal("")
	if err != nil || local != nil {
		t.Fatalf("LoadLocal(\"\") = (%v, %v), want (nil, nil)", local, err)
	}
}

func TestLoadLocal_EmptyFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, LocalConfigFileName+".toml"), []byte(""), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local == nil {
		t.Fatal("expected non-nil local config for empty file")
	}
	if len(local.Entries) != 0 {
		t.Errorf("Entries = %v, want none", local.Entries)
	}
}

func TestLoadLocal_ExtensionOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".cbtr.json"), `{"entry": [{"name": "json"}]}`)
	writeConfig(t, filepath.Join(dir, ".cbtr.toml"), "[[entry]]\nname = \"toml\"\n")

	local, err := LoadLocal(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Path != filepath.Join(dir, ".cbtr.toml") {
		t.Errorf("Path = %q, want the .toml file", local.Path)
	}
	if local.Entries[0].Name != "toml" {
		t.Errorf("Entries[0].Name = %q, want toml", local.Entries[0].Name)
	}
}

func TestLoadLocal_DirectoryIgnored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".cbtr.toml"), 0755); err != nil {
		t.Fatal(err)
	}
	if path := LocalPath(dir); path != "" {
		t.Errorf("LocalPath() = %q, want none for a directory", path)
	}
}

func TestLoadLocal_InvalidTOML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, ".cbtr.toml"), "[[[invalid")

	_, err := LoadLocal(dir)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("error %v does not match ErrInvalid", err)
	}
}
