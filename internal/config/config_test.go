package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaultsWhenNoFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadProjectOverridesUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	root := t.TempDir()

	writeKDL(t, filepath.Join(home, ".serena-mcp.kdl"), "max-results 10\ncontext-lines 1\n")
	writeKDL(t, filepath.Join(root, ".serena-mcp.kdl"), "max-results 99\n")

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxResults != 99 {
		t.Errorf("MaxResults = %d, want 99 (project overrides user)", cfg.MaxResults)
	}
	if cfg.ContextLines != 1 {
		t.Errorf("ContextLines = %d, want 1 (inherited from user config)", cfg.ContextLines)
	}
}

func TestLoadIncludeExcludeRepeatable(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	root := t.TempDir()

	writeKDL(t, filepath.Join(root, ".serena-mcp.kdl"), `
include "**/*.go"
include "**/*.md"
exclude "**/vendor/**"
`)

	cfg, err := Load(root)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Include) != 2 {
		t.Errorf("Include = %v, want 2 entries", cfg.Include)
	}
	if len(cfg.Exclude) != 1 {
		t.Errorf("Exclude = %v, want 1 entry", cfg.Exclude)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	writeKDL(t, filepath.Join(root, ".serena-mcp.kdl"), "max-results (((\n")

	if _, err := Load(root); err == nil {
		t.Fatal("expected an error for a malformed KDL file")
	}
}

func TestLoadExplicitConfigPathOverridesProjectDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	elsewhere := filepath.Join(t.TempDir(), "custom.kdl")
	writeKDL(t, elsewhere, "max-results 7\n")

	cfg, err := Load(root, elsewhere)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MaxResults != 7 {
		t.Errorf("MaxResults = %d, want 7 from the explicit config path", cfg.MaxResults)
	}
}

func writeKDL(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}
