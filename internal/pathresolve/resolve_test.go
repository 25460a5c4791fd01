package pathresolve

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveEmpty(t *testing.T) {
	if _, err := Resolve("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestResolveHomeExpansion(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got, err := Resolve("~/project/file.go")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := filepath.Join("/home/tester", "project/file.go")
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveHomeExpansionMissingHome(t *testing.T) {
	t.Setenv("HOME", "")

	if _, err := Resolve("~/project"); err == nil {
		t.Fatal("expected error when HOME is unset")
	}
}

func TestResolveAbsolute(t *testing.T) {
	got, err := Resolve("/tmp/x/y.go")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got != "/tmp/x/y.go" {
		t.Errorf("Resolve() = %q, want %q", got, "/tmp/x/y.go")
	}
}

func TestResolveRelative(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := Resolve("a/b.go")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := filepath.Join(cwd, "a/b.go")
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestResolveOrDefaultUsesCWD(t *testing.T) {
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := ResolveOrDefault("")
	if err != nil {
		t.Fatalf("ResolveOrDefault returned error: %v", err)
	}
	if got != cwd {
		t.Errorf("ResolveOrDefault() = %q, want %q", got, cwd)
	}
}
