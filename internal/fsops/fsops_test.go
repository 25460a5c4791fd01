package fsops

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadFileTruncation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatal(err)
	}

	content, truncated, err := ReadFile(path, 5)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if !truncated {
		t.Error("expected truncated=true")
	}
	if content != "01234…" {
		t.Errorf("content = %q, want %q", content, "01234…")
	}

	full, truncated, err := ReadFile(path, 0)
	if err != nil {
		t.Fatal(err)
	}
	if truncated || full != "0123456789" {
		t.Errorf("unbounded read = (%q, %v)", full, truncated)
	}
}

func TestWriteFileModes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	if err := WriteFile(path, "hello", false, true, false); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "hello" {
		t.Errorf("content = %q, want hello", data)
	}

	if err := WriteFile(path, " world", true, false, true); err != nil {
		t.Fatalf("append WriteFile returned error: %v", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "hello world\n" {
		t.Errorf("content after append = %q, want %q", data, "hello world\n")
	}
}

func TestListDirHiddenFiltering(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := ListDir(dir, 0, false)
	if err != nil {
		t.Fatalf("ListDir returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(entries), entries)
	}

	withHidden, err := ListDir(dir, 0, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(withHidden) != 3 {
		t.Errorf("got %d entries with hidden, want 3", len(withHidden))
	}
}

func TestListDirMaxEntries(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := ListDir(dir, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2", len(entries))
	}
}
