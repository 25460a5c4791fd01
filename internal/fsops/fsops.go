// Package fsops implements the read_file/list_dir/write_file tool
// family: direct filesystem access scoped to a single resolved path
// per call.
package fsops

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/standardbeagle/serena-mcp/internal/errs"
)

// ReadFile reads path and soft-truncates to maxBytes, appending "…"
// when truncated. maxBytes <= 0 means no limit.
func ReadFile(path string, maxBytes int) (content string, truncated bool, err error) {
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return "", false, errs.NewFileError("read", path, readErr)
	}
	if maxBytes > 0 && len(data) > maxBytes {
		return string(data[:maxBytes]) + "…", true, nil
	}
	return string(data), false, nil
}

// WriteFile writes content to path. append adds to an existing file
// instead of overwriting it; createDirs makes any missing parent
// directories first; ensureTrailingNewline appends "\n" if content
// doesn't already end with one.
func WriteFile(path, content string, appendMode, createDirs, ensureTrailingNewline bool) error {
	if ensureTrailingNewline && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if createDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errs.NewFileError("mkdir", filepath.Dir(path), err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return errs.NewFileError("open", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return errs.NewFileError("write", path, err)
	}
	return nil
}

// Entry is one directory listing row.
type Entry struct {
	Name  string
	IsDir bool
}

// ListDir lists the immediate children of path, sorted by name.
// maxEntries <= 0 means unbounded; includeHidden controls whether
// dotfiles are returned.
func ListDir(path string, maxEntries int, includeHidden bool) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, errs.NewFileError("readdir", path, err)
	}

	names := make([]string, len(dirEntries))
	for i, e := range dirEntries {
		names[i] = e.Name()
	}
	sort.Strings(names)

	byName := make(map[string]os.DirEntry, len(dirEntries))
	for _, e := range dirEntries {
		byName[e.Name()] = e
	}

	var out []Entry
	for _, name := range names {
		if !includeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		out = append(out, Entry{Name: name, IsDir: byName[name].IsDir()})
		if maxEntries > 0 && len(out) >= maxEntries {
			break
		}
	}
	return out, nil
}
