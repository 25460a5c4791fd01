// Package walk provides the bounded, no-symlink directory traversal
// shared by search, the symbolic editor, and the onboarding
// summariser. None of them follow symlinks; they differ only in depth
// limit, which directories they skip, and whether hidden entries are
// visible at all.
package walk

import (
	"os"
	"path/filepath"
	"strings"
)

// IsHidden reports whether any component of path begins with '.'.
func IsHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if strings.HasPrefix(part, ".") && part != "." && part != "" {
			return true
		}
	}
	return false
}

// VisitFunc is called for every regular file found. Returning an error
// stops the walk immediately.
type VisitFunc func(path string, depth int) error

// Options configure a Walk.
type Options struct {
	MaxDepth      int             // 0 means unbounded
	SkipDirs      map[string]bool // directory basenames to prune entirely
	IncludeHidden bool            // if false, hidden files and directories are pruned
}

// Walk walks root (never following symlinks), invoking visit for each
// regular file in deterministic, depth-first, lexical order.
func Walk(root string, opts Options, visit VisitFunc) error {
	info, err := os.Lstat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		if shouldVisit(root, opts) {
			return visit(root, 0)
		}
		return nil
	}
	return walkDir(root, 0, opts, visit)
}

func walkDir(dir string, depth int, opts Options, visit VisitFunc) error {
	if opts.MaxDepth > 0 && depth > opts.MaxDepth {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil // unreadable directory: skip silently
	}

	for _, e := range entries {
		name := e.Name()
		path := filepath.Join(dir, name)

		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}

		if e.Type()&os.ModeSymlink != 0 {
			continue
		}

		if e.IsDir() {
			if opts.SkipDirs[name] {
				continue
			}
			if err := walkDir(path, depth+1, opts, visit); err != nil {
				return err
			}
			continue
		}

		if shouldVisit(path, opts) {
			if err := visit(path, depth); err != nil {
				return err
			}
		}
	}
	return nil
}

func shouldVisit(path string, opts Options) bool {
	if !opts.IncludeHidden && IsHidden(path) {
		return false
	}
	return true
}

// DefaultSkipDirs is the fixed set of build/vcs directories the
// onboarding summariser prunes regardless of the hidden-file setting.
var DefaultSkipDirs = map[string]bool{
	".git":          true,
	"target":        true,
	"node_modules":  true,
	"venv":          true,
	".venv":         true,
	"dist":          true,
	"build":         true,
	".pytest_cache": true,
	"__pycache__":   true,
}
