// Package pathresolve expands the small set of path forms tool arguments
// accept: "~/..." relative to $HOME, absolute paths used as-is, and
// everything else joined to the current working directory captured at
// call time. The working directory is never cached across requests.
package pathresolve

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/standardbeagle/serena-mcp/internal/errs"
)

// Resolve expands raw into an absolute path.
func Resolve(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errs.NewPathError(raw, errEmptyPath)
	}

	if strings.HasPrefix(raw, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			return "", errs.NewPathError(raw, errNoHome)
		}
		return filepath.Join(home, strings.TrimPrefix(raw, "~/")), nil
	}

	if filepath.IsAbs(raw) {
		return raw, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", errs.NewPathError(raw, err)
	}
	return filepath.Join(cwd, raw), nil
}

// ResolveOrDefault resolves raw, falling back to the current working
// directory when raw is empty. Several tools (find_symbol, search_pattern,
// onboarding_tool, ...) default their path argument to CWD rather than
// failing on an absent one.
func ResolveOrDefault(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", errs.NewPathError(raw, err)
		}
		return cwd, nil
	}
	return Resolve(raw)
}

var (
	errEmptyPath = pathError("path cannot be empty")
	errNoHome    = pathError("HOME environment variable is not set")
)

type pathError string

func (e pathError) Error() string { return string(e) }
