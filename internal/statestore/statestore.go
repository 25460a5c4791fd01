// Package statestore resolves the state directory and provides the
// load-mutate-save-whole-file pattern every persisted store
// (onboarding cache, memory array) uses. There is no locking: the spec
// treats cross-process safety of these files as explicitly
// unguaranteed, last writer wins.
package statestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/standardbeagle/serena-mcp/internal/errs"
)

// Dir returns the state directory, creating it if it doesn't exist.
// SERENA_STATE_DIR overrides the default of $HOME/.serena-mcp.
func Dir() (string, error) {
	dir := os.Getenv("SERENA_STATE_DIR")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errs.NewFileError("resolve state dir", "", err)
		}
		dir = filepath.Join(home, ".serena-mcp")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errs.NewFileError("create state dir", dir, err)
	}
	return dir, nil
}

// File returns the absolute path of a named file inside the state
// directory.
func File(name string) (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// Load reads and unmarshals a state file into dest. A missing file
// leaves dest untouched (its caller-supplied zero value stands in for
// "no entries yet") and returns no error.
func Load(name string, dest interface{}) error {
	path, err := File(name)
	if err != nil {
		return err
	}
	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return nil
		}
		return errs.NewFileError("read", path, readErr)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return errs.NewFileError("parse", path, err)
	}
	return nil
}

// Save rewrites a state file in full as pretty-printed JSON.
func Save(name string, src interface{}) error {
	path, err := File(name)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return errs.NewFileError("marshal", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errs.NewFileError("write", path, err)
	}
	return nil
}
