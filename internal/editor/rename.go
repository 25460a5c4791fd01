package editor

import (
	"fmt"
	"os"
	"regexp"

	"github.com/standardbeagle/serena-mcp/internal/errs"
)

// RenameSymbol replaces occurrences of oldName at word boundaries in a
// single file. If occurrence is non-nil, only that 1-based occurrence
// is replaced; otherwise every occurrence is. The file is rewritten
// only when at least one replacement happened. Returns the number of
// replacements made.
func RenameSymbol(path, oldName, newName string, caseSensitive bool, occurrence *int) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errs.NewEditorError("rename_symbol", path, err)
	}
	content := string(data)

	flags := ""
	if !caseSensitive {
		flags = "(?i)"
	}
	re, err := regexp.Compile(flags + `\b` + regexp.QuoteMeta(oldName) + `\b`)
	if err != nil {
		return 0, errs.NewEditorError("rename_symbol", path, err)
	}

	locs := re.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return 0, nil
	}

	var targets [][]int
	if occurrence != nil {
		n := *occurrence
		if n < 1 || n > len(locs) {
			return 0, errs.NewEditorError("rename_symbol", path, fmt.Errorf("occurrence %d out of bounds (found %d matches)", n, len(locs)))
		}
		targets = locs[n-1 : n]
	} else {
		targets = locs
	}

	var b []byte
	last := 0
	for _, loc := range targets {
		b = append(b, content[last:loc[0]]...)
		b = append(b, newName...)
		last = loc[1]
	}
	b = append(b, content[last:]...)

	if err := os.WriteFile(path, b, 0644); err != nil {
		return 0, errs.NewEditorError("rename_symbol", path, err)
	}
	return len(targets), nil
}
