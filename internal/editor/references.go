package editor

import (
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/serena-mcp/internal/lineindex"
	"github.com/standardbeagle/serena-mcp/internal/walk"
)

// Reference is one find_referencing_symbols hit.
type Reference struct {
	Path    string
	Line    int
	Column  int
	Preview string
	Before  []string
	After   []string
}

// FindReferencingSymbols searches path (a file or a directory tree,
// hidden entries excluded unless includeHidden) for word-boundary
// matches of name. contextLines is nil-defaulted to 2 lines of
// surrounding context; pass a non-nil 0 to request none.
func FindReferencingSymbols(path, name string, caseSensitive bool, maxResults int, contextLines *int, includeHidden bool) ([]Reference, bool, error) {
	if maxResults <= 0 {
		maxResults = 50
	}
	lines := 2
	if contextLines != nil {
		lines = *contextLines
	}
	if lines < 0 {
		lines = 0
	}

	pattern := `\b` + regexp.QuoteMeta(name) + `\b`
	flags := ""
	if !caseSensitive {
		flags = "(?i)"
	}
	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return nil, false, err
	}

	var results []Reference
	capped := false

	visit := func(filePath string) error {
		if capped {
			return nil
		}
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil
		}
		if !utf8.Valid(data) {
			return nil
		}
		content := string(data)
		idx := lineindex.Build(content)

		for i := 0; i < idx.LineCount(); i++ {
			if capped {
				break
			}
			text := idx.Text(i)
			locs := re.FindAllStringIndex(text, -1)
			for _, loc := range locs {
				col := utf8.RuneCountInString(text[:loc[0]]) + 1
				results = append(results, Reference{
					Path:    filePath,
					Line:    i + 1,
					Column:  col,
					Preview: strings.TrimSpace(text),
					Before:  contextBefore(idx, i, lines),
					After:   contextAfter(idx, i, lines),
				})
				if len(results) >= maxResults {
					capped = true
					break
				}
			}
		}
		return nil
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, false, statErr
	}
	if !info.IsDir() {
		if err := visit(path); err != nil {
			return nil, false, err
		}
		return results, capped, nil
	}

	err = walk.Walk(path, walk.Options{IncludeHidden: includeHidden}, func(filePath string, depth int) error {
		if capped {
			return nil
		}
		return visit(filePath)
	})
	return results, capped, err
}

func contextBefore(idx *lineindex.Index, line, n int) []string {
	var out []string
	for i := line - n; i < line; i++ {
		if i < 0 {
			continue
		}
		out = append(out, idx.Text(i))
	}
	return out
}

func contextAfter(idx *lineindex.Index, line, n int) []string {
	var out []string
	for i := line + 1; i <= line+n; i++ {
		if i >= idx.LineCount() {
			break
		}
		out = append(out, idx.Text(i))
	}
	return out
}
