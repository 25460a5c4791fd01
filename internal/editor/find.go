// Package editor implements the five symbolic editor operations:
// find_symbol, find_referencing_symbols, get_symbols_overview,
// rename_symbol, and replace_symbol_body. All operate on absolute
// paths already resolved by internal/pathresolve.
package editor

import (
	"os"

	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/symbols"
	"github.com/standardbeagle/serena-mcp/internal/walk"
)

// FoundSymbol is one find_symbol hit.
type FoundSymbol struct {
	Name      string
	Kind      string
	Path      string
	Line      int
	Column    int
	Signature string
	Language  string
	Body      string
	HasBody   bool
}

// FindSymbol resolves path (a file or directory) and collects symbols
// matching name. If path is a directory, every recognised file under
// it is parsed, walking in lexical order with no symlink following and
// no hidden-path filtering, until maxResults matches accumulate.
func FindSymbol(path, name string, matchSubstring, caseSensitive, includeBody bool, kinds []string, maxResults int) ([]FoundSymbol, bool, error) {
	if maxResults <= 0 {
		maxResults = 50
	}

	var results []FoundSymbol
	capped := false

	visit := func(filePath string) error {
		if capped {
			return nil
		}
		pf, ok, err := symbols.ParseFile(filePath)
		if err != nil || !ok {
			return nil // skip unparseable/ignored files silently
		}
		tag, _ := lang.ForPath(filePath)
		for _, sym := range pf.Symbols {
			if capped {
				break
			}
			if !symbols.NameMatches(sym.Name, name, matchSubstring, caseSensitive) {
				continue
			}
			if len(kinds) > 0 && !containsKind(kinds, sym.Kind) {
				continue
			}
			found := FoundSymbol{
				Name:      sym.Name,
				Kind:      sym.Kind,
				Path:      filePath,
				Line:      sym.Line,
				Column:    sym.Column,
				Signature: sym.Signature,
				Language:  string(tag),
			}
			if includeBody && sym.Body.Kind != symbols.ExtentNone {
				found.Body = trimNewlines(pf.Content[sym.Body.Start:sym.Body.End])
				found.HasBody = true
			}
			results = append(results, found)
			if len(results) >= maxResults {
				capped = true
			}
		}
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}
	if !info.IsDir() {
		if err := visit(path); err != nil {
			return nil, false, err
		}
		return results, capped, nil
	}

	err = walk.Walk(path, walk.Options{IncludeHidden: true}, func(filePath string, depth int) error {
		if capped {
			return nil
		}
		return visit(filePath)
	})
	return results, capped, err
}

func containsKind(kinds []string, kind string) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func trimNewlines(s string) string {
	start, end := 0, len(s)
	for start < end && s[start] == '\n' {
		start++
	}
	for end > start && s[end-1] == '\n' {
		end--
	}
	return s[start:end]
}
