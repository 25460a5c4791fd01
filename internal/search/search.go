// Package search implements search_pattern: literal or regex matching
// over a file tree with context lines and a result cap.
package search

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/standardbeagle/serena-mcp/internal/lineindex"
	"github.com/standardbeagle/serena-mcp/internal/walk"
)

// Hit is one match.
type Hit struct {
	Path    string
	Line    int
	Column  int
	Preview string
	Before  []string
	After   []string
}

// Result is the full response to a search_pattern call.
type Result struct {
	Root      string
	Pattern   string
	Regex     bool
	CaseSens  bool
	Hits      []Hit
	Truncated bool
}

// Options configures a Search call; zero values are the tool's
// documented defaults except where noted.
type Options struct {
	Regex         bool
	CaseSensitive bool // default true
	MaxResults    int  // default 50
	ContextLines  int  // default 2
	IncludeHidden bool

	// Include/Exclude are optional doublestar glob layers from
	// ServerConfig, applied in addition to the fixed hidden-path rule.
	// Matched against the path relative to root. A nil/empty Include
	// matches everything; a match in Exclude always wins.
	Include []string
	Exclude []string
}

// Search walks root for pattern per opts.
func Search(root, pattern string, opts Options) (Result, error) {
	if opts.MaxResults <= 0 {
		opts.MaxResults = 50
	}

	res := Result{Root: root, Pattern: pattern, Regex: opts.Regex, CaseSens: opts.CaseSensitive}

	var re *regexp.Regexp
	if opts.Regex {
		flags := ""
		if !opts.CaseSensitive {
			flags = "(?i)"
		}
		compiled, err := regexp.Compile(flags + pattern)
		if err != nil {
			return res, err
		}
		re = compiled
	}

	needle := pattern
	if !opts.Regex && !opts.CaseSensitive {
		needle = strings.ToLower(pattern)
	}

	err := walk.Walk(root, walk.Options{IncludeHidden: opts.IncludeHidden}, func(path string, depth int) error {
		if res.Truncated {
			return nil
		}
		if !matchesGlobs(root, path, opts.Include, opts.Exclude) {
			return nil
		}
		data, readErr := os.ReadFile(path)
		if readErr != nil || !utf8.Valid(data) {
			return nil
		}
		content := string(data)
		idx := lineindex.Build(content)

		for i := 0; i < idx.LineCount(); i++ {
			if res.Truncated {
				break
			}
			text := idx.Text(i)
			var cols []int
			if opts.Regex {
				cols = regexColumns(re, text)
			} else {
				cols = literalColumns(text, needle, opts.CaseSensitive)
			}
			for _, col := range cols {
				res.Hits = append(res.Hits, Hit{
					Path:    path,
					Line:    i + 1,
					Column:  col,
					Preview: strings.TrimSpace(text),
					Before:  contextBefore(idx, i, opts.ContextLines),
					After:   contextAfter(idx, i, opts.ContextLines),
				})
				if len(res.Hits) >= opts.MaxResults {
					res.Truncated = true
					break
				}
			}
		}
		return nil
	})

	return res, err
}

func matchesGlobs(root, path string, include, exclude []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, pattern := range include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

func regexColumns(re *regexp.Regexp, text string) []int {
	locs := re.FindAllStringIndex(text, -1)
	cols := make([]int, len(locs))
	for i, loc := range locs {
		cols[i] = utf8.RuneCountInString(text[:loc[0]]) + 1
	}
	return cols
}

// literalColumns finds every non-overlapping occurrence of needle in
// text. When caseSensitive is false, needle is already lowercased;
// text is lowercased for matching only, columns are reported against
// the original.
func literalColumns(text, needle string, caseSensitive bool) []int {
	if needle == "" {
		return nil
	}
	hay := text
	if !caseSensitive {
		hay = strings.ToLower(text)
	}

	var cols []int
	start := 0
	for {
		i := strings.Index(hay[start:], needle)
		if i < 0 {
			break
		}
		pos := start + i
		cols = append(cols, utf8.RuneCountInString(text[:pos])+1)
		start = pos + len(needle)
	}
	return cols
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
