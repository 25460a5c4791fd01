package symbols

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/lineindex"
)

// pattern is one anchored line-start regex paired with the kind label
// it produces. A pattern with a "kind" capture group uses the matched
// text as the kind instead of the fixed Kind field.
type pattern struct {
	re   *regexp.Regexp
	kind string
}

// Patterns are compiled once per process at package init and reused
// across every request; only per-request user regexes (search, rename)
// are compiled per call.
var tables = map[lang.Tag][]pattern{
	lang.Rust: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:pub(?:\([^)]*\))?\s+)?(?:async\s+)?fn\s+(?P<name>[A-Za-z_]\w*)`), "function"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:pub(?:\([^)]*\))?\s+)?(?P<kind>struct|enum|trait)\s+(?P<name>[A-Za-z_]\w*)`), ""},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)impl(?:<[^>]*>)?\s+(?:[A-Za-z_][\w:<>, ]*\s+for\s+)?(?P<name>[A-Za-z_][\w:]*)`), "impl"},
	},
	lang.TypeScript: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:export\s+)?function\s+(?P<name>[A-Za-z_$]\w*)`), "function"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:export\s+)?class\s+(?P<name>[A-Za-z_$]\w*)`), "class"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:export\s+)?(?:const|let|var)\s+(?P<name>[A-Za-z_$]\w*)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`), "function"},
	},
	lang.JavaScript: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:export\s+)?function\s+(?P<name>[A-Za-z_$]\w*)`), "function"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:export\s+)?class\s+(?P<name>[A-Za-z_$]\w*)`), "class"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:export\s+)?(?:const|let|var)\s+(?P<name>[A-Za-z_$]\w*)\s*=\s*(?:async\s+)?\([^)]*\)\s*=>`), "function"},
	},
	lang.Go: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)func\s+(?:\([^)]*\)\s+)?(?P<name>[A-Za-z_]\w*)\s*\(`), "function"},
	},
	lang.JavaFamily: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:(?:public|private|protected|static|final|abstract|sealed|internal|open)\s+)*(?P<kind>class|interface|record|enum)\s+(?P<name>[A-Za-z_]\w*)`), ""},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:(?:public|private|protected|static|final|abstract|synchronized|override)\s+)+[\w<>\[\],.]+\s+(?P<name>[A-Za-z_]\w*)\s*\(`), "method"},
	},
	lang.CSharp: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:(?:public|private|protected|internal|static|sealed|abstract|partial|virtual|override)\s+)*(?P<kind>class|interface|record|enum|struct)\s+(?P<name>[A-Za-z_]\w*)`), ""},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:(?:public|private|protected|internal|static|virtual|override|async)\s+)+[\w<>\[\],.?]+\s+(?P<name>[A-Za-z_]\w*)\s*\(`), "method"},
	},
	lang.Python: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:async\s+)?def\s+(?P<name>[A-Za-z_]\w*)\s*\(`), "function"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)class\s+(?P<name>[A-Za-z_]\w*)`), "class"},
	},
	lang.Generic: {
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:function|fn)\s+(?P<name>[A-Za-z_]\w*)`), "function"},
		{regexp.MustCompile(`(?m)^(?P<indent>[ \t]*)(?:class|struct|enum|trait)\s+(?P<name>[A-Za-z_]\w*)`), "type"},
	},
}

// rawSymbol carries the byte offset right after the whole pattern match
// (the name, or a little past it for patterns that also match the
// opening '(' or '=>'), which
// is where body location starts scanning from — on the same line as
// the declaration for brace languages (e.g. "fn greet() {").
type rawSymbol struct {
	FileSymbol
	matchEnd int
}

// extractSymbols runs every pattern registered for tag against content,
// returning raw hits sorted by line number (stable on ties, by
// insertion order — i.e. pattern order then match order).
func extractSymbols(content string, tag lang.Tag, idx *lineindex.Index) []rawSymbol {
	pats, ok := tables[tag]
	if !ok {
		return nil
	}

	var out []rawSymbol
	for _, p := range pats {
		names := p.re.SubexpNames()
		matches := p.re.FindAllStringSubmatchIndex(content, -1)
		for _, m := range matches {
			indent := groupText(content, names, m, "indent")
			name := groupText(content, names, m, "name")
			if name == "" {
				continue
			}
			kind := p.kind
			if kind == "" {
				kind = groupText(content, names, m, "kind")
			}

			matchStart, matchEnd := m[0], m[1]
			line := idx.LineOfOffset(matchStart)
			signature := strings.TrimRight(idx.Text(line), " \t\r")
			column := utf8.RuneCountInString(indent) + 1

			out = append(out, rawSymbol{
				FileSymbol: FileSymbol{
					Name:      name,
					Kind:      kind,
					Signature: signature,
					Line:      line + 1,
					Column:    column,
				},
				matchEnd: matchEnd,
			})
		}
	}

	// Stable sort by line, preserving insertion order on ties.
	sortByLineStable(out)
	return out
}

func groupText(content string, names []string, m []int, group string) string {
	for i, n := range names {
		if n != group {
			continue
		}
		s, e := m[2*i], m[2*i+1]
		if s < 0 || e < 0 {
			return ""
		}
		return content[s:e]
	}
	return ""
}

func sortByLineStable(symbols []rawSymbol) {
	// insertion sort: stable, and cheap for the handful of symbols a
	// typical file produces.
	for i := 1; i < len(symbols); i++ {
		j := i
		for j > 0 && symbols[j-1].Line > symbols[j].Line {
			symbols[j-1], symbols[j] = symbols[j], symbols[j-1]
			j--
		}
	}
}
