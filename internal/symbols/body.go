package symbols

import (
	"strings"

	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/lineindex"
)

const fallbackIndentUnit = "    "

// locateBody finds the BodyExtent of a declaration starting at declLine
// (0-based). scanFrom is the byte offset right after the whole pattern
// match (the name, plus the opening '(' or '=>' for patterns that match
// it) — for brace
// languages the opening brace is usually on the same line as the
// declaration, so scanning starts there rather than on the next line.
func locateBody(content string, idx *lineindex.Index, tag lang.Tag, declLine, scanFrom int, declIndent string) BodyExtent {
	if tag == lang.Python {
		return locateIndentedBody(content, idx, declLine, declIndent)
	}
	return locateBracedBody(content, idx, scanFrom, declIndent)
}

func locateBracedBody(content string, idx *lineindex.Index, scanFrom int, declIndent string) BodyExtent {
	start, end, ok := findBraceBody(content, scanFrom)
	if !ok {
		return BodyExtent{Kind: ExtentNone}
	}

	inner := firstNonBlankIndentBetween(content, idx, start, end)
	if inner == "" {
		inner = declIndent + fallbackIndentUnit
	}

	return BodyExtent{
		Kind:        ExtentBraces,
		Start:       start,
		End:         end,
		BaseIndent:  declIndent,
		InnerIndent: inner,
	}
}

// findBraceBody scans content from the given offset for the first '{'
// not inside a string literal. It returns the byte just after that
// brace and the byte of its matching '}'. A ';' encountered at depth
// zero before any '{' means the declaration has no body.
func findBraceBody(content string, from int) (start, end int, ok bool) {
	n := len(content)
	i := from
	for i < n {
		c := content[i]
		switch c {
		case '"', '\'', '`':
			i = skipStringLiteral(content, i)
			continue
		case ';':
			return 0, 0, false
		case '{':
			return scanBraceDepth(content, i)
		}
		i++
	}
	return 0, 0, false
}

func scanBraceDepth(content string, openAt int) (start, end int, ok bool) {
	n := len(content)
	start = openAt + 1
	depth := 1
	j := start
	for j < n {
		c := content[j]
		switch c {
		case '"', '\'', '`':
			j = skipStringLiteral(content, j)
			continue
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return start, j, true
			}
		}
		j++
	}
	return 0, 0, false
}

// skipStringLiteral returns the offset just past the string literal
// opening at content[i], honoring '\' escapes.
func skipStringLiteral(content string, i int) int {
	delim := content[i]
	n := len(content)
	j := i + 1
	for j < n {
		switch content[j] {
		case '\\':
			j += 2
			continue
		case delim:
			return j + 1
		}
		j++
	}
	return n
}

// firstNonBlankIndentBetween returns the leading whitespace of the
// first non-blank line whose text lies strictly between byte offsets
// start and end.
func firstNonBlankIndentBetween(content string, idx *lineindex.Index, start, end int) string {
	line := idx.LineOfOffset(start)
	if s, _ := idx.Bounds(line); s < start {
		line++
	}
	for line < idx.LineCount() {
		lineStart, _ := idx.Bounds(line)
		if lineStart >= end {
			break
		}
		text := idx.Text(line)
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed != "" {
			return text[:len(text)-len(trimmed)]
		}
		line++
	}
	return ""
}

func locateIndentedBody(content string, idx *lineindex.Index, declLine int, declIndent string) BodyExtent {
	declIndentLen := len(declIndent)
	n := idx.LineCount()

	start, end := -1, -1
	i := declLine + 1
	for i < n {
		text := idx.Text(i)
		trimmed := strings.TrimLeft(text, " \t")
		if trimmed == "" {
			i++
			continue
		}
		indentLen := len(text) - len(trimmed)
		if start == -1 {
			if indentLen <= declIndentLen {
				return BodyExtent{Kind: ExtentNone}
			}
			start = i
			end = i
			i++
			continue
		}
		if indentLen <= declIndentLen {
			break
		}
		end = i
		i++
	}
	if start == -1 {
		return BodyExtent{Kind: ExtentNone}
	}

	firstText := idx.Text(start)
	firstIndent := firstText[:len(firstText)-len(strings.TrimLeft(firstText, " \t"))]
	unit := fallbackIndentUnit
	if len(firstIndent) > declIndentLen {
		unit = firstIndent[declIndentLen:]
	}

	startByte, _ := idx.Bounds(start)
	_, endBoundary := idx.Bounds(end)

	// End is used as an exclusive slice boundary throughout this
	// package (consistent with Braces, where End already points one
	// past the body). It covers through the last body line's
	// terminating newline, if any.
	return BodyExtent{
		Kind:       ExtentIndented,
		Start:      startByte,
		End:        endBoundary,
		BaseIndent: declIndent,
		IndentUnit: unit,
	}
}
