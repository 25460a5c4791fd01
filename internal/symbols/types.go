// Package symbols extracts definitions (top-level and nested) from source files using
// per-language regex tables, and locates the byte range of a definition's
// body so callers can read or replace it without a real parser.
package symbols

import (
	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/lineindex"
)

// FileSymbol is one definition found in a file.
type FileSymbol struct {
	Name      string
	Kind      string
	Signature string
	Line      int // 1-based
	Column    int // 1-based, counted in Unicode scalar values
	Body      BodyExtent
}

// ExtentKind distinguishes the three shapes a BodyExtent can take.
type ExtentKind int

const (
	ExtentNone ExtentKind = iota
	ExtentBraces
	ExtentIndented
)

// BodyExtent is a tagged union over the three ways a definition's body
// can be located: brace-delimited, indentation-delimited, or absent.
// Only the fields relevant to Kind are meaningful.
type BodyExtent struct {
	Kind ExtentKind

	// Braces: Start is the byte immediately after '{', End is the byte
	// of the matching '}'. Indented: Start is the first byte of the
	// body's first line and End is one past the last body line's
	// terminator (End exclusive, like Braces).
	Start int
	End   int

	BaseIndent  string // declaration line's leading whitespace
	InnerIndent string // Braces only
	IndentUnit  string // Indented only
}

// ParsedFile is the result of parsing one file: its content, a line
// index over that content, and its symbols sorted by line.
type ParsedFile struct {
	Content string
	Index   *lineindex.Index
	Symbols []FileSymbol
	Lang    lang.Tag
}
