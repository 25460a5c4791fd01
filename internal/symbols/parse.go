package symbols

import (
	"os"
	"unicode/utf8"

	"github.com/standardbeagle/serena-mcp/internal/errs"
	"github.com/standardbeagle/serena-mcp/internal/lang"
	"github.com/standardbeagle/serena-mcp/internal/lineindex"
)

// MaxFileSize is the per-file cap above which the extractor silently
// ignores a file.
const MaxFileSize = 2 * 1024 * 1024

// ParseFile reads and parses path. ok is false when the file should be
// silently skipped (unrecognised extension, oversized, not valid
// UTF-8) rather than failing the whole request. err is non-nil only
// for genuine I/O failures.
func ParseFile(path string) (parsed *ParsedFile, ok bool, err error) {
	tag, recognised := lang.ForPath(path)
	if !recognised {
		return nil, false, nil
	}

	info, statErr := os.Stat(path)
	if statErr != nil {
		return nil, false, errs.NewExtractError(path, statErr)
	}
	if info.Size() > MaxFileSize {
		return nil, false, nil
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, false, errs.NewExtractError(path, readErr)
	}
	if !utf8.Valid(data) {
		return nil, false, nil
	}

	content := string(data)
	return ParseContent(content, tag), true, nil
}

// ParseContent parses already-loaded source text for the given
// language tag, without touching the filesystem.
func ParseContent(content string, tag lang.Tag) *ParsedFile {
	idx := lineindex.Build(content)
	raw := extractSymbols(content, tag, idx)
	syms := make([]FileSymbol, len(raw))
	for i, r := range raw {
		declIndent := leadingWhitespace(idx.Text(r.Line - 1))
		r.Body = locateBody(content, idx, tag, r.Line-1, r.matchEnd, declIndent)
		syms[i] = r.FileSymbol
	}

	return &ParsedFile{
		Content: content,
		Index:   idx,
		Symbols: syms,
		Lang:    tag,
	}
}

func leadingWhitespace(line string) string {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}
