package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/standardbeagle/serena-mcp/internal/errs"
	"github.com/standardbeagle/serena-mcp/internal/lineindex"
	"github.com/standardbeagle/serena-mcp/internal/symbols"
)

// ReplaceResult reports what replace_symbol_body actually did.
type ReplaceResult struct {
	Mode       string // "line_range" or "symbol"
	Path       string
	Symbol     string
	StartLine  int
	EndLine    int
	Occurrence int
}

// ReplaceSymbolBody operates in line-range mode when both startLine
// and endLine are non-nil, and symbol mode otherwise.
func ReplaceSymbolBody(path, symbol, newBody string, occurrence *int, caseSensitive bool, startLine, endLine *int) (ReplaceResult, error) {
	if startLine != nil && endLine != nil {
		return replaceLineRange(path, *startLine, *endLine, newBody)
	}
	return replaceBySymbol(path, symbol, newBody, occurrence, caseSensitive)
}

func replaceLineRange(path string, startLine, endLine int, newBody string) (ReplaceResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, err)
	}
	content := string(data)
	idx := lineindex.Build(content)

	if startLine > endLine {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("start_line %d is after end_line %d", startLine, endLine))
	}
	if startLine < 1 || endLine > idx.LineCount() {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("line range %d-%d is outside the file (%d lines)", startLine, endLine, idx.LineCount()))
	}

	rangeStart, _ := idx.Bounds(startLine - 1)
	_, rangeEnd := idx.Bounds(endLine - 1)

	replacement := newBody
	if !strings.HasSuffix(replacement, "\n") {
		replacement += "\n"
	}

	var out strings.Builder
	out.WriteString(content[:rangeStart])
	out.WriteString(replacement)
	out.WriteString(content[rangeEnd:])

	if err := os.WriteFile(path, []byte(out.String()), 0644); err != nil {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, err)
	}

	return ReplaceResult{Mode: "line_range", Path: path, StartLine: startLine, EndLine: endLine}, nil
}

func replaceBySymbol(path, symbol, newBody string, occurrence *int, caseSensitive bool) (ReplaceResult, error) {
	pf, ok, err := symbols.ParseFile(path)
	if err != nil {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, err)
	}
	if !ok {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("file is not a recognised source file"))
	}

	var candidates []symbols.FileSymbol
	for _, s := range pf.Symbols {
		if symbols.NameMatches(s.Name, symbol, true, caseSensitive) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("no symbol matching %q", symbol))
	}

	var chosen symbols.FileSymbol
	chosenOccurrence := 1
	if occurrence != nil {
		n := *occurrence
		if n < 1 || n > len(candidates) {
			return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("occurrence %d out of bounds (found %d candidates)", n, len(candidates)))
		}
		chosen = candidates[n-1]
		chosenOccurrence = n
	} else if len(candidates) > 1 {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("ambiguous: %d symbols match %q, supply occurrence", len(candidates), symbol))
	} else {
		chosen = candidates[0]
	}

	if chosen.Body.Kind == symbols.ExtentNone {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, fmt.Errorf("symbol %q has no replaceable body", chosen.Name))
	}

	formatted := formatBody(chosen.Body, newBody)

	var out strings.Builder
	out.WriteString(pf.Content[:chosen.Body.Start])
	out.WriteString(formatted)
	out.WriteString(pf.Content[chosen.Body.End:])

	if err := os.WriteFile(path, []byte(out.String()), 0644); err != nil {
		return ReplaceResult{}, errs.NewEditorError("replace_symbol_body", path, err)
	}

	return ReplaceResult{Mode: "symbol", Path: path, Symbol: chosen.Name, Occurrence: chosenOccurrence}, nil
}

func formatBody(extent symbols.BodyExtent, newBody string) string {
	if extent.Kind == symbols.ExtentBraces {
		return formatBraceBody(extent, newBody)
	}
	return formatIndentedBody(extent, newBody)
}

func formatBraceBody(extent symbols.BodyExtent, newBody string) string {
	trimmed := trimNewlines(newBody)
	if trimmed == "" {
		return "\n" + extent.BaseIndent
	}

	lines := strings.Split(trimmed, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
		if lines[i] == "" {
			lines[i] = extent.InnerIndent
		} else {
			lines[i] = extent.InnerIndent + lines[i]
		}
	}
	joined := strings.Join(lines, "\n")
	return "\n" + joined + "\n" + extent.BaseIndent
}

func formatIndentedBody(extent symbols.BodyExtent, newBody string) string {
	trimmed := trimNewlines(newBody)
	prefix := extent.BaseIndent + extent.IndentUnit
	if trimmed == "" {
		return prefix + "pass\n"
	}

	lines := strings.Split(trimmed, "\n")
	for i, l := range lines {
		lines[i] = prefix + strings.TrimRight(l, " \t\r")
	}
	return strings.Join(lines, "\n") + "\n"
}
