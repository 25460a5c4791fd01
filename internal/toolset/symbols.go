package toolset

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/standardbeagle/serena-mcp/internal/editor"
	"github.com/standardbeagle/serena-mcp/internal/pathresolve"
)

// RegisterSymbolTools wires the five symbolic editor operations:
// find_symbol, find_referencing_symbols, get_symbols_overview,
// rename_symbol, replace_symbol_body.
func RegisterSymbolTools(r *Registry) {
	r.Register(NewTool("find_symbol", "Find symbol definitions by name in a file or directory tree.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":            {Type: "string"},
				"name":            {Type: "string"},
				"match_substring": {Type: "boolean", Description: "Match name as a substring; defaults to true"},
				"case_sensitive":  {Type: "boolean"},
				"include_body":    {Type: "boolean"},
				"kinds":           {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				"max_results":     {Type: "integer"},
			},
			Required: []string{"name"},
		},
		handleFindSymbol))

	r.Register(NewTool("find_referencing_symbols", "Find word-boundary references to a name in a file or directory tree.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":           {Type: "string"},
				"name":           {Type: "string"},
				"case_sensitive": {Type: "boolean"},
				"max_results":    {Type: "integer"},
				"context_lines":  {Type: "integer", Description: "Lines of surrounding context; defaults to 2"},
				"include_hidden": {Type: "boolean"},
			},
			Required: []string{"name"},
		},
		handleFindReferencingSymbols))

	r.Register(NewTool("get_symbols_overview", "List the symbols of a file, or a sample per file in a directory.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":      {Type: "string"},
				"max_files": {Type: "integer"},
			},
			Required: []string{"path"},
		},
		handleGetSymbolsOverview))

	r.Register(NewTool("rename_symbol", "Rename every word-boundary occurrence of a name in a file, or just one occurrence.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":           {Type: "string"},
				"old_name":       {Type: "string"},
				"new_name":       {Type: "string"},
				"case_sensitive": {Type: "boolean", Description: "Match old_name case-sensitively; defaults to true"},
				"occurrence":     {Type: "integer", Description: "1-based occurrence to rename; omit to rename all"},
			},
			Required: []string{"path", "old_name", "new_name"},
		},
		handleRenameSymbol))

	r.Register(NewTool("replace_symbol_body", "Replace a symbol's body (by name, or by an explicit line range) with new text.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":           {Type: "string"},
				"symbol":         {Type: "string"},
				"new_body":       {Type: "string"},
				"occurrence":     {Type: "integer"},
				"case_sensitive": {Type: "boolean", Description: "Match symbol case-sensitively; defaults to true"},
				"start_line":     {Type: "integer"},
				"end_line":       {Type: "integer"},
			},
			Required: []string{"path", "new_body"},
		},
		handleReplaceSymbolBody))
}

type findSymbolArgs struct {
	Path           string   `json:"path"`
	Name           string   `json:"name"`
	MatchSubstring *bool    `json:"match_substring"`
	CaseSensitive  bool     `json:"case_sensitive"`
	IncludeBody    bool     `json:"include_body"`
	Kinds          []string `json:"kinds"`
	MaxResults     int      `json:"max_results"`
}

func handleFindSymbol(arguments json.RawMessage) (interface{}, error) {
	var args findSymbolArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.ResolveOrDefault(args.Path)
	if err != nil {
		return nil, err
	}
	matchSubstring := true
	if args.MatchSubstring != nil {
		matchSubstring = *args.MatchSubstring
	}
	symbols, truncated, err := editor.FindSymbol(path, args.Name, matchSubstring, args.CaseSensitive, args.IncludeBody, args.Kinds, args.MaxResults)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"symbols": symbols, "truncated": truncated}, nil
}

type findReferencingArgs struct {
	Path          string `json:"path"`
	Name          string `json:"name"`
	CaseSensitive bool   `json:"case_sensitive"`
	MaxResults    int    `json:"max_results"`
	ContextLines  *int   `json:"context_lines"`
	IncludeHidden bool   `json:"include_hidden"`
}

func handleFindReferencingSymbols(arguments json.RawMessage) (interface{}, error) {
	var args findReferencingArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.ResolveOrDefault(args.Path)
	if err != nil {
		return nil, err
	}
	refs, truncated, err := editor.FindReferencingSymbols(path, args.Name, args.CaseSensitive, args.MaxResults, args.ContextLines, args.IncludeHidden)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"references": refs, "truncated": truncated}, nil
}

type overviewArgs struct {
	Path     string `json:"path"`
	MaxFiles int    `json:"max_files"`
}

func handleGetSymbolsOverview(arguments json.RawMessage) (interface{}, error) {
	var args overviewArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.ResolveOrDefault(args.Path)
	if err != nil {
		return nil, err
	}
	file, files, err := editor.GetSymbolsOverview(path, args.MaxFiles)
	if err != nil {
		return nil, err
	}
	if file != nil {
		return map[string]interface{}{"file": file}, nil
	}
	return map[string]interface{}{"files": files}, nil
}

type renameArgs struct {
	Path          string `json:"path"`
	OldName       string `json:"old_name"`
	NewName       string `json:"new_name"`
	CaseSensitive *bool  `json:"case_sensitive"`
	Occurrence    *int   `json:"occurrence"`
}

func handleRenameSymbol(arguments json.RawMessage) (interface{}, error) {
	var args renameArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.Resolve(args.Path)
	if err != nil {
		return nil, err
	}
	caseSensitive := true
	if args.CaseSensitive != nil {
		caseSensitive = *args.CaseSensitive
	}
	count, err := editor.RenameSymbol(path, args.OldName, args.NewName, caseSensitive, args.Occurrence)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"replacements": count}, nil
}

type replaceArgs struct {
	Path          string `json:"path"`
	Symbol        string `json:"symbol"`
	NewBody       string `json:"new_body"`
	Occurrence    *int   `json:"occurrence"`
	CaseSensitive *bool  `json:"case_sensitive"`
	StartLine     *int   `json:"start_line"`
	EndLine       *int   `json:"end_line"`
}

func handleReplaceSymbolBody(arguments json.RawMessage) (interface{}, error) {
	var args replaceArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.Resolve(args.Path)
	if err != nil {
		return nil, err
	}
	caseSensitive := true
	if args.CaseSensitive != nil {
		caseSensitive = *args.CaseSensitive
	}
	result, err := editor.ReplaceSymbolBody(path, args.Symbol, args.NewBody, args.Occurrence, caseSensitive, args.StartLine, args.EndLine)
	if err != nil {
		return nil, err
	}
	return result, nil
}
