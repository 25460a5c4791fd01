package toolset

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/standardbeagle/serena-mcp/internal/config"
	"github.com/standardbeagle/serena-mcp/internal/pathresolve"
	"github.com/standardbeagle/serena-mcp/internal/search"
)

// RegisterSearchTools wires search_pattern, applying ServerConfig's
// defaults and glob layers as the call's own baseline.
func RegisterSearchTools(r *Registry, cfg config.ServerConfig) {
	r.Register(NewTool("search_pattern", "Search a file or directory tree for a literal string or regex, with surrounding context lines.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":           {Type: "string", Description: "File or directory to search; defaults to the current directory"},
				"pattern":        {Type: "string"},
				"regex":          {Type: "boolean"},
				"case_sensitive": {Type: "boolean"},
				"max_results":    {Type: "integer"},
				"context_lines":  {Type: "integer"},
				"include_hidden": {Type: "boolean"},
				"include":        {Type: "array", Items: &jsonschema.Schema{Type: "string"}, Description: "Glob patterns a file must match at least one of"},
				"exclude":        {Type: "array", Items: &jsonschema.Schema{Type: "string"}, Description: "Glob patterns that exclude a file even if it matches include"},
			},
			Required: []string{"pattern"},
		},
		searchHandler(cfg)))
}

type searchArgs struct {
	Path          string   `json:"path"`
	Pattern       string   `json:"pattern"`
	Regex         bool     `json:"regex"`
	CaseSensitive *bool    `json:"case_sensitive"`
	MaxResults    int      `json:"max_results"`
	ContextLines  *int     `json:"context_lines"`
	IncludeHidden bool     `json:"include_hidden"`
	Include       []string `json:"include"`
	Exclude       []string `json:"exclude"`
}

func searchHandler(cfg config.ServerConfig) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args searchArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		path, err := pathresolve.ResolveOrDefault(args.Path)
		if err != nil {
			return nil, err
		}

		opts := search.Options{
			Regex:         args.Regex,
			CaseSensitive: true,
			MaxResults:    cfg.MaxResults,
			ContextLines:  cfg.ContextLines,
			IncludeHidden: args.IncludeHidden,
			Include:       append(append([]string{}, cfg.Include...), args.Include...),
			Exclude:       append(append([]string{}, cfg.Exclude...), args.Exclude...),
		}
		if args.CaseSensitive != nil {
			opts.CaseSensitive = *args.CaseSensitive
		}
		if args.MaxResults > 0 {
			opts.MaxResults = args.MaxResults
		}
		if args.ContextLines != nil {
			opts.ContextLines = *args.ContextLines
		}

		result, err := search.Search(path, args.Pattern, opts)
		if err != nil {
			return nil, err
		}
		return result, nil
	}
}
