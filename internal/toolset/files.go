package toolset

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/standardbeagle/serena-mcp/internal/fsops"
	"github.com/standardbeagle/serena-mcp/internal/pathresolve"
)

// RegisterFileTools wires read_file, write_file, and list_dir.
func RegisterFileTools(r *Registry) {
	r.Register(NewTool("read_file", "Read a file's contents, optionally truncated to a byte limit.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":      {Type: "string", Description: "File path, absolute or relative to the current directory"},
				"max_bytes": {Type: "integer", Description: "Soft truncation limit in bytes; 0 or omitted means unlimited"},
			},
			Required: []string{"path"},
		},
		handleReadFile))

	r.Register(NewTool("write_file", "Write or append content to a file.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":                     {Type: "string"},
				"content":                  {Type: "string"},
				"append":                   {Type: "boolean", Description: "Append instead of overwrite"},
				"create_dirs":              {Type: "boolean", Description: "Create missing parent directories"},
				"ensure_trailing_newline":  {Type: "boolean", Description: "Append a newline if content doesn't already end with one"},
			},
			Required: []string{"path", "content"},
		},
		handleWriteFile))

	r.Register(NewTool("list_dir", "List the immediate children of a directory.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"path":           {Type: "string"},
				"max_entries":    {Type: "integer"},
				"include_hidden": {Type: "boolean"},
			},
		},
		handleListDir))
}

type readFileArgs struct {
	Path     string `json:"path"`
	MaxBytes int    `json:"max_bytes"`
}

func handleReadFile(arguments json.RawMessage) (interface{}, error) {
	var args readFileArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.Resolve(args.Path)
	if err != nil {
		return nil, err
	}
	content, truncated, err := fsops.ReadFile(path, args.MaxBytes)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"content": content, "truncated": truncated}, nil
}

type writeFileArgs struct {
	Path                  string `json:"path"`
	Content               string `json:"content"`
	Append                bool   `json:"append"`
	CreateDirs            bool   `json:"create_dirs"`
	EnsureTrailingNewline bool   `json:"ensure_trailing_newline"`
}

func handleWriteFile(arguments json.RawMessage) (interface{}, error) {
	var args writeFileArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.Resolve(args.Path)
	if err != nil {
		return nil, err
	}
	if err := fsops.WriteFile(path, args.Content, args.Append, args.CreateDirs, args.EnsureTrailingNewline); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": path}, nil
}

type listDirArgs struct {
	Path          string `json:"path"`
	MaxEntries    int    `json:"max_entries"`
	IncludeHidden bool   `json:"include_hidden"`
}

func handleListDir(arguments json.RawMessage) (interface{}, error) {
	var args listDirArgs
	if err := json.Unmarshal(arguments, &args); err != nil {
		return nil, err
	}
	path, err := pathresolve.ResolveOrDefault(args.Path)
	if err != nil {
		return nil, err
	}
	entries, err := fsops.ListDir(path, args.MaxEntries, args.IncludeHidden)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": path, "entries": entries}, nil
}
