package toolset

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/standardbeagle/serena-mcp/internal/memory"
)

// RegisterMemoryTools wires write_memory, read_memory, list_memories,
// and delete_memory against a shared Store.
func RegisterMemoryTools(r *Registry, store *memory.Store) {
	r.Register(NewTool("write_memory", "Create or update a memory entry.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id":        {Type: "string"},
				"namespace": {Type: "string"},
				"content":   {Type: "string"},
				"tags":      {Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				"metadata":  {Type: "object"},
			},
			Required: []string{"id", "namespace", "content"},
		},
		writeMemoryHandler(store)))

	r.Register(NewTool("read_memory", "Read one memory entry by id and namespace.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id":        {Type: "string"},
				"namespace": {Type: "string"},
			},
			Required: []string{"id", "namespace"},
		},
		readMemoryHandler(store)))

	r.Register(NewTool("list_memories", "List memory entries, optionally filtered to one namespace.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"namespace": {Type: "string"},
			},
		},
		listMemoriesHandler(store)))

	r.Register(NewTool("delete_memory", "Delete one memory entry by id and namespace.",
		&jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"id":        {Type: "string"},
				"namespace": {Type: "string"},
			},
			Required: []string{"id", "namespace"},
		},
		deleteMemoryHandler(store)))
}

type writeMemoryArgs struct {
	ID        string                 `json:"id"`
	Namespace string                 `json:"namespace"`
	Content   string                 `json:"content"`
	Tags      []string               `json:"tags"`
	Metadata  map[string]interface{} `json:"metadata"`
}

func writeMemoryHandler(store *memory.Store) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args writeMemoryArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		return store.Write(args.ID, args.Namespace, args.Content, args.Tags, args.Metadata)
	}
}

type readMemoryArgs struct {
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
}

func readMemoryHandler(store *memory.Store) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args readMemoryArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		return store.Read(args.ID, args.Namespace)
	}
}

type listMemoriesArgs struct {
	Namespace string `json:"namespace"`
}

func listMemoriesHandler(store *memory.Store) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args listMemoriesArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		entries, err := store.List(args.Namespace)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"entries": entries}, nil
	}
}

type deleteMemoryArgs struct {
	ID        string `json:"id"`
	Namespace string `json:"namespace"`
}

func deleteMemoryHandler(store *memory.Store) Handler {
	return func(arguments json.RawMessage) (interface{}, error) {
		var args deleteMemoryArgs
		if err := json.Unmarshal(arguments, &args); err != nil {
			return nil, err
		}
		deleted, err := store.Delete(args.ID, args.Namespace)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"deleted": deleted}, nil
	}
}

