// Package toolset implements the Tool/Registry pair the JSON-RPC layer
// dispatches tools.call through, and wires the five families of tool
// handlers (files, search, symbols, workflow, memory) with
// google/jsonschema-go descriptors for tools.list.
package toolset

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/google/jsonschema-go/jsonschema"
)

// Handler executes one tool call against raw JSON arguments and
// returns a JSON-serializable result.
type Handler func(arguments json.RawMessage) (interface{}, error)

// Tool pairs a handler with the metadata exposed via tools.list.
type Tool struct {
	name        string
	description string
	schema      *jsonschema.Schema
	handler     Handler
}

// NewTool builds a Tool. schema may be nil for a tool that takes no
// arguments.
func NewTool(name, description string, schema *jsonschema.Schema, handler Handler) Tool {
	return Tool{name: name, description: description, schema: schema, handler: handler}
}

func (t Tool) Name() string { return t.name }

func (t Tool) Call(arguments json.RawMessage) (interface{}, error) {
	return t.handler(arguments)
}

// Descriptor is the JSON shape returned by tools.list.
type Descriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

func (t Tool) Descriptor() Descriptor {
	return Descriptor{Name: t.name, Description: t.description, Parameters: t.schema}
}

// Registry holds every registered tool, keyed by name.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds or replaces a tool.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Descriptors returns every tool's descriptor, sorted by name for
// deterministic tools.list output.
func (r *Registry) Descriptors() []Descriptor {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Descriptor, len(names))
	for i, name := range names {
		out[i] = r.tools[name].Descriptor()
	}
	return out
}

// Call dispatches to a registered tool by name.
func (r *Registry) Call(name string, arguments json.RawMessage) (interface{}, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
	return tool.Call(arguments)
}
