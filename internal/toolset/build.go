package toolset

import (
	"time"

	"github.com/standardbeagle/serena-mcp/internal/config"
	"github.com/standardbeagle/serena-mcp/internal/memory"
)

// Build constructs a Registry with every tool family wired in against
// cfg.
func Build(cfg config.ServerConfig) *Registry {
	registry := NewRegistry()
	RegisterFileTools(registry)
	RegisterSearchTools(registry, cfg)
	RegisterSymbolTools(registry)
	RegisterWorkflowTools(registry, cfg)
	RegisterMemoryTools(registry, memory.New(time.Now))
	return registry
}
