// Package config loads ServerConfig from KDL documents, following the
// same node-walking approach the indexer's KDL loader uses: parse with
// kdl-go, switch on node name, pull typed arguments with small
// first*Arg helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// ServerConfig holds the tunables search_pattern and the onboarding
// tools consult: search_pattern's result cap and context-line count,
// onboarding summary caps, and glob layers layered on top of
// search_pattern's fixed hidden-path rule.
type ServerConfig struct {
	MaxResults     int
	ContextLines   int
	MaxDirectories int
	MaxLanguages   int
	Include        []string
	Exclude        []string
}

// Default returns the documented defaults, used when no config file is
// present at either load location.
func Default() ServerConfig {
	return ServerConfig{
		MaxResults:     50,
		ContextLines:   2,
		MaxDirectories: 6,
		MaxLanguages:   6,
	}
}

// Load merges the user config (~/.serena-mcp.kdl) and the project
// config onto the defaults, in that order, so a project file overrides
// a user file. projectConfigPath defaults to
// "<projectRoot>/.serena-mcp.kdl" when empty (the --config flag
// supplies an explicit override). A missing file at either location is
// not an error; a malformed file is.
func Load(projectRoot string, projectConfigPath ...string) (ServerConfig, error) {
	cfg := Default()

	home, err := os.UserHomeDir()
	if err == nil {
		if err := ApplyFile(&cfg, filepath.Join(home, ".serena-mcp.kdl")); err != nil {
			return cfg, err
		}
	}

	path := filepath.Join(projectRoot, ".serena-mcp.kdl")
	if len(projectConfigPath) > 0 && projectConfigPath[0] != "" {
		path = projectConfigPath[0]
	}
	if err := ApplyFile(&cfg, path); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ApplyFile merges one KDL config file onto cfg. A missing file is not
// an error.
func ApplyFile(cfg *ServerConfig, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	return parseInto(cfg, string(content), path)
}

func parseInto(cfg *ServerConfig, content, path string) error {
	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "max-results":
			if v, ok := firstIntArg(n); ok {
				cfg.MaxResults = v
			}
		case "context-lines":
			if v, ok := firstIntArg(n); ok {
				cfg.ContextLines = v
			}
		case "max-directories":
			if v, ok := firstIntArg(n); ok {
				cfg.MaxDirectories = v
			}
		case "max-languages":
			if v, ok := firstIntArg(n); ok {
				cfg.MaxLanguages = v
			}
		case "include":
			if s, ok := firstStringArg(n); ok {
				cfg.Include = append(cfg.Include, s)
			}
		case "exclude":
			if s, ok := firstStringArg(n); ok {
				cfg.Exclude = append(cfg.Exclude, s)
			}
		}
	}
	return nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}
