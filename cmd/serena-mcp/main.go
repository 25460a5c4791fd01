// Command serena-mcp runs the line-oriented coding assistant toolbox
// over a JSON-RPC channel on stdin/stdout.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/serena-mcp/internal/config"
	"github.com/standardbeagle/serena-mcp/internal/diagnostics"
	"github.com/standardbeagle/serena-mcp/internal/rpc"
	"github.com/standardbeagle/serena-mcp/internal/toolset"
	"github.com/standardbeagle/serena-mcp/internal/version"
)

func main() {
	app := &cli.App{
		Name:    "serena-mcp",
		Usage:   "symbolic code editor, pattern search, and onboarding toolbox over JSON-RPC",
		Version: version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "project",
				Usage: "Project root directory; defaults to the current directory",
			},
			&cli.StringFlag{
				Name:  "context",
				Usage: "Client context identifier",
				Value: "desktop-app",
			},
			&cli.StringSliceFlag{
				Name:  "mode",
				Usage: "Operating mode (repeatable): planning, editing, interactive",
			},
			&cli.StringFlag{
				Name:  "transport",
				Usage: "Transport to serve; only \"stdio\" is implemented",
				Value: "stdio",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "Project config file path; defaults to .serena-mcp.kdl in the project directory",
			},
			&cli.StringFlag{
				Name:  "state-dir",
				Usage: "Overrides SERENA_STATE_DIR for this process only",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.String("transport") != "stdio" {
		return fmt.Errorf("unsupported transport %q: only \"stdio\" is implemented", c.String("transport"))
	}

	projectRoot := c.String("project")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolve project directory: %w", err)
		}
		projectRoot = cwd
	} else {
		abs, err := filepath.Abs(projectRoot)
		if err != nil {
			return fmt.Errorf("resolve project directory %q: %w", projectRoot, err)
		}
		projectRoot = abs
	}

	if stateDir := c.String("state-dir"); stateDir != "" {
		os.Setenv("SERENA_STATE_DIR", stateDir)
	}

	cfg, err := loadConfig(c, projectRoot)
	if err != nil {
		return err
	}

	log := diagnostics.New()
	defer log.Close()
	log.Printf("serena-mcp %s starting; project=%s context=%s modes=%v", version.Version, projectRoot, c.String("context"), c.StringSlice("mode"))

	registry := toolset.Build(cfg)
	return rpc.RunStdio(os.Stdin, os.Stdout, registry, log)
}

func loadConfig(c *cli.Context, projectRoot string) (config.ServerConfig, error) {
	cfg, err := config.Load(projectRoot, c.String("config"))
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
