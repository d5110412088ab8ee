package main

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/quillmoor/scout/internal/config"
	"github.com/quillmoor/scout/internal/logging"
	scoutserver "github.com/quillmoor/scout/internal/server"
)

var rootFlag string

func init() {
	serveCmd.Flags().StringVar(&rootFlag, "root", "", "workspace root to scan (defaults to $SCOUT_ROOT, then the current directory)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the scout MCP server. The server speaks JSON-RPC over
stdin/stdout, one message per line; diagnostics go to stderr.

The workspace root is resolved with precedence: the --root flag, the
SCOUT_ROOT environment variable, the default_root from ~/.scout/config.toml,
then the current directory.

Examples:
  scout serve --root ~/code
  SCOUT_ROOT=~/code scout serve`,
	RunE: runServe,
}

// envConfig is the process environment surface.
type envConfig struct {
	Root string `env:"SCOUT_ROOT"`
}

func resolveRoot() (string, error) {
	if rootFlag != "" {
		return rootFlag, nil
	}

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return "", fmt.Errorf("parsing environment: %w", err)
	}
	if ec.Root != "" {
		return ec.Root, nil
	}

	if global := config.LoadGlobal(xdg.Home); global != nil && global.Scout.DefaultRoot != "" {
		return global.Scout.DefaultRoot, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determining current directory: %w", err)
	}
	return cwd, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot()
	if err != nil {
		return err
	}

	logging.Info("starting scout", "root", root, "version", scoutserver.Version)

	s, err := scoutserver.New(root)
	if err != nil {
		return err
	}
	return server.ServeStdio(s)
}
