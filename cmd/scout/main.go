// Scout is a workspace context MCP server.
//
// It discovers .scout/project.toml records under a workspace root and
// answers structured queries about projects (commands, entry points,
// architecture concepts, skills, conventions, docs) over stdio, so AI
// coding agents can fetch exactly the context they need.
//
// Usage:
//
//	scout serve --root /path/to/workspace   # Start MCP server (stdio transport)
//	scout setup warp                        # Configure an agent integration
package main

import (
	"os"

	"github.com/spf13/cobra"

	scoutserver "github.com/quillmoor/scout/internal/server"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scout",
	Short: "Queryable project context for AI coding agents",
	Long: `Scout serves workspace and project metadata over the Model Context
Protocol. Point it at a workspace root containing .scout/project.toml
records and agents can query commands, architecture, skills, and
conventions instead of ingesting whole documents.`,
	Version: scoutserver.Version,
}
