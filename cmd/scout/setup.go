package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quillmoor/scout/internal/setup"
)

var (
	setupForce  bool
	setupGlobal bool
)

func init() {
	setupCmd.PersistentFlags().BoolVar(&setupForce, "force", false, "replace an existing scout section")
	setupCmd.PersistentFlags().BoolVar(&setupGlobal, "global", false, "write the usage guide to the user-wide config directory")
	setupCmd.AddCommand(setupWarpCmd)
	setupCmd.AddCommand(setupClaudeCmd)
	setupCmd.AddCommand(setupCursorCmd)
	setupCmd.AddCommand(setupWindsurfCmd)
	setupCmd.AddCommand(setupCodexCmd)
	rootCmd.AddCommand(setupCmd)
}

// setupRoot resolves the workspace root for setup commands. Setup always
// targets the current directory unless --root was given to serve; the
// commands are meant to be run from inside the workspace.
func setupRoot() (string, error) {
	return os.Getwd()
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure an AI agent to use scout",
	Long: `Configure an AI coding agent to use scout for project context.

Each subcommand writes a usage guide into the agent's config directory
and prints the MCP server configuration the agent needs.

Examples:
  scout setup warp
  scout setup claude --global
  scout setup cursor`,
}

var setupWarpCmd = &cobra.Command{
	Use:   "warp",
	Short: "Create or update WARP.md with scout rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := setupRoot()
		if err != nil {
			return err
		}
		return setup.Warp(root, setupForce)
	},
}

var setupClaudeCmd = &cobra.Command{
	Use:   "claude",
	Short: "Configure Claude Code / Claude Desktop",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := setupRoot()
		if err != nil {
			return err
		}
		return setup.Claude(root, setupGlobal)
	},
}

var setupCursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Configure Cursor",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := setupRoot()
		if err != nil {
			return err
		}
		return setup.Cursor(root, setupGlobal)
	},
}

var setupWindsurfCmd = &cobra.Command{
	Use:   "windsurf",
	Short: "Configure Windsurf",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := setupRoot()
		if err != nil {
			return err
		}
		return setup.Windsurf(root, setupGlobal)
	},
}

var setupCodexCmd = &cobra.Command{
	Use:   "codex",
	Short: "Configure Codex",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := setupRoot()
		if err != nil {
			return err
		}
		return setup.Codex(root, setupGlobal)
	},
}
