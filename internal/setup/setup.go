// Package setup configures AI coding agents to use scout effectively.
//
// Each agent gets a usage guide dropped into its config directory, plus
// printed instructions for wiring the MCP server itself. Warp is special:
// it reads a WARP.md at the workspace root, so setup edits that file in
// place.
package setup

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/quillmoor/scout/internal/config"
)

// SectionMarker is the heading that identifies the scout section inside
// an agent rules file. Replacement and dedupe both key off it.
const SectionMarker = "## Using Scout for Project Context"

const warpSection = SectionMarker + `

ALWAYS start workspace exploration by calling ` + "`get_workspace_overview()`" + ` from the Scout MCP server to understand the workspace structure, available projects, and their relationships.

### When to Use Scout Tools

**Before suggesting commands:**
- Call ` + "`get_commands(project, type)`" + ` to get exact build/test/lint/run commands
- Never guess commands when scout can provide them

**Before making architectural changes:**
- Call ` + "`get_architecture(project, concept)`" + ` to understand existing patterns
- Use ` + "`get_related_files(project, query)`" + ` to find related code

**Before writing new code:**
- Call ` + "`get_conventions(project)`" + ` for project-specific patterns
- Call ` + "`get_workspace_conventions()`" + ` for workspace-wide standards
- Review both conventions AND gotchas

**Before searching for documentation:**
- Call ` + "`get_docs(project)`" + ` to see available documentation
- Use topic names to get specific doc paths

**For specific tasks:**
- Call ` + "`list_skills(project)`" + ` to see available task-specific guidance
- Use ` + "`get_skill(project, topic)`" + ` for focused instructions

### Workflow

1. **Enter workspace** → ` + "`get_workspace_overview()`" + `
2. **Working on a project** → ` + "`get_project_info(project)`" + `
3. **Making changes** → Check conventions, architecture, skills
4. **Writing code** → Follow conventions, avoid gotchas
5. **Running commands** → Use ` + "`get_commands(project, type)`" + `
`

const usageGuide = `# Using Scout for Project Context

Scout provides queryable, on-demand project context to help you work more effectively.

## Getting Started

**Always start by calling ` + "`get_workspace_overview()`" + `** to understand the workspace structure, available projects, and their relationships.

## When to Use Scout Tools

### Before suggesting commands
- Call ` + "`get_commands(project, type)`" + ` to get exact build/test/lint/run commands
- Never guess commands when scout can provide them

### Before making architectural changes
- Call ` + "`get_architecture(project, concept)`" + ` to understand existing patterns
- Use ` + "`get_related_files(project, query)`" + ` to find related code

### Before writing new code
- Call ` + "`get_conventions(project)`" + ` for project-specific patterns
- Call ` + "`get_workspace_conventions()`" + ` for workspace-wide standards
- Review both conventions AND gotchas

### Before searching for documentation
- Call ` + "`get_docs(project)`" + ` to see available documentation
- Use topic names to get specific doc paths

### For specific tasks
- Call ` + "`list_skills(project)`" + ` to see available task-specific guidance
- Use ` + "`get_skill(project, topic)`" + ` for focused instructions

## Workflow

1. **Enter workspace** → ` + "`get_workspace_overview()`" + `
2. **Working on a project** → ` + "`get_project_info(project)`" + `
3. **Making changes** → Check conventions, architecture, skills
4. **Writing code** → Follow conventions, avoid gotchas
5. **Running commands** → Use ` + "`get_commands(project, type)`" + `

## Available Tools

- ` + "`list_projects`" + ` - List all projects in workspace
- ` + "`get_workspace_overview`" + ` - Workspace structure and dependencies
- ` + "`get_workspace_conventions`" + ` - Workspace-level conventions/gotchas
- ` + "`get_project_info`" + ` - Project metadata and structure
- ` + "`get_commands`" + ` - Build/test/lint/run commands
- ` + "`get_architecture`" + ` - Architectural concepts and files
- ` + "`get_related_files`" + ` - Find files by concept
- ` + "`get_conventions`" + ` - Project conventions and gotchas
- ` + "`get_docs`" + ` - Documentation index
- ` + "`list_skills`" + ` / ` + "`get_skill`" + ` - Task-specific guidance
`

// Warp creates or updates WARP.md at the workspace root. When the scout
// section already exists it is left alone unless force is set, in which
// case it is replaced in place while everything else is preserved.
func Warp(workspaceRoot string, force bool) error {
	warpMD := filepath.Join(workspaceRoot, "WARP.md")

	content, err := os.ReadFile(warpMD)
	switch {
	case os.IsNotExist(err):
		fresh := "# WARP.md\n\nThis file provides guidance to WARP (warp.dev) when working with code in this repository.\n\n" + warpSection
		if err := os.WriteFile(warpMD, []byte(fresh), 0o644); err != nil {
			return fmt.Errorf("creating WARP.md: %w", err)
		}
		fmt.Println("✓ Created WARP.md with scout rules")
	case err != nil:
		return fmt.Errorf("reading WARP.md: %w", err)
	case strings.Contains(string(content), SectionMarker):
		if !force {
			fmt.Println("✓ WARP.md already contains scout rules")
			fmt.Println()
			fmt.Println("To update the scout section, run with --force:")
			fmt.Println("  scout setup warp --force")
			return nil
		}
		updated := ReplaceSection(string(content))
		if err := os.WriteFile(warpMD, []byte(updated), 0o644); err != nil {
			return fmt.Errorf("updating WARP.md: %w", err)
		}
		fmt.Println("✓ Updated scout rules in WARP.md")
	default:
		updated := string(content)
		if !strings.HasSuffix(updated, "\n") {
			updated += "\n"
		}
		updated += "\n" + warpSection
		if err := os.WriteFile(warpMD, []byte(updated), 0o644); err != nil {
			return fmt.Errorf("updating WARP.md: %w", err)
		}
		fmt.Println("✓ Added scout rules to existing WARP.md")
	}

	warnMissingRecord(workspaceRoot)

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Ensure .scout/project.toml exists (provides context to scout)")
	fmt.Println("2. Verify scout MCP server is configured in Warp:")
	fmt.Println("   - Open Warp settings → AI → MCP Servers")
	fmt.Printf("   - Add scout with: --root %s\n", workspaceRoot)
	fmt.Println("3. Restart Warp or reload the window to apply changes")
	fmt.Println("4. Commit WARP.md to version control")
	return nil
}

// ReplaceSection strips the existing scout section from rules-file
// content and re-inserts the current one in its place. Other sections
// are preserved untouched.
func ReplaceSection(content string) string {
	var kept []string
	inSection := false
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, SectionMarker) {
			inSection = true
			continue
		}
		if inSection {
			if strings.HasPrefix(line, "# ") ||
				(strings.HasPrefix(line, "## ") && !strings.Contains(line, "Using Scout")) {
				inSection = false
			}
		}
		if !inSection {
			kept = append(kept, line)
		}
	}

	kept = append(kept, "")
	kept = append(kept, strings.Split(warpSection, "\n")...)
	return strings.Join(kept, "\n")
}

// Claude drops the usage guide into the .claude config directory,
// workspace-local or user-wide.
func Claude(workspaceRoot string, global bool) error {
	dir, err := agentDir(workspaceRoot, global, ".claude")
	if err != nil {
		return err
	}
	if err := writeGuide(dir); err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Configure the MCP server with:")
	fmt.Printf("  claude mcp add scout -- %s serve --root %s\n", binaryPath(), workspaceRoot)
	printNextSteps(workspaceRoot, "Claude")
	return nil
}

// Cursor drops the usage guide into the .cursor config directory and
// prints the mcp.json block Cursor expects.
func Cursor(workspaceRoot string, global bool) error {
	dir, err := agentDir(workspaceRoot, global, ".cursor")
	if err != nil {
		return err
	}
	if err := writeGuide(dir); err != nil {
		return err
	}
	printJSONConfig(filepath.Join(dir, "mcp.json"), workspaceRoot)
	printNextSteps(workspaceRoot, "Cursor")
	return nil
}

// Windsurf drops the usage guide into the windsurf config directory.
func Windsurf(workspaceRoot string, global bool) error {
	var dir string
	var err error
	if global {
		dir, err = agentDir(workspaceRoot, true, filepath.Join(".codeium", "windsurf"))
	} else {
		dir, err = agentDir(workspaceRoot, false, ".windsurf")
	}
	if err != nil {
		return err
	}
	if err := writeGuide(dir); err != nil {
		return err
	}
	printJSONConfig(filepath.Join(xdg.Home, ".codeium", "windsurf", "mcp_config.json"), workspaceRoot)
	printNextSteps(workspaceRoot, "Windsurf")
	return nil
}

// Codex drops the usage guide into the .codex config directory and
// prints the config.toml block Codex expects.
func Codex(workspaceRoot string, global bool) error {
	dir, err := agentDir(workspaceRoot, global, ".codex")
	if err != nil {
		return err
	}
	if err := writeGuide(dir); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Add to %s:\n", filepath.Join(xdg.Home, ".codex", "config.toml"))
	fmt.Println()
	fmt.Println("  [mcp_servers.scout]")
	fmt.Printf("  command = %q\n", binaryPath())
	fmt.Printf("  args = [\"serve\", \"--root\", %q]\n", workspaceRoot)
	printNextSteps(workspaceRoot, "Codex")
	return nil
}

func agentDir(workspaceRoot string, global bool, name string) (string, error) {
	base := workspaceRoot
	if global {
		base = xdg.Home
	}
	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	return dir, nil
}

func writeGuide(dir string) error {
	guidePath := filepath.Join(dir, "scout-usage.md")
	if err := os.WriteFile(guidePath, []byte(usageGuide), 0o644); err != nil {
		return fmt.Errorf("writing usage guide: %w", err)
	}
	fmt.Printf("✓ Created %s\n", guidePath)
	return nil
}

func printJSONConfig(configPath, workspaceRoot string) {
	fmt.Println()
	fmt.Printf("Add to %s:\n", configPath)
	fmt.Println()
	fmt.Println("  {")
	fmt.Println("    \"mcpServers\": {")
	fmt.Println("      \"scout\": {")
	fmt.Printf("        \"command\": %q,\n", binaryPath())
	fmt.Printf("        \"args\": [\"serve\", \"--root\", %q]\n", workspaceRoot)
	fmt.Println("      }")
	fmt.Println("    }")
	fmt.Println("  }")
}

func binaryPath() string {
	if path, err := exec.LookPath("scout"); err == nil {
		return path
	}
	return "/path/to/scout"
}

func warnMissingRecord(workspaceRoot string) {
	if _, err := os.Stat(filepath.Join(workspaceRoot, config.MetaDirName)); err == nil {
		return
	}
	fmt.Println()
	fmt.Println("⚠️  No .scout directory found")
	fmt.Println("   Create .scout/project.toml to provide project context")
}

func printNextSteps(workspaceRoot, agentName string) {
	warnMissingRecord(workspaceRoot)

	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Ensure .scout/project.toml exists")
	fmt.Printf("2. Verify scout MCP server is configured in %s\n", agentName)
	fmt.Printf("3. Restart %s to apply changes\n", agentName)
	fmt.Println("4. Read the usage guide for best practices")
}
