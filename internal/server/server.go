// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the workspace store once and
// injects it into every tool. No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/quillmoor/scout/internal/tools"
	"github.com/quillmoor/scout/internal/workspace"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered
// against a store built from the given workspace root. Discovery runs
// once here; everything after serves from the cached snapshot until a
// reload_workspace call rebuilds it.
func New(root string) (*server.MCPServer, error) {
	store, err := workspace.NewStore(workspace.NewDiscoverer(root))
	if err != nil {
		return nil, fmt.Errorf("building workspace store: %w", err)
	}

	s := server.NewMCPServer(
		"scout",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	listProjects := tools.NewListProjectsTool(store)
	s.AddTool(listProjects.Definition(), listProjects.Handle)

	projectInfo := tools.NewProjectInfoTool(store)
	s.AddTool(projectInfo.Definition(), projectInfo.Handle)

	commands := tools.NewCommandsTool(store)
	s.AddTool(commands.Definition(), commands.Handle)

	architecture := tools.NewArchitectureTool(store)
	s.AddTool(architecture.Definition(), architecture.Handle)

	relatedFiles := tools.NewRelatedFilesTool(store)
	s.AddTool(relatedFiles.Definition(), relatedFiles.Handle)

	listSkills := tools.NewListSkillsTool(store)
	s.AddTool(listSkills.Definition(), listSkills.Handle)

	getSkill := tools.NewGetSkillTool(store)
	s.AddTool(getSkill.Definition(), getSkill.Handle)

	conventions := tools.NewConventionsTool(store)
	s.AddTool(conventions.Definition(), conventions.Handle)

	docs := tools.NewDocsTool(store)
	s.AddTool(docs.Definition(), docs.Handle)

	overview := tools.NewWorkspaceOverviewTool(store)
	s.AddTool(overview.Definition(), overview.Handle)

	wsConventions := tools.NewWorkspaceConventionsTool(store)
	s.AddTool(wsConventions.Definition(), wsConventions.Handle)

	reload := tools.NewReloadTool(store)
	s.AddTool(reload.Definition(), reload.Handle)

	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to query the workspace effectively.
func serverInstructions() string {
	return `You have access to scout, a workspace context MCP server.

Instead of reading whole documents or guessing at project structure,
query scout for exactly the context you need:

- Call get_workspace_overview first to understand the workspace.
- Call get_project_info(project) before working on a project.
- Call get_commands(project) instead of guessing build/test commands.
- Call get_architecture(project, concept) to find the files behind a
  feature area.
- Call list_skills(project) and get_skill(project, topic) for
  task-specific instructions the team has written down.
- Call get_conventions(project) before writing code, so your changes
  match the project's standards.

Project, concept, and skill names are matched case-insensitively and
by unambiguous prefix/substring, so close-enough names work. After
editing any .scout file, call reload_workspace to pick up the change.`
}
