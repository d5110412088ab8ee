package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/format"
	"github.com/quillmoor/scout/internal/workspace"
)

// ProjectInfoTool handles the get_project_info MCP tool.
// It renders either a full project summary or one field-scoped section.
type ProjectInfoTool struct {
	store *workspace.Store
}

// NewProjectInfoTool creates a ProjectInfoTool with its dependencies.
func NewProjectInfoTool(store *workspace.Store) *ProjectInfoTool {
	return &ProjectInfoTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ProjectInfoTool) Definition() mcp.Tool {
	return mcp.NewTool("get_project_info",
		mcp.WithDescription(
			"Returns metadata about a specific project including description, "+
				"language, version, entry points, and dependencies.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("field",
			mcp.Description(
				"Optional specific field to retrieve: 'commands', 'entry_points', "+
					"'dependencies', 'api', 'related_projects'",
			),
			mcp.Enum("commands", "entry_points", "dependencies", "api", "related_projects"),
		),
	)
}

// Handle processes the get_project_info tool call.
func (t *ProjectInfoTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	switch field := req.GetString("field", ""); field {
	case "":
		return mcp.NewToolResultText(t.fullSummary(p)), nil
	case "commands":
		return mcp.NewToolResultText(format.Commands(p.Config.Commands)), nil
	case "entry_points":
		return mcp.NewToolResultText(format.EntryPoints(p.Config.EntryPoints)), nil
	case "dependencies":
		return mcp.NewToolResultText(format.Dependencies(p.Config.Dependencies)), nil
	case "api":
		return mcp.NewToolResultText(format.API(p.Config.API)), nil
	case "related_projects":
		return mcp.NewToolResultText(format.RelatedProjects(p.Config.RelatedProjects)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("Unknown field: %s", field)), nil
	}
}

func (t *ProjectInfoTool) fullSummary(p *workspace.Project) string {
	info := p.Config.Project

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	fmt.Fprintf(&b, "**Description:** %s\n", info.Description)
	if info.Language != "" {
		fmt.Fprintf(&b, "**Language:** %s\n", info.Language)
	}
	if info.Version != "" {
		fmt.Fprintf(&b, "**Version:** %s\n", info.Version)
	}
	if info.Repository != "" {
		fmt.Fprintf(&b, "**Repository:** %s\n", info.Repository)
	}
	fmt.Fprintf(&b, "**Path:** %s\n", p.Root)

	if len(p.Config.EntryPoints) > 0 {
		b.WriteString("\n## Entry Points\n")
		b.WriteString(format.EntryPoints(p.Config.EntryPoints))
	}

	if len(p.Config.Concepts) > 0 {
		b.WriteString("\n## Concepts\n")
		names := make([]string, 0, len(p.Config.Concepts))
		for name := range p.Config.Concepts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "- **%s**: %s\n", name, p.Config.Concepts[name].Summary)
		}
	}

	return b.String()
}
