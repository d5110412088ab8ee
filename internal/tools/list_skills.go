package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// ListSkillsTool handles the list_skills MCP tool.
type ListSkillsTool struct {
	store *workspace.Store
}

// NewListSkillsTool creates a ListSkillsTool with its dependencies.
func NewListSkillsTool(store *workspace.Store) *ListSkillsTool {
	return &ListSkillsTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *ListSkillsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_skills",
		mcp.WithDescription(
			"Lists available skills for a project, including user-wide skills. "+
				"Skills provide focused context for specific tasks like adding endpoints, debugging, etc.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
	)
}

// Handle processes the list_skills tool call. Each line carries the
// skill's provenance so a caller can tell project-local overrides from
// inherited user-wide skills.
func (t *ListSkillsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	if len(p.Skills) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf(
			"No skills found for '%s'. Create .scout/skills/*.md files or "+
				".claude/skills/<name>/SKILL.md directories to add task-specific context.",
			p.Name,
		)), nil
	}

	names := make([]string, 0, len(p.Skills))
	for name := range p.Skills {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "Available skills for '%s':\n\n", p.Name)
	for _, name := range names {
		sk := p.Skills[name]
		fmt.Fprintf(&b, "- %s [%s]", name, sk.Origin)
		if sk.Description != "" {
			fmt.Fprintf(&b, ": %s", sk.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("\nUse get_skill(project, topic) to retrieve a specific skill.")
	return mcp.NewToolResultText(b.String()), nil
}
