package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/quillmoor/scout/internal/workspace"
)

// GetSkillTool handles the get_skill MCP tool.
type GetSkillTool struct {
	store *workspace.Store
}

// NewGetSkillTool creates a GetSkillTool with its dependencies.
func NewGetSkillTool(store *workspace.Store) *GetSkillTool {
	return &GetSkillTool{store: store}
}

// Definition returns the MCP tool definition for registration.
func (t *GetSkillTool) Definition() mcp.Tool {
	return mcp.NewTool("get_skill",
		mcp.WithDescription(
			"Retrieves a skill containing focused context and instructions for a particular task. "+
				"Structured skills also list their companion resource files.",
		),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("The project name"),
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The skill topic (e.g., 'add-endpoint', 'debug-auth')"),
		),
	)
}

// Handle processes the get_skill tool call. The companion section appears
// only for structured skills that actually carry companion files.
func (t *GetSkillTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p, errRes := requireProject(t.store, req)
	if errRes != nil {
		return errRes, nil
	}

	topic := req.GetString("topic", "")
	if topic == "" {
		return mcp.NewToolResultError("'topic' is required"), nil
	}

	sk, err := p.Skill(topic)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	companions := sk.Companions()
	if len(companions) == 0 {
		return mcp.NewToolResultText(sk.Body), nil
	}

	var b strings.Builder
	b.WriteString(sk.Body)
	b.WriteString("\n\n## Companion files\n")
	for _, rel := range companions {
		fmt.Fprintf(&b, "- %s\n", rel)
	}
	return mcp.NewToolResultText(b.String()), nil
}
