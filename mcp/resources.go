package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerResources registers all MCP resources
func (s *MCPServer) registerResources() {
	// Resource 1: Theme catalogue (markdown)
	themesResource := mcp.NewResource("landing://themes",
		"主题列表",
		mcp.WithMIMEType("text/markdown"),
		mcp.WithResourceDescription("所有可用主题及其触发关键词"),
	)
	s.mcpServer.AddResource(themesResource, s.handleThemesResource)

	// Resource 2: Theme catalogue (JSON, for programmatic clients)
	themesJSONResource := mcp.NewResource("landing://themes.json",
		"主题列表 (JSON)",
		mcp.WithMIMEType("application/json"),
		mcp.WithResourceDescription("主题目录的结构化表示"),
	)
	s.mcpServer.AddResource(themesJSONResource, s.handleThemesJSONResource)
}

// Resource handlers - correct signature from official example

func (s *MCPServer) handleThemesResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	result := formatThemes(s.generator.Themes())

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "landing://themes",
			MIMEType: "text/markdown",
			Text:     result,
		},
	}, nil
}

func (s *MCPServer) handleThemesJSONResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(s.generator.Themes(), "", "  ")
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "landing://themes.json",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
