package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// registerTools registers all MCP tools using correct API
func (s *MCPServer) registerTools() {
	// Tool 1: Generate a landing page from a prompt
	generateTool := mcp.NewTool("generate_landing",
		mcp.WithDescription("根据产品描述生成落地页文案（标题、副标题、功能要点、主题）"),
		mcp.WithString("prompt",
			mcp.Required(),
			mcp.Description("产品描述，例如 'AI analytics dashboard for teams'"),
		),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerateLanding)

	// Tool 2: List available themes
	themesTool := mcp.NewTool("list_themes",
		mcp.WithDescription("获取所有可用主题及其触发关键词"),
	)
	s.mcpServer.AddTool(themesTool, s.handleListThemes)
}

// Tool handlers - using GetString methods from official example

func (s *MCPServer) handleGenerateLanding(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	// 空 prompt 也是合法输入，此时返回全默认文案
	prompt := request.GetString("prompt", "")

	page, themeID := s.generator.Generate(prompt)
	result := formatPage(page, themeID)
	return mcp.NewToolResultText(result), nil
}

func (s *MCPServer) handleListThemes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result := formatThemes(s.generator.Themes())
	return mcp.NewToolResultText(result), nil
}
