package mcp

import (
	"fmt"
	"strings"

	"landing-page-service/models"
	"landing-page-service/services"

	"github.com/mark3labs/mcp-go/server"
)

// MCPServer wraps the MCP server with the landing page generator
type MCPServer struct {
	generator *services.Generator
	mcpServer *server.MCPServer
}

// NewMCPServer creates a new MCP server instance
func NewMCPServer(generator *services.Generator) *MCPServer {
	s := &MCPServer{
		generator: generator,
	}

	// Create MCP server with latest API
	s.mcpServer = server.NewMCPServer(
		"landing-page-service",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	// Register tools and resources
	s.registerTools()
	s.registerResources()

	return s
}

// Server returns the underlying MCP server
func (s *MCPServer) Server() *server.MCPServer {
	return s.mcpServer
}

// formatPage formats a generated page as markdown
func formatPage(page *models.GeneratedPage, themeID string) string {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("# %s\n\n", page.Hero.Title))
	result.WriteString(fmt.Sprintf("**主题**: %s\n\n", themeID))
	result.WriteString(fmt.Sprintf("> %s\n\n", page.Hero.Subtitle))
	result.WriteString(fmt.Sprintf("**首屏按钮**: %s\n\n", page.Hero.CTA))

	result.WriteString("## 功能要点\n\n")
	for _, item := range page.Features.Items {
		result.WriteString(fmt.Sprintf("- %s\n", item))
	}

	result.WriteString(fmt.Sprintf("\n## %s\n\n", page.CTA.Title))
	result.WriteString(fmt.Sprintf("**按钮**: %s\n", page.CTA.Button))

	return result.String()
}

// formatThemes formats the theme catalogue as markdown
func formatThemes(themes []models.Theme) string {
	if len(themes) == 0 {
		return "# 主题列表\n\n没有可用主题。"
	}

	var result strings.Builder
	result.WriteString("# 主题列表\n\n")
	result.WriteString(fmt.Sprintf("共 %d 个主题\n", len(themes)))

	for _, theme := range themes {
		result.WriteString(fmt.Sprintf("\n## %s\n", theme.ID))
		result.WriteString(fmt.Sprintf("- **关键词**: %s\n", strings.Join(theme.Keywords, ", ")))
	}

	return result.String()
}
