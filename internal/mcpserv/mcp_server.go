// Package mcpserv provides the Model Context Protocol (MCP) server implementation.
package mcpserv

import (
	"context"

	"github.com/huangsam/recap/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the recap MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Recap Commit Scanner",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		fs:      contract.NewOSFilesystem(),
	}

	s.AddTool(mcp.NewTool("list_commits",
		mcp.WithDescription("Discover git repositories under a search root and list commits within a date window, optionally filtered by author."),
		mcp.WithString("search_root", mcp.Description("Root directory to search (defaults to the configured root).")),
		mcp.WithNumber("search_depth", mcp.Description("Maximum directory depth to search below the root.")),
		mcp.WithString("since", mcp.Description("Start of the date window (RFC3339, 'YYYY-MM-DD HH:MM:SS' or 'YYYY-MM-DD'). Defaults to 24 hours ago.")),
		mcp.WithString("until", mcp.Description("End of the date window. Defaults to now.")),
		mcp.WithString("author", mcp.Description("Author filter in 'Name <email>' form. Empty disables the filter.")),
		mcp.WithString("match", mcp.Description("Author comparison mode."), mcp.Enum("full", "email")),
	), h.handleListCommits)

	return s
}

// StartMCPServer starts the recap MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
