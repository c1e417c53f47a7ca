package mcpserv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/recap/core"
	"github.com/huangsam/recap/internal/contract"
	"github.com/huangsam/recap/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	fs      contract.Filesystem
}

func (h *toolHandler) handleListCommits(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := *h.baseCfg

	if root := request.GetString("search_root", ""); root != "" {
		if !h.fs.IsDir(root) {
			return mcp.NewToolResultError(fmt.Sprintf("search root '%s' is not a directory", root)), nil
		}
		cfg.SearchRoot = root
	}
	if depth := request.GetInt("search_depth", -1); depth >= 0 {
		cfg.SearchDepth = depth
	}
	if since := request.GetString("since", ""); since != "" {
		t, err := contract.ParseDateTime(since)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid since date: %v", err)), nil
		}
		cfg.Since = t
	}
	if until := request.GetString("until", ""); until != "" {
		t, err := contract.ParseDateTime(until)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid until date: %v", err)), nil
		}
		cfg.Until = t
	}
	if cfg.Since.After(cfg.Until) {
		return mcp.NewToolResultError("since cannot be after until"), nil
	}
	// Presence is checked so that an explicit empty author disables the
	// base config's filter, while an omitted argument keeps it.
	if _, ok := request.GetArguments()["author"]; ok {
		cfg.Author = request.GetString("author", "")
	}
	if m := request.GetString("match", ""); m != "" {
		mode := schema.AuthorMatchMode(m)
		if _, ok := schema.ValidAuthorMatchModes[mode]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid match mode '%s'", m)), nil
		}
		cfg.Match = mode
	}

	report, err := core.Scan(&cfg, h.fs, contract.NewGitDirProbe(), contract.OpenGitRepository)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
