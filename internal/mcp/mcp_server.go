// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/codescout/codescout/core"
	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/stats"
)

// NewMCPServer initializes and configures the CodeScout MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, feed core.ContestFeed, providers []stats.Provider, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"CodeScout Tracker Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:   baseCfg,
		feed:      feed,
		providers: providers,
		mgr:       mgr,
	}

	// --- 1. Tool: get_upcoming_contests ---
	s.AddTool(mcp.NewTool("get_upcoming_contests",
		mcp.WithDescription("List upcoming competitive programming contests across LeetCode, Codeforces, CodeChef and AtCoder, bucketed by start day."),
		mcp.WithBoolean("today_only", mcp.Description("Only return contests starting today. Defaults to false.")),
		mcp.WithBoolean("refresh", mcp.Description("Bypass the day-bounded cache and refetch. Defaults to false.")),
	), h.handleGetUpcomingContests)

	// --- 2. Tool: get_ratings ---
	s.AddTool(mcp.NewTool("get_ratings",
		mcp.WithDescription("Fetch current contest ratings for the given platform handles."),
		mcp.WithString("codeforces_handle", mcp.Description("Codeforces handle to look up.")),
		mcp.WithString("leetcode_handle", mcp.Description("LeetCode username to look up.")),
		mcp.WithString("codechef_handle", mcp.Description("CodeChef username to look up.")),
		mcp.WithBoolean("refresh", mcp.Description("Bypass the day-bounded cache and refetch. Defaults to false.")),
	), h.handleGetRatings)

	// --- 3. Tool: get_practice_sheet ---
	s.AddTool(mcp.NewTool("get_practice_sheet",
		mcp.WithDescription("Return the rating-laddered practice sheet, optionally with a user's solve marks."),
		mcp.WithString("user_id", mcp.Description("User whose solve marks to include (omit for an unmarked sheet).")),
	), h.handleGetPracticeSheet)

	return s
}

// StartMCPServer starts the CodeScout MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, feed core.ContestFeed, providers []stats.Provider, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, feed, providers, mgr)
	return server.ServeStdio(s)
}
