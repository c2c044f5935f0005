package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/codescout/codescout/core"
	"github.com/codescout/codescout/internal/contract"
	"github.com/codescout/codescout/internal/stats"
	"github.com/codescout/codescout/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg   *contract.Config
	feed      core.ContestFeed
	providers []stats.Provider
	mgr       contract.StoreManager
}

func (h *toolHandler) handleGetUpcomingContests(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Refresh = request.GetBool("refresh", false)

	if err := cfg.RequireContestCredentials(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid contest parameters: %v", err)), nil
	}

	now := time.Now()
	if request.GetBool("today_only", false) {
		contests, _, err := core.GetTodayContests(ctx, cfg, h.feed, h.mgr, now)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("contest fetch failed: %v", err)), nil
		}
		jsonData, _ := json.MarshalIndent(contests, "", "  ")
		return mcp.NewToolResultText(string(jsonData)), nil
	}

	buckets, _, err := core.GetUpcomingContests(ctx, cfg, h.feed, h.mgr, now)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("contest fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(buckets, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRatings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Refresh = request.GetBool("refresh", false)

	var links []schema.PlatformLink
	handles := []struct {
		arg      string
		platform schema.Platform
	}{
		{"leetcode_handle", schema.LeetCode},
		{"codeforces_handle", schema.Codeforces},
		{"codechef_handle", schema.CodeChef},
	}
	for _, hdl := range handles {
		if v := request.GetString(hdl.arg, ""); v != "" {
			links = append(links, schema.PlatformLink{PlatformURL: hdl.platform, Username: v})
		}
	}
	if len(links) == 0 {
		return mcp.NewToolResultError("at least one platform handle is required"), nil
	}

	// Key the cache by the handle set so different lookups never collide
	var keyParts []string
	for _, link := range links {
		keyParts = append(keyParts, string(link.PlatformURL)+":"+link.Username)
	}
	userID := "mcp_" + strings.Join(keyParts, "_")

	report, _, err := core.GetRatingReport(ctx, cfg, h.providers, links, userID, h.mgr, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rating fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPracticeSheet(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type sheetProblem struct {
		Solved bool `json:"solved"`
		schema.Problem
	}
	type sheetLadder struct {
		Rating   int            `json:"rating"`
		Problems []sheetProblem `json:"problems"`
	}

	solved := make(map[string]struct{})
	if userID := request.GetString("user_id", ""); userID != "" {
		var err error
		solved, err = core.GetSolvedProblems(h.mgr, userID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("solved lookup failed: %v", err)), nil
		}
	}

	ladders := core.Ladders()
	output := make([]sheetLadder, len(ladders))
	for i, ladder := range ladders {
		problems := make([]sheetProblem, len(ladder.Problems))
		for j, p := range ladder.Problems {
			_, ok := solved[p.ID]
			problems[j] = sheetProblem{Solved: ok, Problem: p}
		}
		output[i] = sheetLadder{Rating: ladder.Rating, Problems: problems}
	}

	jsonData, _ := json.MarshalIndent(output, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
