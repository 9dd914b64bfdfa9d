package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
	"filesum/internal/ports"
)

// RegisterHistoryTools adds the snapshot tools and replaces the sum tool
// with one that can record runs.
func RegisterHistoryTools(s *server.MCPServer, resolver ports.SumResolver, store ports.SnapshotStore) {
	s.AddTool(sumTool(), sumHandler(resolver, store))
	s.AddTool(historyTool(), historyHandler(store))
	s.AddTool(diffTool(), diffHandler(resolver, store))
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recorded runs, newest first."),
		mcp.WithString("root",
			mcp.Description("Only list runs for this root file. Omit to list all."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of runs to return (0 for all)"),
		),
	)
}

func historyHandler(store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "")
		limit := req.GetInt("limit", 0)

		runs, err := commands.NewHistoryCommand(store, root, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := render.Runs(&sb, runs); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- diff ---

func diffTool() mcp.Tool {
	return mcp.NewTool("diff",
		mcp.WithDescription("Compare a file's current totals against its latest recorded run."),
		mcp.WithString("path",
			mcp.Description("Path to the root file"),
			mcp.Required(),
		),
	)
}

func diffHandler(resolver ports.SumResolver, store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		result, err := commands.NewDiffRunsCommand(resolver, store, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := render.Changes(&sb, result.Changes); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}
