package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filesum/internal/adapters/render"
	"filesum/internal/application/commands"
	"filesum/internal/ports"
)

// RegisterReadTools adds the resolution tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, resolver ports.SumResolver) {
	s.AddTool(sumTool(), sumHandler(resolver, nil))
	s.AddTool(treeTool(), treeHandler(resolver))
	s.AddTool(readFileTool(), readFileHandler(resolver))
}

// --- sum ---

func sumTool() mcp.Tool {
	return mcp.NewTool("sum",
		mcp.WithDescription("Compute the total of a numbers file. Lines that name other files (relative to the file) add those files' totals. Returns one line per visited file."),
		mcp.WithString("path",
			mcp.Description("Path to the root file"),
			mcp.Required(),
		),
		mcp.WithBoolean("record",
			mcp.Description("Record the result in the snapshot store (requires a configured store)"),
		),
	)
}

func sumHandler(resolver ports.SumResolver, store ports.SnapshotStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		cmd := commands.NewSumCommand(resolver, store, path)
		cmd.Record = req.GetBool("record", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := render.Text(&sb, result.Totals); err != nil {
			return toolError(err)
		}
		if result.Run != nil {
			fmt.Fprintf(&sb, "recorded run %s\n", result.Run.ID)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Show how a file's total is built: each referenced file indented under the file that references it, with its total."),
		mcp.WithString("path",
			mcp.Description("Path to the root file"),
			mcp.Required(),
		),
	)
}

func treeHandler(resolver ports.SumResolver) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		root, err := commands.NewTreeCommand(resolver, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		if err := render.Tree(&sb, root); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_file ---

func readFileTool() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription("Read the raw content of an input file."),
		mcp.WithString("path",
			mcp.Description("Path to the file"),
			mcp.Required(),
		),
	)
}

func readFileHandler(resolver ports.SumResolver) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		content, err := resolver.ReadFile(path)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
