package main

import (
	"context"
	"flag"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"filesum/internal/adapters/filesystem"
	mcpadapter "filesum/internal/adapters/mcp"
	"filesum/internal/adapters/sqlite"
	"filesum/internal/config"
	"filesum/internal/logging"
)

func main() {
	configFlag := flag.String("config", "", "config file (default $XDG_CONFIG_HOME/filesum/config.yaml)")
	dbFlag := flag.String("db", "", "path to the snapshot database (overrides config)")
	noHistory := flag.Bool("no-history", false, "do not open the snapshot database")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr
	logger, _ := logging.New("warn")

	cfg, _, err := config.Load(config.LoadOptions{ConfigFile: *configFlag})
	if err != nil {
		logger.Fatal("filesum-mcp: failed to load config", "err", err)
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	if logger, err = logging.New(cfg.LogLevel); err != nil {
		logger = logging.Discard()
	}

	resolver := filesystem.NewOSResolver(filesystem.WithLogger(logger))

	mcpServer := server.NewMCPServer(
		"filesum-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, resolver)

	if !*noHistory {
		store := sqlite.NewStore()
		if err := store.Open(cfg.DBPath); err != nil {
			logger.Warn("snapshot store unavailable, history tools disabled", "path", cfg.DBPath, "err", err)
		} else {
			defer store.Close()
			mcpadapter.RegisterHistoryTools(mcpServer, resolver, store)
		}
	}

	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("filesum-mcp: server stopped", "err", err)
		os.Exit(1)
	}
}
