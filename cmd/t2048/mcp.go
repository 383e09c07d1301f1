package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/transport/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve 2048 as MCP tools on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout so an agent can play.

Tools:
  state     - Current board, score and progress
  move      - Slide tiles: {"direction": "up|down|left|right"}
  new_game  - Start over

Finished games are saved to the scores database. Logs go to stderr.

Example client config:
  {"command": "t2048", "args": ["mcp", "--seed", "42"]}`,
	Args: cobra.NoArgs,
	Run:  runMCP,
}

func runMCP(_ *cobra.Command, _ []string) {
	logger, err := newLogger(os.Stderr, "mcp")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("scores disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	server := mcp.NewServer(resolveSeed(), store, logger)
	if err := server.ServeStdio(); err != nil {
		logger.Error("mcp server stopped", "err", err)
		os.Exit(1)
	}
}
