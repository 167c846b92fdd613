package main

import (
	"fmt"

	"github.com/nvandessel/synthab/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPServerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp-server",
		Short: "Run synthab as an MCP server over stdio",
		Long: `Start an MCP (Model Context Protocol) server exposing synthab's
generation and summary tools to agent clients over stdio.

The server blocks until the client disconnects or the process receives
an interrupt signal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server, err := mcp.NewServer(&mcp.Config{
				Name:    "synthab",
				Version: version,
			})
			if err != nil {
				return fmt.Errorf("failed to create MCP server: %w", err)
			}

			return server.Run(cmd.Context())
		},
	}
}
