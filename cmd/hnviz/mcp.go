// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/ingham-physics/hnviz/internal/config"
	"github.com/ingham-physics/hnviz/internal/mcpserver"
)

// mcpCmd is the parent command for MCP-related subcommands.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol server commands",
	Long:  "Commands for running hnviz as an MCP server, exposing the dashboard charts and cohort summary to AI agents.",
}

// mcpServeCmd runs the MCP server over stdio.
var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server over stdio",
	Long: `Load the cohort CSV and start an MCP server on stdin/stdout, exposing:
  - list_panels:    Dashboard panels and the controls bound to them
  - get_chart:      One chart as figure JSON or PNG, with an optional selection
  - cohort_summary: The terminal summary as JSON

The server communicates using the Model Context Protocol (MCP) over stdio
transport. Logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolveConfig(config.Config{})
		if err != nil {
			return err
		}
		t, err := loadTable(cfg.DataPath)
		if err != nil {
			return err
		}
		src, err := mcpserver.NewSource(cfg.DataPath, t, cfg.Settings())
		if err != nil {
			return exitError(ExitRuntime, "hnviz: %v", err)
		}
		if err := mcpserver.Run(cmd.Context(), Version, src, &mcp.StdioTransport{}); err != nil {
			return exitError(ExitRuntime, "hnviz: mcp server failed (%v)", err)
		}
		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
}
