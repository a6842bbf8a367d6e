// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	tagtrailmcp "github.com/tagtrail/tagtrail/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run tagtrail as a Model Context Protocol (MCP) server over stdio.

This exposes TimeTagger operations as MCP tools and resources that any
MCP-capable agent environment can use (Claude Code, Cursor, Windsurf,
Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "timetagger": {
        "command": "tagtrail",
        "args": ["serve"],
        "env": {
          "TIMETAGGER_API_URL": "https://timetagger.example.com/timetagger/api/v2",
          "TIMETAGGER_API_KEY": "..."
        }
      }
    }
  }

Available tools: get_records, manage_record, get_updates_since,
get_server_time, manage_settings, analyze_time`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, client, err := newService()
			if err != nil {
				return asExitError(err)
			}
			server := tagtrailmcp.NewServer(buildVersion(), svc, tagtrailmcp.ConnectionInfo{
				BaseURL: client.BaseURL(),
				Server:  client.Server(),
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
