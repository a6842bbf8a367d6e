// Package mcp provides a Model Context Protocol server for tagtrail.
// It exposes TimeTagger operations as MCP tools and resources that any
// MCP-capable agent can use.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tagtrail/tagtrail/internal/track"
)

// ConnectionInfo describes the upstream TimeTagger instance for the
// config resource. The token is deliberately absent.
type ConnectionInfo struct {
	BaseURL string `json:"base_url"`
	Server  string `json:"server"`
}

// NewServer creates an MCP server with all tagtrail tools and
// resources registered.
func NewServer(version string, svc *track.Service, info ConnectionInfo) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "tagtrail",
		Version: version,
	}, nil)
	registerTools(server, svc)
	registerResources(server, svc, info)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for write tools. Nothing is
// ever deleted upstream; hiding a record is an additive edit.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all tagtrail tools to the server.
func registerTools(server *mcp.Server, svc *track.Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "get_records",
		Description: "Get time tracking records for a time range. Accepts explicit start/end Unix " +
			"timestamps, a named time_period (today, yesterday, week, month, hours:N), and an " +
			"optional tag filter. Defaults to the last 24 hours.",
		Annotations: readOnlyAnnotations(),
	}, handleGetRecords(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name: "manage_record",
		Description: "Create, update, hide, start, or stop a time tracking record. Use action=start " +
			"to begin a running timer and action=stop to close it. Hiding is TimeTagger's soft " +
			"delete; records are never removed.",
		Annotations: writeAnnotations(),
	}, handleManageRecord(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name: "get_updates_since",
		Description: "Get all records changed after a Unix timestamp, plus the server's current " +
			"time. Use since=0 for the full history.",
		Annotations: readOnlyAnnotations(),
	}, handleGetUpdatesSince(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_server_time",
		Description: "Get the TimeTagger server's current time as a Unix timestamp.",
		Annotations: readOnlyAnnotations(),
	}, handleGetServerTime(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name: "manage_settings",
		Description: "Get all TimeTagger settings (action=get, the default), or update a single " +
			"setting by key (action=update). Setting values may be any JSON shape (bool, number, " +
			"string, array, object).",
		Annotations: writeAnnotations(),
	}, handleManageSettings(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name: "analyze_time",
		Description: "Aggregate tracked hours by tag (summary), by calendar day (daily), or by " +
			"start hour (hourly) over a time period, with an optional tag filter.",
		Annotations: readOnlyAnnotations(),
	}, handleAnalyzeTime(svc))
}
