package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tagtrail/tagtrail/internal/track"
)

// registerResources adds MCP resources and resource templates to the
// server.
func registerResources(server *mcp.Server, svc *track.Service, info ConnectionInfo) {
	server.AddResource(&mcp.Resource{
		URI:         "timetagger://config",
		Name:        "config",
		Description: "The configured TimeTagger instance (base URL and server, never the token)",
		MIMEType:    "application/json",
	}, handleConfigResource(info))

	server.AddResource(&mcp.Resource{
		URI:         "timetagger://settings",
		Name:        "settings",
		Description: "All TimeTagger settings",
		MIMEType:    "application/json",
	}, handleSettingsResource(svc))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "timetagger://records/{timerange}",
		Name:        "records",
		Description: "Records overlapping a timerange given as two Unix timestamps, e.g. timetagger://records/1700000000-1700086400",
		MIMEType:    "application/json",
	}, handleRecordsResource(svc))

	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "timetagger://updates/{since}",
		Name:        "updates",
		Description: "Records changed after a Unix timestamp, plus the server time; 0 for the full history",
		MIMEType:    "application/json",
	}, handleUpdatesResource(svc))
}

// jsonResource wraps a value as a single-content JSON resource result.
func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func handleConfigResource(info ConnectionInfo) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		return jsonResource(req.Params.URI, info)
	}
}

func handleSettingsResource(svc *track.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		settings, err := svc.GetSettings(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching settings: %w", err)
		}
		views, err := toSettingViews(settings)
		if err != nil {
			return nil, err
		}
		return jsonResource(req.Params.URI, views)
	}
}

func handleRecordsResource(svc *track.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		raw := strings.TrimPrefix(req.Params.URI, "timetagger://records/")
		t1, t2, ok := parseTimerange(raw)
		if !ok {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		records, err := svc.ListRecords(ctx, track.Query{Start: t1, End: t2})
		if err != nil {
			return nil, fmt.Errorf("fetching records: %w", err)
		}
		return jsonResource(req.Params.URI, toRecordSummaries(records))
	}
}

func handleUpdatesResource(svc *track.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		raw := strings.TrimPrefix(req.Params.URI, "timetagger://updates/")
		since, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || since < 0 {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		set, err := svc.UpdatesSince(ctx, since)
		if err != nil {
			return nil, fmt.Errorf("fetching updates: %w", err)
		}
		return jsonResource(req.Params.URI, GetUpdatesSinceOutput{
			Count:      len(set.Records),
			Records:    toRecordSummaries(set.Records),
			ServerTime: set.ServerTime,
		})
	}
}

// parseTimerange splits "T1-T2" into its two Unix timestamps.
func parseTimerange(s string) (int64, int64, bool) {
	left, right, found := strings.Cut(s, "-")
	if !found {
		return 0, 0, false
	}
	t1, err1 := strconv.ParseInt(left, 10, 64)
	t2, err2 := strconv.ParseInt(right, 10, 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return t1, t2, true
}
