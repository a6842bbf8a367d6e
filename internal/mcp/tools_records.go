package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tagtrail/tagtrail/internal/timetagger"
	"github.com/tagtrail/tagtrail/internal/track"
)

// --- get_records tool ---

// GetRecordsInput is the input for the get_records tool.
type GetRecordsInput struct {
	StartTime  int64  `json:"start_time,omitempty"  jsonschema:"window start, Unix seconds (default 24 hours ago)"`
	EndTime    int64  `json:"end_time,omitempty"    jsonschema:"window end, Unix seconds (default now)"`
	TimePeriod string `json:"time_period,omitempty" jsonschema:"named period: today, yesterday, week, month, or hours:N; overrides start/end"`
	TagFilter  string `json:"tag_filter,omitempty"  jsonschema:"only records mentioning this tag (leading # optional)"`
}

// GetRecordsOutput is the output for the get_records tool.
type GetRecordsOutput struct {
	Count   int             `json:"count"             jsonschema:"number of records returned"`
	Records []RecordSummary `json:"records,omitempty" jsonschema:"records overlapping the window"`
}

func handleGetRecords(svc *track.Service) mcp.ToolHandlerFor[GetRecordsInput, GetRecordsOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetRecordsInput) (*mcp.CallToolResult, GetRecordsOutput, error) {
		records, err := svc.ListRecords(ctx, track.Query{
			Start:  input.StartTime,
			End:    input.EndTime,
			Period: input.TimePeriod,
			Tag:    input.TagFilter,
		})
		if err != nil {
			return nil, GetRecordsOutput{}, err
		}

		return nil, GetRecordsOutput{
			Count:   len(records),
			Records: toRecordSummaries(records),
		}, nil
	}
}

// --- manage_record tool ---

// Record management actions.
const (
	actionCreate = "create"
	actionUpdate = "update"
	actionHide   = "hide"
	actionStart  = "start"
	actionStop   = "stop"
)

// ManageRecordInput is the input for the manage_record tool.
type ManageRecordInput struct {
	Action      string  `json:"action"                jsonschema:"one of: create, update, hide, start, stop"`
	Key         string  `json:"key,omitempty"         jsonschema:"record key; required for update, hide, and stop"`
	Description *string `json:"description,omitempty" jsonschema:"record description with #tags; required for create and start"`
	StartTime   *int64  `json:"start_time,omitempty"  jsonschema:"start time, Unix seconds (create: default now)"`
	EndTime     *int64  `json:"end_time,omitempty"    jsonschema:"end time, Unix seconds (create: default equals start)"`
}

// ManageRecordOutput is the output for the manage_record tool.
type ManageRecordOutput struct {
	Action string        `json:"action" jsonschema:"the action performed"`
	Record RecordSummary `json:"record" jsonschema:"the record after the action"`
}

func handleManageRecord(svc *track.Service) mcp.ToolHandlerFor[ManageRecordInput, ManageRecordOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ManageRecordInput) (*mcp.CallToolResult, ManageRecordOutput, error) {
		var record timetagger.Record
		var err error

		switch input.Action {
		case actionCreate:
			var ds string
			if input.Description != nil {
				ds = *input.Description
			}
			var t1, t2 int64
			if input.StartTime != nil {
				t1 = *input.StartTime
			}
			if input.EndTime != nil {
				t2 = *input.EndTime
			}
			record, err = svc.CreateRecord(ctx, ds, t1, t2)

		case actionUpdate:
			record, err = svc.UpdateRecord(ctx, input.Key, track.UpdateOptions{
				Description: input.Description,
				T1:          input.StartTime,
				T2:          input.EndTime,
			})

		case actionHide:
			record, err = svc.HideRecord(ctx, input.Key)

		case actionStart:
			var ds string
			if input.Description != nil {
				ds = *input.Description
			}
			record, err = svc.StartTimer(ctx, ds)

		case actionStop:
			record, err = svc.StopTimer(ctx, input.Key)

		default:
			err = timetagger.NewValidationError(fmt.Sprintf("unknown action %q", input.Action))
		}

		if err != nil {
			return nil, ManageRecordOutput{}, err
		}
		return nil, ManageRecordOutput{
			Action: input.Action,
			Record: toRecordSummary(record),
		}, nil
	}
}

// --- get_updates_since tool ---

// GetUpdatesSinceInput is the input for the get_updates_since tool.
type GetUpdatesSinceInput struct {
	Since int64 `json:"since" jsonschema:"watermark, Unix seconds; 0 returns the full history"`
}

// GetUpdatesSinceOutput is the output for the get_updates_since tool.
type GetUpdatesSinceOutput struct {
	Count      int             `json:"count"             jsonschema:"number of changed records"`
	Records    []RecordSummary `json:"records,omitempty" jsonschema:"records changed after the watermark"`
	ServerTime float64         `json:"server_time"       jsonschema:"server's current time, Unix seconds"`
}

func handleGetUpdatesSince(svc *track.Service) mcp.ToolHandlerFor[GetUpdatesSinceInput, GetUpdatesSinceOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GetUpdatesSinceInput) (*mcp.CallToolResult, GetUpdatesSinceOutput, error) {
		set, err := svc.UpdatesSince(ctx, input.Since)
		if err != nil {
			return nil, GetUpdatesSinceOutput{}, err
		}

		return nil, GetUpdatesSinceOutput{
			Count:      len(set.Records),
			Records:    toRecordSummaries(set.Records),
			ServerTime: set.ServerTime,
		}, nil
	}
}

// --- get_server_time tool ---

// GetServerTimeInput is the input for the get_server_time tool (no parameters needed).
type GetServerTimeInput struct{}

// GetServerTimeOutput is the output for the get_server_time tool.
type GetServerTimeOutput struct {
	ServerTime float64 `json:"server_time" jsonschema:"server's current time, Unix seconds"`
}

func handleGetServerTime(svc *track.Service) mcp.ToolHandlerFor[GetServerTimeInput, GetServerTimeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GetServerTimeInput) (*mcp.CallToolResult, GetServerTimeOutput, error) {
		serverTime, err := svc.ServerTime(ctx)
		if err != nil {
			return nil, GetServerTimeOutput{}, err
		}
		return nil, GetServerTimeOutput{ServerTime: serverTime}, nil
	}
}
