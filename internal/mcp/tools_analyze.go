package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/tagtrail/tagtrail/internal/track"
)

// --- analyze_time tool ---

// AnalyzeTimeInput is the input for the analyze_time tool.
type AnalyzeTimeInput struct {
	AnalysisType string `json:"analysis_type,omitempty" jsonschema:"one of: summary, daily, hourly (default summary)"`
	TimePeriod   string `json:"time_period,omitempty"   jsonschema:"named period: today, yesterday, week, month, or hours:N (default week)"`
	TagFilter    string `json:"tag_filter,omitempty"    jsonschema:"only analyze records mentioning this tag"`
}

// AnalyzeTimeOutput is the output for the analyze_time tool.
type AnalyzeTimeOutput struct {
	AnalysisType string             `json:"analysis_type" jsonschema:"the analysis performed"`
	Totals       map[string]float64 `json:"totals"        jsonschema:"hours per bucket: tag, day, or hour depending on the analysis"`
}

func handleAnalyzeTime(svc *track.Service) mcp.ToolHandlerFor[AnalyzeTimeInput, AnalyzeTimeOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AnalyzeTimeInput) (*mcp.CallToolResult, AnalyzeTimeOutput, error) {
		kind := track.AnalysisKind(input.AnalysisType)
		if input.AnalysisType == "" {
			kind = track.AnalysisSummary
		}
		period := input.TimePeriod
		if period == "" {
			period = track.PeriodWeek
		}

		totals, err := svc.Analyze(ctx, kind, track.Query{
			Period: period,
			Tag:    input.TagFilter,
		})
		if err != nil {
			return nil, AnalyzeTimeOutput{}, err
		}

		return nil, AnalyzeTimeOutput{
			AnalysisType: string(kind),
			Totals:       totals,
		}, nil
	}
}
