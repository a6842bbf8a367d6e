package mcp

import (
	"github.com/tagtrail/tagtrail/internal/timetagger"
	"github.com/tagtrail/tagtrail/internal/track"
)

// --- Shared types ---

// RecordSummary is a record reshaped for tool output: the wire fields
// plus the derived state an agent otherwise has to compute itself.
type RecordSummary struct {
	Key         string   `json:"key"            jsonschema:"record key (8 hex chars)"`
	T1          int64    `json:"t1"             jsonschema:"start time, Unix seconds"`
	T2          int64    `json:"t2"             jsonschema:"end time, Unix seconds; equal to t1 while running"`
	Description string   `json:"ds"             jsonschema:"description, may embed #tags"`
	Tags        []string `json:"tags,omitempty" jsonschema:"tags extracted from the description"`
	Running     bool     `json:"running"        jsonschema:"true if this is an in-progress timer"`
	Hidden      bool     `json:"hidden"         jsonschema:"true if the record is soft-deleted"`
	Hours       float64  `json:"hours"          jsonschema:"duration in hours; 0 while running"`
}

func toRecordSummary(r timetagger.Record) RecordSummary {
	hours := float64(r.T2-r.T1) / 3600
	if hours < 0 {
		hours = 0
	}
	return RecordSummary{
		Key:         r.Key,
		T1:          r.T1,
		T2:          r.T2,
		Description: r.DS,
		Tags:        track.ExtractTags(r.DS),
		Running:     r.Running(),
		Hidden:      r.Hidden(),
		Hours:       hours,
	}
}

func toRecordSummaries(records []timetagger.Record) []RecordSummary {
	summaries := make([]RecordSummary, len(records))
	for i, r := range records {
		summaries[i] = toRecordSummary(r)
	}
	return summaries
}
