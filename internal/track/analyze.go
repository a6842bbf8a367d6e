package track

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// AnalysisKind selects how Analyze buckets tracked time.
type AnalysisKind string

const (
	// AnalysisSummary buckets hours by tag.
	AnalysisSummary AnalysisKind = "summary"
	// AnalysisDaily buckets hours by local calendar day of the start time.
	AnalysisDaily AnalysisKind = "daily"
	// AnalysisHourly buckets hours by local start hour, 0 through 23.
	AnalysisHourly AnalysisKind = "hourly"
)

// Analyze aggregates tracked hours for the query's window. Hidden
// records are excluded; a running record contributes zero hours.
func (s *Service) Analyze(ctx context.Context, kind AnalysisKind, q Query) (map[string]float64, error) {
	records, err := s.ListRecords(ctx, q)
	if err != nil {
		return nil, err
	}

	switch kind {
	case AnalysisSummary:
		return SummarizeByTag(records), nil
	case AnalysisDaily:
		return SummarizeByDay(records), nil
	case AnalysisHourly:
		return SummarizeByHour(records), nil
	}
	return nil, timetagger.NewValidationError(fmt.Sprintf("unknown analysis type %q", string(kind)))
}

// SummarizeTime reports hours per tag over the last windowDays days.
// A windowDays of 0 or less defaults to 7.
func (s *Service) SummarizeTime(ctx context.Context, windowDays int) (map[string]float64, error) {
	if windowDays <= 0 {
		windowDays = 7
	}
	now := s.now().Unix()
	return s.Analyze(ctx, AnalysisSummary, Query{Start: now - int64(windowDays)*86400, End: now})
}

// SummarizeByTag totals hours per tag. Every tag on a record is
// credited the record's full duration, so totals across tags can
// exceed wall-clock time. Records without tags count under "untagged".
func SummarizeByTag(records []timetagger.Record) map[string]float64 {
	totals := make(map[string]float64)
	for _, record := range records {
		hours, ok := recordHours(record)
		if !ok {
			continue
		}
		tags := ExtractTags(record.DS)
		if len(tags) == 0 {
			totals["untagged"] += hours
			continue
		}
		for _, tag := range tags {
			totals[tag] += hours
		}
	}
	return totals
}

// SummarizeByDay totals hours per local calendar day, keyed
// YYYY-MM-DD by the record's start time.
func SummarizeByDay(records []timetagger.Record) map[string]float64 {
	totals := make(map[string]float64)
	for _, record := range records {
		hours, ok := recordHours(record)
		if !ok {
			continue
		}
		day := time.Unix(record.T1, 0).Format("2006-01-02")
		totals[day] += hours
	}
	return totals
}

// SummarizeByHour totals hours per local start hour. All 24 buckets
// are present in the result, zero-filled, and a record's full
// duration is credited to the hour it started in.
func SummarizeByHour(records []timetagger.Record) map[string]float64 {
	totals := make(map[string]float64, 24)
	for hour := 0; hour < 24; hour++ {
		totals[strconv.Itoa(hour)] = 0
	}
	for _, record := range records {
		hours, ok := recordHours(record)
		if !ok {
			continue
		}
		hour := time.Unix(record.T1, 0).Hour()
		totals[strconv.Itoa(hour)] += hours
	}
	return totals
}

// recordHours returns a record's duration in hours. Hidden records
// and malformed spans with t2 before t1 are skipped.
func recordHours(record timetagger.Record) (float64, bool) {
	if record.Hidden() || record.T2 < record.T1 {
		return 0, false
	}
	return float64(record.T2-record.T1) / 3600, true
}
