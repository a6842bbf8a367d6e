// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
	"github.com/tagtrail/tagtrail/internal/track"
)

// newSummaryCmd creates the summary command.
func newSummaryCmd() *cobra.Command {
	var (
		periodFlag string
		byFlag     string
		tagFlag    string
	)
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Aggregate tracked hours",
		Long: `Aggregate tracked hours over a time window.

By default hours are bucketed per tag; every tag on a record is
credited the record's full duration, so tag totals can overlap.
Records without tags count under "untagged". Hidden records are
excluded.

Examples:
  tagtrail summary                       # Per tag, last 7 days
  tagtrail summary --period today        # Per tag, since midnight
  tagtrail summary --by daily --period month
  tagtrail summary --by hourly --period today
  tagtrail summary --tag work --period week`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSummary(cmd, periodFlag, byFlag, tagFlag)
		},
	}
	cmd.Flags().StringVar(&periodFlag, "period", "week", "Named period: today, yesterday, week, month, hours:N")
	cmd.Flags().StringVar(&byFlag, "by", "summary", "Bucketing: summary (per tag), daily, or hourly")
	cmd.Flags().StringVar(&tagFlag, "tag", "", "Only analyze records mentioning this tag")
	return cmd
}

// runSummary executes the summary command.
func runSummary(cmd *cobra.Command, period, by, tag string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	totals, err := svc.Analyze(cmd.Context(), track.AnalysisKind(by), track.Query{
		Period: period,
		Tag:    tag,
	})
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"by":     by,
			"totals": totals,
		})
	}

	if len(totals) == 0 {
		printer.Println("Nothing tracked in this window.")
		return nil
	}
	printTotalsTable(printer, track.AnalysisKind(by), totals)
	return nil
}

// printTotalsTable renders totals sorted by hours descending for the
// tag summary and by bucket name for daily/hourly, where the key
// order is chronological.
func printTotalsTable(printer *output.Printer, kind track.AnalysisKind, totals map[string]float64) {
	buckets := make([]string, 0, len(totals))
	for bucket := range totals {
		buckets = append(buckets, bucket)
	}

	if kind == track.AnalysisSummary {
		sort.Slice(buckets, func(i, j int) bool {
			if totals[buckets[i]] != totals[buckets[j]] {
				return totals[buckets[i]] > totals[buckets[j]]
			}
			return buckets[i] < buckets[j]
		})
	} else {
		sort.Slice(buckets, func(i, j int) bool {
			a, b := buckets[i], buckets[j]
			if len(a) != len(b) {
				return len(a) < len(b)
			}
			return a < b
		})
	}

	header := "TAG"
	switch kind {
	case track.AnalysisDaily:
		header = "DAY"
	case track.AnalysisHourly:
		header = "HOUR"
	}

	rows := make([][]string, len(buckets))
	for i, bucket := range buckets {
		rows[i] = []string{bucket, formatHours(totals[bucket])}
	}
	printer.Table([]string{header, "HOURS"}, rows)
}
