// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
	"github.com/tagtrail/tagtrail/internal/timetagger"
	"github.com/tagtrail/tagtrail/internal/track"
)

// newRecordsCmd creates the records command.
func newRecordsCmd() *cobra.Command {
	var (
		periodFlag string
		startFlag  string
		endFlag    string
		tagFlag    string
		allFlag    bool
	)
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List time tracking records",
		Long: `List records in a time window, newest first.

The window defaults to the last 24 hours. Use --period for a named
window, or --start/--end for an explicit one. Hidden (soft-deleted)
records are skipped unless --all is given.

Examples:
  tagtrail records                      # Last 24 hours
  tagtrail records --period today       # Since local midnight
  tagtrail records --period hours:8     # Rolling 8-hour window
  tagtrail records --tag work           # Only records mentioning #work
  tagtrail records --json               # Structured output for scripting`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRecords(cmd, periodFlag, startFlag, endFlag, tagFlag, allFlag)
		},
	}
	cmd.Flags().StringVar(&periodFlag, "period", "", "Named period: today, yesterday, week, month, hours:N")
	cmd.Flags().StringVar(&startFlag, "start", "", "Window start (Unix timestamp, RFC 3339, or YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&endFlag, "end", "", "Window end (same formats as --start)")
	cmd.Flags().StringVar(&tagFlag, "tag", "", "Only records mentioning this tag")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Include hidden records")
	return cmd
}

// runRecords executes the records command.
func runRecords(cmd *cobra.Command, period, start, end, tag string, all bool) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	startTS, err := parseTimeFlag(start)
	if err != nil {
		return fail(printer, err)
	}
	endTS, err := parseTimeFlag(end)
	if err != nil {
		return fail(printer, err)
	}

	records, err := svc.ListRecords(cmd.Context(), track.Query{
		Start:  startTS,
		End:    endTS,
		Period: period,
		Tag:    tag,
	})
	if err != nil {
		return fail(printer, err)
	}

	if !all {
		records = visibleRecords(records)
	}
	sortRecordsNewestFirst(records)

	if printer.IsJSON() {
		items := make([]map[string]any, len(records))
		for i, r := range records {
			items[i] = recordJSON(r)
		}
		return printer.Success(map[string]any{
			"count":   len(records),
			"records": items,
		})
	}

	if len(records) == 0 {
		printer.Println("No records in this window.")
		return nil
	}
	printRecordsTable(printer, records)
	return nil
}

// visibleRecords drops hidden records.
func visibleRecords(records []timetagger.Record) []timetagger.Record {
	kept := make([]timetagger.Record, 0, len(records))
	for _, r := range records {
		if !r.Hidden() {
			kept = append(kept, r)
		}
	}
	return kept
}

// sortRecordsNewestFirst orders records by start time descending.
func sortRecordsNewestFirst(records []timetagger.Record) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].T1 > records[j].T1
	})
}

// printRecordsTable renders records as an aligned table.
func printRecordsTable(printer *output.Printer, records []timetagger.Record) {
	rows := make([][]string, len(records))
	for i, r := range records {
		state := formatHours(recordHours(r))
		if r.Running() {
			state = "running"
		}
		rows[i] = []string{r.Key, formatClock(r.T1), state, r.DS}
	}
	printer.Table([]string{"KEY", "START", "HOURS", "DESCRIPTION"}, rows)
}
