// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
	"github.com/tagtrail/tagtrail/internal/timetagger"
	"github.com/tagtrail/tagtrail/internal/track"
)

// newStatusCmd creates the status command.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connection and timer state",
		Long: `Show the configured TimeTagger instance, its current server time,
and any running timers.

Examples:
  tagtrail status
  tagtrail status --json`,
		RunE: runStatusCmd,
	}
}

// runStatusCmd executes the status command.
func runStatusCmd(cmd *cobra.Command, _ []string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, client, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	serverTime, err := svc.ServerTime(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	// Running timers show up in the recent window; a timer left
	// running for longer than a day is out of scope here.
	records, err := svc.ListRecords(cmd.Context(), track.Query{})
	if err != nil {
		return fail(printer, err)
	}
	running := runningRecords(records)

	if printer.IsJSON() {
		timers := make([]map[string]any, len(running))
		for i, r := range running {
			timers[i] = recordJSON(r)
		}
		return printer.Success(map[string]any{
			"server":      client.Server(),
			"base_url":    client.BaseURL(),
			"server_time": serverTime,
			"running":     timers,
		})
	}

	printer.KeyValue("Server", client.Server())
	printer.KeyValue("Server time", fmt.Sprintf("%.0f", serverTime))

	if len(running) == 0 {
		printer.KeyValue("Timers", "none running")
		return nil
	}
	printer.Println()
	printRecordsTable(printer, running)
	return nil
}

// runningRecords keeps only visible, in-progress records.
func runningRecords(records []timetagger.Record) []timetagger.Record {
	kept := make([]timetagger.Record, 0, len(records))
	for _, r := range records {
		if r.Running() && !r.Hidden() {
			kept = append(kept, r)
		}
	}
	return kept
}
