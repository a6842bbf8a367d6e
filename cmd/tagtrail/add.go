// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	var (
		startFlag string
		endFlag   string
	)
	cmd := &cobra.Command{
		Use:   "add <description>...",
		Short: "Add a completed time record",
		Long: `Add a record with an explicit time span. Tags are #words embedded
in the description.

Without --start the record starts now; without --end it ends at its
start (an ongoing record; prefer 'tagtrail start' for that).

Examples:
  tagtrail add "sprint planning #work #meeting" --start "2026-08-25 09:00" --end "2026-08-25 10:30"
  tagtrail add "code review #dev" --start 1756100000 --end 1756103600`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, strings.Join(args, " "), startFlag, endFlag)
		},
	}
	cmd.Flags().StringVar(&startFlag, "start", "", "Start time (Unix timestamp, RFC 3339, or YYYY-MM-DD [HH:MM])")
	cmd.Flags().StringVar(&endFlag, "end", "", "End time (same formats as --start)")
	return cmd
}

// runAdd executes the add command.
func runAdd(cmd *cobra.Command, description, start, end string) error {
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

	record, err := svc.CreateRecord(cmd.Context(), description, startTS, endTS)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(recordJSON(record))
	}
	printer.KeyValue("Added", record.Key)
	printer.KeyValue("Span", formatClock(record.T1)+" to "+formatClock(record.T2))
	printer.KeyValue("Hours", formatHours(recordHours(record)))
	return nil
}
