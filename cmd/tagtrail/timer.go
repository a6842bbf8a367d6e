// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
)

// newStartCmd creates the start command.
func newStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start <description>...",
		Short: "Start a running timer",
		Long: `Start a timer: a record whose start and end are both now. The end
time stays pinned to the start until 'tagtrail stop' closes it.

Examples:
  tagtrail start "standup #work #meeting"
  tagtrail start "#focus deep work"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStart(cmd, strings.Join(args, " "))
		},
	}
}

// runStart executes the start command.
func runStart(cmd *cobra.Command, description string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	record, err := svc.StartTimer(cmd.Context(), description)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(recordJSON(record))
	}
	printer.KeyValue("Started", record.Key)
	printer.KeyValue("At", formatClock(record.T1))
	printer.KeyValue("Description", record.DS)
	return nil
}

// newStopCmd creates the stop command.
func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop <key>",
		Short: "Stop a running timer",
		Long: `Stop a running timer by setting its end time to now.

The key is the 8-character record key shown by 'tagtrail records' and
'tagtrail status'.

Examples:
  tagtrail stop 3f9c01ab`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStop(cmd, args[0])
		},
	}
}

// runStop executes the stop command.
func runStop(cmd *cobra.Command, key string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	record, err := svc.StopTimer(cmd.Context(), key)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(recordJSON(record))
	}
	printer.KeyValue("Stopped", record.Key)
	printer.KeyValue("Hours", formatHours(recordHours(record)))
	printer.KeyValue("Description", record.DS)
	return nil
}
