// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
)

// newHideCmd creates the hide command.
func newHideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hide <key>",
		Short: "Hide (soft-delete) a record",
		Long: `Hide a record. TimeTagger never deletes records over this API;
hiding prefixes the description with HIDDEN, which every TimeTagger
client treats as deleted. Hiding an already-hidden record is a no-op.

Examples:
  tagtrail hide 3f9c01ab`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHide(cmd, args[0])
		},
	}
}

// runHide executes the hide command.
func runHide(cmd *cobra.Command, key string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	record, err := svc.HideRecord(cmd.Context(), key)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(recordJSON(record))
	}
	printer.KeyValue("Hidden", record.Key)
	printer.KeyValue("Description", record.DS)
	return nil
}
