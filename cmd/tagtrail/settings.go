// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/output"
	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// newSettingsCmd creates the settings command with its subcommands.
func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change TimeTagger settings",
		Long: `Show all TimeTagger settings, or set one by key.

Values are JSON: booleans, numbers, strings, arrays, and objects all
pass through unchanged. A bare word that is not valid JSON is treated
as a string.

Examples:
  tagtrail settings
  tagtrail settings set darkmode true
  tagtrail settings set pomodoro '{"enabled": true, "minutes": 25}'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSettingsList(cmd)
		},
	}
	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

// runSettingsList executes the settings command without a subcommand.
func runSettingsList(cmd *cobra.Command) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	settings, err := svc.GetSettings(cmd.Context())
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		items := make([]map[string]any, len(settings))
		for i, s := range settings {
			items[i] = map[string]any{"key": s.Key, "value": s.Value, "mt": s.MT}
		}
		return printer.Success(map[string]any{
			"count":    len(settings),
			"settings": items,
		})
	}

	if len(settings) == 0 {
		printer.Println("No settings stored.")
		return nil
	}

	rows := make([][]string, len(settings))
	for i, s := range settings {
		rows[i] = []string{s.Key, renderSettingValue(s.Value)}
	}
	printer.Table([]string{"KEY", "VALUE"}, rows)
	return nil
}

// newSettingsSetCmd creates the settings set subcommand.
func newSettingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a single setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettingsSet(cmd, args[0], args[1])
		},
	}
}

// runSettingsSet executes the settings set subcommand.
func runSettingsSet(cmd *cobra.Command, key, rawValue string) error {
	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())

	svc, _, err := newService()
	if err != nil {
		return fail(printer, err)
	}

	value := parseSettingValue(rawValue)
	setting, err := svc.UpdateSetting(cmd.Context(), key, value)
	if err != nil {
		return fail(printer, err)
	}

	if printer.IsJSON() {
		return printer.Success(map[string]any{
			"key":   setting.Key,
			"value": setting.Value,
			"mt":    setting.MT,
		})
	}
	printer.KeyValue("Set", setting.Key)
	printer.KeyValue("Value", renderSettingValue(setting.Value))
	return nil
}

// parseSettingValue interprets a CLI argument as JSON, falling back to
// a plain string for bare words like a color name.
func parseSettingValue(raw string) timetagger.SettingValue {
	var value timetagger.SettingValue
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return timetagger.String(raw)
	}
	return value
}

// renderSettingValue renders a setting value as compact JSON.
func renderSettingValue(value timetagger.SettingValue) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("<unrenderable: %v>", err)
	}
	return string(data)
}
