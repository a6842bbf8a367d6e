// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tagtrail/tagtrail/internal/config"
	"github.com/tagtrail/tagtrail/internal/envfile"
	"github.com/tagtrail/tagtrail/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor reports whether human output should carry ANSI styling.
func useColor(cmd *cobra.Command) bool {
	return output.IsTTY(cmd.OutOrStdout())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the tagtrail CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tagtrail",
		Short: "TimeTagger from the command line and over MCP",
		Long: `Tagtrail - a TimeTagger client for humans and agents.

Tagtrail talks to a TimeTagger instance over its REST API and exposes
the same operations two ways:
  - CLI commands for tracking, querying, and analyzing time
  - An MCP server (tagtrail serve) for any MCP-capable agent

Connection is configured via TIMETAGGER_API_URL and TIMETAGGER_API_KEY,
or a config.yaml in the tagtrail config directory.

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// If --json flag is set but no subcommand, output JSON error
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'tagtrail --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Load .env.local (then .env) for the API token that can't be
	// exported to env. Environment variables always take precedence.
	cmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		loadEnvFiles()
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local   (per-directory override, gitignored)
//  2. $CWD/.env         (per-directory)
//  3. ~/.config/tagtrail/env (global fallback)
func loadEnvFiles() {
	_ = envfile.Load(".env.local")
	_ = envfile.Load(".env")

	if dir := config.Dir(); dir != "" {
		_ = envfile.Load(filepath.Join(dir, "env"))
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "track", Title: "Tracking Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "query", Title: "Query Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	// Tracking commands: add, start, stop, hide
	addGroupedCommand(cmd, newAddCmd(), "track")
	addGroupedCommand(cmd, newStartCmd(), "track")
	addGroupedCommand(cmd, newStopCmd(), "track")
	addGroupedCommand(cmd, newHideCmd(), "track")

	// Query commands: records, summary, status
	addGroupedCommand(cmd, newRecordsCmd(), "query")
	addGroupedCommand(cmd, newSummaryCmd(), "query")
	addGroupedCommand(cmd, newStatusCmd(), "query")

	// Admin commands: settings, serve
	addGroupedCommand(cmd, newSettingsCmd(), "admin")
	addGroupedCommand(cmd, newServeCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
