// Package main provides the entry point for the tagtrail CLI.
package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tagtrail/tagtrail/internal/config"
	"github.com/tagtrail/tagtrail/internal/output"
	"github.com/tagtrail/tagtrail/internal/timetagger"
	"github.com/tagtrail/tagtrail/internal/track"
)

// newService loads the configuration and builds the service stack
// shared by every command.
func newService() (*track.Service, *timetagger.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	client, err := timetagger.New(cfg.BaseURL, cfg.Token)
	if err != nil {
		return nil, nil, err
	}
	return track.NewService(client), client, nil
}

// asExitError maps domain errors onto CLI exit codes:
// validation and unknown-key errors are the user's (1), configuration
// and upstream failures are the system's (2), and a write the server
// declined is a rejection (3).
func asExitError(err error) *output.ExitError {
	if err == nil {
		return nil
	}

	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	var (
		validationErr *timetagger.ValidationError
		notFoundErr   *timetagger.NotFoundError
		configErr     *timetagger.ConfigError
		upstreamErr   *timetagger.UpstreamError
		partialErr    *timetagger.PartialAcceptanceError
	)
	switch {
	case errors.As(err, &validationErr), errors.As(err, &notFoundErr):
		return output.NewUserError(err.Error())
	case errors.As(err, &configErr), errors.As(err, &upstreamErr):
		return output.NewSystemErrorWithCause(err.Error(), err)
	case errors.As(err, &partialErr):
		return output.NewRejectedError(err.Error())
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// fail prints the error in the printer's mode and returns the mapped
// exit error for cobra to propagate.
func fail(printer *output.Printer, err error) error {
	exitErr := asExitError(err)
	printer.Error(exitErr)
	return exitErr
}

// parseTimeFlag parses a --start/--end style flag value: a Unix
// timestamp, or a local time in RFC 3339 or "2006-01-02 15:04" form.
// Empty means unset and yields 0.
func parseTimeFlag(value string) (int64, error) {
	if value == "" {
		return 0, nil
	}

	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ts, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Unix(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t.Unix(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t.Unix(), nil
	}
	return 0, timetagger.NewValidationError(
		fmt.Sprintf("cannot parse time %q; use a Unix timestamp, RFC 3339, or YYYY-MM-DD [HH:MM]", value))
}

// formatClock renders a Unix timestamp as local "2006-01-02 15:04".
func formatClock(ts int64) string {
	return time.Unix(ts, 0).Format("2006-01-02 15:04")
}

// formatHours renders a duration in hours with two decimals.
func formatHours(hours float64) string {
	return fmt.Sprintf("%.2fh", hours)
}

// recordHours returns a record's span in hours, zero while running.
func recordHours(r timetagger.Record) float64 {
	if r.T2 <= r.T1 {
		return 0
	}
	return float64(r.T2-r.T1) / 3600
}

// recordJSON flattens a record for --json output.
func recordJSON(r timetagger.Record) map[string]any {
	return map[string]any{
		"key":     r.Key,
		"t1":      r.T1,
		"t2":      r.T2,
		"ds":      r.DS,
		"tags":    track.ExtractTags(r.DS),
		"running": r.Running(),
		"hidden":  r.Hidden(),
		"hours":   recordHours(r),
	}
}
