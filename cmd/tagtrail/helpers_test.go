package main

import (
	"errors"
	"testing"
	"time"

	"github.com/tagtrail/tagtrail/internal/output"
	"github.com/tagtrail/tagtrail/internal/timetagger"
)

func TestAsExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"nil", nil, output.ExitSuccess},
		{"validation", timetagger.NewValidationError("bad input"), output.ExitUserError},
		{"not found", &timetagger.NotFoundError{Key: "x"}, output.ExitUserError},
		{"config", timetagger.NewConfigError("no token"), output.ExitSystemError},
		{"upstream", &timetagger.UpstreamError{Status: 500, Body: "boom"}, output.ExitSystemError},
		{"partial acceptance", &timetagger.PartialAcceptanceError{Key: "x"}, output.ExitRejected},
		{"untyped", errors.New("mystery"), output.ExitSystemError},
		{"already exit error", output.NewUserError("as is"), output.ExitUserError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitErr := asExitError(tt.err)
			if tt.err == nil {
				if exitErr != nil {
					t.Fatalf("expected nil for nil error, got %v", exitErr)
				}
				return
			}
			if exitErr.Code != tt.wantCode {
				t.Errorf("code = %d, want %d", exitErr.Code, tt.wantCode)
			}
		})
	}
}

func TestAsExitError_PreservesCause(t *testing.T) {
	cause := &timetagger.UpstreamError{Status: 503, Body: "down"}
	exitErr := asExitError(cause)

	var uerr *timetagger.UpstreamError
	if !errors.As(exitErr, &uerr) {
		t.Error("the upstream error should survive the mapping for errors.As")
	}
}

func TestParseTimeFlag(t *testing.T) {
	localNoon := time.Date(2026, 8, 25, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		in   string
		want int64
	}{
		{"empty", "", 0},
		{"unix", "1756100000", 1756100000},
		{"rfc3339", "2026-08-25T12:00:00Z", time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC).Unix()},
		{"date time", "2026-08-25 12:00", localNoon.Unix()},
		{"date only", "2026-08-25", time.Date(2026, 8, 25, 0, 0, 0, 0, time.Local).Unix()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeFlag(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("parseTimeFlag(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTimeFlag_Invalid(t *testing.T) {
	_, err := parseTimeFlag("next tuesday")
	var verr *timetagger.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestRecordHours(t *testing.T) {
	if got := recordHours(timetagger.Record{T1: 0, T2: 5400}); got != 1.5 {
		t.Errorf("hours = %v, want 1.5", got)
	}
	if got := recordHours(timetagger.Record{T1: 100, T2: 100}); got != 0 {
		t.Errorf("running record hours = %v, want 0", got)
	}
}
