package timetagger

import (
	"fmt"
	"strings"
)

// ConfigError indicates missing or malformed base configuration
// (API URL, token). It is fatal at startup; nothing is retried.
type ConfigError struct {
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// NewConfigError creates a ConfigError with the given reason.
func NewConfigError(reason string) *ConfigError {
	return &ConfigError{Reason: reason}
}

// UpstreamError is a non-200 response from the TimeTagger API.
// The status code and response body are surfaced verbatim to the
// caller; this layer never retries.
type UpstreamError struct {
	Status int
	Body   string
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("timetagger API error (status %d): %s", e.Status, e.Body)
}

// ValidationError indicates the caller supplied invalid or missing
// arguments. It is surfaced before any network call is made.
type ValidationError struct {
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "invalid arguments: " + e.Reason
}

// NewValidationError creates a ValidationError with the given reason.
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

// NotFoundError indicates a record key that could not be resolved
// from the full history scan.
type NotFoundError struct {
	Key string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record with key %q not found", e.Key)
}

// PartialAcceptanceError indicates a 200 response whose accepted set
// omits the submitted key. It distinguishes "sent but rejected by the
// server" from a transport failure.
type PartialAcceptanceError struct {
	Key    string
	Errors []string
}

// Error implements the error interface.
func (e *PartialAcceptanceError) Error() string {
	reasons := "unknown error"
	if len(e.Errors) > 0 {
		reasons = strings.Join(e.Errors, ", ")
	}
	return fmt.Sprintf("server did not accept %q: %s", e.Key, reasons)
}
