// Package track implements the tool layer on top of the TimeTagger
// API client: record and timer lifecycle, tag search, settings, and
// time aggregation. Every operation is a pure composition of client
// calls plus local filtering; nothing is cached between invocations.
package track

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// Gateway defines the TimeTagger API operations the service composes.
// *timetagger.Client satisfies it; tests inject fakes.
type Gateway interface {
	FetchRecords(ctx context.Context, t1, t2 int64) ([]timetagger.Record, error)
	PutRecords(ctx context.Context, records []timetagger.Record) (timetagger.PutResult, error)
	FetchSettings(ctx context.Context) ([]timetagger.Setting, error)
	PutSettings(ctx context.Context, settings []timetagger.Setting) (timetagger.PutResult, error)
	FetchUpdatesSince(ctx context.Context, since int64) (timetagger.UpdateSet, error)
}

// Service exposes the record, timer, settings, and analysis
// operations. It holds no state beyond the gateway. UpdateRecord's
// read-then-write is not atomic with respect to concurrent writers;
// the upstream API offers no conditional writes.
type Service struct {
	gw     Gateway
	now    func() time.Time
	newKey func() string
}

// NewService creates a service on top of the given gateway.
func NewService(gw Gateway) *Service {
	return &Service{
		gw:     gw,
		now:    time.Now,
		newKey: newRecordKey,
	}
}

// newRecordKey generates a fresh record key: the first 8 hex chars of
// a random UUID, matching the convention of other TimeTagger clients.
func newRecordKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// CreateRecord creates a record with the given description and times.
// A start of 0 means now; an end of 0 means equal to the start (an
// ongoing record). Returns the record as sent to the server.
func (s *Service) CreateRecord(ctx context.Context, ds string, t1, t2 int64) (timetagger.Record, error) {
	if ds == "" {
		return timetagger.Record{}, timetagger.NewValidationError("description is required to create a record")
	}

	now := s.now().Unix()
	if t1 == 0 {
		t1 = now
	}
	if t2 == 0 {
		t2 = t1
	}
	if t2 < t1 {
		return timetagger.Record{}, timetagger.NewValidationError("end time must not be before start time")
	}

	record := timetagger.Record{
		Key: s.newKey(),
		T1:  t1,
		T2:  t2,
		DS:  ds,
		MT:  now,
	}

	if err := s.putRecord(ctx, record); err != nil {
		return timetagger.Record{}, err
	}
	return record, nil
}

// ResolveRecord finds a record's current field values by key. The
// upstream API has no single-record lookup, so this is a full-history
// scan via the updates endpoint.
func (s *Service) ResolveRecord(ctx context.Context, key string) (timetagger.Record, error) {
	if key == "" {
		return timetagger.Record{}, timetagger.NewValidationError("record key is required")
	}

	set, err := s.gw.FetchUpdatesSince(ctx, 0)
	if err != nil {
		return timetagger.Record{}, err
	}

	for _, record := range set.Records {
		if record.Key == key {
			return record, nil
		}
	}
	return timetagger.Record{}, &timetagger.NotFoundError{Key: key}
}

// UpdateOptions selects which record fields an update replaces.
// Nil fields keep their current server-side values.
type UpdateOptions struct {
	Description *string
	T1          *int64
	T2          *int64
}

// UpdateRecord merges the provided fields into the record's current
// state and writes it back. With no options set it is a no-op write:
// the result equals the current record except for the modified time.
func (s *Service) UpdateRecord(ctx context.Context, key string, opts UpdateOptions) (timetagger.Record, error) {
	current, err := s.ResolveRecord(ctx, key)
	if err != nil {
		return timetagger.Record{}, err
	}

	updated := timetagger.Record{
		Key: key,
		T1:  current.T1,
		T2:  current.T2,
		DS:  current.DS,
		MT:  s.now().Unix(),
	}
	if opts.T1 != nil {
		updated.T1 = *opts.T1
	}
	if opts.T2 != nil {
		updated.T2 = *opts.T2
	}
	if opts.Description != nil {
		updated.DS = *opts.Description
	}

	if err := s.putRecord(ctx, updated); err != nil {
		return timetagger.Record{}, err
	}
	return updated, nil
}

// HideRecord soft-deletes a record by prefixing its description with
// the HIDDEN marker. Hiding an already-hidden record leaves the
// description unchanged but still issues the write, so the operation
// is idempotent in effect.
func (s *Service) HideRecord(ctx context.Context, key string) (timetagger.Record, error) {
	current, err := s.ResolveRecord(ctx, key)
	if err != nil {
		return timetagger.Record{}, err
	}

	ds := current.DS
	if !current.Hidden() {
		ds = timetagger.HiddenPrefix + " " + ds
	}
	return s.UpdateRecord(ctx, key, UpdateOptions{Description: &ds})
}

// StartTimer creates an ongoing record starting now.
func (s *Service) StartTimer(ctx context.Context, ds string) (timetagger.Record, error) {
	now := s.now().Unix()
	return s.CreateRecord(ctx, ds, now, now)
}

// StopTimer closes a running record by setting its end time to now.
func (s *Service) StopTimer(ctx context.Context, key string) (timetagger.Record, error) {
	now := s.now().Unix()
	return s.UpdateRecord(ctx, key, UpdateOptions{T2: &now})
}

// GetSettings returns all settings from the server.
func (s *Service) GetSettings(ctx context.Context) ([]timetagger.Setting, error) {
	return s.gw.FetchSettings(ctx)
}

// UpdateSetting writes a single setting and verifies acceptance.
func (s *Service) UpdateSetting(ctx context.Context, key string, value timetagger.SettingValue) (timetagger.Setting, error) {
	if key == "" {
		return timetagger.Setting{}, timetagger.NewValidationError("setting key is required")
	}
	if value.IsNull() {
		return timetagger.Setting{}, timetagger.NewValidationError("setting value is required")
	}

	setting := timetagger.Setting{
		Key:   key,
		Value: value,
		MT:    s.now().Unix(),
	}

	result, err := s.gw.PutSettings(ctx, []timetagger.Setting{setting})
	if err != nil {
		return timetagger.Setting{}, err
	}
	if !result.Accepts(key) {
		return timetagger.Setting{}, &timetagger.PartialAcceptanceError{Key: key, Errors: result.Errors}
	}
	return setting, nil
}

// ServerTime returns the server's current time as a Unix timestamp.
// It rides on the updates endpoint with a now watermark, which keeps
// the changed-record payload empty.
func (s *Service) ServerTime(ctx context.Context) (float64, error) {
	set, err := s.gw.FetchUpdatesSince(ctx, s.now().Unix())
	if err != nil {
		return 0, err
	}
	return set.ServerTime, nil
}

// UpdatesSince returns every record changed after the watermark.
func (s *Service) UpdatesSince(ctx context.Context, since int64) (timetagger.UpdateSet, error) {
	return s.gw.FetchUpdatesSince(ctx, since)
}

// putRecord pushes a single record and verifies it was accepted. A
// 200 response with the key missing from the accepted set is a
// PartialAcceptanceError, never silent success.
func (s *Service) putRecord(ctx context.Context, record timetagger.Record) error {
	result, err := s.gw.PutRecords(ctx, []timetagger.Record{record})
	if err != nil {
		return err
	}
	if !result.Accepts(record.Key) {
		return &timetagger.PartialAcceptanceError{Key: record.Key, Errors: result.Errors}
	}
	return nil
}
