package track

import (
	"context"

	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// ListRecords fetches records overlapping the query's window and
// applies the optional tag filter. Hidden records are included; the
// caller decides whether to surface them.
func (s *Service) ListRecords(ctx context.Context, q Query) ([]timetagger.Record, error) {
	t1, t2, err := q.resolve(s.now())
	if err != nil {
		return nil, err
	}

	records, err := s.gw.FetchRecords(ctx, t1, t2)
	if err != nil {
		return nil, err
	}
	return filterByTag(records, q.Tag), nil
}

// FindRecordsByTag searches the last windowDays days for records
// mentioning the tag. A windowDays of 0 or less defaults to 30.
func (s *Service) FindRecordsByTag(ctx context.Context, tag string, windowDays int) ([]timetagger.Record, error) {
	if tag == "" {
		return nil, timetagger.NewValidationError("tag is required to search records")
	}
	if windowDays <= 0 {
		windowDays = 30
	}

	now := s.now().Unix()
	records, err := s.gw.FetchRecords(ctx, now-int64(windowDays)*86400, now)
	if err != nil {
		return nil, err
	}
	return filterByTag(records, tag), nil
}
