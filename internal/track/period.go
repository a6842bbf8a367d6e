package track

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// Named time periods accepted by Query.Period.
const (
	PeriodToday     = "today"
	PeriodYesterday = "yesterday"
	PeriodWeek      = "week"
	PeriodMonth     = "month"

	hoursPeriodPrefix = "hours:"
	defaultWindow     = 24 * time.Hour
)

// Query selects a time window and an optional tag filter for record
// listings. A named Period takes precedence over explicit Start/End.
// With neither set, the window is the last 24 hours.
type Query struct {
	Start  int64
	End    int64
	Period string
	Tag    string
}

// resolve turns the query into a concrete [t1, t2] window.
func (q Query) resolve(now time.Time) (int64, int64, error) {
	if q.Period != "" {
		return resolvePeriod(q.Period, now)
	}

	t1, t2 := q.Start, q.End
	if t2 == 0 {
		t2 = now.Unix()
	}
	if t1 == 0 {
		t1 = now.Add(-defaultWindow).Unix()
	}
	return t1, t2, nil
}

// resolvePeriod maps a named period onto a concrete window. "today"
// and "yesterday" are bounded by local midnight; "week" and "month"
// are rolling 7-day and 30-day windows ending now; "hours:N" is a
// rolling N-hour window.
func resolvePeriod(period string, now time.Time) (int64, int64, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodToday:
		return midnight.Unix(), now.Unix(), nil
	case PeriodYesterday:
		return midnight.Add(-24 * time.Hour).Unix(), midnight.Unix(), nil
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour).Unix(), now.Unix(), nil
	case PeriodMonth:
		return now.Add(-30 * 24 * time.Hour).Unix(), now.Unix(), nil
	}

	if raw, ok := strings.CutPrefix(period, hoursPeriodPrefix); ok {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours <= 0 {
			return 0, 0, timetagger.NewValidationError(fmt.Sprintf("invalid hours period %q", period))
		}
		return now.Add(-time.Duration(hours) * time.Hour).Unix(), now.Unix(), nil
	}

	return 0, 0, timetagger.NewValidationError(fmt.Sprintf("unknown time period %q", period))
}
