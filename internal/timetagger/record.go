package timetagger

import "strings"

// HiddenPrefix marks a soft-deleted record. TimeTagger never removes
// records through this API; by convention a description starting with
// "HIDDEN" means the record is deleted from the user's point of view.
const HiddenPrefix = "HIDDEN"

// Record is a single time-tracked activity interval. Field names
// mirror the TimeTagger wire format exactly.
type Record struct {
	Key string  `json:"key"`
	T1  int64   `json:"t1"` // start, Unix seconds
	T2  int64   `json:"t2"` // end, Unix seconds; equal to T1 while running
	DS  string  `json:"ds"` // description, may embed #tags
	MT  int64   `json:"mt"` // modified time, set by the client
	ST  float64 `json:"st"` // server time, set by the server
}

// Hidden reports whether the record is soft-deleted.
func (r Record) Hidden() bool {
	return strings.HasPrefix(r.DS, HiddenPrefix)
}

// Running reports whether the record denotes an in-progress activity.
func (r Record) Running() bool {
	return r.T1 == r.T2
}

// Setting is a single TimeTagger user setting.
type Setting struct {
	Key   string       `json:"key"`
	Value SettingValue `json:"value"`
	MT    int64        `json:"mt"`
	ST    float64      `json:"st"`
}

// PutResult is the server's response to a records or settings PUT.
// A 200 response does not guarantee acceptance of any individual
// item; callers must check Accepted membership.
type PutResult struct {
	Accepted []string `json:"accepted"`
	Errors   []string `json:"errors"`
}

// Accepts reports whether the given key is in the accepted set.
func (r PutResult) Accepts(key string) bool {
	for _, k := range r.Accepted {
		if k == key {
			return true
		}
	}
	return false
}

// UpdateSet is the response to an updates-since query: every record
// changed after the watermark, plus the server's current time.
type UpdateSet struct {
	Records    []Record `json:"records"`
	ServerTime float64  `json:"server_time"`
}
