package track

import (
	"strings"

	"github.com/tagtrail/tagtrail/internal/timetagger"
)

// NormalizeTag ensures a tag carries its leading '#'.
func NormalizeTag(tag string) string {
	if strings.HasPrefix(tag, "#") {
		return tag
	}
	return "#" + tag
}

// ExtractTags returns the '#'-prefixed words of a description, in
// order of appearance.
func ExtractTags(ds string) []string {
	var tags []string
	for _, word := range strings.Fields(ds) {
		if strings.HasPrefix(word, "#") {
			tags = append(tags, word)
		}
	}
	return tags
}

// matchesTag reports whether a record's description mentions the tag.
// This is a substring match, so "#dev" also matches "#devops"; the
// TimeTagger web UI behaves the same way.
func matchesTag(record timetagger.Record, tag string) bool {
	return strings.Contains(record.DS, NormalizeTag(tag))
}

// filterByTag keeps only records mentioning the tag. An empty tag
// keeps everything.
func filterByTag(records []timetagger.Record, tag string) []timetagger.Record {
	if tag == "" {
		return records
	}
	filtered := make([]timetagger.Record, 0, len(records))
	for _, record := range records {
		if matchesTag(record, tag) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
