package analytics

import (
	"sort"
	"time"
)

const dayKeyLayout = "2006-01-02"

// timestampLayouts are tried in order when parsing record timestamps.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dayKeyLayout,
}

// parseTimestamp parses a record timestamp. The second return is false for
// missing or unparseable values; callers drop such records silently.
func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// weekStart returns the Monday of t's ISO week, at t's date resolution.
func weekStart(t time.Time) time.Time {
	// Days since Monday; Sunday counts as 6 back, not 1 forward.
	delta := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -delta)
}

// WeekKey returns the ISO-week (Monday-start) bucket key YYYY-MM-DD for t.
func WeekKey(t time.Time) string {
	return weekStart(t).Format(dayKeyLayout)
}

// weekBuckets groups timestamps into ISO-week buckets keyed by WeekKey,
// carrying the caller's per-record index so callers can bucket any record
// type. Unparseable timestamps are dropped. Keys come back sorted ascending.
func weekBuckets(timestamps []string) (map[string][]int, []string) {
	buckets := make(map[string][]int)
	for i, ts := range timestamps {
		t, ok := parseTimestamp(ts)
		if !ok {
			continue
		}
		key := WeekKey(t)
		buckets[key] = append(buckets[key], i)
	}
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return buckets, keys
}
