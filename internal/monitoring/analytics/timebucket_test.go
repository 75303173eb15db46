package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekKeyMondayStart(t *testing.T) {
	monday := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)   // Monday
	sunday := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)  // following Sunday
	nextMon := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)  // next Monday

	assert.Equal(t, "2025-03-03", WeekKey(monday))
	assert.Equal(t, "2025-03-03", WeekKey(sunday))
	assert.Equal(t, "2025-03-10", WeekKey(nextMon))
}

func TestWeekKeyAcrossMonthBoundary(t *testing.T) {
	// Sunday 2025-06-01 belongs to the week starting Monday 2025-05-26.
	sunday := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-05-26", WeekKey(sunday))
}

func TestWeekBucketsDropsUnparseable(t *testing.T) {
	buckets, keys := weekBuckets([]string{
		"2025-03-03T09:00:00Z",
		"not-a-date",
		"",
		"2025-03-09",
		"2025-03-10T00:00:00Z",
	})
	require.Len(t, keys, 2)
	assert.Equal(t, []string{"2025-03-03", "2025-03-10"}, keys)
	assert.Equal(t, []int{0, 3}, buckets["2025-03-03"])
	assert.Equal(t, []int{4}, buckets["2025-03-10"])
}

func TestParseTimestampFormats(t *testing.T) {
	for _, ts := range []string{
		"2025-03-03T09:00:00Z",
		"2025-03-03T09:00:00+02:00",
		"2025-03-03T09:00:00",
		"2025-03-03 09:00:00",
		"2025-03-03",
	} {
		_, ok := parseTimestamp(ts)
		assert.True(t, ok, ts)
	}
	_, ok := parseTimestamp("03/03/2025")
	assert.False(t, ok)
}
