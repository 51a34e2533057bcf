package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortableTimestamp_FixedWidth(t *testing.T) {
	ts := time.Date(2026, 8, 28, 10, 0, 0, 7, time.UTC)
	assert.Equal(t, "2026-08-28T10:00:00.000000007Z", sortableTimestamp(ts))
}

func TestSortableTimestamp_LexicographicEqualsChronological(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	times := []time.Time{
		base.Add(9 * time.Nanosecond),
		base.Add(100 * time.Nanosecond),
		base.Add(time.Second),
		base.Add(time.Minute),
		base.AddDate(0, 0, 1),
	}

	for i := 1; i < len(times); i++ {
		assert.Less(t, sortableTimestamp(times[i-1]), sortableTimestamp(times[i]))
	}
}

func TestSortableTimestamp_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("TRT", 3*60*60)
	local := time.Date(2026, 8, 28, 13, 0, 0, 0, loc)
	utc := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, sortableTimestamp(utc), sortableTimestamp(local))
}
