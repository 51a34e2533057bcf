package store

import (
	"fmt"
	"time"
)

// sortableTimestamp renders a timestamp in a fixed-width UTC form so that
// lexicographic key order matches chronological order.
// Format: 2006-01-02T15:04:05.NNNNNNNNNZ (nanoseconds always 9 digits).
func sortableTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + fmt.Sprintf(".%09dZ", t.Nanosecond())
}
