package repository

import (
	"fmt"
	"time"
)

// fetchedAtLayout keeps nanoseconds so snapshots taken within the same second
// still order correctly as text.
const fetchedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatFetchedAt(t time.Time) string {
	return t.UTC().Format(fetchedAtLayout)
}

func parseFetchedAt(s string) (time.Time, error) {
	t, err := time.Parse(fetchedAtLayout, s)
	if err != nil {
		// Rows written by hand or by older builds.
		t, err = time.Parse(time.RFC3339, s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing fetched_at %q: %w", s, err)
	}
	return t.UTC(), nil
}
