package domain

import "time"

// Snapshot is one stored copy of the fetched spreadsheet.
type Snapshot struct {
	ID        string
	Source    string
	FetchedAt time.Time
	Records   []Record
}
