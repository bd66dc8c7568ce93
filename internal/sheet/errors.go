package sheet

import "errors"

var (
	// ErrNotConfigured indicates neither a file nor a URL was given.
	ErrNotConfigured = errors.New("no spreadsheet source configured")

	// ErrUnavailable indicates the export server could not be reached.
	ErrUnavailable = errors.New("spreadsheet source unavailable")

	// ErrTimeout indicates the fetch exceeded the configured timeout.
	ErrTimeout = errors.New("spreadsheet fetch timed out")

	// ErrBadStatus indicates the server answered with a non-2xx status.
	ErrBadStatus = errors.New("spreadsheet source returned an error status")

	// ErrTooLarge indicates the export exceeded the size cap.
	ErrTooLarge = errors.New("spreadsheet export too large")
)
