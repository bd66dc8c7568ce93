package sheet

import "fmt"

// exportURLFormat is the CSV export endpoint of a Google Sheet.
const exportURLFormat = "https://docs.google.com/spreadsheets/d/%s/export?format=csv"

// Config says where the project spreadsheet lives. File wins over URL, and
// URL wins over SheetID.
type Config struct {
	SheetID   string
	URL       string
	File      string
	TimeoutMs int
	UserAgent string
}

// DefaultConfig returns a Config with no source and a 10s fetch timeout.
func DefaultConfig() Config {
	return Config{
		TimeoutMs: 10000,
		UserAgent: "phaseline",
	}
}

// ExportURL returns the HTTP location of the CSV export, or "".
func (c Config) ExportURL() string {
	if c.URL != "" {
		return c.URL
	}
	if c.SheetID != "" {
		return fmt.Sprintf(exportURLFormat, c.SheetID)
	}
	return ""
}

// Configured reports whether any source is set.
func (c Config) Configured() bool {
	return c.File != "" || c.ExportURL() != ""
}
