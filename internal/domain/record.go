package domain

import (
	"strings"
	"time"
)

// Interval is one phase of one project: who owns it and when it runs.
// A zero Start or End means the raw spreadsheet value could not be parsed.
type Interval struct {
	Label    string
	Owner    string
	Start    time.Time
	End      time.Time
	RawStart string
	RawEnd   string
}

// NewInterval builds an Interval from raw spreadsheet cells.
func NewInterval(label, owner, rawStart, rawEnd string) Interval {
	iv := Interval{
		Label:    label,
		Owner:    owner,
		RawStart: rawStart,
		RawEnd:   rawEnd,
	}
	iv.Start, _ = ParseDate(rawStart)
	iv.End, _ = ParseDate(rawEnd)
	return iv
}

// Valid reports whether both bounds parsed.
func (iv Interval) Valid() bool {
	return !iv.Start.IsZero() && !iv.End.IsZero()
}

// Overlaps is the half-open overlap test; touching endpoints do not overlap.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Intersects reports whether the interval is at least partly visible in the
// closed window [from, to].
func (iv Interval) Intersects(from, to time.Time) bool {
	return !iv.End.Before(from) && !iv.Start.After(to)
}

// Record is one project row with up to three phases.
type Record struct {
	Name   string
	Phases map[Phase]Interval
}

// NewRecord returns a record with no phases.
func NewRecord(name string) Record {
	return Record{Name: name, Phases: make(map[Phase]Interval)}
}

// Phase returns the interval for p and whether the project has that phase.
func (r Record) Phase(p Phase) (Interval, bool) {
	iv, ok := r.Phases[p]
	return iv, ok
}

// SetPhase attaches a phase interval, labelled with the project name.
func (r *Record) SetPhase(p Phase, iv Interval) {
	if r.Phases == nil {
		r.Phases = make(map[Phase]Interval)
	}
	if iv.Label == "" {
		iv.Label = r.Name
	}
	r.Phases[p] = iv
}

// IsAbsentOwner reports whether an owner cell means "phase not applicable":
// empty, or the literal n/a in any case.
func IsAbsentOwner(owner string) bool {
	o := strings.TrimSpace(owner)
	return o == "" || strings.EqualFold(o, "n/a")
}
