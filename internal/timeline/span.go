package timeline

import (
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
)

// fallbackMonths is the width of the span used when no record carries a
// usable date.
const fallbackMonths = 6

// DateSpan is the month-aligned range covered by a dataset. End is exclusive
// and always after Start.
type DateSpan struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Months returns the number of whole months in the span.
func (s DateSpan) Months() int {
	return (s.End.Year()-s.Start.Year())*12 + int(s.End.Month()-s.Start.Month())
}

// Covers reports whether the viewport window lies entirely inside the span.
func (s DateSpan) Covers(v Viewport) bool {
	return !v.Start.Before(s.Start) && !v.End().After(s.End)
}

// ComputeDateSpan folds every present phase of every record into a
// month-aligned span. Unparsable bounds are ignored. When nothing usable is
// found the span falls back to six months from today's month.
func ComputeDateSpan(records []domain.Record, today time.Time) DateSpan {
	var minDate, maxDate *time.Time

	for _, r := range records {
		for _, p := range domain.AllPhases {
			iv, ok := r.Phase(p)
			if !ok {
				continue
			}
			if start := iv.Start; !start.IsZero() && (minDate == nil || start.Before(*minDate)) {
				minDate = &start
			}
			if end := iv.End; !end.IsZero() && (maxDate == nil || end.After(*maxDate)) {
				maxDate = &end
			}
		}
	}

	if minDate == nil || maxDate == nil || minDate.After(*maxDate) {
		start := domain.MonthStart(today)
		return DateSpan{
			Start: start,
			End:   domain.AddMonths(start, fallbackMonths+1),
		}
	}

	return DateSpan{
		Start: domain.MonthStart(*minDate),
		End:   domain.AddMonths(*maxDate, 1),
	}
}
