package timeline

import (
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
)

// DefaultViewportMonths is how many months the chart shows at once.
const DefaultViewportMonths = 4

// Viewport is the visible window: Months months from a month-aligned Start.
type Viewport struct {
	Start  time.Time `json:"start"`
	Months int       `json:"months"`
}

// End returns the exclusive end of the window.
func (v Viewport) End() time.Time {
	return domain.AddMonths(v.Start, v.months())
}

// TotalDays returns the length of the window in days.
func (v Viewport) TotalDays() int {
	return DaysBetween(v.Start, v.End())
}

func (v Viewport) months() int {
	if v.Months <= 0 {
		return DefaultViewportMonths
	}
	return v.Months
}

// Navigator pages a viewport one month at a time without leaving Span.
type Navigator struct {
	Span   DateSpan
	Months int
}

// NewNavigator returns a navigator over span. months <= 0 selects the default.
func NewNavigator(span DateSpan, months int) Navigator {
	if months <= 0 {
		months = DefaultViewportMonths
	}
	return Navigator{Span: span, Months: months}
}

// Initialize opens the viewport on today's month. It does not consult the
// span, so the first view may lie outside the data.
func (n Navigator) Initialize(today time.Time) Viewport {
	return Viewport{Start: domain.MonthStart(today), Months: n.Months}
}

// PageBackward moves one month earlier if the new start stays on or after
// the span start. Otherwise v is returned unchanged with ok false.
func (n Navigator) PageBackward(v Viewport) (Viewport, bool) {
	proposed := Viewport{Start: domain.AddMonths(v.Start, -1), Months: n.Months}
	if proposed.Start.Before(n.Span.Start) {
		return v, false
	}
	return proposed, true
}

// PageForward moves one month later if the new window still ends on or
// before the span end. Otherwise v is returned unchanged with ok false.
func (n Navigator) PageForward(v Viewport) (Viewport, bool) {
	proposed := Viewport{Start: domain.AddMonths(v.Start, 1), Months: n.Months}
	if proposed.End().After(n.Span.End) {
		return v, false
	}
	return proposed, true
}

// JumpTo opens the window on the month containing month, provided the whole
// window fits in the span. Otherwise v is returned unchanged with ok false.
func (n Navigator) JumpTo(v Viewport, month time.Time) (Viewport, bool) {
	proposed := Viewport{Start: domain.MonthStart(month), Months: n.Months}
	if !n.Span.Covers(proposed) {
		return v, false
	}
	return proposed, true
}

// Reachable reports whether paging from Initialize(today) can arrive at v.
// Moving backward needs every start on or after the span start and moving
// forward needs every end on or before the span end.
func (n Navigator) Reachable(today time.Time, v Viewport) bool {
	if v.months() != n.Months {
		return false
	}
	start := domain.MonthStart(v.Start)
	init := n.Initialize(today)
	switch {
	case start.Equal(init.Start):
		return true
	case start.Before(init.Start):
		return !start.Before(n.Span.Start)
	default:
		return !Viewport{Start: start, Months: n.Months}.End().After(n.Span.End)
	}
}

// CanPageBackward reports whether PageBackward would move.
func (n Navigator) CanPageBackward(v Viewport) bool {
	_, ok := n.PageBackward(v)
	return ok
}

// CanPageForward reports whether PageForward would move.
func (n Navigator) CanPageForward(v Viewport) bool {
	_, ok := n.PageForward(v)
	return ok
}
