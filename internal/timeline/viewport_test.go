package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestViewport_End(t *testing.T) {
	v := Viewport{Start: date(2024, 11, 1), Months: 4}
	assert.Equal(t, date(2025, 3, 1), v.End())
	assert.Equal(t, 120, v.TotalDays())

	zero := Viewport{Start: date(2024, 1, 1)}
	assert.Equal(t, date(2024, 5, 1), zero.End(), "zero months means the default")
}

func TestNavigator_InitializeIgnoresSpan(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2020, 1, 1), End: date(2020, 6, 1)}, 0)
	v := nav.Initialize(date(2024, 8, 31))
	assert.Equal(t, date(2024, 8, 1), v.Start)
	assert.Equal(t, DefaultViewportMonths, v.Months)
}

func TestNavigator_PageForward(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2024, 1, 1), End: date(2024, 7, 1)}, 4)
	v := Viewport{Start: date(2024, 1, 1), Months: 4}

	v, ok := nav.PageForward(v)
	assert.True(t, ok)
	assert.Equal(t, date(2024, 2, 1), v.Start)

	v, ok = nav.PageForward(v)
	assert.True(t, ok, "end equal to span end is allowed")
	assert.Equal(t, date(2024, 3, 1), v.Start)
	assert.Equal(t, date(2024, 7, 1), v.End())

	same, ok := nav.PageForward(v)
	assert.False(t, ok)
	assert.Equal(t, v, same, "no-op at the upper bound")
}

func TestNavigator_PageBackward(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2024, 1, 1), End: date(2024, 12, 1)}, 4)
	v := Viewport{Start: date(2024, 2, 1), Months: 4}

	v, ok := nav.PageBackward(v)
	assert.True(t, ok, "start equal to span start is allowed")
	assert.Equal(t, date(2024, 1, 1), v.Start)

	same, ok := nav.PageBackward(v)
	assert.False(t, ok)
	assert.Equal(t, v, same, "no-op at the lower bound")
}

func TestNavigator_YearBoundary(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2023, 1, 1), End: date(2025, 1, 1)}, 4)
	v := Viewport{Start: date(2024, 1, 1), Months: 4}

	back, ok := nav.PageBackward(v)
	assert.True(t, ok)
	assert.Equal(t, date(2023, 12, 1), back.Start)
}

func TestNavigator_ShortSpanBlocksForward(t *testing.T) {
	// A span shorter than the viewport never allows paging forward.
	nav := NewNavigator(DateSpan{Start: date(2024, 1, 1), End: date(2024, 2, 1)}, 4)
	v := nav.Initialize(date(2024, 1, 5))
	assert.False(t, nav.CanPageForward(v))
	assert.False(t, nav.CanPageBackward(v))
}

func TestNavigator_OutsideSpanCanPageBackInward(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2024, 1, 1), End: date(2024, 7, 1)}, 4)
	v := nav.Initialize(date(2024, 10, 15))

	assert.False(t, nav.CanPageForward(v))
	back, ok := nav.PageBackward(v)
	assert.True(t, ok)
	assert.Equal(t, date(2024, 9, 1), back.Start)
}

func TestNavigator_JumpTo(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2024, 1, 1), End: date(2024, 7, 1)}, 4)
	v := Viewport{Start: date(2024, 1, 1), Months: 4}

	got, ok := nav.JumpTo(v, date(2024, 3, 17))
	assert.True(t, ok)
	assert.Equal(t, date(2024, 3, 1), got.Start)

	got, ok = nav.JumpTo(v, date(2024, 4, 1))
	assert.False(t, ok, "window would run past the span")
	assert.Equal(t, v, got)
}

func TestNavigator_Reachable(t *testing.T) {
	nav := NewNavigator(DateSpan{Start: date(2024, 1, 1), End: date(2024, 7, 1)}, 4)
	today := date(2024, 8, 15)

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"initial window", date(2024, 8, 1), true},
		{"paged back past the span end", date(2024, 7, 1), true},
		{"span start", date(2024, 1, 1), true},
		{"before the span", date(2023, 12, 1), false},
		{"forward of today past the span", date(2024, 9, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nav.Reachable(today, Viewport{Start: tt.start, Months: 4}))
		})
	}

	assert.True(t, nav.Reachable(date(2023, 10, 1), Viewport{Start: date(2024, 3, 1), Months: 4}), "forward while the end fits")
	assert.False(t, nav.Reachable(today, Viewport{Start: date(2024, 7, 1), Months: 6}), "different width")
}
