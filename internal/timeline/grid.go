package timeline

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
)

const day = 24 * time.Hour

// MonthBand is one column of the month header.
type MonthBand struct {
	Label        string    `json:"label"`
	Month        time.Time `json:"month"`
	WidthPercent float64   `json:"width_percent"`
}

// WeekMarker is a tick for a Monday inside the viewport.
type WeekMarker struct {
	Label           string    `json:"label"`
	Date            time.Time `json:"date"`
	PositionPercent float64   `json:"position_percent"`
}

// DaysBetween returns the whole days from a to b, rounding partial days up.
func DaysBetween(a, b time.Time) int {
	return int(math.Ceil(float64(b.Sub(a)) / float64(day)))
}

// daysFrac is the signed, fractional day distance from a to b.
func daysFrac(a, b time.Time) float64 {
	return float64(b.Sub(a)) / float64(day)
}

// MonthBands walks [start, end) a month at a time. Each band is as wide as
// its full month, relative to the viewport length, even when the viewport
// cuts the month short.
func MonthBands(start, end time.Time) []MonthBand {
	total := DaysBetween(start, end)
	if total <= 0 {
		return nil
	}

	var bands []MonthBand
	for cur := start; cur.Before(end); cur = addMonthKeepDay(cur) {
		bands = append(bands, MonthBand{
			Label:        cur.Month().String()[:3],
			Month:        domain.MonthStart(cur),
			WidthPercent: float64(domain.DaysIn(cur)) / float64(total) * 100,
		})
	}
	return bands
}

// addMonthKeepDay advances one calendar month. A month-aligned start stays
// month-aligned.
func addMonthKeepDay(t time.Time) time.Time {
	if t.Day() == 1 {
		return domain.AddMonths(t, 1)
	}
	return t.AddDate(0, 1, 0)
}

// WeekMarkers places a tick on every Monday in [start, end).
func WeekMarkers(start, end time.Time) []WeekMarker {
	total := DaysBetween(start, end)
	if total <= 0 {
		return nil
	}

	cur := start
	for cur.Weekday() != time.Monday {
		cur = cur.AddDate(0, 0, 1)
	}

	var markers []WeekMarker
	for ; cur.Before(end); cur = cur.AddDate(0, 0, 7) {
		markers = append(markers, WeekMarker{
			Label:           fmt.Sprintf("%d/%d", int(cur.Month()), cur.Day()),
			Date:            cur,
			PositionPercent: daysFrac(start, cur) / float64(total) * 100,
		})
	}
	return markers
}
