package timeline

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 121, DaysBetween(date(2024, 1, 1), date(2024, 5, 1)))
	assert.Equal(t, 0, DaysBetween(date(2024, 1, 1), date(2024, 1, 1)))
	assert.Equal(t, 1, DaysBetween(date(2024, 1, 1), date(2024, 1, 1).Add(time.Hour)), "partial days round up")
}

func TestMonthBands_FourMonths(t *testing.T) {
	bands := MonthBands(date(2024, 1, 1), date(2024, 5, 1))
	require.Len(t, bands, 4)

	labels := []string{bands[0].Label, bands[1].Label, bands[2].Label, bands[3].Label}
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr"}, labels)
	assert.InDelta(t, 31.0/121*100, bands[0].WidthPercent, 1e-9)
	assert.InDelta(t, 29.0/121*100, bands[1].WidthPercent, 1e-9)
	assert.Equal(t, date(2024, 2, 1), bands[1].Month)
}

func TestMonthBands_SumToHundredForWholeMonths(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 100; trial++ {
		start := date(2000+rng.Intn(50), time.Month(rng.Intn(12)+1), 1)
		months := rng.Intn(24) + 1
		end := start.AddDate(0, months, 0)

		bands := MonthBands(start, end)
		require.Len(t, bands, months, "trial %d", trial)
		sum := 0.0
		for _, b := range bands {
			sum += b.WidthPercent
		}
		assert.InDelta(t, 100.0, sum, 1e-9, "trial %d: start %s months %d", trial, start, months)
	}
}

func TestMonthBands_UnalignedUsesFullMonthWidth(t *testing.T) {
	bands := MonthBands(date(2024, 1, 15), date(2024, 3, 15))
	require.Len(t, bands, 2)
	total := float64(DaysBetween(date(2024, 1, 15), date(2024, 3, 15)))
	assert.InDelta(t, 31/total*100, bands[0].WidthPercent, 1e-9)
	assert.InDelta(t, 29/total*100, bands[1].WidthPercent, 1e-9)
}

func TestMonthBands_EmptyWindow(t *testing.T) {
	assert.Empty(t, MonthBands(date(2024, 1, 1), date(2024, 1, 1)))
}

func TestWeekMarkers_StartOnMonday(t *testing.T) {
	// 2024-01-01 is a Monday.
	markers := WeekMarkers(date(2024, 1, 1), date(2024, 2, 1))
	require.Len(t, markers, 5)
	assert.Equal(t, "1/1", markers[0].Label)
	assert.Equal(t, 0.0, markers[0].PositionPercent)
	assert.Equal(t, "1/8", markers[1].Label)
	assert.InDelta(t, 7.0/31*100, markers[1].PositionPercent, 1e-9)
	assert.Equal(t, "1/29", markers[4].Label)
}

func TestWeekMarkers_AdvancesToFirstMonday(t *testing.T) {
	// 2024-02-01 is a Thursday; first Monday is 2024-02-05.
	markers := WeekMarkers(date(2024, 2, 1), date(2024, 3, 1))
	require.NotEmpty(t, markers)
	assert.Equal(t, "2/5", markers[0].Label)
	assert.InDelta(t, 4.0/29*100, markers[0].PositionPercent, 1e-9)
}

func TestWeekMarkers_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 100; trial++ {
		start := date(2020+rng.Intn(10), time.Month(rng.Intn(12)+1), 1)
		end := start.AddDate(0, rng.Intn(6)+1, 0)

		markers := WeekMarkers(start, end)
		prev := -1.0
		for i, m := range markers {
			assert.Equal(t, time.Monday, m.Date.Weekday(), "trial %d marker %d", trial, i)
			assert.False(t, m.Date.Before(start), "trial %d marker %d before window", trial, i)
			assert.True(t, m.Date.Before(end), "trial %d marker %d past window", trial, i)
			assert.Greater(t, m.PositionPercent, prev, "trial %d marker %d not increasing", trial, i)
			assert.Less(t, m.PositionPercent, 100.0)
			prev = m.PositionPercent
		}
	}
}
