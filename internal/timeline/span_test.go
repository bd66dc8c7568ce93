package timeline

import (
	"testing"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/stretchr/testify/assert"
)

var today = date(2024, 8, 31)

func TestComputeDateSpan_SingleRecord(t *testing.T) {
	records := []domain.Record{
		record("Alpha",
			map[domain.Phase][2]string{
				domain.PhaseDesign:     {"2024-01-10", "2024-01-20"},
				domain.PhaseProduction: {"2024-01-15", "2024-01-25"},
			},
			map[domain.Phase]string{domain.PhaseDesign: "A", domain.PhaseProduction: "B"}),
	}

	span := ComputeDateSpan(records, today)
	assert.Equal(t, date(2024, 1, 1), span.Start)
	assert.Equal(t, date(2024, 2, 1), span.End)
	assert.Equal(t, 1, span.Months())
}

func TestComputeDateSpan_AcrossYears(t *testing.T) {
	records := []domain.Record{
		record("A", map[domain.Phase][2]string{domain.PhaseDesign: {"2023-11-30", "2024-01-05"}},
			map[domain.Phase]string{domain.PhaseDesign: "X"}),
		record("B", map[domain.Phase][2]string{domain.PhaseEstimating: {"2024-02-01", "2024-12-31"}},
			map[domain.Phase]string{domain.PhaseEstimating: "Y"}),
	}

	span := ComputeDateSpan(records, today)
	assert.Equal(t, date(2023, 11, 1), span.Start)
	assert.Equal(t, date(2025, 1, 1), span.End)
	assert.Equal(t, 14, span.Months())
}

func TestComputeDateSpan_SkipsInvalidBounds(t *testing.T) {
	records := []domain.Record{
		record("A", map[domain.Phase][2]string{domain.PhaseDesign: {"not a date", "2024-03-10"}},
			map[domain.Phase]string{domain.PhaseDesign: "X"}),
		record("B", map[domain.Phase][2]string{domain.PhaseDesign: {"2024-02-02", "TBD"}},
			map[domain.Phase]string{domain.PhaseDesign: "Y"}),
	}

	span := ComputeDateSpan(records, today)
	assert.Equal(t, date(2024, 2, 1), span.Start)
	assert.Equal(t, date(2024, 4, 1), span.End)
}

func TestComputeDateSpan_EmptyFallsBackToToday(t *testing.T) {
	span := ComputeDateSpan(nil, today)
	assert.Equal(t, date(2024, 8, 1), span.Start)
	assert.Equal(t, date(2025, 3, 1), span.End)
}

func TestComputeDateSpan_AllInvalidFallsBack(t *testing.T) {
	records := []domain.Record{
		record("A", map[domain.Phase][2]string{domain.PhaseDesign: {"soon", "later"}},
			map[domain.Phase]string{domain.PhaseDesign: "X"}),
		domain.NewRecord("No phases"),
	}

	span := ComputeDateSpan(records, today)
	assert.Equal(t, date(2024, 8, 1), span.Start)
}

func TestComputeDateSpan_OnlyStartsFallsBack(t *testing.T) {
	records := []domain.Record{
		record("A", map[domain.Phase][2]string{domain.PhaseDesign: {"2024-01-01", ""}},
			map[domain.Phase]string{domain.PhaseDesign: "X"}),
	}

	span := ComputeDateSpan(records, today)
	assert.Equal(t, date(2024, 8, 1), span.Start, "no valid end means no usable bound")
}

func TestComputeDateSpan_AlwaysMonthAlignedAndNonEmpty(t *testing.T) {
	for _, bounds := range [][2]string{
		{"2024-01-01", "2024-01-01"},
		{"2024-01-31", "2024-01-31"},
		{"2024-02-29", "2024-03-01"},
		{"2024-12-31", "2025-01-01"},
	} {
		records := []domain.Record{
			record("A", map[domain.Phase][2]string{domain.PhaseDesign: bounds},
				map[domain.Phase]string{domain.PhaseDesign: "X"}),
		}
		span := ComputeDateSpan(records, today)
		assert.Equal(t, 1, span.Start.Day(), "bounds %v", bounds)
		assert.Equal(t, 1, span.End.Day(), "bounds %v", bounds)
		assert.True(t, span.End.After(span.Start), "bounds %v", bounds)
	}
}

func TestDateSpan_Covers(t *testing.T) {
	span := DateSpan{Start: date(2024, 1, 1), End: date(2024, 6, 1)}
	assert.True(t, span.Covers(Viewport{Start: date(2024, 1, 1), Months: 4}))
	assert.True(t, span.Covers(Viewport{Start: date(2024, 2, 1), Months: 4}))
	assert.False(t, span.Covers(Viewport{Start: date(2024, 3, 1), Months: 4}))
	assert.False(t, span.Covers(Viewport{Start: date(2023, 12, 1), Months: 4}))
}
