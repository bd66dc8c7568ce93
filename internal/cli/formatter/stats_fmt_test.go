package formatter

import (
	"testing"

	"github.com/alexanderramin/phaseline/internal/timeline"
	"github.com/stretchr/testify/assert"
)

func TestComputeChartStats_Overview(t *testing.T) {
	c := timeline.BuildOverviewChart(alphaRecords(), jan2024(), timeline.DefaultLayout())

	s := ComputeChartStats(c)
	assert.Equal(t, timeline.OverviewTitle, s.Title)
	assert.Equal(t, 1, s.Lanes)
	assert.Equal(t, 2, s.Bars)
	assert.Equal(t, 2, s.MaxOverlap, "design and production overlap Jan 15 to 20")
	assert.Zero(t, s.Skipped)
}

func TestComputeChartStats_Empty(t *testing.T) {
	s := ComputeChartStats(timeline.Chart{Title: "Design Phase"})
	assert.Equal(t, ChartStats{Title: "Design Phase"}, s)
}

func TestFormatChartStats(t *testing.T) {
	c := timeline.BuildOverviewChart(alphaRecords(), jan2024(), timeline.DefaultLayout())

	out := FormatChartStats([]timeline.Chart{c})
	assert.Contains(t, out, "MAX OVERLAP")
	assert.Contains(t, out, timeline.OverviewTitle)
}
