package formatter

import (
	"strconv"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/timeline"
	"github.com/samber/lo"
)

// ChartStats summarises one chart for `chart --stats`.
type ChartStats struct {
	Title      string
	Lanes      int
	Bars       int
	MaxOverlap int
	Skipped    int
}

// ComputeChartStats counts lanes and bars and reports the busiest lane's
// peak concurrency.
func ComputeChartStats(c timeline.Chart) ChartStats {
	s := ChartStats{Title: c.Title, Lanes: len(c.Lanes), Skipped: c.Skipped}
	for _, lane := range c.Lanes {
		s.Bars += len(lane.Bars)
		intervals := lo.Map(lane.Bars, func(b timeline.Bar, _ int) domain.Interval {
			return domain.Interval{Start: b.Start, End: b.End}
		})
		s.MaxOverlap = max(s.MaxOverlap, timeline.MaxOverlap(intervals))
	}
	return s
}

// FormatChartStats renders one row per chart.
func FormatChartStats(charts []timeline.Chart) string {
	rows := lo.Map(charts, func(c timeline.Chart, _ int) []string {
		s := ComputeChartStats(c)
		return []string{
			s.Title,
			strconv.Itoa(s.Lanes),
			strconv.Itoa(s.Bars),
			strconv.Itoa(s.MaxOverlap),
			strconv.Itoa(s.Skipped),
		}
	})
	return RenderTable([]string{"CHART", "LANES", "BARS", "MAX OVERLAP", "SKIPPED"}, rows)
}
