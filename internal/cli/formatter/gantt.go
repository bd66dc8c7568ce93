package formatter

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/timeline"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// DefaultWidth is used when the terminal width is unknown.
const DefaultWidth = 100

const (
	minTrackWidth = 20
	maxLabelWidth = 18
	barFill       = "█"
	gutter        = " │ "
)

// RenderChart draws one chart as text, width cells wide. Horizontal
// positions come from the chart's percent geometry, so the drawing matches
// what a pixel renderer would show at any width.
func RenderChart(c timeline.Chart, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	labelW := lipgloss.Width(c.LaneTitle)
	for _, lane := range c.Lanes {
		labelW = max(labelW, lipgloss.Width(lane.Key))
	}
	labelW = min(labelW, maxLabelWidth)
	g := grid{track: max(width-labelW-lipgloss.Width(gutter), minTrackWidth)}

	var b strings.Builder
	b.WriteString(Header(c.Title))
	b.WriteString("\n")
	b.WriteString(Dim(MonthRange(c.Viewport.Start, c.Viewport.End())))
	b.WriteString("\n\n")

	b.WriteString(StyleBold.Render(pad(truncate(c.LaneTitle, labelW), labelW)))
	b.WriteString(Dim(gutter))
	b.WriteString(g.monthRow(c.Months))
	b.WriteString("\n")
	if len(c.Weeks) > 0 {
		b.WriteString(strings.Repeat(" ", labelW))
		b.WriteString(Dim(gutter))
		b.WriteString(Dim(g.weekRow(c.Weeks)))
		b.WriteString("\n")
	}
	b.WriteString(Dim(strings.Repeat("─", labelW) + "─┼─" + strings.Repeat("─", g.track)))
	b.WriteString("\n")

	if len(c.Lanes) == 0 {
		b.WriteString(Dim("no projects in this window"))
		b.WriteString("\n")
	}
	for _, lane := range c.Lanes {
		rows := max(lane.Rows(), 1)
		for r := 0; r < rows; r++ {
			label := ""
			if r == 0 {
				label = truncate(lane.Key, labelW)
			}
			b.WriteString(pad(label, labelW))
			b.WriteString(Dim(gutter))
			b.WriteString(g.barRow(lo.Filter(lane.Bars, func(bar timeline.Bar, _ int) bool { return bar.Row == r })))
			b.WriteString("\n")
		}
	}

	if c.Kind == domain.ChartOverview {
		badges := lo.Map(domain.AllPhases, func(p domain.Phase, _ int) string { return PhaseBadge(p) })
		b.WriteString("\n")
		b.WriteString(strings.Join(badges, "  "))
		b.WriteString("\n")
	}
	if c.Skipped > 0 {
		b.WriteString(Dim(fmt.Sprintf("%d skipped: dates could not be read", c.Skipped)))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderCharts draws each chart in turn, separated by a blank line.
func RenderCharts(charts []timeline.Chart, width int) string {
	parts := lo.Map(charts, func(c timeline.Chart, _ int) string { return RenderChart(c, width) })
	return strings.Join(parts, "\n")
}

// grid maps percent positions onto a track of character cells.
type grid struct {
	track int
}

func (g grid) col(pct float64) int {
	c := int(math.Round(pct / 100 * float64(g.track)))
	return min(max(c, 0), g.track)
}

func (g grid) monthRow(bands []timeline.MonthBand) string {
	var b strings.Builder
	cum, prev := 0.0, 0
	for _, band := range bands {
		cum += band.WidthPercent
		end := g.col(cum)
		if cell := end - prev; cell > 0 {
			b.WriteString(pad(truncate(band.Label, cell), cell))
		}
		prev = end
	}
	return strings.TrimRight(b.String(), " ")
}

func (g grid) weekRow(weeks []timeline.WeekMarker) string {
	row := []rune(strings.Repeat(" ", g.track))
	next := 0
	for _, w := range weeks {
		c := g.col(w.PositionPercent)
		label := []rune(w.Label)
		if c < next || c+len(label) > g.track {
			continue
		}
		copy(row[c:], label)
		next = c + len(label) + 1
	}
	return strings.TrimRight(string(row), " ")
}

func (g grid) barRow(bars []timeline.Bar) string {
	sort.SliceStable(bars, func(i, j int) bool { return bars[i].LeftPercent < bars[j].LeftPercent })

	var b strings.Builder
	cursor := 0
	for _, bar := range bars {
		start := max(g.col(bar.LeftPercent), cursor)
		end := g.col(bar.LeftPercent + bar.WidthPercent)
		if end <= start {
			end = min(start+1, g.track)
		}
		if start >= end {
			continue
		}
		b.WriteString(strings.Repeat(" ", start-cursor))
		b.WriteString(BarStyle(bar.Color).Render(barText(bar.Label, end-start)))
		cursor = end
	}
	return b.String()
}

// barText fills n cells with the label followed by block characters, or
// only blocks when the label does not fit.
func barText(label string, n int) string {
	if w := lipgloss.Width(label); n > w {
		return label + strings.Repeat(barFill, n-w)
	}
	return strings.Repeat(barFill, n)
}
