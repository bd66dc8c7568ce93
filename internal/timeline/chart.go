package timeline

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/samber/lo"
)

// Layout holds the pixel constants for lane geometry.
type Layout struct {
	BarHeightPx   int `json:"bar_height_px"`
	GutterPx      int `json:"gutter_px"`
	LanePaddingPx int `json:"lane_padding_px"`
	MarkerStripPx int `json:"marker_strip_px"`
}

// DefaultLayout is a 20px bar with a 4px gutter and 8px of lane padding.
func DefaultLayout() Layout {
	return Layout{
		BarHeightPx:   20,
		GutterPx:      4,
		LanePaddingPx: 8,
		MarkerStripPx: 16,
	}
}

// RowPitchPx is the vertical distance between rows.
func (l Layout) RowPitchPx() int {
	return l.BarHeightPx + l.GutterPx
}

func (l Layout) laneHeight(rows int, markers bool) int {
	h := rows*l.RowPitchPx() + l.LanePaddingPx
	if markers {
		h += l.MarkerStripPx
	}
	return h
}

// Bar is one drawn interval.
type Bar struct {
	Label        string       `json:"label"`
	Subject      string       `json:"subject"`
	Owner        string       `json:"owner"`
	Phase        domain.Phase `json:"phase"`
	Row          int          `json:"row"`
	LeftPercent  float64      `json:"left_percent"`
	WidthPercent float64      `json:"width_percent"`
	TopPx        int          `json:"top_px"`
	Color        string       `json:"color"`
	Tooltip      string       `json:"tooltip"`
	Start        time.Time    `json:"start"`
	End          time.Time    `json:"end"`
}

// Lane is one labelled row group of a chart.
type Lane struct {
	Key      string `json:"key"`
	Bars     []Bar  `json:"bars"`
	HeightPx int    `json:"height_px"`
}

// Rows returns the number of rows with bars in the lane.
func (l Lane) Rows() int {
	n := 0
	for _, b := range l.Bars {
		if b.Row+1 > n {
			n = b.Row + 1
		}
	}
	return n
}

// Chart is everything a renderer needs to draw one chart for one viewport.
type Chart struct {
	Kind      domain.ChartKind `json:"kind"`
	Phase     domain.Phase     `json:"phase,omitempty"`
	Title     string           `json:"title"`
	LaneTitle string           `json:"lane_title"`
	Viewport  Viewport         `json:"viewport"`
	Months    []MonthBand      `json:"months"`
	Weeks     []WeekMarker     `json:"weeks"`
	Lanes     []Lane           `json:"lanes"`
	// Skipped counts intervals dropped because a date did not parse.
	Skipped int `json:"skipped"`
}

// OverviewTitle is the heading of the cross-phase chart.
const OverviewTitle = "Project Overview"

// PhaseRecords projects the records that have phase p into their intervals,
// in record order.
func PhaseRecords(records []domain.Record, p domain.Phase) []domain.Interval {
	var out []domain.Interval
	for _, r := range records {
		if iv, ok := r.Phase(p); ok {
			if iv.Label == "" {
				iv.Label = r.Name
			}
			out = append(out, iv)
		}
	}
	return out
}

// BuildPhaseChart lays out one phase with a lane per owner. Owners appear in
// the order they are first seen and keep a lane even when none of their work
// falls in the viewport.
func BuildPhaseChart(records []domain.Record, p domain.Phase, v Viewport, colors map[string]string, layout Layout) Chart {
	chart := newChart(domain.ChartPhase, p.Title(), "Staff", v)
	chart.Phase = p
	markers := len(chart.Weeks) > 0

	intervals := PhaseRecords(records, p)
	owners := lo.Uniq(lo.Map(intervals, func(iv domain.Interval, _ int) string { return iv.Owner }))

	for _, owner := range owners {
		var visible []domain.Interval
		for _, iv := range intervals {
			if iv.Owner != owner {
				continue
			}
			if !iv.Valid() {
				chart.Skipped++
				continue
			}
			if iv.Intersects(v.Start, v.End()) {
				visible = append(visible, iv)
			}
		}
		SortByStart(visible)
		placed := Pack(visible)

		lane := Lane{Key: owner, Bars: make([]Bar, 0, len(placed))}
		for _, pi := range placed {
			bar := barGeometry(pi.Interval, pi.Row, v, layout)
			bar.Subject = pi.Label
			bar.Phase = p
			bar.Color = colors[pi.Label]
			bar.Tooltip = fmt.Sprintf("%s: %s to %s", pi.Label, pi.RawStart, pi.RawEnd)
			lane.Bars = append(lane.Bars, bar)
		}
		lane.HeightPx = layout.laneHeight(max(RowCount(placed), 1), markers)
		chart.Lanes = append(chart.Lanes, lane)
	}
	return chart
}

// BuildOverviewChart lays out one lane per project. Rows follow the fixed
// phase order, compacted over the phases actually drawn.
func BuildOverviewChart(records []domain.Record, v Viewport, layout Layout) Chart {
	chart := newChart(domain.ChartOverview, OverviewTitle, "Project", v)
	markers := len(chart.Weeks) > 0

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true

		lane := Lane{Key: r.Name, Bars: []Bar{}}
		row := 0
		for _, p := range domain.AllPhases {
			iv, ok := r.Phase(p)
			if !ok {
				continue
			}
			if !iv.Valid() {
				chart.Skipped++
				continue
			}
			if !iv.Intersects(v.Start, v.End()) {
				continue
			}
			bar := barGeometry(iv, row, v, layout)
			bar.Label = iv.Owner
			bar.Subject = r.Name
			bar.Phase = p
			bar.Color = p.Color()
			bar.Tooltip = fmt.Sprintf("%s: %s (%s to %s)", p, iv.Owner, iv.RawStart, iv.RawEnd)
			lane.Bars = append(lane.Bars, bar)
			row++
		}
		lane.HeightPx = layout.laneHeight(row, markers)
		chart.Lanes = append(chart.Lanes, lane)
	}
	return chart
}

func newChart(kind domain.ChartKind, title, laneTitle string, v Viewport) Chart {
	return Chart{
		Kind:      kind,
		Title:     title,
		LaneTitle: laneTitle,
		Viewport:  v,
		Months:    MonthBands(v.Start, v.End()),
		Weeks:     WeekMarkers(v.Start, v.End()),
		Lanes:     []Lane{},
	}
}

// barGeometry computes the horizontal placement of iv in v. Left is clamped
// at the viewport start and width at the full viewport.
func barGeometry(iv domain.Interval, row int, v Viewport, layout Layout) Bar {
	total := float64(v.TotalDays())

	left := math.Max(daysFrac(v.Start, iv.Start)/total*100, 0)
	from := iv.Start
	if v.Start.After(from) {
		from = v.Start
	}
	width := math.Min(daysFrac(from, iv.End)/total*100, 100)

	return Bar{
		Label:        iv.Label,
		Owner:        iv.Owner,
		Row:          row,
		LeftPercent:  left,
		WidthPercent: width,
		TopPx:        row * layout.RowPitchPx(),
		Start:        iv.Start,
		End:          iv.End,
	}
}
