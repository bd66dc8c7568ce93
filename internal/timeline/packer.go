package timeline

import (
	"sort"

	"github.com/alexanderramin/phaseline/internal/domain"
)

// PlacedInterval is an interval with the row it was packed into.
type PlacedInterval struct {
	domain.Interval
	Row int
}

// SortByStart orders intervals by start date. Ties keep their input order.
func SortByStart(intervals []domain.Interval) {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start.Before(intervals[j].Start)
	})
}

// Pack assigns each interval, in input order, the lowest row not occupied by
// an already placed interval it overlaps. With input sorted by start this
// uses exactly as many rows as the maximum number of simultaneous overlaps.
func Pack(intervals []domain.Interval) []PlacedInterval {
	placed := make([]PlacedInterval, 0, len(intervals))
	for _, iv := range intervals {
		placed = append(placed, PlacedInterval{Interval: iv, Row: freeRow(iv, placed)})
	}
	return placed
}

func freeRow(iv domain.Interval, placed []PlacedInterval) int {
	row := 0
	for {
		taken := false
		for _, p := range placed {
			if p.Row == row && iv.Overlaps(p.Interval) {
				taken = true
				break
			}
		}
		if !taken {
			return row
		}
		row++
	}
}

// RowCount returns the number of rows used by a packing.
func RowCount(placed []PlacedInterval) int {
	n := 0
	for _, p := range placed {
		if p.Row+1 > n {
			n = p.Row + 1
		}
	}
	return n
}

// MaxOverlap returns the largest number of intervals that are in progress at
// the same instant, using the half-open convention of Interval.Overlaps.
func MaxOverlap(intervals []domain.Interval) int {
	type edge struct {
		at    int64
		delta int
	}
	edges := make([]edge, 0, 2*len(intervals))
	for _, iv := range intervals {
		if !iv.Start.Before(iv.End) {
			continue
		}
		edges = append(edges, edge{iv.Start.Unix(), 1}, edge{iv.End.Unix(), -1})
	}
	// Ends sort before starts at the same instant so touching intervals
	// never count together.
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].at != edges[j].at {
			return edges[i].at < edges[j].at
		}
		return edges[i].delta < edges[j].delta
	})

	best, cur := 0, 0
	for _, e := range edges {
		cur += e.delta
		if cur > best {
			best = cur
		}
	}
	return best
}
