package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/phaseline/internal/repository"
	"github.com/alexanderramin/phaseline/internal/timeline"
)

// FormatSnapshotList renders cached snapshots newest first.
func FormatSnapshotList(list []repository.SnapshotSummary, now time.Time) string {
	if len(list) == 0 {
		return Dim("No snapshots cached. Run `phaseline fetch` first.") + "\n"
	}
	rows := make([][]string, 0, len(list))
	for i, s := range list {
		id := TruncID(s.ID)
		if i == 0 {
			id = StyleGreen.Render(id)
		}
		rows = append(rows, []string{
			id,
			HumanTimestampFrom(s.FetchedAt, now),
			strconv.Itoa(s.RecordCount),
			s.Source,
		})
	}
	return RenderTable([]string{"ID", "FETCHED", "PROJECTS", "SOURCE"}, rows)
}

// FormatSpan describes the data span and the current viewport.
func FormatSpan(span timeline.DateSpan, v timeline.Viewport, canBack, canForward bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s %s\n", Bold("Data span"), MonthRange(span.Start, span.End), Dim(fmt.Sprintf("(%d months)", span.Months())))
	fmt.Fprintf(&b, "%s   %s %s\n", Bold("Viewport"), MonthRange(v.Start, v.End()), Dim(fmt.Sprintf("(%d days)", v.TotalDays())))
	fmt.Fprintf(&b, "%s\n", NavHint(canBack, canForward))
	return b.String()
}

// NavHint shows which paging directions are open.
func NavHint(canBack, canForward bool) string {
	back, fwd := Dim("◀ earlier"), Dim("later ▶")
	if canBack {
		back = StyleBlue.Render("◀ earlier")
	}
	if canForward {
		fwd = StyleBlue.Render("later ▶")
	}
	return back + "  " + fwd
}
