package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/phaseline/internal/cli/formatter"
	"github.com/alexanderramin/phaseline/internal/service"
)

// loadRecords refreshes from the spreadsheet, or reads the cache when cached
// is set. A degraded refresh is reported on w and still returns a result.
func loadRecords(ctx context.Context, app *App, cached bool, w io.Writer) (*service.LoadResult, error) {
	var (
		res *service.LoadResult
		err error
	)
	if cached {
		res, err = app.Load.Cached(ctx)
	} else {
		res, err = app.Load.Refresh(ctx)
	}
	if err != nil {
		return nil, err
	}
	reportLoad(w, res)
	return res, nil
}

func reportLoad(w io.Writer, res *service.LoadResult) {
	if res.Degraded {
		fmt.Fprintf(w, "%s %v\n", formatter.StyleYellow.Render("Warning: could not read the spreadsheet:"), res.Err)
		fmt.Fprintln(w, formatter.Dim("Showing an empty chart. Use --cached to draw the last snapshot."))
		return
	}
	if n := len(res.Warnings); n > 0 {
		fmt.Fprintln(w, formatter.Dim(fmt.Sprintf("%d date cells could not be read; those phases are left off the charts.", n)))
	}
}
