package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/phaseline/internal/cli/formatter"
	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	phaseAll      = "all"
	phaseOverview = "overview"
	monthLayout   = "2006-01"
)

type renderOptions struct {
	phase  string
	start  string
	cached bool
	json   bool
	stats  bool
	width  int
}

// addRenderFlags registers the chart selection flags shared by chart and span.
func addRenderFlags(fs *pflag.FlagSet, o *renderOptions) {
	fs.StringVar(&o.phase, "phase", phaseAll, "Chart to draw: overview, design, estimating, production or all")
	fs.StringVar(&o.start, "start", "", "First month of the viewport (YYYY-MM)")
	fs.BoolVar(&o.cached, "cached", false, "Use the last cached snapshot instead of fetching")
}

// request turns flag values into a render request.
func (o renderOptions) request(today time.Time) (service.RenderRequest, error) {
	req := service.RenderRequest{Today: today}

	switch sel := strings.ToLower(strings.TrimSpace(o.phase)); sel {
	case "", phaseAll:
		req.Overview = true
		req.Phases = domain.AllPhases
	case phaseOverview:
		req.Overview = true
	default:
		p, err := domain.ParsePhase(sel)
		if err != nil {
			return req, fmt.Errorf("invalid --phase %q: use overview, design, estimating, production or all", o.phase)
		}
		req.Phases = []domain.Phase{p}
	}

	if o.start != "" {
		start, err := time.Parse(monthLayout, o.start)
		if err != nil {
			return req, fmt.Errorf("invalid --start %q: use YYYY-MM", o.start)
		}
		req.Start = &start
	}
	return req, nil
}

func newChartCmd(app *App) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw charts once to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, app, opts)
		},
	}

	addRenderFlags(cmd.Flags(), &opts)
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print chart geometry as JSON")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print lane, bar and overlap counts instead of drawing")
	cmd.Flags().IntVar(&opts.width, "width", formatter.DefaultWidth, "Output width in columns")

	return cmd
}

func runChart(cmd *cobra.Command, app *App, opts renderOptions) error {
	req, err := opts.request(app.today())
	if err != nil {
		return err
	}

	res, err := loadRecords(cmd.Context(), app, opts.cached, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	set, err := app.Charts.Render(res.Records, req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	}

	if set.StartRejected {
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(fmt.Sprintf("--start %s does not fit the data; showing the current month instead.", opts.start)))
	}
	if opts.stats {
		fmt.Fprint(out, formatter.FormatChartStats(set.Charts()))
		return nil
	}
	fmt.Fprint(out, formatter.RenderCharts(set.Charts(), opts.width))
	fmt.Fprintln(out)
	fmt.Fprintln(out, formatter.NavHint(set.CanBack, set.CanForward))
	return nil
}
