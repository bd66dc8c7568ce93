package cli

import (
	"time"

	"github.com/alexanderramin/phaseline/internal/config"
	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Load   service.LoadService
	Charts service.ChartService

	// Config is the effective configuration; init edits it and saves it to
	// ConfigPath.
	Config     config.Config
	ConfigPath string

	// IsInteractive reports whether stdin is a terminal. When nil the CLI
	// assumes it is not.
	IsInteractive func() bool

	// Now is the clock; its local date positions the initial viewport. nil
	// means time.Now.
	Now func() time.Time
}

func (a *App) clock() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// today is the local calendar date as a UTC-midnight date, matching parsed
// spreadsheet dates.
func (a *App) today() time.Time {
	return domain.Day(a.clock())
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "phaseline" command and registers all
// subcommands against the provided App. Without a subcommand it opens the
// pager on a terminal and prints every chart otherwise.
func NewRootCmd(app *App) *cobra.Command {
	opts := renderOptions{phase: phaseAll}

	root := &cobra.Command{
		Use:           "phaseline",
		Short:         "Gantt charts of project phases from a spreadsheet",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runPager(cmd, app, pagerOptions{cached: opts.cached, start: opts.start})
			}
			return runChart(cmd, app, opts)
		},
	}
	root.Flags().BoolVar(&opts.cached, "cached", false, "Use the last cached snapshot instead of fetching")

	root.AddCommand(
		newFetchCmd(app),
		newChartCmd(app),
		newSpanCmd(app),
		newSnapshotsCmd(app),
		newTUICmd(app),
		newInitCmd(app),
	)

	return root
}
