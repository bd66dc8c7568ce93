package cli

import (
	"fmt"

	"github.com/alexanderramin/phaseline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFetchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the spreadsheet and cache a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var stop func()
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Fetching spreadsheet...")
			}
			res, err := app.Load.Refresh(cmd.Context())
			if stop != nil {
				stop()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Degraded {
				reportLoad(out, res)
				return nil
			}
			fmt.Fprintf(out, "%s %d projects from %s\n", formatter.StyleGreen.Render("Fetched"), len(res.Records), res.Source)
			fmt.Fprintln(out, formatter.Dim("snapshot "+formatter.TruncID(res.SnapshotID)))
			reportLoad(out, res)
			return nil
		},
	}
}

func newSpanCmd(app *App) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "span",
		Short: "Show the data span and the viewport bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSpan(set.Span, set.Viewport, set.CanBack, set.CanForward))
			return nil
		},
	}

	addRenderFlags(cmd.Flags(), &opts)
	return cmd
}

func newSnapshotsCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List cached snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := app.Load.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSnapshotList(list, app.clock()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum snapshots to list (0 for all)")
	return cmd
}
