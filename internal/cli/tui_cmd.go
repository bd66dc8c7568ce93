package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/phaseline/internal/sheet"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newTUICmd(app *App) *cobra.Command {
	var opts pagerOptions

	cmd := &cobra.Command{
		Use:     "tui",
		Aliases: []string{"pager"},
		Short:   "Page through the charts interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPager(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.cached, "cached", false, "Use the last cached snapshot instead of fetching")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Reload when the local CSV file changes")
	cmd.Flags().StringVar(&opts.start, "start", "", "First month of the viewport (YYYY-MM)")

	return cmd
}

func runPager(cmd *cobra.Command, app *App, opts pagerOptions) error {
	watchPath := app.Config.Source.File
	if opts.watch && watchPath == "" {
		return errors.New("--watch needs a local source file (source.file or PHASELINE_SOURCE_FILE)")
	}

	p := tea.NewProgram(newPagerModel(app, opts),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	if opts.watch {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := sheet.Watch(ctx, watchPath, func() { p.Send(sourceChangedMsg{}) }); err != nil {
			return err
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running pager: %w", err)
	}
	return nil
}
