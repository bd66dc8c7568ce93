package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/phaseline/internal/cli"
	"github.com/alexanderramin/phaseline/internal/config"
	"github.com/alexanderramin/phaseline/internal/db"
	"github.com/alexanderramin/phaseline/internal/repository"
	"github.com/alexanderramin/phaseline/internal/service"
	"github.com/alexanderramin/phaseline/internal/sheet"
	"github.com/alexanderramin/phaseline/internal/timeline"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dir, err := config.Dir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}
	cfgPath := config.Path(dir)
	cfg, err := config.Load(cfgPath, dir)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	database, err := db.OpenDB(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	snapshotRepo := repository.NewSQLiteSnapshotRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// An unconfigured source is not fatal: init still works, and every
	// other command reports an empty, degraded dataset.
	source, err := sheet.NewSource(cfg.Sheet(), sheet.NewSlogObserver(logger))
	if err != nil && !errors.Is(err, sheet.ErrNotConfigured) {
		return err
	}

	app := &cli.App{
		Load: service.NewLoadService(source, snapshotRepo, uow, cfg.Storage.KeepSnapshots,
			service.NewSlogUseCaseObserver(logger)),
		Charts:     service.NewChartService(cfg.View.Months, timeline.DefaultLayout()),
		Config:     cfg,
		ConfigPath: cfgPath,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
