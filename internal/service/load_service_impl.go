package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/phaseline/internal/db"
	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/importer"
	"github.com/alexanderramin/phaseline/internal/repository"
	"github.com/alexanderramin/phaseline/internal/sheet"
)

// DefaultKeepSnapshots is how many snapshots Refresh keeps when not told.
const DefaultKeepSnapshots = 10

type loadService struct {
	source    sheet.Source
	snapshots repository.SnapshotRepo
	uow       db.UnitOfWork
	keep      int
	observer  UseCaseObserver
	now       func() time.Time
}

// NewLoadService wires the refresh pipeline. source may be nil when nothing
// is configured; Refresh then degrades with sheet.ErrNotConfigured.
func NewLoadService(
	source sheet.Source,
	snapshots repository.SnapshotRepo,
	uow db.UnitOfWork,
	keep int,
	observers ...UseCaseObserver,
) LoadService {
	if keep <= 0 {
		keep = DefaultKeepSnapshots
	}
	return &loadService{
		source:    source,
		snapshots: snapshots,
		uow:       uow,
		keep:      keep,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *loadService) Refresh(ctx context.Context) (result *LoadResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() {
		cause := err
		if cause == nil && result != nil {
			cause = result.Err
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "refresh",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   cause == nil,
			Err:       cause,
			Fields:    fields,
		})
	}()

	if s.source == nil {
		return degraded("", sheet.ErrNotConfigured), nil
	}
	src := s.source.Describe()
	fields["source"] = src

	data, fetchErr := s.source.Fetch(ctx)
	if fetchErr != nil {
		return degraded(src, fetchErr), nil
	}
	fields["bytes"] = len(data)

	records, parseErr := importer.ParseCSV(bytes.NewReader(data))
	if parseErr != nil {
		return degraded(src, parseErr), nil
	}
	fields["records"] = len(records)

	snap := &domain.Snapshot{
		Source:    src,
		FetchedAt: s.now(),
		Records:   records,
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteSnapshotRepo(tx)
		if err := repo.Save(ctx, snap); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
		pruned, err := repo.Prune(ctx, s.keep)
		if err != nil {
			return err
		}
		fields["pruned"] = pruned
		return nil
	})
	if err != nil {
		return nil, err
	}

	warnings := importer.Validate(records)
	fields["warnings"] = len(warnings)
	return &LoadResult{
		Records:    records,
		SnapshotID: snap.ID,
		Source:     src,
		FetchedAt:  snap.FetchedAt,
		Warnings:   warnings,
	}, nil
}

func (s *loadService) Cached(ctx context.Context) (*LoadResult, error) {
	snap, err := s.snapshots.Latest(ctx)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return &LoadResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cached snapshot: %w", err)
	}
	return &LoadResult{
		Records:    snap.Records,
		SnapshotID: snap.ID,
		Source:     snap.Source,
		FetchedAt:  snap.FetchedAt,
		Warnings:   importer.Validate(snap.Records),
	}, nil
}

func (s *loadService) History(ctx context.Context, limit int) ([]repository.SnapshotSummary, error) {
	list, err := s.snapshots.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing snapshot history: %w", err)
	}
	return list, nil
}

// degraded is the empty dataset used when the spreadsheet cannot be read.
func degraded(source string, cause error) *LoadResult {
	return &LoadResult{Source: source, Degraded: true, Err: cause}
}
