package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
)

// ErrSnapshotNotFound is returned when no snapshot matches the lookup.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotSummary is a snapshot without its records, for listings.
type SnapshotSummary struct {
	ID          string
	Source      string
	FetchedAt   time.Time
	RecordCount int
}

type SnapshotRepo interface {
	Save(ctx context.Context, s *domain.Snapshot) error
	Latest(ctx context.Context) (*domain.Snapshot, error)
	GetByID(ctx context.Context, id string) (*domain.Snapshot, error)
	List(ctx context.Context, limit int) ([]SnapshotSummary, error)
	// Prune deletes all but the keep most recent snapshots and returns how
	// many were removed.
	Prune(ctx context.Context, keep int) (int, error)
}
