package testutil

import (
	"time"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/google/uuid"
)

// RecordOption configures a record built by NewTestRecord.
type RecordOption func(*domain.Record)

// WithPhase attaches a phase parsed from raw date strings.
func WithPhase(p domain.Phase, owner, start, end string) RecordOption {
	return func(r *domain.Record) {
		r.SetPhase(p, domain.NewInterval(r.Name, owner, start, end))
	}
}

func NewTestRecord(name string, opts ...RecordOption) domain.Record {
	r := domain.NewRecord(name)
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// SnapshotOption configures a snapshot built by NewTestSnapshot.
type SnapshotOption func(*domain.Snapshot)

func WithFetchedAt(t time.Time) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.FetchedAt = t
	}
}

func WithSource(src string) SnapshotOption {
	return func(s *domain.Snapshot) {
		s.Source = src
	}
}

func NewTestSnapshot(records []domain.Record, opts ...SnapshotOption) *domain.Snapshot {
	s := &domain.Snapshot{
		ID:        uuid.New().String(),
		Source:    "test.csv",
		FetchedAt: time.Now().UTC(),
		Records:   records,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SampleRecords is a small dataset covering every phase, a phase-less
// project and an unparsable date.
func SampleRecords() []domain.Record {
	return []domain.Record{
		NewTestRecord("Alpha",
			WithPhase(domain.PhaseDesign, "Ann", "2024-09-10", "2024-09-20"),
			WithPhase(domain.PhaseEstimating, "Bob", "2024-09-15", "2024-10-01"),
			WithPhase(domain.PhaseProduction, "Cy", "2024-10-01", "2024-11-15"),
		),
		NewTestRecord("Beta",
			WithPhase(domain.PhaseDesign, "Ann", "2024-09-15", "2024-09-25"),
		),
		NewTestRecord("Gamma",
			WithPhase(domain.PhaseEstimating, "Bob", "soon", "2024-12-01"),
		),
		NewTestRecord("Delta"),
	}
}
