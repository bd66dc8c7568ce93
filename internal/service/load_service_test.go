package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/alexanderramin/phaseline/internal/repository"
	"github.com/alexanderramin/phaseline/internal/sheet"
	"github.com/alexanderramin/phaseline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadService_Refresh_PersistsSnapshot(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	obs := &recordingUseCaseObserver{}
	svc := NewLoadService(&stubSource{data: []byte(testCSV)}, repo, testutil.NewTestUoW(database), 5, obs)
	ctx := context.Background()

	res, err := svc.Refresh(ctx)
	require.NoError(t, err)
	assert.False(t, res.Degraded)
	assert.Equal(t, "stub.csv", res.Source)
	require.Len(t, res.Records, 2)
	assert.NotEmpty(t, res.SnapshotID)
	assert.Empty(t, res.Warnings)

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.SnapshotID, latest.ID)
	prod, ok := latest.Records[1].Phase(domain.PhaseProduction)
	require.True(t, ok)
	assert.Equal(t, "B", prod.Owner)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "refresh", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, 2, obs.events[0].Fields["records"])
}

func TestLoadService_Refresh_PrunesToKeep(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	svc := NewLoadService(&stubSource{data: []byte(testCSV)}, repo, testutil.NewTestUoW(database), 2)
	ctx := context.Background()

	var last string
	for i := 0; i < 4; i++ {
		res, err := svc.Refresh(ctx)
		require.NoError(t, err)
		last = res.SnapshotID
	}

	list, err := svc.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, last, list[0].ID)
}

func TestLoadService_Refresh_FetchFailureDegrades(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	obs := &recordingUseCaseObserver{}
	src := &stubSource{err: sheet.ErrTimeout}
	svc := NewLoadService(src, repo, testutil.NewTestUoW(database), 5, obs)

	res, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.Empty(t, res.Records)
	assert.ErrorIs(t, res.Err, sheet.ErrTimeout)
	assert.Equal(t, 1, src.calls)

	_, err = repo.Latest(context.Background())
	assert.ErrorIs(t, err, repository.ErrSnapshotNotFound, "nothing is cached on failure")

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.ErrorIs(t, obs.events[0].Err, sheet.ErrTimeout)
}

func TestLoadService_Refresh_NoSourceDegrades(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewLoadService(nil, repository.NewSQLiteSnapshotRepo(database), testutil.NewTestUoW(database), 5)

	res, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	assert.ErrorIs(t, res.Err, sheet.ErrNotConfigured)
}

func TestLoadService_Refresh_ReportsBadDatesAsWarnings(t *testing.T) {
	database := testutil.NewTestDB(t)
	csv := testCSV + "Gamma,C,someday,2024-02-01,,,,,,\n"
	svc := NewLoadService(&stubSource{data: []byte(csv)}, repository.NewSQLiteSnapshotRepo(database), testutil.NewTestUoW(database), 5)

	res, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Records, 3)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0].Error(), "Gamma")
}

func TestLoadService_Refresh_PersistFailureRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}
	svc := NewLoadService(&stubSource{data: []byte(testCSV)}, repo, uow, 5)

	_, err := svc.Refresh(context.Background())
	require.ErrorIs(t, err, boom)

	list, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestLoadService_Cached(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteSnapshotRepo(database)
	svc := NewLoadService(&stubSource{data: []byte(testCSV)}, repo, testutil.NewTestUoW(database), 5)
	ctx := context.Background()

	empty, err := svc.Cached(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty.Records)
	assert.False(t, empty.Degraded)

	fresh, err := svc.Refresh(ctx)
	require.NoError(t, err)

	cached, err := svc.Cached(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh.SnapshotID, cached.SnapshotID)
	require.Len(t, cached.Records, 2)
	assert.Equal(t, "Alpha", cached.Records[0].Name)
}
