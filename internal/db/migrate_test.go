package db_test

import (
	"testing"

	"github.com/alexanderramin/phaseline/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_Idempotent(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database))
	require.NoError(t, db.Migrate(database))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"snapshots", "snapshot_records"} {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_RejectsUnknownPhase(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO snapshots (id, source, fetched_at) VALUES ('s1', 'x', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO snapshot_records (snapshot_id, seq, name, phase) VALUES ('s1', 0, 'A', 'review')`)
	assert.Error(t, err)
}

func TestMigrate_CascadesRecordDelete(t *testing.T) {
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO snapshots (id, source, fetched_at) VALUES ('s1', 'x', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = database.Exec(`INSERT INTO snapshot_records (snapshot_id, seq, name, phase) VALUES ('s1', 0, 'A', 'design')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM snapshots WHERE id = 's1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM snapshot_records`).Scan(&n))
	assert.Zero(t, n)
}
