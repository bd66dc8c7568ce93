package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/phaseline/internal/db"
	"github.com/alexanderramin/phaseline/internal/domain"
	"github.com/google/uuid"
)

// SQLiteSnapshotRepo implements SnapshotRepo. It accepts either the database
// or a transaction so saves can run inside a unit of work.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

// Save writes the snapshot and its records. An empty ID is filled with a new
// UUID and a zero FetchedAt with the current time.
func (r *SQLiteSnapshotRepo) Save(ctx context.Context, s *domain.Snapshot) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.FetchedAt.IsZero() {
		s.FetchedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, source, fetched_at, record_count) VALUES (?, ?, ?, ?)`,
		s.ID, s.Source, formatFetchedAt(s.FetchedAt), len(s.Records),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	const insertRecord = `INSERT INTO snapshot_records (snapshot_id, seq, name, phase, owner, start_raw, end_raw)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	for seq, rec := range s.Records {
		if len(rec.Phases) == 0 {
			if _, err := r.db.ExecContext(ctx, insertRecord, s.ID, seq, rec.Name, "", "", "", ""); err != nil {
				return fmt.Errorf("inserting record %q: %w", rec.Name, err)
			}
			continue
		}
		for _, p := range domain.AllPhases {
			iv, ok := rec.Phase(p)
			if !ok {
				continue
			}
			if _, err := r.db.ExecContext(ctx, insertRecord,
				s.ID, seq, rec.Name, string(p), iv.Owner, iv.RawStart, iv.RawEnd,
			); err != nil {
				return fmt.Errorf("inserting record %q phase %s: %w", rec.Name, p, err)
			}
		}
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Latest(ctx context.Context) (*domain.Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source, fetched_at FROM snapshots ORDER BY fetched_at DESC, rowid DESC LIMIT 1`)
	return r.loadSnapshot(ctx, row)
}

func (r *SQLiteSnapshotRepo) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, source, fetched_at FROM snapshots WHERE id = ?`, id)
	return r.loadSnapshot(ctx, row)
}

// List returns the newest snapshots first. limit <= 0 lists all of them.
func (r *SQLiteSnapshotRepo) List(ctx context.Context, limit int) ([]SnapshotSummary, error) {
	query := `SELECT id, source, fetched_at, record_count FROM snapshots ORDER BY fetched_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotSummary
	for rows.Next() {
		var sum SnapshotSummary
		var fetchedAt string
		if err := rows.Scan(&sum.ID, &sum.Source, &fetchedAt, &sum.RecordCount); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		if sum.FetchedAt, err = parseFetchedAt(fetchedAt); err != nil {
			return nil, err
		}
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}
	return out, nil
}

func (r *SQLiteSnapshotRepo) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 1 {
		keep = 1
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM snapshots WHERE id NOT IN (
			SELECT id FROM snapshots ORDER BY fetched_at DESC, rowid DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning snapshots: %w", err)
	}
	return int(n), nil
}

func (r *SQLiteSnapshotRepo) loadSnapshot(ctx context.Context, row *sql.Row) (*domain.Snapshot, error) {
	var s domain.Snapshot
	var fetchedAt string
	if err := row.Scan(&s.ID, &s.Source, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}
	var err error
	if s.FetchedAt, err = parseFetchedAt(fetchedAt); err != nil {
		return nil, err
	}
	if s.Records, err = r.loadRecords(ctx, s.ID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteSnapshotRepo) loadRecords(ctx context.Context, snapshotID string) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, name, phase, owner, start_raw, end_raw
		FROM snapshot_records WHERE snapshot_id = ? ORDER BY seq`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	lastSeq := -1
	for rows.Next() {
		var seq int
		var name, phase, owner, startRaw, endRaw string
		if err := rows.Scan(&seq, &name, &phase, &owner, &startRaw, &endRaw); err != nil {
			return nil, fmt.Errorf("scanning snapshot record: %w", err)
		}
		if seq != lastSeq {
			records = append(records, domain.NewRecord(name))
			lastSeq = seq
		}
		if phase == "" {
			continue
		}
		rec := &records[len(records)-1]
		rec.SetPhase(domain.Phase(phase), domain.NewInterval(name, owner, startRaw, endRaw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot records: %w", err)
	}
	return records, nil
}
