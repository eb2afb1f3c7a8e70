// Package runstore provides a SQLite-backed history of summarized estimation runs.
package runstore

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/montepi/estimator"
	"github.com/katalvlaran/montepi/internal/runstore/migrations"
)

// Record is one stored summary.
type Record struct {
	ID        int64
	CreatedAt time.Time
	Seed      *int64 // nil when the run was drawn from a caller-owned source
	Report    estimator.Report
}

// Store persists run summaries in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens (creating if needed) the database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Save inserts rec (ID is ignored) and returns the assigned ID.
// A zero CreatedAt is stamped with the current time.
func (s *Store) Save(ctx context.Context, rec Record) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	rep := rec.Report
	if rep.SampleCount <= 0 {
		return 0, fmt.Errorf("report has no samples: %w", estimator.ErrNotYetEstimated)
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	var seed sql.NullInt64
	if rec.Seed != nil {
		seed = sql.NullInt64{Int64: *rec.Seed, Valid: true}
	}

	res, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO runs (created_at, dimension, samples, inside, pi, ci_lower, ci_upper, half_width, decimals, seed)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		toMillis(createdAt), rep.Dimension, rep.SampleCount, rep.InsideCount,
		rep.Pi, rep.Lower, rep.Upper, rep.HalfWidth, rep.Precision, seed,
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}

	return res.LastInsertId()
}

// List returns up to limit records, newest first. limit ≤ 0 means no limit.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, created_at, dimension, samples, inside, pi, ci_lower, ci_upper, half_width, decimals, seed
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			rec     Record
			created int64
			seed    sql.NullInt64
		)
		rep := &rec.Report
		if err := rows.Scan(&rec.ID, &created, &rep.Dimension, &rep.SampleCount, &rep.InsideCount,
			&rep.Pi, &rep.Lower, &rep.Upper, &rep.HalfWidth, &rep.Precision, &seed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt = fromMillis(created)
		if seed.Valid {
			v := seed.Int64
			rec.Seed = &v
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return out, nil
}
