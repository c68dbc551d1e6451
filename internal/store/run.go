package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RunRecord is one archived generation run. Document holds the exact
// JSON bytes that were written, so an archived run can be reproduced
// byte for byte.
type RunRecord struct {
	ID          string
	CreatedAt   time.Time
	PairCount   int
	Distractors int
	Seed        int64
	Seeded      bool
	Document    string
}

// SaveRun inserts rec and returns its ID. A missing ID is assigned a
// fresh UUID and a zero CreatedAt is set to the current time.
func (s *Store) SaveRun(ctx context.Context, rec RunRecord) (string, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	const q = `
INSERT INTO quiz_runs (id, created_at, pair_count, distractor_count, seed, seeded, document)
VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, q,
		rec.ID,
		rec.CreatedAt.Format(time.RFC3339Nano),
		rec.PairCount,
		rec.Distractors,
		rec.Seed,
		boolToInt(rec.Seeded),
		rec.Document,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return rec.ID, nil
}

// ListRuns returns up to limit runs, newest first, without their
// documents. A limit of 0 or less means no limit.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	q := `
SELECT id, created_at, pair_count, distractor_count, seed, seeded
FROM quiz_runs ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var createdAt string
		var seeded int
		if err := rows.Scan(&rec.ID, &createdAt, &rec.PairCount, &rec.Distractors, &rec.Seed, &seeded); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q: %w", createdAt, err)
		}
		rec.Seeded = seeded != 0
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}

// GetRun returns the full record for id, including the stored
// document.
func (s *Store) GetRun(ctx context.Context, id string) (RunRecord, error) {
	const q = `
SELECT id, created_at, pair_count, distractor_count, seed, seeded, document
FROM quiz_runs WHERE id = ?`

	var rec RunRecord
	var createdAt string
	var seeded int
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&rec.ID, &createdAt, &rec.PairCount, &rec.Distractors, &rec.Seed, &seeded, &rec.Document)
	if err == sql.ErrNoRows {
		return RunRecord{}, fmt.Errorf("run %q not found", id)
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("query run: %w", err)
	}

	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return RunRecord{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	rec.Seeded = seeded != 0
	return rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
