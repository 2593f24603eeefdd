// SPDX-License-Identifier: MIT
// Package: spinmix/record
//
// sqlite.go: SQLite-backed store of runs and their records.
//
// Schema:
//   runs(id, model, n, trials, low, high, step, seed, started_at)
//   records(run_id → runs.id, seq, param, iterations, duration_ns)
//
// One database may hold many runs; each run is addressed by a random UUID.

package record

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrUnknownRun indicates a run id with no row in the runs table.
var ErrUnknownRun = errors.New("record: unknown run")

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	model      TEXT NOT NULL,
	n          INTEGER NOT NULL,
	trials     INTEGER NOT NULL,
	low        REAL NOT NULL,
	high       REAL NOT NULL,
	step       REAL NOT NULL,
	seed       INTEGER NOT NULL,
	started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS records (
	run_id      TEXT NOT NULL,
	seq         INTEGER NOT NULL,
	param       REAL NOT NULL,
	iterations  INTEGER NOT NULL,
	duration_ns INTEGER NOT NULL,
	PRIMARY KEY (run_id, seq),
	FOREIGN KEY (run_id) REFERENCES runs(id)
);
`

// RunInfo describes one sweep stored in SQLite.
type RunInfo struct {
	ID        uuid.UUID
	Model     string
	N         int
	Trials    int
	Low       float64
	High      float64
	Step      float64
	Seed      int64
	StartedAt time.Time
}

// SQLiteStore owns a database handle.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("OpenSQLite: %w", err)
	}
	if _, err = db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("OpenSQLite: schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// BeginRun inserts info (assigning a new ID when info.ID is zero) and returns
// a sink that appends records to that run.
func (s *SQLiteStore) BeginRun(ctx context.Context, info RunInfo) (*SQLiteSink, error) {
	if info.ID == uuid.Nil {
		info.ID = uuid.New()
	}
	if info.StartedAt.IsZero() {
		info.StartedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, model, n, trials, low, high, step, seed, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID.String(), info.Model, info.N, info.Trials, info.Low, info.High, info.Step, info.Seed,
		info.StartedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("BeginRun: %w", err)
	}
	stmt, err := s.db.PrepareContext(ctx,
		`INSERT INTO records (run_id, seq, param, iterations, duration_ns) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("BeginRun: prepare: %w", err)
	}
	return &SQLiteSink{stmt: stmt, run: info.ID}, nil
}

// Runs lists every stored run, oldest first.
func (s *SQLiteStore) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, model, n, trials, low, high, step, seed, started_at FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("Runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var (
			info      RunInfo
			id, start string
		)
		if err = rows.Scan(&id, &info.Model, &info.N, &info.Trials, &info.Low, &info.High, &info.Step, &info.Seed, &start); err != nil {
			return nil, fmt.Errorf("Runs: %w", err)
		}
		if info.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("Runs: id %q: %w", id, err)
		}
		if info.StartedAt, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return nil, fmt.Errorf("Runs: started_at %q: %w", start, err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Records returns the records of run in append order.
func (s *SQLiteStore) Records(ctx context.Context, run uuid.UUID) ([]Record, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, run.String()).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("Records: %s: %w", run, ErrUnknownRun)
	}
	if err != nil {
		return nil, fmt.Errorf("Records: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT param, iterations, duration_ns FROM records WHERE run_id = ? ORDER BY seq`, run.String())
	if err != nil {
		return nil, fmt.Errorf("Records: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var (
			r     Record
			iters int64
			nanos int64
		)
		if err = rows.Scan(&r.Param, &iters, &nanos); err != nil {
			return nil, fmt.Errorf("Records: %w", err)
		}
		r.Iterations = uint64(iters)
		r.Duration = time.Duration(nanos)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SQLiteSink appends the records of one run. Not safe for concurrent use.
type SQLiteSink struct {
	stmt *sql.Stmt
	run  uuid.UUID
	seq  int64
}

// RunID returns the run this sink writes to.
func (k *SQLiteSink) RunID() uuid.UUID { return k.run }

// Append implements Sink; each record is committed on its own.
func (k *SQLiteSink) Append(r Record) error {
	_, err := k.stmt.Exec(k.run.String(), k.seq, r.Param, int64(r.Iterations), int64(r.Duration))
	if err != nil {
		return fmt.Errorf("SQLiteSink.Append: %w", err)
	}
	k.seq++
	return nil
}

// Close releases the prepared statement. The store stays open.
func (k *SQLiteSink) Close() error { return k.stmt.Close() }
