// Copyright (c) 2026 Telegram Toys (https://github.com/telegram-toys)
//
// postgres.go — PostgreSQL archive store: schema bootstrap, record upsert,
// lookup, delete, and count against the tl_dumps table.

package archive

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is the PostgreSQL archive store.
type Postgres struct {
	pool  *pgxpool.Pool
	table string
}

// NewPostgres creates a Postgres archive store from an existing pool.
// An empty table name defaults to "tl_dumps".
func NewPostgres(pool *pgxpool.Pool, table string) *Postgres {
	if table == "" {
		table = "tl_dumps"
	}
	return &Postgres{pool: pool, table: table}
}

// EnsureSchema creates the dump table when it does not exist yet.
func (s *Postgres) EnsureSchema(ctx context.Context) error {
	sql := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key       TEXT PRIMARY KEY,
		type_id   TEXT NOT NULL,
		dump      TEXT NOT NULL,
		stored_at TIMESTAMPTZ NOT NULL
	)`, s.table)
	if _, err := s.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("archive ensure schema: %w", err)
	}
	return nil
}

// Put upserts a record by key.
func (s *Postgres) Put(ctx context.Context, rec Record) error {
	sql := fmt.Sprintf(`INSERT INTO %s (key, type_id, dump, stored_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE SET
			type_id   = EXCLUDED.type_id,
			dump      = EXCLUDED.dump,
			stored_at = EXCLUDED.stored_at`, s.table)
	if _, err := s.pool.Exec(ctx, sql, rec.Key, rec.TypeID, rec.Dump, rec.StoredAt); err != nil {
		return fmt.Errorf("archive upsert %s: %w", rec.Key, err)
	}
	return nil
}

// Get retrieves the record stored under key. Returns ErrMiss when absent.
func (s *Postgres) Get(ctx context.Context, key string) (Record, error) {
	sql := fmt.Sprintf("SELECT key, type_id, dump, stored_at FROM %s WHERE key = $1", s.table)
	var rec Record
	err := s.pool.QueryRow(ctx, sql, key).Scan(&rec.Key, &rec.TypeID, &rec.Dump, &rec.StoredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrMiss
		}
		return Record{}, fmt.Errorf("archive select %s: %w", key, err)
	}
	return rec, nil
}

// Delete removes the record stored under key.
func (s *Postgres) Delete(ctx context.Context, key string) error {
	sql := fmt.Sprintf("DELETE FROM %s WHERE key = $1", s.table)
	if _, err := s.pool.Exec(ctx, sql, key); err != nil {
		return fmt.Errorf("archive delete %s: %w", key, err)
	}
	return nil
}

// Count returns the number of stored records, optionally filtered to one
// type identifier (empty string = all).
func (s *Postgres) Count(ctx context.Context, typeID string) (int64, error) {
	sql := fmt.Sprintf("SELECT COUNT(*) FROM %s", s.table)
	args := []any{}
	if typeID != "" {
		sql += " WHERE type_id = $1"
		args = append(args, typeID)
	}
	var n int64
	if err := s.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("archive count: %w", err)
	}
	return n, nil
}

// Ping verifies the pool is reachable.
func (s *Postgres) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Pool returns the underlying connection pool.
func (s *Postgres) Pool() *pgxpool.Pool { return s.pool }

// Close shuts down the underlying connection pool.
func (s *Postgres) Close() { s.pool.Close() }
