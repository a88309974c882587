package postgres

import (
	"context"
	"fmt"

	"elimination-tracker/internal/core/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the subset of pgxpool.Pool the journal needs.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
}

const createSchema = `
CREATE TABLE IF NOT EXISTS eliminations (
	id          BIGSERIAL PRIMARY KEY,
	session_id  TEXT        NOT NULL,
	server      TEXT        NOT NULL,
	victim      TEXT        NOT NULL,
	killer      TEXT        NOT NULL,
	cause       TEXT        NOT NULL,
	observed_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS eliminations_session_idx ON eliminations (session_id);
`

const insertElimination = `
INSERT INTO eliminations (session_id, server, victim, killer, cause, observed_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

// PostgresStore is a write-only journal of credited eliminations. It is
// never used to seed the in-memory session stats.
type PostgresStore struct {
	pool *pgxpool.Pool
	db   DBTX
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &PostgresStore{pool: pool, db: pool}
	if err := s.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) RecordElimination(ctx context.Context, e domain.Elimination) error {
	_, err := s.db.Exec(ctx, insertElimination,
		e.SessionID, e.Server, e.Victim, e.Killer, e.Cause, e.ObservedAt,
	)
	if err != nil {
		return fmt.Errorf("record elimination: %w", err)
	}
	return nil
}
