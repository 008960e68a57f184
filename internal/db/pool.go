package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS split_runs (
	id         uuid PRIMARY KEY,
	rejected     integer NOT NULL DEFAULT 0,
	requested_by text,
	created_at   timestamptz NOT NULL DEFAULT now()
);

ALTER TABLE split_runs ADD COLUMN IF NOT EXISTS requested_by text;

CREATE TABLE IF NOT EXISTS split_run_inputs (
	run_id   uuid NOT NULL REFERENCES split_runs (id) ON DELETE CASCADE,
	position integer NOT NULL,
	cidr     text NOT NULL,
	PRIMARY KEY (run_id, position)
);

CREATE TABLE IF NOT EXISTS split_run_subnets (
	run_id uuid NOT NULL REFERENCES split_runs (id) ON DELETE CASCADE,
	cidr   cidr NOT NULL,
	PRIMARY KEY (run_id, cidr)
);
`

// EnsureSchema creates the run tables when they are missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
