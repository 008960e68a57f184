package db

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	"github.com/Flarenzy/subnetsplit/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RunRepository struct {
	pool *pgxpool.Pool
}

func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Save stores a run with its inputs and subnets in one transaction.
func (r *RunRepository) Save(ctx context.Context, result domain.SplitResult) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id := toPGUUID(result.RunID)
	_, err = tx.Exec(ctx,
		`INSERT INTO split_runs (id, rejected, requested_by, created_at) VALUES ($1, $2, $3, $4)`,
		id, result.Rejected,
		pgtype.Text{String: result.RequestedBy, Valid: result.RequestedBy != ""},
		pgtype.Timestamptz{Time: result.CreatedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"split_run_inputs"},
		[]string{"run_id", "position", "cidr"},
		pgx.CopyFromSlice(len(result.Inputs), func(i int) ([]any, error) {
			return []any{id, int32(i), result.Inputs[i].String()}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy inputs: %w", err)
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"split_run_subnets"},
		[]string{"run_id", "cidr"},
		pgx.CopyFromSlice(len(result.Subnets), func(i int) ([]any, error) {
			return []any{id, result.Subnets[i].Prefix()}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy subnets: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *RunRepository) FindByID(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	pgID := toPGUUID(id)

	var (
		rejected    int32
		requestedBy pgtype.Text
		createdAt   pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx,
		`SELECT rejected, requested_by, created_at FROM split_runs WHERE id = $1`, pgID,
	).Scan(&rejected, &requestedBy, &createdAt)
	if err != nil {
		if isNoRows(err) {
			return domain.Run{}, domain.ErrNotFound
		}
		return domain.Run{}, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT cidr FROM split_run_inputs WHERE run_id = $1 ORDER BY position`, pgID)
	if err != nil {
		return domain.Run{}, err
	}
	inputs, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return domain.Run{}, fmt.Errorf("read inputs: %w", err)
	}

	rows, err = r.pool.Query(ctx,
		`SELECT cidr FROM split_run_subnets WHERE run_id = $1 ORDER BY cidr`, pgID)
	if err != nil {
		return domain.Run{}, err
	}
	subnets, err := pgx.CollectRows(rows, pgx.RowTo[netip.Prefix])
	if err != nil {
		return domain.Run{}, fmt.Errorf("read subnets: %w", err)
	}

	return domain.Run{
		ID:          id,
		Inputs:      inputs,
		Rejected:    int(rejected),
		Subnets:     subnets,
		RequestedBy: requestedBy.String,
		CreatedAt:   createdAt.Time.In(time.UTC),
	}, nil
}

func toPGUUID(id uuid.UUID) pgtype.UUID {
	var out pgtype.UUID
	copy(out.Bytes[:], id[:])
	out.Valid = true
	return out
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
