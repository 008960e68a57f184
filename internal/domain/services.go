package domain

import (
	"context"

	"github.com/google/uuid"
)

type SplitService interface {
	Split(ctx context.Context, input SplitInput) (SplitResult, error)
	GetRun(ctx context.Context, id uuid.UUID) (Run, error)
}
