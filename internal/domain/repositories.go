package domain

import (
	"context"

	"github.com/google/uuid"
)

type RunRepository interface {
	Save(ctx context.Context, result SplitResult) error
	FindByID(ctx context.Context, id uuid.UUID) (Run, error)
}
