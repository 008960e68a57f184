package domain

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type loggingSplitService struct {
	logger *slog.Logger
	next   SplitService
}

func NewLoggingSplitService(logger *slog.Logger, next SplitService) SplitService {
	if logger == nil || next == nil {
		return next
	}

	return &loggingSplitService{
		logger: logger,
		next:   next,
	}
}

func (s *loggingSplitService) Split(ctx context.Context, input SplitInput) (SplitResult, error) {
	result, err := s.next.Split(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "split failed", "lines", len(input.Lines), "err", err.Error())
		return SplitResult{}, err
	}

	if result.Rejected > 0 {
		s.logger.DebugContext(ctx, "discarded invalid lines", "run_id", result.RunID.String(), "rejected", result.Rejected)
	}
	s.logger.InfoContext(ctx, "split completed",
		"run_id", result.RunID.String(),
		"inputs", len(result.Inputs),
		"subnets", len(result.Subnets),
	)
	return result, nil
}

func (s *loggingSplitService) GetRun(ctx context.Context, id uuid.UUID) (Run, error) {
	run, err := s.next.GetRun(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "get run failed", "run_id", id.String(), "err", err.Error())
	}
	return run, err
}
