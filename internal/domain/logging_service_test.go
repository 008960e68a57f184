package domain

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"testing"

	"github.com/google/uuid"
)

type captureHandler struct {
	records []slog.Record
}

func (h *captureHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, record slog.Record) error {
	clone := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clone.AddAttrs(attr)
		return true
	})
	h.records = append(h.records, clone)
	return nil
}

func (h *captureHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(string) slog.Handler {
	return h
}

type stubSplitService struct {
	splitFn  func(context.Context, SplitInput) (SplitResult, error)
	getRunFn func(context.Context, uuid.UUID) (Run, error)
}

func (s stubSplitService) Split(ctx context.Context, input SplitInput) (SplitResult, error) {
	if s.splitFn == nil {
		return SplitResult{}, nil
	}
	return s.splitFn(ctx, input)
}

func (s stubSplitService) GetRun(ctx context.Context, id uuid.UUID) (Run, error) {
	if s.getRunFn == nil {
		return Run{}, nil
	}
	return s.getRunFn(ctx, id)
}

func TestLoggingSplitServiceLogsCompletion(t *testing.T) {
	handler := &captureHandler{}
	logger := slog.New(handler)
	service := NewLoggingSplitService(logger, stubSplitService{
		splitFn: func(context.Context, SplitInput) (SplitResult, error) {
			return SplitResult{RunID: uuid.New(), Subnets: []Subnet{{Addr: 0x0a000000, Bits: 24}}}, nil
		},
	})

	_, err := service.Split(context.Background(), SplitInput{Lines: []string{"10.0.0.0/24"}})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelInfo || handler.records[0].Message != "split completed" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestLoggingSplitServiceLogsRejectedLinesAtDebug(t *testing.T) {
	handler := &captureHandler{}
	service := NewLoggingSplitService(slog.New(handler), stubSplitService{
		splitFn: func(context.Context, SplitInput) (SplitResult, error) {
			return SplitResult{RunID: uuid.New(), Rejected: 2}, nil
		},
	})

	if _, err := service.Split(context.Background(), SplitInput{}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	levels := make([]slog.Level, 0, len(handler.records))
	for _, r := range handler.records {
		levels = append(levels, r.Level)
	}
	if !slices.Equal(levels, []slog.Level{slog.LevelDebug, slog.LevelInfo}) {
		t.Fatalf("unexpected levels: %v", levels)
	}
}

func TestLoggingSplitServiceLogsErrors(t *testing.T) {
	handler := &captureHandler{}
	logger := slog.New(handler)
	service := NewLoggingSplitService(logger, stubSplitService{
		splitFn: func(context.Context, SplitInput) (SplitResult, error) {
			return SplitResult{}, ErrNoValidCIDR
		},
	})

	_, err := service.Split(context.Background(), SplitInput{Lines: []string{"junk"}})
	if !errors.Is(err, ErrNoValidCIDR) {
		t.Fatalf("expected ErrNoValidCIDR, got %v", err)
	}

	if len(handler.records) != 1 {
		t.Fatalf("expected 1 log record, got %d", len(handler.records))
	}
	if handler.records[0].Level != slog.LevelError || handler.records[0].Message != "split failed" {
		t.Fatalf("unexpected log record: level=%v message=%q", handler.records[0].Level, handler.records[0].Message)
	}
}

func TestNewLoggingSplitServiceReturnsNextWhenLoggerNil(t *testing.T) {
	called := false
	next := stubSplitService{
		getRunFn: func(context.Context, uuid.UUID) (Run, error) {
			called = true
			return Run{Rejected: 99}, nil
		},
	}
	wrapped := NewLoggingSplitService(nil, next)
	run, err := wrapped.GetRun(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !called {
		t.Fatal("expected wrapped service to delegate to next")
	}
	if run.Rejected != 99 {
		t.Fatalf("unexpected rejected count: %d", run.Rejected)
	}
}
