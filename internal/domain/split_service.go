package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type splitService struct {
	runs   RunRepository
	target uint8
	now    func() time.Time
}

// NewSplitService returns a SplitService splitting into /target subnets.
// runs may be nil, in which case results are not persisted and GetRun
// always reports ErrNotFound.
func NewSplitService(runs RunRepository, target uint8) SplitService {
	if target == 0 {
		target = DefaultTargetBits
	}
	return &splitService{
		runs:   runs,
		target: target,
		now:    time.Now,
	}
}

func (s *splitService) Split(ctx context.Context, input SplitInput) (SplitResult, error) {
	valid, rejected := FilterCIDRLines(input.Lines)
	if len(valid) == 0 {
		return SplitResult{}, ErrNoValidCIDR
	}

	inputs := make([]CIDR, 0, len(valid))
	var total uint64
	for _, line := range valid {
		cidr, err := ParseCIDR(line)
		if err != nil {
			return SplitResult{}, err
		}
		count, err := SplitCount(cidr, s.target)
		if err != nil {
			return SplitResult{}, err
		}
		total += count
		inputs = append(inputs, cidr)
	}
	if input.MaxSubnets > 0 && total > input.MaxSubnets {
		return SplitResult{}, fmt.Errorf("%w: %d requested, limit %d", ErrTooManySubnets, total, input.MaxSubnets)
	}

	set := NewSubnetSet()
	for _, cidr := range inputs {
		subnets, err := Split(cidr, s.target)
		if err != nil {
			return SplitResult{}, err
		}
		set.AddAll(subnets)
	}

	result := SplitResult{
		RunID:       uuid.New(),
		Inputs:      inputs,
		Rejected:    rejected + input.Discarded,
		Subnets:     set.Sorted(),
		RequestedBy: input.RequestedBy,
		CreatedAt:   s.now().UTC(),
	}

	if s.runs != nil {
		if err := s.runs.Save(ctx, result); err != nil {
			return SplitResult{}, fmt.Errorf("save run %s: %w", result.RunID, err)
		}
	}

	return result, nil
}

func (s *splitService) GetRun(ctx context.Context, id uuid.UUID) (Run, error) {
	if s.runs == nil {
		return Run{}, ErrNotFound
	}
	return s.runs.FindByID(ctx, id)
}

// FilterCIDRLines trims every line and keeps the ones that look like a CIDR.
// Repeated lines are kept once, in first-seen order.
func FilterCIDRLines(lines []string) (valid []string, rejected int) {
	seen := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !IsValidCIDR(line) {
			rejected++
			continue
		}
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		valid = append(valid, line)
	}
	return valid, rejected
}
