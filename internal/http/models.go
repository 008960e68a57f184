package http

import (
	"time"

	"github.com/Flarenzy/subnetsplit/internal/domain"
	"go4.org/netipx"
)

// SplitRequest is the payload accepted when splitting CIDR blocks.
type SplitRequest struct {
	CIDRs []string `json:"cidrs" example:"10.0.0.0/23,192.168.1.0/24"`
}

// RangeResponse is one contiguous address range covered by a split, with
// the fewest CIDR blocks that cover exactly that range.
type RangeResponse struct {
	First string   `json:"first" example:"10.0.0.0"`
	Last  string   `json:"last" example:"10.0.1.255"`
	CIDRs []string `json:"cidrs" example:"10.0.0.0/23"`
}

// SplitResponse is returned after a successful split.
type SplitResponse struct {
	RunID       string          `json:"run_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Rejected    int             `json:"rejected" example:"0"`
	Count       int             `json:"count" example:"2"`
	Subnets     []string        `json:"subnets" example:"10.0.0.0/24,10.0.1.0/24"`
	Ranges      []RangeResponse `json:"ranges"`
	RequestedBy string          `json:"requested_by,omitempty" example:"netops-bot"`
	CreatedAt   time.Time       `json:"created_at" example:"2024-05-10T15:04:05Z"`
}

// RunResponse is a stored split run.
type RunResponse struct {
	ID          string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Inputs      []string  `json:"inputs" example:"10.0.0.0/23"`
	Rejected    int       `json:"rejected" example:"0"`
	Subnets     []string  `json:"subnets" example:"10.0.0.0/24,10.0.1.0/24"`
	RequestedBy string    `json:"requested_by,omitempty" example:"netops-bot"`
	CreatedAt   time.Time `json:"created_at" example:"2024-05-10T15:04:05Z"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"no valid cidr"`
}

func splitToResponse(result domain.SplitResult) SplitResponse {
	subnets := make([]string, 0, len(result.Subnets))
	for _, s := range result.Subnets {
		subnets = append(subnets, s.String())
	}
	return SplitResponse{
		RunID:       result.RunID.String(),
		Rejected:    result.Rejected,
		Count:       len(subnets),
		Subnets:     subnets,
		Ranges:      coverage(result.Subnets),
		RequestedBy: result.RequestedBy,
		CreatedAt:   result.CreatedAt,
	}
}

func runToResponse(run domain.Run) RunResponse {
	subnets := make([]string, 0, len(run.Subnets))
	for _, p := range run.Subnets {
		subnets = append(subnets, p.String())
	}
	return RunResponse{
		ID:          run.ID.String(),
		Inputs:      run.Inputs,
		Rejected:    run.Rejected,
		Subnets:     subnets,
		RequestedBy: run.RequestedBy,
		CreatedAt:   run.CreatedAt,
	}
}

// coverage merges adjacent subnets into the address ranges they span.
func coverage(subnets []domain.Subnet) []RangeResponse {
	var b netipx.IPSetBuilder
	for _, s := range subnets {
		b.AddPrefix(s.Prefix())
	}
	set, err := b.IPSet()
	if err != nil {
		return nil
	}

	ranges := set.Ranges()
	out := make([]RangeResponse, 0, len(ranges))
	for _, r := range ranges {
		prefixes := r.Prefixes()
		cidrs := make([]string, 0, len(prefixes))
		for _, p := range prefixes {
			cidrs = append(cidrs, p.String())
		}
		out = append(out, RangeResponse{First: r.From().String(), Last: r.To().String(), CIDRs: cidrs})
	}
	return out
}
