package domain

import "fmt"

// SplitCount returns how many target-sized subnets tile c.
func SplitCount(c CIDR, target uint8) (uint64, error) {
	if err := checkTarget(c, target); err != nil {
		return 0, err
	}
	return uint64(1) << (target - c.Bits), nil
}

// Split enumerates every target-sized subnet inside c in ascending order.
// The base address is first aligned down to the target grid, so host bits in
// the input are ignored.
//
// A /0 input with a /24 target yields 2^24 subnets, all held in memory.
func Split(c CIDR, target uint8) ([]Subnet, error) {
	count, err := SplitCount(c, target)
	if err != nil {
		return nil, err
	}

	mask := ^uint32(0) << (32 - target)
	step := uint32(1) << (32 - target)
	addr := c.Addr & mask

	subnets := make([]Subnet, 0, count)
	for i := uint64(0); i < count; i++ {
		subnets = append(subnets, Subnet{Addr: addr, Bits: target})
		if i+1 < count {
			addr += step
		}
	}

	return subnets, nil
}

func checkTarget(c CIDR, target uint8) error {
	if target == 0 || target > 32 {
		return fmt.Errorf("%w: target prefix /%d", ErrInvalidInput, target)
	}
	if c.Bits > 32 {
		return fmt.Errorf("%w: prefix /%d", ErrInvalidInput, c.Bits)
	}
	if c.Bits > target {
		return fmt.Errorf("%w: %w: %s is narrower than /%d", ErrInvalidInput, ErrPrefixTooLong, c, target)
	}
	return nil
}
