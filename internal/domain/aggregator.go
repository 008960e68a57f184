package domain

import (
	"cmp"
	"slices"
)

// SubnetSet collects subnets without duplicates. Two subnets are the same
// when their canonical strings match, which for aligned subnets is the same
// as comparing Addr and Bits.
type SubnetSet struct {
	items map[Subnet]struct{}
}

func NewSubnetSet() *SubnetSet {
	return &SubnetSet{items: make(map[Subnet]struct{})}
}

func (s *SubnetSet) Add(subnet Subnet) {
	s.items[subnet] = struct{}{}
}

func (s *SubnetSet) AddAll(subnets []Subnet) {
	for _, subnet := range subnets {
		s.Add(subnet)
	}
}

func (s *SubnetSet) Len() int {
	return len(s.items)
}

// Sorted returns the members ordered by numeric address.
func (s *SubnetSet) Sorted() []Subnet {
	out := make([]Subnet, 0, len(s.items))
	for subnet := range s.items {
		out = append(out, subnet)
	}
	slices.SortFunc(out, compareSubnets)
	return out
}

// Aggregate flattens lists into one deduplicated, address-ordered slice.
func Aggregate(lists ...[]Subnet) []Subnet {
	set := NewSubnetSet()
	for _, list := range lists {
		set.AddAll(list)
	}
	return set.Sorted()
}

func compareSubnets(a, b Subnet) int {
	if c := cmp.Compare(a.Addr, b.Addr); c != 0 {
		return c
	}
	return cmp.Compare(a.Bits, b.Bits)
}
