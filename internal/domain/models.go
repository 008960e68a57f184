package domain

import (
	"fmt"
	"net/netip"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultTargetBits is the prefix length every input block is split into.
const DefaultTargetBits uint8 = 24

// CIDR is an IPv4 block as read from input. Addr keeps whatever host bits
// the input carried.
type CIDR struct {
	Addr uint32
	Bits uint8
}

func (c CIDR) String() string {
	return formatAddr(c.Addr) + "/" + strconv.Itoa(int(c.Bits))
}

// Subnet is a network aligned block produced by Split.
type Subnet struct {
	Addr uint32
	Bits uint8
}

func (s Subnet) String() string {
	return formatAddr(s.Addr) + "/" + strconv.Itoa(int(s.Bits))
}

func (s Subnet) Prefix() netip.Prefix {
	return netip.PrefixFrom(AddrFromUint32(s.Addr), int(s.Bits))
}

type SplitInput struct {
	Lines []string
	// Discarded counts lines already dropped before reaching the service.
	Discarded int
	// MaxSubnets caps the subnets a split may produce, counted before
	// deduplication. Zero means no cap.
	MaxSubnets uint64
	// RequestedBy names the caller, empty for anonymous runs.
	RequestedBy string
}

type SplitResult struct {
	RunID       uuid.UUID
	Inputs      []CIDR
	Rejected    int
	Subnets     []Subnet
	RequestedBy string
	CreatedAt   time.Time
}

type Run struct {
	ID          uuid.UUID
	Inputs      []string
	Rejected    int
	Subnets     []netip.Prefix
	RequestedBy string
	CreatedAt   time.Time
}

func AddrFromUint32(v uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}

func formatAddr(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", v>>24, (v>>16)&0xff, (v>>8)&0xff, v&0xff)
}
