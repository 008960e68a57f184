package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// cidrPattern only checks the shape of a line. Numeric ranges are enforced
// by ParseCIDR.
var cidrPattern = regexp.MustCompile(`^(?:\d{1,3}\.){3}\d{1,3}/\d{1,2}$`)

// IsValidCIDR reports whether line looks like a dotted-quad IPv4 CIDR.
func IsValidCIDR(line string) bool {
	return cidrPattern.MatchString(line)
}

// ParseCIDR converts "a.b.c.d/n" into a CIDR. The address is kept as given,
// host bits included.
func ParseCIDR(s string) (CIDR, error) {
	addrPart, bitsPart, ok := strings.Cut(s, "/")
	if !ok || strings.Contains(bitsPart, "/") {
		return CIDR{}, fmt.Errorf("%w: %q is missing a single prefix length", ErrInvalidInput, s)
	}

	octets := strings.Split(addrPart, ".")
	if len(octets) != 4 {
		return CIDR{}, fmt.Errorf("%w: %q must have 4 octets, got %d", ErrInvalidInput, s, len(octets))
	}

	var addr uint32
	for _, octet := range octets {
		v, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return CIDR{}, fmt.Errorf("%w: octet %q in %q: %v", ErrInvalidInput, octet, s, err)
		}
		addr = addr<<8 | uint32(v)
	}

	bits, err := strconv.ParseUint(bitsPart, 10, 8)
	if err != nil || bits > 32 {
		return CIDR{}, fmt.Errorf("%w: prefix length %q in %q", ErrInvalidInput, bitsPart, s)
	}

	return CIDR{Addr: addr, Bits: uint8(bits)}, nil
}
