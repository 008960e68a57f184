package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidCIDR(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"10.0.0.0/8", true},
		{"192.168.1.0/24", true},
		{"1.2.3.4/0", true},
		{"999.999.999.999/99", true},
		{"not-a-cidr", false},
		{"10.0.0.1", false},
		{"10.0.0.1/33extra", false},
		{"10.0.0/24", false},
		{"10.0.0.0/123", false},
		{" 10.0.0.0/24", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCIDR(tt.line))
		})
	}
}

func TestParseCIDR(t *testing.T) {
	c, err := ParseCIDR("10.1.2.3/16")
	require.NoError(t, err)
	assert.Equal(t, CIDR{Addr: 0x0a010203, Bits: 16}, c)
	assert.Equal(t, "10.1.2.3/16", c.String())

	c, err = ParseCIDR("255.255.255.255/32")
	require.NoError(t, err)
	assert.Equal(t, CIDR{Addr: 0xffffffff, Bits: 32}, c)
}

func TestParseCIDRRejectsOutOfRangeValues(t *testing.T) {
	for _, in := range []string{
		"256.0.0.0/24",
		"999.999.999.999/99",
		"10.0.0.0/33",
		"10.0.0/24",
		"10.0.0.0.0/24",
		"10.0.0.0",
		"10.0.0.0/24/1",
		"a.b.c.d/24",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseCIDR(in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}
