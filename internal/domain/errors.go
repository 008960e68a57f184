package domain

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrInputNotFound  = errors.New("input file not found")
	ErrNoValidCIDR    = errors.New("no valid cidr")
	ErrPrefixTooLong  = errors.New("prefix longer than target")
	ErrTooManySubnets = errors.New("too many subnets")
)
