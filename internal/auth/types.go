package auth

import (
	"errors"
	"slices"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrInsufficientScope = errors.New("insufficient scope")
)

type Config struct {
	Enabled  bool
	Issuer   string
	JWKSURL  string
	Audience string

	// RequiredScope must appear in the token's scope claim when set.
	RequiredScope string
}

// Principal is the caller a split run is recorded against.
type Principal struct {
	Issuer  string
	Subject string
	Scopes  []string
}

func (p Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}
