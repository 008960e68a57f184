package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

type jwksAuthenticator struct {
	issuer        string
	audience      string
	requiredScope string
	jwks          keyfunc.Keyfunc
}

// NewJWKSAuthenticator returns nil when auth is disabled. The JWKS URL
// defaults to the OpenID Connect certs endpoint under the issuer.
func NewJWKSAuthenticator(ctx context.Context, cfg Config) (Authenticator, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("auth enabled but issuer is empty")
	}

	jwksURL := cfg.JWKSURL
	if jwksURL == "" {
		jwksURL = cfg.Issuer + "/protocol/openid-connect/certs"
	}

	if err := probeJWKS(ctx, jwksURL); err != nil {
		return nil, err
	}

	kf, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", jwksURL, err)
	}

	return &jwksAuthenticator{
		issuer:        cfg.Issuer,
		audience:      cfg.Audience,
		requiredScope: cfg.RequiredScope,
		jwks:          kf,
	}, nil
}

// keyfunc only logs refresh failures, so check reachability up front.
func probeJWKS(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build jwks request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch jwks from %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jwks endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (a *jwksAuthenticator) Authenticate(_ context.Context, bearerToken string) (Principal, error) {
	claims := jwt.MapClaims{}
	opts := []jwt.ParserOption{jwt.WithLeeway(5 * time.Second)}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	token, err := jwt.ParseWithClaims(bearerToken, claims, a.jwks.Keyfunc, opts...)
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}

	principal := Principal{
		Issuer:  stringClaim(claims, "iss"),
		Subject: stringClaim(claims, "sub"),
		Scopes:  strings.Fields(stringClaim(claims, "scope")),
	}
	if principal.Subject == "" {
		return Principal{}, ErrInvalidToken
	}
	if a.requiredScope != "" && !principal.HasScope(a.requiredScope) {
		return principal, ErrInsufficientScope
	}
	return principal, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, ok := claims[key].(string)
	if !ok {
		return ""
	}
	return value
}
