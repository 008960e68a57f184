package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Flarenzy/subnetsplit/internal/auth"
)

func isPublicPath(path string) bool {
	return path == "/healthz" || path == "/readyz" || path == "/metrics" || strings.HasPrefix(path, "/swagger/")
}

func (a *API) authMiddleware(next http.Handler) http.Handler {
	if a.authenticator == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := auth.BearerToken(r.Header.Get("Authorization"))
		if !ok {
			a.respondError(w, r, http.StatusUnauthorized, "missing token")
			return
		}

		principal, err := a.authenticator.Authenticate(r.Context(), token)
		if errors.Is(err, auth.ErrInsufficientScope) {
			a.Logger.InfoContext(r.Context(), "token lacks required scope", "sub", principal.Subject)
			a.respondError(w, r, http.StatusForbidden, "forbidden")
			return
		}
		if err != nil {
			a.Logger.DebugContext(r.Context(), "rejected bearer token", "err", err.Error())
			a.respondError(w, r, http.StatusUnauthorized, "invalid token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), principal)))
	})
}
