package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Flarenzy/subnetsplit/internal/auth"
	"github.com/Flarenzy/subnetsplit/internal/domain"
	httpSwagger "github.com/swaggo/http-swagger"
)

// maxRequestBody bounds POST payloads; a /0 request is still only a few bytes.
const maxRequestBody = 1 << 20

// DefaultMaxSubnets caps one split request at a /8 worth of /24 subnets.
const DefaultMaxSubnets = 1 << 16

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type API struct {
	Logger *slog.Logger
	// MaxSubnets limits how many subnets one request may produce. Zero
	// disables the limit.
	MaxSubnets    uint64
	health        HealthChecker
	service       domain.SplitService
	authenticator auth.Authenticator
	metrics       http.Handler
}

// NewAPI wires the handlers. health, authenticator and metrics are optional.
func NewAPI(logger *slog.Logger, health HealthChecker, service domain.SplitService, authenticator auth.Authenticator, metrics http.Handler) *API {
	return &API{
		Logger:        logger,
		MaxSubnets:    DefaultMaxSubnets,
		health:        health,
		service:       service,
		authenticator: authenticator,
		metrics:       metrics,
	}
}

func (a *API) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.HandleFunc("POST /api/v1/splits", a.handleCreateSplit)
	mux.HandleFunc("GET /api/v1/splits/{id}", a.handleGetSplitByID)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)
	if a.metrics != nil {
		mux.Handle("GET /metrics", a.metrics)
	}

	return a.authMiddleware(mux)
}
