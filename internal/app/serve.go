package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Flarenzy/subnetsplit/internal/auth"
	"github.com/Flarenzy/subnetsplit/internal/db"
	"github.com/Flarenzy/subnetsplit/internal/domain"
	apihttp "github.com/Flarenzy/subnetsplit/internal/http"
	"github.com/Flarenzy/subnetsplit/internal/metrics"

	_ "github.com/Flarenzy/subnetsplit/docs"
)

func newAuthenticator(ctx context.Context, cfg Config) (auth.Authenticator, error) {
	return auth.NewJWKSAuthenticator(ctx, cfg.Auth)
}

// Serve runs the HTTP API on listener until ctx is cancelled.
func Serve(ctx context.Context, cfg Config, logger *slog.Logger, listener net.Listener) error {
	var (
		health apihttp.HealthChecker
		runs   domain.RunRepository
	)
	if cfg.DSN != "" {
		pool, err := db.NewPool(ctx, cfg.DSN)
		if err != nil {
			return err
		}
		defer pool.Close()
		if err := db.EnsureSchema(ctx, pool); err != nil {
			return err
		}
		health = pool
		runs = db.NewRunRepository(pool)
	}

	authenticator, err := newAuthenticator(ctx, cfg)
	if err != nil {
		return err
	}

	m := metrics.New()
	service := metrics.InstrumentSplitService(m,
		domain.NewLoggingSplitService(logger, domain.NewSplitService(runs, cfg.TargetBits)),
	)
	api := apihttp.NewAPI(logger, health, service, authenticator, m.Handler())
	api.MaxSubnets = cfg.MaxSubnets

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving http api", "addr", listener.Addr().String(), "persistence", runs != nil, "auth", authenticator != nil)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
