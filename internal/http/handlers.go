package http

import (
	"errors"
	"net/http"

	"github.com/Flarenzy/subnetsplit/internal/auth"
	"github.com/Flarenzy/subnetsplit/internal/domain"
	"github.com/google/uuid"
)

// @Summary Health check
// @Tags health
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func (a *API) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// @Summary Readiness check
// @Tags health
// @Success 200 {string} string "ready"
// @Failure 503 {string} string "db unavailable"
// @Router /readyz [get]
func (a *API) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.health != nil {
		if err := a.health.Ping(ctx); err != nil {
			a.Logger.ErrorContext(ctx, "db ping failed", "err", err)
			http.Error(w, "db unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// @Summary Split CIDR blocks into /24 subnets
// @Tags splits
// @Accept json
// @Produce json
// @Param payload body SplitRequest true "CIDR blocks to split"
// @Success 201 {object} SplitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/splits [post]
func (a *API) handleCreateSplit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	req, err := decode[SplitRequest](r)
	defer r.Body.Close()
	if err != nil {
		a.Logger.ErrorContext(ctx, "unmarshaling split request", "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	input := domain.SplitInput{Lines: req.CIDRs, MaxSubnets: a.MaxSubnets}
	if principal, ok := auth.PrincipalFromContext(ctx); ok {
		input.RequestedBy = principal.Subject
	}
	result, err := a.service.Split(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTooManySubnets):
			a.Logger.InfoContext(ctx, "split request over subnet limit", "limit", a.MaxSubnets, "err", err.Error())
			a.respondError(w, r, http.StatusRequestEntityTooLarge, "too many subnets requested")
		case errors.Is(err, domain.ErrNoValidCIDR):
			a.respondError(w, r, http.StatusBadRequest, "no valid cidr")
		case errors.Is(err, domain.ErrPrefixTooLong):
			a.respondError(w, r, http.StatusBadRequest, "prefix longer than /24")
		case errors.Is(err, domain.ErrInvalidInput):
			a.respondError(w, r, http.StatusBadRequest, "invalid cidr")
		default:
			a.Logger.ErrorContext(ctx, "uncaught error while splitting", "err", err.Error())
			a.respondError(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	if err = encode(w, r, http.StatusCreated, splitToResponse(result)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

// @Summary Get split run by ID
// @Tags splits
// @Produce json
// @Param id path string true "Run UUID"
// @Success 200 {object} RunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/splits/{id} [get]
func (a *API) handleGetSplitByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	strID := r.PathValue("id")
	id, err := uuid.Parse(strID)
	if err != nil {
		a.Logger.ErrorContext(ctx, "invalid run id", "id", strID, "err", err.Error())
		a.respondError(w, r, http.StatusBadRequest, "bad request")
		return
	}

	run, err := a.service.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.Logger.DebugContext(ctx, "run not found", "id", id.String())
			a.respondError(w, r, http.StatusNotFound, "run not found")
			return
		}
		a.Logger.ErrorContext(ctx, "uncaught error while reading run", "id", id.String(), "err", err.Error())
		a.respondError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if err = encode(w, r, http.StatusOK, runToResponse(run)); err != nil {
		a.Logger.ErrorContext(ctx, "responding to client", "err", err.Error())
	}
}

func (a *API) respondError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	if err := encode(w, r, status, ErrorResponse{Error: msg}); err != nil {
		a.Logger.ErrorContext(r.Context(), "cant respond to client", "err", err.Error())
	}
}
