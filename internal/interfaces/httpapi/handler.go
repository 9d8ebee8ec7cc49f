package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dragonworlds/results-sync/internal/platform/logging"
	"github.com/dragonworlds/results-sync/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	resultsService *usecase.ResultsService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(resultsService *usecase.ResultsService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		resultsService: resultsService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Livez(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Livez")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Readyz(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.Readyz")
	defer span.End()

	if h.resultsService == nil {
		writeError(w, fmt.Errorf("%w: results service is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
