package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/dragonworlds/results-sync/internal/usecase"
)

type forceMockRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

type forceMockStateDTO struct {
	Enabled bool `json:"enabled"`
	Applied bool `json:"applied"`
}

func (h *Handler) GetForceMockData(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.GetForceMockData")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]bool{"enabled": h.resultsService.ForceMockData()})
}

func (h *Handler) SetForceMockData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetForceMockData")
	defer span.End()

	var req forceMockRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(w, err)
		return
	}

	applied := h.resultsService.SetForceMockData(ctx, *req.Enabled)
	if !applied {
		h.logger.WarnContext(ctx, "force mock request ignored", "requested", *req.Enabled)
	}

	writeSuccess(w, http.StatusOK, forceMockStateDTO{
		Enabled: h.resultsService.ForceMockData(),
		Applied: applied,
	})
}
