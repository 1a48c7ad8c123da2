package api

import (
	"context"
	"net/http"

	"github.com/okian/dunkcalc/internal/domain/types"
)

// NormalizeDependencies converts raw measurements.
type NormalizeDependencies interface {
	Normalize(ctx context.Context, req types.NormalizeRequest) (types.NormalizeResponse, error)
}

// NormalizeHandler handles measurement normalization.
type NormalizeHandler struct {
	deps NormalizeDependencies
}

// NewNormalizeHandler creates a new normalize handler.
func NewNormalizeHandler(deps NormalizeDependencies) *NormalizeHandler {
	return &NormalizeHandler{deps: deps}
}

// HandleNormalize handles POST /v1/normalize requests.
func (h *NormalizeHandler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	const op = "api.normalize"
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req types.NormalizeRequest
	if err := decodeJSON(w, r, op, &req); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.deps.Normalize(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
