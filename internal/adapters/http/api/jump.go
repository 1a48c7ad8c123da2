package api

import (
	"context"
	"net/http"

	"github.com/okian/dunkcalc/internal/domain/types"
)

// JumpDependencies runs the derived jump calculators.
type JumpDependencies interface {
	Approach(ctx context.Context, req types.ApproachRequest) (types.ApproachResponse, error)
	Fatigue(ctx context.Context, req types.FatigueRequest) (types.FatigueResponse, error)
	Potential(ctx context.Context, req types.PotentialRequest) (types.PotentialResponse, error)
	IdealWeight(ctx context.Context, req types.WeightRequest) (types.WeightResponse, error)
}

// JumpHandler handles the derived jump calculators.
type JumpHandler struct {
	deps JumpDependencies
}

// NewJumpHandler creates a new jump handler.
func NewJumpHandler(deps JumpDependencies) *JumpHandler {
	return &JumpHandler{deps: deps}
}

// HandleApproach handles POST /v1/jump/approach requests.
func (h *JumpHandler) HandleApproach(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, "api.jump_approach", h.deps.Approach)
}

// HandleFatigue handles POST /v1/jump/fatigue requests.
func (h *JumpHandler) HandleFatigue(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, "api.jump_fatigue", h.deps.Fatigue)
}

// HandlePotential handles POST /v1/jump/potential requests.
func (h *JumpHandler) HandlePotential(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, "api.jump_potential", h.deps.Potential)
}

// HandleIdealWeight handles POST /v1/jump/ideal-weight requests.
func (h *JumpHandler) HandleIdealWeight(w http.ResponseWriter, r *http.Request) {
	serveJSON(w, r, "api.jump_ideal_weight", h.deps.IdealWeight)
}

// serveJSON decodes a POST body into Req, runs calc and writes the result.
func serveJSON[Req, Resp any](w http.ResponseWriter, r *http.Request, op string, calc func(context.Context, Req) (Resp, error)) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req Req
	if err := decodeJSON(w, r, op, &req); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := calc(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
