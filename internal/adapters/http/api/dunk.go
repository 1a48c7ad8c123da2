package api

import (
	"context"
	"net/http"

	"github.com/okian/dunkcalc/internal/domain/types"
)

// DunkDependencies computes dunk requirements and reports.
type DunkDependencies interface {
	Requirement(ctx context.Context, req types.RequirementRequest) (types.RequirementResponse, error)
	Report(ctx context.Context, req types.ReportRequest) (types.ReportResponse, error)
}

// DunkHandler handles dunk feasibility requests.
type DunkHandler struct {
	deps DunkDependencies
}

// NewDunkHandler creates a new dunk handler.
func NewDunkHandler(deps DunkDependencies) *DunkHandler {
	return &DunkHandler{deps: deps}
}

// HandleRequirement handles POST /v1/dunk/requirement requests.
func (h *DunkHandler) HandleRequirement(w http.ResponseWriter, r *http.Request) {
	const op = "api.dunk_requirement"
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req types.RequirementRequest
	if err := decodeJSON(w, r, op, &req); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.deps.Requirement(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleReport handles POST /v1/dunk/report requests.
func (h *DunkHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	const op = "api.dunk_report"
	if !allowMethod(w, r, http.MethodPost) {
		return
	}
	var req types.ReportRequest
	if err := decodeJSON(w, r, op, &req); err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.deps.Report(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
