package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/dunkcalc/internal/domain/measure"
	"github.com/okian/dunkcalc/internal/domain/types"
)

// ClassifyDependencies classifies jumps and lists dunk styles.
type ClassifyDependencies interface {
	Classify(ctx context.Context, value float64) (types.ClassifyResponse, error)
	Styles(ctx context.Context, vertical *float64) (types.StylesResponse, error)
}

// ClassifyHandler handles tier and dunk style lookups.
type ClassifyHandler struct {
	deps ClassifyDependencies
}

// NewClassifyHandler creates a new classify handler.
func NewClassifyHandler(deps ClassifyDependencies) *ClassifyHandler {
	return &ClassifyHandler{deps: deps}
}

// HandleClassify handles GET /v1/classify?value=<inches> requests.
func (h *ClassifyHandler) HandleClassify(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	value, err := queryFloat(r, "value")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if value == nil {
		writeError(w, r, measure.Missing("value"))
		return
	}
	resp, err := h.deps.Classify(r.Context(), *value)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// HandleStyles handles GET /v1/styles[?vertical=<inches>] requests.
func (h *ClassifyHandler) HandleStyles(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	vertical, err := queryFloat(r, "vertical")
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp, err := h.deps.Styles(r.Context(), vertical)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// queryFloat reads an optional numeric query parameter.
func queryFloat(r *http.Request, name string) (*float64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, measure.Invalid(name, "not a number: "+strconv.Quote(raw))
	}
	return &v, nil
}
