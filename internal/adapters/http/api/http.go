// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/dunkcalc/internal/domain/measure"
	"github.com/okian/dunkcalc/internal/domain/types"
	"github.com/okian/dunkcalc/pkg/logger"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Normalize(ctx context.Context, req types.NormalizeRequest) (types.NormalizeResponse, error)
	Requirement(ctx context.Context, req types.RequirementRequest) (types.RequirementResponse, error)
	Report(ctx context.Context, req types.ReportRequest) (types.ReportResponse, error)
	Classify(ctx context.Context, value float64) (types.ClassifyResponse, error)
	Styles(ctx context.Context, vertical *float64) (types.StylesResponse, error)
	Approach(ctx context.Context, req types.ApproachRequest) (types.ApproachResponse, error)
	Fatigue(ctx context.Context, req types.FatigueRequest) (types.FatigueResponse, error)
	Potential(ctx context.Context, req types.PotentialRequest) (types.PotentialResponse, error)
	IdealWeight(ctx context.Context, req types.WeightRequest) (types.WeightResponse, error)
}

// Server wires HTTP routes for the calculator API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	normalizeHandler *NormalizeHandler
	dunkHandler      *DunkHandler
	classifyHandler  *ClassifyHandler
	jumpHandler      *JumpHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		normalizeHandler: NewNormalizeHandler(deps),
		dunkHandler:      NewDunkHandler(deps),
		classifyHandler:  NewClassifyHandler(deps),
		jumpHandler:      NewJumpHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/v1/normalize", MetricsMiddleware(s.normalizeHandler.HandleNormalize, "normalize"))
	mux.HandleFunc("/v1/dunk/requirement", MetricsMiddleware(s.dunkHandler.HandleRequirement, "dunk_requirement"))
	mux.HandleFunc("/v1/dunk/report", MetricsMiddleware(s.dunkHandler.HandleReport, "dunk_report"))
	mux.HandleFunc("/v1/classify", MetricsMiddleware(s.classifyHandler.HandleClassify, "classify"))
	mux.HandleFunc("/v1/styles", MetricsMiddleware(s.classifyHandler.HandleStyles, "styles"))
	mux.HandleFunc("/v1/jump/approach", MetricsMiddleware(s.jumpHandler.HandleApproach, "jump_approach"))
	mux.HandleFunc("/v1/jump/fatigue", MetricsMiddleware(s.jumpHandler.HandleFatigue, "jump_fatigue"))
	mux.HandleFunc("/v1/jump/potential", MetricsMiddleware(s.jumpHandler.HandlePotential, "jump_potential"))
	mux.HandleFunc("/v1/jump/ideal-weight", MetricsMiddleware(s.jumpHandler.HandleIdealWeight, "jump_ideal_weight"))
}

// Error codes returned in errorResponse.Code.
const (
	CodeBadRequest           = "bad_request"
	CodeInvalidMeasurement   = "invalid_measurement"
	CodeMissingRequiredInput = "missing_required_input"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeInternal             = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err onto a status and a {code, field, message} payload.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, CodeInternal
	switch {
	case errors.Is(err, measure.ErrMissingRequiredInput):
		status, code = http.StatusBadRequest, CodeMissingRequiredInput
	case errors.Is(err, measure.ErrInvalidMeasurement):
		status, code = http.StatusBadRequest, CodeInvalidMeasurement
	case errors.Is(err, ErrBadRequest):
		status, code = http.StatusBadRequest, CodeBadRequest
	case errors.Is(err, ErrMethodNotAllowed):
		status, code = http.StatusMethodNotAllowed, CodeMethodNotAllowed
	}

	msg := http.StatusText(status)
	if status == http.StatusInternalServerError {
		logger.Get().Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.Error(WrapKind(r.URL.Path, ErrInternal, err)),
		)
	} else if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Field: measure.FieldOf(err), Message: msg})
}

// allowMethod writes a 405 and returns false unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, NewKind(r.URL.Path, ErrMethodNotAllowed))
	return false
}

// decodeJSON reads a single JSON object into v, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, op string, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return WrapKind(op, ErrBadRequest, fmt.Errorf("decode body: %w", err))
	}
	if dec.More() {
		return NewKind(op, ErrBadRequest)
	}
	return nil
}
