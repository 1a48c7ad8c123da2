// Package service provides the calculator service that implements the
// dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/okian/dunkcalc/internal/config"
	"github.com/okian/dunkcalc/internal/domain/anthro"
	"github.com/okian/dunkcalc/internal/domain/classify"
	"github.com/okian/dunkcalc/internal/domain/derived"
	"github.com/okian/dunkcalc/internal/domain/dunk"
	"github.com/okian/dunkcalc/internal/domain/measure"
	"github.com/okian/dunkcalc/pkg/logger"
	"github.com/okian/dunkcalc/pkg/metrics"
)

// Calculator names used for metrics and stats.
const (
	CalcNormalize   = "normalize"
	CalcRequirement = "requirement"
	CalcReport      = "report"
	CalcClassify    = "classify"
	CalcStyles      = "styles"
	CalcApproach    = "approach"
	CalcFatigue     = "fatigue"
	CalcPotential   = "potential"
	CalcIdealWeight = "ideal_weight"
)

// Error codes reported to clients and used as metric labels.
const (
	CodeInvalidMeasurement   = "invalid_measurement"
	CodeMissingRequiredInput = "missing_required_input"
	CodeInternal             = "internal_error"
)

// ErrorCode maps an engine error to its client-facing code.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, measure.ErrMissingRequiredInput):
		return CodeMissingRequiredInput
	case errors.Is(err, measure.ErrInvalidMeasurement):
		return CodeInvalidMeasurement
	default:
		return CodeInternal
	}
}

type calcCounter struct {
	calls    atomic.Int64
	rejected atomic.Int64
}

// Service wires the calculation engine and records every calculation.
type Service struct {
	// Configuration
	reachRatio       float64
	bmiLow, bmiHigh  float64
	rim              dunk.RimConfig
	thresholds       classify.Thresholds
	catalog          []classify.DunkStyle
	fatigueRate      float64
	maxMultiplier    float64
	maxGainInches    float64
	overweightPerLb  float64
	underweightPerLb float64

	// Engine
	estimator  *anthro.Estimator
	calculator *dunk.Calculator
	classifier *classify.Classifier

	// State
	counters  map[string]*calcCounter
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithReachRatio sets the height to standing reach ratio.
func WithReachRatio(ratio float64) Option {
	return func(s *Service) {
		if ratio > 0 {
			s.reachRatio = ratio
		}
	}
}

// WithRim sets the default rim height and clearance margin in inches.
func WithRim(heightInches, clearanceInches float64) Option {
	return func(s *Service) {
		rim := dunk.RimConfig{
			RimHeight:       measure.Inch(heightInches),
			ClearanceMargin: measure.Inch(clearanceInches),
		}
		if rim.Validate() == nil {
			s.rim = rim
		}
	}
}

// WithThresholds sets the tier thresholds.
func WithThresholds(t classify.Thresholds) Option {
	return func(s *Service) {
		if t.Validate() == nil {
			s.thresholds = t
		}
	}
}

// WithCatalog replaces the dunk style catalog.
func WithCatalog(styles []classify.DunkStyle) Option {
	return func(s *Service) {
		if len(styles) > 0 && classify.ValidateCatalog(styles) == nil {
			s.catalog = styles
		}
	}
}

// WithFatigueRate sets the default fatigue rate.
func WithFatigueRate(rate float64) Option {
	return func(s *Service) {
		if rate >= 0 && rate <= 1 {
			s.fatigueRate = rate
		}
	}
}

// WithPotentialLimits bounds potential projections.
func WithPotentialLimits(maxMultiplier, maxGainInches float64) Option {
	return func(s *Service) {
		if maxMultiplier >= derived.MinTrainabilityMultiplier {
			s.maxMultiplier = maxMultiplier
		}
		if maxGainInches > 0 {
			s.maxGainInches = maxGainInches
		}
	}
}

// WithIdealBMIRange sets the BMI band used for ideal body weight.
func WithIdealBMIRange(low, high float64) Option {
	return func(s *Service) {
		if low > 0 && high > low {
			s.bmiLow, s.bmiHigh = low, high
		}
	}
}

// WithWeightPenalties sets the jump penalty per pound over and under the
// ideal band.
func WithWeightPenalties(overPerLb, underPerLb float64) Option {
	return func(s *Service) {
		if overPerLb > 0 {
			s.overweightPerLb = overPerLb
		}
		if underPerLb > 0 {
			s.underweightPerLb = underPerLb
		}
	}
}

// New constructs a Service with the documented engine defaults.
func New(opts ...Option) *Service {
	s := &Service{
		reachRatio:       anthro.DefaultReachRatio,
		bmiLow:           anthro.DefaultIdealBMILow,
		bmiHigh:          anthro.DefaultIdealBMIHigh,
		rim:              dunk.DefaultRimConfig(),
		thresholds:       classify.DefaultThresholds,
		fatigueRate:      derived.DefaultFatigueRate,
		maxMultiplier:    derived.DefaultMaxTrainabilityMultiplier,
		maxGainInches:    derived.DefaultMaxGainInches,
		overweightPerLb:  derived.DefaultOverweightPenaltyPerLb,
		underweightPerLb: derived.DefaultUnderweightPenaltyPerLb,
		startedAt:        time.Now(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}

	s.estimator = anthro.NewEstimator(
		anthro.WithReachRatio(s.reachRatio),
		anthro.WithIdealBMIRange(s.bmiLow, s.bmiHigh),
	)
	s.calculator = dunk.NewCalculator(
		dunk.WithEstimator(s.estimator),
		dunk.WithDefaultRim(s.rim),
	)
	classifierOpts := []classify.Option{classify.WithThresholds(s.thresholds)}
	if len(s.catalog) > 0 {
		classifierOpts = append(classifierOpts, classify.WithCatalog(s.catalog))
	}
	s.classifier = classify.NewClassifier(classifierOpts...)

	s.counters = make(map[string]*calcCounter)
	for _, name := range []string{
		CalcNormalize, CalcRequirement, CalcReport, CalcClassify, CalcStyles,
		CalcApproach, CalcFatigue, CalcPotential, CalcIdealWeight,
	} {
		s.counters[name] = &calcCounter{}
	}

	return s
}

// NewFromConfig validates cfg and builds a Service from it. Extra options
// are applied after the configuration.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	thresholds, err := cfg.Thresholds()
	if err != nil {
		return nil, err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithReachRatio(cfg.ReachRatio),
		WithRim(cfg.RimHeightInches, cfg.ClearanceMarginInches),
		WithThresholds(thresholds),
		WithCatalog(catalog),
		WithFatigueRate(cfg.FatigueRate),
		WithPotentialLimits(cfg.PotentialMaxMultiplier, cfg.PotentialMaxGainInches),
		WithIdealBMIRange(cfg.IdealBMILow, cfg.IdealBMIHigh),
		WithWeightPenalties(cfg.WeightPenaltyPerLb, cfg.UnderweightPenaltyPerLb),
	}
	return New(append(base, opts...)...), nil
}

// observe records the outcome of one calculation.
func (s *Service) observe(ctx context.Context, calculator string, start time.Time, err error) {
	elapsed := float64(time.Since(start).Nanoseconds()) / float64(time.Microsecond)
	c := s.counters[calculator]
	c.calls.Add(1)

	if err != nil {
		c.rejected.Add(1)
		code := ErrorCode(err)
		metrics.RecordCalculation(calculator, metrics.OutcomeRejected, elapsed)
		metrics.RecordInvalidInput(measure.FieldOf(err), code)
		s.logger.Warn(ctx, "calculation rejected",
			logger.String("calculator", calculator),
			logger.String("code", code),
			logger.String("field", measure.FieldOf(err)),
			logger.Error(err),
		)
		return
	}

	metrics.RecordCalculation(calculator, metrics.OutcomeOK, elapsed)
	s.logger.Debug(ctx, "calculation completed",
		logger.String("calculator", calculator),
		logger.Float64("durationMicros", elapsed),
	)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	calcs := make(map[string]interface{}, len(s.counters))
	for name, c := range s.counters {
		calcs[name] = map[string]int64{
			"calls":    c.calls.Load(),
			"rejected": c.rejected.Load(),
		}
	}

	return map[string]interface{}{
		"uptimeSeconds": int64(time.Since(s.startedAt).Seconds()),
		"calculations":  calcs,
		"engine": map[string]interface{}{
			"reachRatio":            s.reachRatio,
			"rimHeightInches":       s.rim.RimHeight.Value,
			"clearanceMarginInches": s.rim.ClearanceMargin.Value,
			"tierThresholds":        s.thresholds,
			"fatigueRate":           s.fatigueRate,
			"maxMultiplier":         s.maxMultiplier,
			"maxGainInches":         s.maxGainInches,
			"dunkStyles":            len(s.classifier.Catalog()),
		},
	}
}

// Calls returns how many times calculator ran, including rejections.
func (s *Service) Calls(calculator string) int64 {
	if c, ok := s.counters[calculator]; ok {
		return c.calls.Load()
	}
	return 0
}
