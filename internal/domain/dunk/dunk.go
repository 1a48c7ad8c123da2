// Package dunk computes the vertical jump an athlete needs to dunk.
package dunk

import (
	"fmt"
	"math"

	"github.com/okian/dunkcalc/internal/domain/anthro"
	"github.com/okian/dunkcalc/internal/domain/measure"
)

// Default rim configuration (regulation 10 ft rim, ball-and-hand clearance).
const (
	DefaultRimHeightInches       = 120.0
	DefaultClearanceMarginInches = 6.0
)

// RimConfig describes the target rim.
type RimConfig struct {
	RimHeight       measure.Measurement
	ClearanceMargin measure.Measurement
}

// DefaultRimConfig returns a 10 ft rim with a 6 in clearance margin.
func DefaultRimConfig() RimConfig {
	return RimConfig{
		RimHeight:       measure.Inch(DefaultRimHeightInches),
		ClearanceMargin: measure.Inch(DefaultClearanceMarginInches),
	}
}

// Validate enforces rimHeight > 0 and clearanceMargin >= 0.
func (r RimConfig) Validate() error {
	if err := r.RimHeight.Check("rimHeight"); err != nil {
		return err
	}
	return measure.RequireNonNegative("clearanceMargin", r.ClearanceMargin.Value)
}

// ClearanceTarget is the height the hand and ball must reach.
func (r RimConfig) ClearanceTarget() measure.Measurement {
	return measure.Inch(r.RimHeight.Value + r.ClearanceMargin.Value)
}

// AthleteProfile carries normalized athlete measurements. Height is
// required; the rest are optional.
type AthleteProfile struct {
	Height        *measure.Measurement
	StandingReach *measure.Measurement
	BodyWeight    *measure.Measurement
	VerticalJump  *measure.Measurement
}

// Validate checks that height is present and every supplied field is a
// positive finite magnitude already normalized to inches or pounds.
func (p AthleteProfile) Validate() error {
	if p.Height == nil {
		return measure.Missing("height")
	}
	fields := []struct {
		name string
		m    *measure.Measurement
		unit measure.Unit
	}{
		{"height", p.Height, measure.Inches},
		{"standingReach", p.StandingReach, measure.Inches},
		{"bodyWeight", p.BodyWeight, measure.Pounds},
		{"verticalJump", p.VerticalJump, measure.Inches},
	}
	for _, f := range fields {
		if f.m == nil {
			continue
		}
		if err := f.m.Check(f.name); err != nil {
			return err
		}
		if f.m.Unit != f.unit {
			return measure.Invalid(f.name, fmt.Sprintf("expected normalized unit %q, got %q", f.unit, f.m.Unit))
		}
	}
	return nil
}

// Result is the outcome of a requirement calculation.
type Result struct {
	RequiredVerticalJump measure.Measurement
	// StandingReach is the reach used, Estimated when derived from height.
	StandingReach   measure.Measurement
	ClearanceTarget measure.Measurement
	// GapToCurrentJump is nil when the athlete's jump is unknown. Negative
	// means the athlete clears the target with room to spare.
	GapToCurrentJump *measure.Measurement
	Feasible         Feasibility
	// ReachesStanding is set when standing reach alone clears the target.
	ReachesStanding bool
}

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithEstimator sets the estimator used when standing reach is absent.
func WithEstimator(e *anthro.Estimator) Option {
	return func(c *Calculator) {
		if e != nil {
			c.estimator = e
		}
	}
}

// WithDefaultRim sets the rim used when the caller passes none. Invalid
// configurations are ignored.
func WithDefaultRim(rim RimConfig) Option {
	return func(c *Calculator) {
		if rim.Validate() == nil {
			c.rim = rim
		}
	}
}

// Calculator computes dunk requirements. It holds only immutable
// configuration and is safe for concurrent use.
type Calculator struct {
	estimator *anthro.Estimator
	rim       RimConfig
}

// NewCalculator creates a Calculator with the default estimator and rim.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		estimator: anthro.NewEstimator(),
		rim:       DefaultRimConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultRim returns the rim used when none is supplied.
func (c *Calculator) DefaultRim() RimConfig { return c.rim }

// Estimator returns the estimator backing reach estimation.
func (c *Calculator) Estimator() *anthro.Estimator { return c.estimator }

// ResolveStandingReach returns the supplied reach or an estimate from height.
func (c *Calculator) ResolveStandingReach(p AthleteProfile) measure.Measurement {
	if p.StandingReach != nil {
		return *p.StandingReach
	}
	return c.estimator.EstimateStandingReach(*p.Height)
}

// RequiredVerticalJump computes the jump needed to clear the rim. A nil rim
// selects the calculator's default.
//
// The requirement floors at zero. When the athlete's vertical jump is
// unknown the verdict is Indeterminate unless no jump is needed at all.
func (c *Calculator) RequiredVerticalJump(p AthleteProfile, rim *RimConfig) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	r := c.rim
	if rim != nil {
		if err := rim.Validate(); err != nil {
			return Result{}, err
		}
		r = *rim
	}

	reach := c.ResolveStandingReach(p)
	target := r.ClearanceTarget()
	required := math.Max(0, target.Value-reach.Value)

	res := Result{
		RequiredVerticalJump: measure.Inch(required),
		StandingReach:        reach,
		ClearanceTarget:      target,
		ReachesStanding:      required == 0,
	}
	res.RequiredVerticalJump.Estimated = reach.Estimated

	switch {
	case p.VerticalJump != nil:
		gap := measure.Inch(required - p.VerticalJump.Value)
		gap.Estimated = reach.Estimated
		res.GapToCurrentJump = &gap
		if gap.Value <= 0 {
			res.Feasible = Feasible
		} else {
			res.Feasible = Infeasible
		}
	case res.ReachesStanding:
		res.Feasible = Feasible
	default:
		res.Feasible = Indeterminate
	}
	return res, nil
}

var defaultCalculator = NewCalculator() //nolint:gochecknoglobals // immutable default

// ComputeRequiredVerticalJump runs the default calculator.
func ComputeRequiredVerticalJump(p AthleteProfile, rim *RimConfig) (Result, error) {
	return defaultCalculator.RequiredVerticalJump(p, rim)
}
