package derived

import (
	"math"

	"github.com/okian/dunkcalc/internal/domain/anthro"
	"github.com/okian/dunkcalc/internal/domain/measure"
)

// Default penalties in inches of jump per pound outside the ideal band.
const (
	DefaultOverweightPenaltyPerLb  = 0.1
	DefaultUnderweightPenaltyPerLb = 0.05
)

// WeightStatus locates a body weight relative to the ideal band.
type WeightStatus string

// Weight statuses.
const (
	Underweight WeightStatus = "under"
	IdealWeight WeightStatus = "ideal"
	Overweight  WeightStatus = "over"
)

// WeightOptions configures IdealWeightAdjusted. Zero fields take defaults.
type WeightOptions struct {
	Estimator               *anthro.Estimator
	OverweightPenaltyPerLb  float64
	UnderweightPenaltyPerLb float64
}

func (o WeightOptions) withDefaults() WeightOptions {
	if o.Estimator == nil {
		o.Estimator = anthro.NewEstimator()
	}
	if o.OverweightPenaltyPerLb <= 0 {
		o.OverweightPenaltyPerLb = DefaultOverweightPenaltyPerLb
	}
	if o.UnderweightPenaltyPerLb <= 0 {
		o.UnderweightPenaltyPerLb = DefaultUnderweightPenaltyPerLb
	}
	return o
}

// WeightResult is a body-weight adjusted jump projection.
type WeightResult struct {
	AdjustedJump float64
	Band         anthro.WeightBand
	// DeviationLbs is positive above the band, negative below, 0 inside.
	DeviationLbs float64
	// Adjustment is the penalty applied to the at-ideal jump (≤ 0).
	Adjustment float64
	// RecoverableInches is the bonus for reaching the band: AdjustedJump
	// plus RecoverableInches is the at-ideal jump.
	RecoverableInches float64
	Status            WeightStatus
}

// IdealWeightAdjusted adjusts a jump projected at ideal weight by a penalty
// proportional to the athlete's distance from the ideal weight band for
// their height. height is inches, weight pounds. The result never drops
// below zero.
//
// The penalty and the bonus are one quantity seen from both ends: the
// athlete jumps AdjustedJump at their current weight and gains
// RecoverableInches by moving into the band. Weight inside the band earns
// no extra bonus.
func IdealWeightAdjusted(jump float64, height, weight measure.Measurement, opts WeightOptions) WeightResult {
	opts = opts.withDefaults()
	band := opts.Estimator.IdealWeightBand(height)
	dev := band.Deviation(weight.Value)

	res := WeightResult{Band: band, DeviationLbs: dev, Status: IdealWeight}
	switch {
	case dev > 0:
		res.Status = Overweight
		res.Adjustment = -dev * opts.OverweightPenaltyPerLb
	case dev < 0:
		res.Status = Underweight
		res.Adjustment = dev * opts.UnderweightPenaltyPerLb
	}
	res.AdjustedJump = math.Max(0, jump+res.Adjustment)
	res.RecoverableInches = jump - res.AdjustedJump
	return res
}
