// Package anthro estimates body measurements the athlete did not supply.
package anthro

import (
	"github.com/okian/dunkcalc/internal/domain/measure"
)

// Default estimation parameters.
const (
	// DefaultReachRatio is the average standing-reach to height ratio.
	DefaultReachRatio = 1.33
	// DefaultIdealBMILow and DefaultIdealBMIHigh bound the athletic BMI band.
	DefaultIdealBMILow  = 20.0
	DefaultIdealBMIHigh = 25.0

	// bmiPoundsInches converts lb/in² to kg/m².
	bmiPoundsInches = 703.0
)

// Option applies a configuration option to the Estimator.
type Option func(*Estimator)

// WithReachRatio overrides the reach/height ratio. Non-positive values are ignored.
func WithReachRatio(ratio float64) Option {
	return func(e *Estimator) {
		if ratio > 0 {
			e.reachRatio = ratio
		}
	}
}

// WithIdealBMIRange overrides the BMI band used for ideal body weight.
func WithIdealBMIRange(low, high float64) Option {
	return func(e *Estimator) {
		if low > 0 && high > low {
			e.bmiLow = low
			e.bmiHigh = high
		}
	}
}

// Estimator derives unmeasured quantities from height. It is immutable
// after construction and safe for concurrent use.
type Estimator struct {
	reachRatio float64
	bmiLow     float64
	bmiHigh    float64
}

// NewEstimator creates an Estimator with the documented defaults.
func NewEstimator(opts ...Option) *Estimator {
	e := &Estimator{
		reachRatio: DefaultReachRatio,
		bmiLow:     DefaultIdealBMILow,
		bmiHigh:    DefaultIdealBMIHigh,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ReachRatio returns the configured reach/height ratio.
func (e *Estimator) ReachRatio() float64 { return e.reachRatio }

// EstimateStandingReach returns height × ratio, tagged as estimated.
// height must already be normalized to inches.
func (e *Estimator) EstimateStandingReach(height measure.Measurement) measure.Measurement {
	return measure.Measurement{
		Value:     height.Value * e.reachRatio,
		Unit:      measure.Inches,
		Estimated: true,
	}
}

// WeightBand is an ideal body weight range in pounds.
type WeightBand struct {
	Low  measure.Measurement
	High measure.Measurement
}

// Contains reports whether weight (pounds) falls inside the band.
func (b WeightBand) Contains(weight float64) bool {
	return weight >= b.Low.Value && weight <= b.High.Value
}

// Deviation is the signed distance in pounds from the nearest band edge:
// positive above the band, negative below, zero inside.
func (b WeightBand) Deviation(weight float64) float64 {
	switch {
	case weight > b.High.Value:
		return weight - b.High.Value
	case weight < b.Low.Value:
		return weight - b.Low.Value
	default:
		return 0
	}
}

// IdealWeightBand estimates the ideal body weight range for a height in
// inches from the configured BMI band.
func (e *Estimator) IdealWeightBand(height measure.Measurement) WeightBand {
	sq := height.Value * height.Value
	low := measure.Pound(e.bmiLow * sq / bmiPoundsInches)
	high := measure.Pound(e.bmiHigh * sq / bmiPoundsInches)
	low.Estimated = true
	high.Estimated = true
	return WeightBand{Low: low, High: high}
}

var defaultEstimator = NewEstimator() //nolint:gochecknoglobals // immutable default

// EstimateStandingReach estimates reach with the default ratio.
func EstimateStandingReach(height measure.Measurement) measure.Measurement {
	return defaultEstimator.EstimateStandingReach(height)
}

// IdealWeightBand estimates the ideal weight band with the default BMI range.
func IdealWeightBand(height measure.Measurement) WeightBand {
	return defaultEstimator.IdealWeightBand(height)
}
