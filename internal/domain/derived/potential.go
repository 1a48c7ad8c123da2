package derived

import (
	"fmt"
	"math"

	"github.com/okian/dunkcalc/internal/domain/measure"
)

// Potential projection limits.
const (
	MinTrainabilityMultiplier        = 1.0
	DefaultMaxTrainabilityMultiplier = 1.3
	// DefaultMaxGainInches caps the projected gain from any baseline.
	DefaultMaxGainInches = 12.0
)

// PotentialOptions configures MaxPotential.
type PotentialOptions struct {
	// Multiplier must lie in [1, MaxMultiplier].
	Multiplier float64
	// MaxMultiplier defaults to DefaultMaxTrainabilityMultiplier when zero.
	MaxMultiplier float64
	// MaxGainInches defaults to DefaultMaxGainInches when zero.
	MaxGainInches float64
}

func (o PotentialOptions) withDefaults() PotentialOptions {
	if o.MaxMultiplier <= 0 {
		o.MaxMultiplier = DefaultMaxTrainabilityMultiplier
	}
	if o.MaxGainInches <= 0 {
		o.MaxGainInches = DefaultMaxGainInches
	}
	return o
}

// Validate checks the multiplier against its bounds.
func (o PotentialOptions) Validate() error {
	o = o.withDefaults()
	if o.MaxMultiplier < MinTrainabilityMultiplier {
		return measure.Invalid("maxMultiplier", "must be at least 1")
	}
	if math.IsNaN(o.Multiplier) || o.Multiplier < MinTrainabilityMultiplier || o.Multiplier > o.MaxMultiplier {
		return measure.Invalid("multiplier", fmt.Sprintf("must be within [1, %g]", o.MaxMultiplier))
	}
	return nil
}

// TrainabilityMultiplier maps strength and technique development scores
// (0 = untrained, 1 = fully developed, clamped) to a multiplier in
// [1, maxMultiplier]. Less developed athletes have more headroom.
func TrainabilityMultiplier(strength, technique, maxMultiplier float64) float64 {
	if maxMultiplier < MinTrainabilityMultiplier {
		maxMultiplier = DefaultMaxTrainabilityMultiplier
	}
	development := (clamp01(strength) + clamp01(technique)) / 2
	return MinTrainabilityMultiplier + (maxMultiplier-MinTrainabilityMultiplier)*(1-development)
}

// PotentialResult is a projected jump ceiling.
type PotentialResult struct {
	ProjectedJump float64
	Gain          float64
	Multiplier    float64
	// Capped is set when the gain hit MaxGainInches.
	Capped bool
}

// MaxPotential projects currentJump × Multiplier, limiting the gain to
// MaxGainInches.
func MaxPotential(currentJump float64, opts PotentialOptions) (PotentialResult, error) {
	if err := opts.Validate(); err != nil {
		return PotentialResult{}, err
	}
	opts = opts.withDefaults()

	gain := currentJump*opts.Multiplier - currentJump
	res := PotentialResult{Multiplier: opts.Multiplier}
	if gain > opts.MaxGainInches {
		gain = opts.MaxGainInches
		res.Capped = true
	}
	res.Gain = gain
	res.ProjectedJump = currentJump + gain
	return res, nil
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
