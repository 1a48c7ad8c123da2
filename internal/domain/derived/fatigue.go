package derived

import (
	"fmt"
	"math"

	"github.com/okian/dunkcalc/internal/domain/measure"
)

const (
	// DefaultFatigueRate is the fraction of jump height lost at full fatigue.
	DefaultFatigueRate = 0.3
	// MaxCurveSteps bounds the resolution of FatigueCurve.
	MaxCurveSteps = 100
)

// FatigueOptions configures fatigue decay.
type FatigueOptions struct {
	// Rate is the fraction of the base jump lost at Level 1, in [0, 1].
	Rate float64
	// Level is the fatigue level, 0 = fresh and 1 = exhausted.
	Level float64
}

// Validate checks both options lie in [0, 1].
func (o FatigueOptions) Validate() error {
	if err := unitInterval("fatigueRate", o.Rate); err != nil {
		return err
	}
	return unitInterval("fatigueLevel", o.Level)
}

// FatigueResult is a fatigue-adjusted jump.
type FatigueResult struct {
	Level           float64
	AdjustedJump    float64
	Loss            float64
	RetainedPercent float64
}

// FatigueAdjusted computes baseJump × (1 - Rate × Level), clamped at zero.
func FatigueAdjusted(baseJump float64, opts FatigueOptions) (FatigueResult, error) {
	if err := opts.Validate(); err != nil {
		return FatigueResult{}, err
	}
	return fatigue(baseJump, opts.Rate, opts.Level), nil
}

// FatigueCurve evaluates the decay at steps+1 evenly spaced levels from 0 to
// 1, one point per simulated repetition block. steps must lie in
// [1, MaxCurveSteps].
func FatigueCurve(baseJump, rate float64, steps int) ([]FatigueResult, error) {
	if err := unitInterval("fatigueRate", rate); err != nil {
		return nil, err
	}
	if steps < 1 || steps > MaxCurveSteps {
		return nil, measure.Invalid("curveSteps", fmt.Sprintf("must be within [1, %d], got %d", MaxCurveSteps, steps))
	}
	out := make([]FatigueResult, steps+1)
	for i := range out {
		out[i] = fatigue(baseJump, rate, float64(i)/float64(steps))
	}
	return out, nil
}

func fatigue(base, rate, level float64) FatigueResult {
	adjusted := math.Max(0, base*(1-rate*level))
	res := FatigueResult{
		Level:        level,
		AdjustedJump: adjusted,
		Loss:         base - adjusted,
	}
	if base > 0 {
		res.RetainedPercent = adjusted / base * 100
	}
	return res
}

func unitInterval(field string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return measure.Invalid(field, "must be within [0, 1]")
	}
	return nil
}
