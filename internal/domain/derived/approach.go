package derived

import (
	"math"

	"github.com/okian/dunkcalc/internal/domain/measure"
)

// DefaultBalancedToleranceInches is the |delta| below which approach and
// standing jumps are considered equal.
const DefaultBalancedToleranceInches = 1.0

// JumperProfile describes which takeoff suits the athlete.
type JumperProfile string

// Jumper profiles.
const (
	ApproachDominant JumperProfile = "approach-dominant"
	Balanced         JumperProfile = "balanced"
	StandingDominant JumperProfile = "standing-dominant"
)

// ApproachOptions tunes ApproachDelta.
type ApproachOptions struct {
	// BalancedToleranceInches defaults to DefaultBalancedToleranceInches when zero.
	BalancedToleranceInches float64
}

// ApproachResult compares approach and standing jumps.
type ApproachResult struct {
	// Delta is approach minus standing. Zero or negative is a valid outcome:
	// some athletes jump higher off two feet.
	Delta float64
	// GainPercent is Delta relative to the standing jump; 0 when standing is 0.
	GainPercent float64
	Profile     JumperProfile
}

// ApproachDelta returns approachJump - standingJump. Negative or non-finite
// jumps fail with ErrInvalidMeasurement.
func ApproachDelta(approachJump, standingJump float64, opts ApproachOptions) (ApproachResult, error) {
	if err := measure.RequireNonNegative("approachJump", approachJump); err != nil {
		return ApproachResult{}, err
	}
	if err := measure.RequireNonNegative("standingJump", standingJump); err != nil {
		return ApproachResult{}, err
	}
	tol := opts.BalancedToleranceInches
	if tol <= 0 {
		tol = DefaultBalancedToleranceInches
	}

	res := ApproachResult{Delta: approachJump - standingJump}
	if standingJump > 0 {
		res.GainPercent = res.Delta / standingJump * 100
	}
	switch {
	case math.Abs(res.Delta) < tol:
		res.Profile = Balanced
	case res.Delta > 0:
		res.Profile = ApproachDominant
	default:
		res.Profile = StandingDominant
	}
	return res, nil
}
