// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New and are the documented engine defaults.
// - Load layers defaults, an optional YAML file and DUNK_ env vars.
// - External errors are wrapped with this package's sentinel errors.
package config

// StyleConfig is a dunk style catalog entry as written in YAML.
type StyleConfig struct {
	Name                  string  `koanf:"name"`
	Category              string  `koanf:"category"`
	MinVerticalJumpInches float64 `koanf:"min_vertical_in"`
	MaxVerticalJumpInches float64 `koanf:"max_vertical_in"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ReachRatio estimates standing reach from height when it is not supplied.
	ReachRatio float64 `koanf:"reach_ratio"`

	// RimHeightInches and ClearanceMarginInches form the default rim.
	RimHeightInches       float64 `koanf:"rim_height_in"`
	ClearanceMarginInches float64 `koanf:"clearance_margin_in"`

	// TierThresholds are the upper bounds of achievable, challenging, hard
	// and veryHard, in inches.
	TierThresholds []float64 `koanf:"tier_thresholds"`

	// FatigueRate is the default fraction of jump lost at full fatigue.
	FatigueRate float64 `koanf:"fatigue_rate"`

	// PotentialMaxMultiplier and PotentialMaxGainInches bound projections.
	PotentialMaxMultiplier float64 `koanf:"potential_max_multiplier"`
	PotentialMaxGainInches float64 `koanf:"potential_max_gain_in"`

	// IdealBMILow and IdealBMIHigh define the ideal body weight band.
	IdealBMILow  float64 `koanf:"ideal_bmi_low"`
	IdealBMIHigh float64 `koanf:"ideal_bmi_high"`

	// Jump penalties in inches per pound outside the ideal band.
	WeightPenaltyPerLb      float64 `koanf:"weight_penalty_per_lb"`
	UnderweightPenaltyPerLb float64 `koanf:"underweight_penalty_per_lb"`

	// DunkStyles overrides the built-in catalog when non-empty.
	DunkStyles []StyleConfig `koanf:"dunk_styles"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                "info",
		LogFormat:               "text",
		Addr:                    ":9080",
		ReachRatio:              1.33,
		RimHeightInches:         120,
		ClearanceMarginInches:   6,
		TierThresholds:          []float64{32, 36, 40, 46},
		FatigueRate:             0.3,
		PotentialMaxMultiplier:  1.3,
		PotentialMaxGainInches:  12,
		IdealBMILow:             20,
		IdealBMIHigh:            25,
		WeightPenaltyPerLb:      0.1,
		UnderweightPenaltyPerLb: 0.05,
	}
}
