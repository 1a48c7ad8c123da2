package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/okian/dunkcalc/internal/domain/classify"
)

// Environment variable names.
const (
	envPrefix = "DUNK_"
	envConfig = "DUNK_CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DUNK_CONFIG is set
//  3. env (prefix DUNK_); DUNK_TIER_THRESHOLDS takes a comma separated list
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(envConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// DUNK_RIM_HEIGHT_IN -> rim_height_in (flat keys, underscores kept).
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.TrimPrefix(strings.ToLower(key), strings.ToLower(envPrefix))
		if key == "config" {
			return "", nil
		}
		if key == "tier_thresholds" {
			return key, strings.Split(value, ",")
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	// Lists replace the defaults instead of merging element-wise.
	if k.Exists("tier_thresholds") {
		cfg.TierThresholds = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return invalid("addr must not be empty")
	case !positive(c.ReachRatio):
		return invalid("reach_ratio must be greater than zero")
	case !positive(c.RimHeightInches):
		return invalid("rim_height_in must be greater than zero")
	case !nonNegative(c.ClearanceMarginInches):
		return invalid("clearance_margin_in must not be negative")
	case !nonNegative(c.FatigueRate) || c.FatigueRate > 1:
		return invalid("fatigue_rate must be within [0, 1]")
	case !positive(c.PotentialMaxMultiplier) || c.PotentialMaxMultiplier < 1:
		return invalid("potential_max_multiplier must be at least 1")
	case !positive(c.PotentialMaxGainInches):
		return invalid("potential_max_gain_in must be greater than zero")
	case !positive(c.IdealBMILow) || c.IdealBMIHigh <= c.IdealBMILow:
		return invalid("ideal_bmi_low must be positive and below ideal_bmi_high")
	case !positive(c.WeightPenaltyPerLb) || !positive(c.UnderweightPenaltyPerLb):
		return invalid("weight penalties must be greater than zero")
	}
	if _, err := c.Thresholds(); err != nil {
		return err
	}
	if _, err := c.Catalog(); err != nil {
		return err
	}
	return nil
}

// Thresholds converts TierThresholds into classifier bounds.
func (c *Config) Thresholds() (classify.Thresholds, error) {
	var t classify.Thresholds
	if len(c.TierThresholds) != len(t) {
		return t, invalid("tier_thresholds needs exactly " + strconv.Itoa(len(t)) + " values")
	}
	copy(t[:], c.TierThresholds)
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("%w: tier_thresholds: %w", ErrInvalidConfig, err)
	}
	return t, nil
}

// Catalog converts DunkStyles into a classifier catalog. It returns nil
// when no override is configured.
func (c *Config) Catalog() ([]classify.DunkStyle, error) {
	if len(c.DunkStyles) == 0 {
		return nil, nil
	}
	out := make([]classify.DunkStyle, 0, len(c.DunkStyles))
	for _, s := range c.DunkStyles {
		cat, err := classify.ParseCategory(s.Category)
		if err != nil {
			return nil, fmt.Errorf("%w: dunk_styles: %w", ErrInvalidConfig, err)
		}
		out = append(out, classify.DunkStyle{
			Name:                  s.Name,
			Category:              cat,
			MinVerticalJumpInches: s.MinVerticalJumpInches,
			MaxVerticalJumpInches: s.MaxVerticalJumpInches,
		})
	}
	if err := classify.ValidateCatalog(out); err != nil {
		return nil, fmt.Errorf("%w: dunk_styles: %w", ErrInvalidConfig, err)
	}
	return out, nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, msg)
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0)
}
