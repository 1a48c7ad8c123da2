// Package classify maps vertical jump figures to difficulty tiers and to the
// dunk styles they unlock.
package classify

import (
	"errors"
	"fmt"
	"math"
)

// Thresholds are the inclusive upper bounds of Achievable, Challenging,
// Hard and VeryHard. Anything above the last bound is Extreme.
type Thresholds [4]float64

// DefaultThresholds: ≤32 achievable, ≤36 challenging, ≤40 hard, ≤46 veryHard.
var DefaultThresholds = Thresholds{32, 36, 40, 46} //nolint:gochecknoglobals // value type, copied on use

// Validate requires finite, strictly increasing bounds.
func (t Thresholds) Validate() error {
	for i, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("threshold %d is not finite", i)
		}
		if i > 0 && v <= t[i-1] {
			return errors.New("thresholds must be strictly increasing")
		}
	}
	return nil
}

// Option applies a configuration option to the Classifier.
type Option func(*Classifier)

// WithThresholds replaces the tier bounds. Invalid bounds are ignored.
func WithThresholds(t Thresholds) Option {
	return func(c *Classifier) {
		if t.Validate() == nil {
			c.thresholds = t
		}
	}
}

// WithCatalog replaces the dunk style catalog. Invalid catalogs are ignored.
func WithCatalog(styles []DunkStyle) Option {
	return func(c *Classifier) {
		if ValidateCatalog(styles) == nil {
			c.catalog = make([]DunkStyle, len(styles))
			copy(c.catalog, styles)
		}
	}
}

// Classifier holds the tier thresholds and style catalog. Both are fixed at
// construction so a Classifier is safe for concurrent use.
type Classifier struct {
	thresholds Thresholds
	catalog    []DunkStyle
}

// NewClassifier creates a Classifier with the default thresholds and catalog.
func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		thresholds: DefaultThresholds,
		catalog:    defaultCatalog,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Thresholds returns the tier bounds in use.
func (c *Classifier) Thresholds() Thresholds { return c.thresholds }

// Classify maps a required jump (or gap) in inches to a tier. Bounds are
// upper-inclusive: exactly 32 is Achievable, 32.01 is Challenging. Zero and
// negative values are Achievable.
func (c *Classifier) Classify(inches float64) Tier {
	for i, bound := range c.thresholds {
		if inches <= bound {
			return Tier(i)
		}
	}
	return Extreme
}

// Catalog returns a copy of the style catalog.
func (c *Classifier) Catalog() []DunkStyle {
	out := make([]DunkStyle, len(c.catalog))
	copy(out, c.catalog)
	return out
}

// MatchingDunkStyles returns, in catalog order, every style whose band
// contains the given vertical jump. The result is never nil.
func (c *Classifier) MatchingDunkStyles(verticalJumpInches float64) []DunkStyle {
	out := make([]DunkStyle, 0, len(c.catalog))
	for _, s := range c.catalog {
		if s.Contains(verticalJumpInches) {
			out = append(out, s)
		}
	}
	return out
}

var defaultClassifier = NewClassifier() //nolint:gochecknoglobals // immutable default

// Classify uses the default thresholds.
func Classify(inches float64) Tier { return defaultClassifier.Classify(inches) }

// MatchingDunkStyles searches the default catalog.
func MatchingDunkStyles(verticalJumpInches float64) []DunkStyle {
	return defaultClassifier.MatchingDunkStyles(verticalJumpInches)
}
