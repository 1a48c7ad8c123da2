package classify

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Category groups dunk styles.
type Category string

// Dunk style categories.
const (
	Power   Category = "power"
	Finesse Category = "finesse"
)

// ParseCategory resolves a category name.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Power, Finesse:
		return c, nil
	default:
		return "", fmt.Errorf("unknown dunk category %q", s)
	}
}

// DunkStyle is a catalog entry with its vertical jump prerequisite band.
type DunkStyle struct {
	Name                  string
	Category              Category
	MinVerticalJumpInches float64
	MaxVerticalJumpInches float64
}

// Contains reports whether v lies in the closed band [min, max].
func (s DunkStyle) Contains(v float64) bool {
	return v >= s.MinVerticalJumpInches && v <= s.MaxVerticalJumpInches
}

// Validate checks a catalog entry.
func (s DunkStyle) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return errors.New("dunk style name is empty")
	case s.Category != Power && s.Category != Finesse:
		return fmt.Errorf("dunk style %q: unknown category %q", s.Name, s.Category)
	case math.IsNaN(s.MinVerticalJumpInches) || math.IsNaN(s.MaxVerticalJumpInches):
		return fmt.Errorf("dunk style %q: band is not a number", s.Name)
	case s.MinVerticalJumpInches < 0 || s.MaxVerticalJumpInches < s.MinVerticalJumpInches:
		return fmt.Errorf("dunk style %q: invalid band [%g, %g]", s.Name, s.MinVerticalJumpInches, s.MaxVerticalJumpInches)
	}
	return nil
}

// Category bands in inches of vertical jump.
const (
	powerMinInches   = 24.0
	powerMaxInches   = 36.0
	finesseMinInches = 32.0
	finesseMaxInches = 42.0
)

// defaultCatalog is built once and only ever handed out as a copy.
var defaultCatalog = []DunkStyle{ //nolint:gochecknoglobals // immutable reference data
	{Name: "Two-Hand Dunk", Category: Power, MinVerticalJumpInches: powerMinInches, MaxVerticalJumpInches: powerMaxInches},
	{Name: "One-Hand Dunk", Category: Power, MinVerticalJumpInches: powerMinInches, MaxVerticalJumpInches: powerMaxInches},
	{Name: "Tomahawk", Category: Power, MinVerticalJumpInches: powerMinInches, MaxVerticalJumpInches: powerMaxInches},
	{Name: "Putback Slam", Category: Power, MinVerticalJumpInches: powerMinInches, MaxVerticalJumpInches: powerMaxInches},
	{Name: "Reverse Dunk", Category: Finesse, MinVerticalJumpInches: finesseMinInches, MaxVerticalJumpInches: finesseMaxInches},
	{Name: "Windmill", Category: Finesse, MinVerticalJumpInches: finesseMinInches, MaxVerticalJumpInches: finesseMaxInches},
	{Name: "Cradle Dunk", Category: Finesse, MinVerticalJumpInches: finesseMinInches, MaxVerticalJumpInches: finesseMaxInches},
	{Name: "360 Dunk", Category: Finesse, MinVerticalJumpInches: finesseMinInches, MaxVerticalJumpInches: finesseMaxInches},
}

// DefaultCatalog returns a copy of the built-in dunk style catalog.
func DefaultCatalog() []DunkStyle {
	out := make([]DunkStyle, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

// ValidateCatalog checks every entry and rejects duplicate names.
func ValidateCatalog(styles []DunkStyle) error {
	if len(styles) == 0 {
		return errors.New("dunk style catalog is empty")
	}
	seen := make(map[string]struct{}, len(styles))
	for _, s := range styles {
		if err := s.Validate(); err != nil {
			return err
		}
		key := strings.ToLower(s.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate dunk style %q", s.Name)
		}
		seen[key] = struct{}{}
	}
	return nil
}
