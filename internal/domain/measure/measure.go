// Package measure normalizes user supplied lengths and weights into the
// engine's internal units: inches for length, pounds for body weight.
//
// Values keep full float64 precision; rounding happens only through Round
// at output time.
package measure

import (
	"fmt"
	"math"
	"strings"
)

// Conversion factors.
const (
	InchesPerCentimeter = 0.393701
	InchesPerFoot       = 12.0
	PoundsPerKilogram   = 2.20462
)

// Unit tags a magnitude.
type Unit string

// Supported units. FeetInches is an input-only composite; normalized lengths
// are always Inches and normalized weights always Pounds.
const (
	Inches      Unit = "in"
	Centimeters Unit = "cm"
	FeetInches  Unit = "ft_in"
	Pounds      Unit = "lb"
	Kilograms   Unit = "kg"
)

var unitAliases = map[string]Unit{ //nolint:gochecknoglobals // immutable lookup table
	"":            Inches,
	"in":          Inches,
	"inch":        Inches,
	"inches":      Inches,
	`"`:           Inches,
	"cm":          Centimeters,
	"centimeter":  Centimeters,
	"centimeters": Centimeters,
	"centimetre":  Centimeters,
	"centimetres": Centimeters,
	"ft":          FeetInches,
	"ft_in":       FeetInches,
	"feet":        FeetInches,
	"foot":        FeetInches,
	"'":           FeetInches,
	"lb":          Pounds,
	"lbs":         Pounds,
	"pound":       Pounds,
	"pounds":      Pounds,
	"kg":          Kilograms,
	"kgs":         Kilograms,
	"kilogram":    Kilograms,
	"kilograms":   Kilograms,
}

// ParseUnit resolves a unit name or alias. An empty string means inches.
func ParseUnit(s string) (Unit, error) {
	u, ok := unitAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", Invalid("", fmt.Sprintf("unrecognized unit %q", s))
	}
	return u, nil
}

// IsLength reports whether u measures length.
func (u Unit) IsLength() bool {
	return u == Inches || u == Centimeters || u == FeetInches
}

// IsWeight reports whether u measures mass.
func (u Unit) IsWeight() bool {
	return u == Pounds || u == Kilograms
}

// Measurement is a normalized magnitude. Estimated marks values derived by
// a heuristic rather than supplied by the user.
type Measurement struct {
	Value     float64
	Unit      Unit
	Estimated bool
}

// Inch builds a normalized length without validation. Intended for values
// already known to be valid, such as configuration defaults.
func Inch(v float64) Measurement { return Measurement{Value: v, Unit: Inches} }

// Pound builds a normalized weight without validation.
func Pound(v float64) Measurement { return Measurement{Value: v, Unit: Pounds} }

// Normalize converts a length in inches, centimeters or decimal feet to
// inches. The value must be finite and strictly positive.
func Normalize(value float64, unit Unit) (Measurement, error) {
	if err := checkPositive(value); err != nil {
		return Measurement{}, err
	}
	switch unit {
	case Inches:
		return Inch(value), nil
	case Centimeters:
		return Inch(value * InchesPerCentimeter), nil
	case FeetInches:
		return Inch(value * InchesPerFoot), nil
	case Pounds, Kilograms:
		return Measurement{}, Invalid("", fmt.Sprintf("unit %q is not a length", unit))
	default:
		return Measurement{}, Invalid("", fmt.Sprintf("unrecognized unit %q", unit))
	}
}

// NormalizeFeetInches combines a feet+inches pair, e.g. 6'2" -> 74in.
// Both parts must be finite and non-negative and the total positive.
func NormalizeFeetInches(feet, inches float64) (Measurement, error) {
	if !finite(feet) || feet < 0 {
		return Measurement{}, Invalid("", "feet must be a non-negative number, got "+formatValue(feet))
	}
	if !finite(inches) || inches < 0 {
		return Measurement{}, Invalid("", "inches must be a non-negative number, got "+formatValue(inches))
	}
	total := feet*InchesPerFoot + inches
	if total <= 0 {
		return Measurement{}, Invalid("", "length must be greater than zero")
	}
	return Inch(total), nil
}

// NormalizeFeetInchesNonNegative is NormalizeFeetInches allowing a zero
// total.
func NormalizeFeetInchesNonNegative(feet, inches float64) (Measurement, error) {
	if feet == 0 && inches == 0 {
		return Inch(0), nil
	}
	return NormalizeFeetInches(feet, inches)
}

// Zero returns the normalized zero quantity of unit.
func Zero(unit Unit) (Measurement, error) {
	switch {
	case unit.IsLength():
		return Inch(0), nil
	case unit.IsWeight():
		return Pound(0), nil
	default:
		return Measurement{}, Invalid("", fmt.Sprintf("unrecognized unit %q", unit))
	}
}

// NormalizeWeight converts a body weight in pounds or kilograms to pounds.
func NormalizeWeight(value float64, unit Unit) (Measurement, error) {
	if err := checkPositive(value); err != nil {
		return Measurement{}, err
	}
	switch unit {
	case Pounds:
		return Pound(value), nil
	case Kilograms:
		return Pound(value * PoundsPerKilogram), nil
	case Inches, Centimeters, FeetInches:
		return Measurement{}, Invalid("", fmt.Sprintf("unit %q is not a weight", unit))
	default:
		return Measurement{}, Invalid("", fmt.Sprintf("unrecognized unit %q", unit))
	}
}

// RequirePositive validates a raw magnitude in the engine's units.
func RequirePositive(field string, v float64) error {
	return Named(field, checkPositive(v))
}

// RequireFinite validates a raw value that may be any real number, such as
// a signed jump gap.
func RequireFinite(field string, v float64) error {
	if !finite(v) {
		return Invalid(field, "value must be a finite number")
	}
	return nil
}

// RequireNonNegative validates a raw magnitude that may legitimately be zero.
func RequireNonNegative(field string, v float64) error {
	if err := RequireFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return Invalid(field, "value must not be negative, got "+formatValue(v))
	}
	return nil
}

// Check validates an already constructed Measurement.
func (m Measurement) Check(field string) error {
	if !m.Unit.IsLength() && !m.Unit.IsWeight() {
		return Invalid(field, fmt.Sprintf("unrecognized unit %q", m.Unit))
	}
	return RequirePositive(field, m.Value)
}

// Centimeters returns a length in centimeters.
func (m Measurement) Centimeters() float64 {
	return m.Value / InchesPerCentimeter
}

// Kilograms returns a weight in kilograms.
func (m Measurement) Kilograms() float64 {
	return m.Value / PoundsPerKilogram
}

// Round returns a copy rounded to the given number of decimal places.
func (m Measurement) Round(places int) Measurement {
	p := math.Pow(10, float64(places))
	m.Value = math.Round(m.Value*p) / p
	return m
}

// FeetAndInches formats a length as 6'2.5".
func (m Measurement) FeetAndInches() string {
	total := math.Round(m.Value*10) / 10
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	feet := math.Floor(total / InchesPerFoot)
	rest := total - feet*InchesPerFoot
	return fmt.Sprintf("%s%d'%s\"", sign, int(feet), formatValue(math.Round(rest*10)/10))
}

func (m Measurement) String() string {
	s := formatValue(math.Round(m.Value*100)/100) + " " + string(m.Unit)
	if m.Estimated {
		s += " (estimated)"
	}
	return s
}

func checkPositive(v float64) error {
	if !finite(v) {
		return Invalid("", "value must be a finite number")
	}
	if v <= 0 {
		return Invalid("", "value must be greater than zero, got "+formatValue(v))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
