package measure

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// 6'2", 6' 2, 6ft 2in, 6 feet, 5'11.5"
	feetInchesPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*(?:'|ft|feet|foot)\s*(?:(-?\d+(?:\.\d+)?)\s*(?:"|''|in|inch|inches)?)?$`)
	// 188cm, 74 in, 74", 82kg, 180 lbs, 74
	valueUnitPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)\s*([a-z"]*)$`)
)

// Parse reads a free-text length or weight the way the calculator forms
// accept it. Bare numbers are inches. Lengths normalize to inches and weights
// to pounds.
func Parse(text string) (Measurement, error) {
	return parse(text, false)
}

// ParseNonNegative is Parse for quantities that may be zero, such as a
// clearance margin. Negative values are still rejected.
func ParseNonNegative(text string) (Measurement, error) {
	return parse(text, true)
}

func parse(text string, allowZero bool) (Measurement, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	s = strings.NewReplacer("’", "'", "”", `"`, "″", `"`, "′", "'").Replace(s)
	if s == "" {
		return Measurement{}, Invalid("", "empty measurement")
	}

	if m := feetInchesPattern.FindStringSubmatch(s); m != nil {
		feet, _ := strconv.ParseFloat(m[1], 64)
		inches := 0.0
		if m[2] != "" {
			inches, _ = strconv.ParseFloat(m[2], 64)
		}
		if allowZero {
			return NormalizeFeetInchesNonNegative(feet, inches)
		}
		return NormalizeFeetInches(feet, inches)
	}

	m := valueUnitPattern.FindStringSubmatch(s)
	if m == nil {
		return Measurement{}, Invalid("", fmt.Sprintf("cannot parse %q", text))
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Measurement{}, Invalid("", fmt.Sprintf("cannot parse %q", text))
	}
	unit, err := ParseUnit(m[2])
	if err != nil {
		return Measurement{}, err
	}
	if allowZero && value == 0 {
		return Zero(unit)
	}
	if unit.IsWeight() {
		return NormalizeWeight(value, unit)
	}
	return Normalize(value, unit)
}
