package service

import (
	"fmt"
	"strings"

	"github.com/okian/dunkcalc/internal/domain/classify"
	"github.com/okian/dunkcalc/internal/domain/derived"
	"github.com/okian/dunkcalc/internal/domain/measure"
	"github.com/okian/dunkcalc/internal/domain/types"
)

// displayPlaces is the rounding applied to every value leaving the service.
const displayPlaces = 2

type inputKind int

const (
	lengthInput inputKind = iota
	weightInput
)

func parseKind(s string) (inputKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "length":
		return lengthInput, nil
	case "weight":
		return weightInput, nil
	default:
		return 0, measure.Invalid("kind", fmt.Sprintf("unknown kind %q, want length or weight", s))
	}
}

// resolve turns a raw input into a normalized measurement. Text wins over
// feet/inches, which win over value+unit. Errors carry field.
func resolve(field string, in *types.MeasurementInput, kind inputKind) (measure.Measurement, error) {
	return resolveWith(field, in, kind, false)
}

// resolveWith is resolve with an optional zero allowance for quantities that
// may legitimately be zero.
func resolveWith(field string, in *types.MeasurementInput, kind inputKind, allowZero bool) (measure.Measurement, error) {
	if in == nil {
		return measure.Measurement{}, measure.Missing(field)
	}
	m, err := resolveValue(in, kind, allowZero)
	if err != nil {
		return measure.Measurement{}, measure.Named(field, err)
	}
	if kind == weightInput && !m.Unit.IsWeight() {
		return measure.Measurement{}, measure.Invalid(field, "expected a weight, got a length")
	}
	if kind == lengthInput && !m.Unit.IsLength() {
		return measure.Measurement{}, measure.Invalid(field, "expected a length, got a weight")
	}
	return m, nil
}

func resolveValue(in *types.MeasurementInput, kind inputKind, allowZero bool) (measure.Measurement, error) {
	switch {
	case strings.TrimSpace(in.Text) != "":
		if allowZero {
			return measure.ParseNonNegative(in.Text)
		}
		return measure.Parse(in.Text)
	case in.Feet != nil || (in.Inches != nil && in.Value == nil):
		if allowZero {
			return measure.NormalizeFeetInchesNonNegative(deref(in.Feet), deref(in.Inches))
		}
		return measure.NormalizeFeetInches(deref(in.Feet), deref(in.Inches))
	case in.Value != nil:
		unit := measure.Pounds
		if kind != weightInput || strings.TrimSpace(in.Unit) != "" {
			var err error
			if unit, err = measure.ParseUnit(in.Unit); err != nil {
				return measure.Measurement{}, err
			}
		}
		if allowZero && *in.Value == 0 {
			return measure.Zero(unit)
		}
		if unit.IsWeight() {
			return measure.NormalizeWeight(*in.Value, unit)
		}
		return measure.Normalize(*in.Value, unit)
	default:
		return measure.Measurement{}, measure.Missing("")
	}
}

// resolveOptional is resolve for inputs that may be omitted.
func resolveOptional(field string, in *types.MeasurementInput, kind inputKind) (*measure.Measurement, error) {
	if in == nil {
		return nil, nil
	}
	m, err := resolve(field, in, kind)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// resolveMargin is resolveOptional for a clearance margin, which may be
// zero in every input form.
func resolveMargin(field string, in *types.MeasurementInput) (*measure.Measurement, error) {
	if in == nil {
		return nil, nil
	}
	m, err := resolveWith(field, in, lengthInput, true)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// score validates an optional development score in [0, 1].
func score(field string, v *float64, fallback float64) (float64, error) {
	if v == nil {
		return fallback, nil
	}
	if err := measure.RequireNonNegative(field, *v); err != nil {
		return 0, err
	}
	if *v > 1 {
		return 0, measure.Invalid(field, "must be within [0, 1]")
	}
	return *v, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round(v float64) float64 {
	return measure.Inch(v).Round(displayPlaces).Value
}

func toMeasurement(m measure.Measurement) types.Measurement {
	r := m.Round(displayPlaces)
	out := types.Measurement{Value: r.Value, Unit: string(r.Unit), Estimated: m.Estimated}
	if m.Unit == measure.Inches && m.Value > 0 {
		out.Display = m.FeetAndInches()
	}
	return out
}

func toStyles(styles []classify.DunkStyle) []types.DunkStyle {
	out := make([]types.DunkStyle, 0, len(styles))
	for _, s := range styles {
		out = append(out, types.DunkStyle{
			Name:                  s.Name,
			Category:              string(s.Category),
			MinVerticalJumpInches: s.MinVerticalJumpInches,
			MaxVerticalJumpInches: s.MaxVerticalJumpInches,
		})
	}
	return out
}

func toWeightResponse(r derived.WeightResult) types.WeightResponse {
	return types.WeightResponse{
		AdjustedJump:      round(r.AdjustedJump),
		IdealWeightLow:    toMeasurement(r.Band.Low),
		IdealWeightHigh:   toMeasurement(r.Band.High),
		DeviationLbs:      round(r.DeviationLbs),
		Adjustment:        round(r.Adjustment),
		RecoverableInches: round(r.RecoverableInches),
		Status:            string(r.Status),
	}
}

func toPotentialResponse(r derived.PotentialResult, maxGain float64, tier classify.Tier) types.PotentialResponse {
	return types.PotentialResponse{
		ProjectedJump: round(r.ProjectedJump),
		Gain:          round(r.Gain),
		Multiplier:    round(r.Multiplier),
		MaxGain:       maxGain,
		Capped:        r.Capped,
		Tier:          tier.String(),
	}
}
