package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/dunkcalc/internal/domain/derived"
	"github.com/okian/dunkcalc/internal/domain/dunk"
	"github.com/okian/dunkcalc/internal/domain/measure"
	"github.com/okian/dunkcalc/internal/domain/types"
	"github.com/okian/dunkcalc/pkg/logger"
	"github.com/okian/dunkcalc/pkg/metrics"
)

// Styles basis values.
const (
	BasisVerticalJump         = "vertical_jump"
	BasisRequiredVerticalJump = "required_vertical_jump"
)

// defaultDevelopmentScore is assumed when a report omits strength or technique.
const defaultDevelopmentScore = 0.5

// Normalize converts a length to inches or a weight to pounds.
func (s *Service) Normalize(ctx context.Context, req types.NormalizeRequest) (resp types.NormalizeResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcNormalize, start, err) }(time.Now())

	kind, err := parseKind(req.Kind)
	if err != nil {
		return resp, err
	}
	m, err := resolve("value", &req.MeasurementInput, kind)
	if err != nil {
		return resp, err
	}

	resp.Measurement = toMeasurement(m)
	if kind == weightInput {
		resp.Measurement.Display = m.String()
		resp.Metric = types.Measurement{Value: round(m.Kilograms()), Unit: string(measure.Kilograms)}
	} else {
		resp.Metric = types.Measurement{Value: round(m.Centimeters()), Unit: string(measure.Centimeters)}
	}
	return resp, nil
}

// Requirement computes the vertical jump needed to dunk, its tier and the
// dunk styles in reach.
func (s *Service) Requirement(ctx context.Context, req types.RequirementRequest) (resp types.RequirementResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcRequirement, start, err) }(time.Now())

	resp, _, _, err = s.requirement(ctx, req)
	return resp, err
}

// requirement also returns the domain result and profile for Report.
func (s *Service) requirement(ctx context.Context, req types.RequirementRequest) (types.RequirementResponse, dunk.Result, dunk.AthleteProfile, error) {
	profile, rim, err := s.profile(req)
	if err != nil {
		return types.RequirementResponse{}, dunk.Result{}, profile, err
	}
	res, err := s.calculator.RequiredVerticalJump(profile, rim)
	if err != nil {
		return types.RequirementResponse{}, dunk.Result{}, profile, err
	}

	tier := s.classifier.Classify(res.RequiredVerticalJump.Value)
	basis, styleJump := BasisRequiredVerticalJump, res.RequiredVerticalJump.Value
	if profile.VerticalJump != nil {
		basis, styleJump = BasisVerticalJump, profile.VerticalJump.Value
	}

	resp := types.RequirementResponse{
		RequiredVerticalJump: toMeasurement(res.RequiredVerticalJump),
		StandingReach:        toMeasurement(res.StandingReach),
		ClearanceTarget:      toMeasurement(res.ClearanceTarget),
		Feasible:             res.Feasible.String(),
		ReachesStanding:      res.ReachesStanding,
		Tier:                 tier.String(),
		TierDescription:      tier.Description(),
		DunkStyles:           toStyles(s.classifier.MatchingDunkStyles(styleJump)),
		StylesBasis:          basis,
	}
	if res.GapToCurrentJump != nil {
		gap := toMeasurement(*res.GapToCurrentJump)
		gap.Display = ""
		resp.GapToCurrentJump = &gap
	}

	metrics.RecordTier(tier.String())
	metrics.RecordFeasibility(res.Feasible.String())
	if res.StandingReach.Estimated {
		metrics.RecordEstimatedReach()
		s.logger.Debug(ctx, "standing reach estimated from height",
			logger.Float64("height", profile.Height.Value),
			logger.Float64("reach", res.StandingReach.Value),
		)
	}
	return resp, res, profile, nil
}

func (s *Service) profile(req types.RequirementRequest) (dunk.AthleteProfile, *dunk.RimConfig, error) {
	var p dunk.AthleteProfile
	height, err := resolve("height", req.Height, lengthInput)
	if err != nil {
		return p, nil, err
	}
	p.Height = &height
	if p.StandingReach, err = resolveOptional("standingReach", req.StandingReach, lengthInput); err != nil {
		return p, nil, err
	}
	if p.BodyWeight, err = resolveOptional("bodyWeight", req.BodyWeight, weightInput); err != nil {
		return p, nil, err
	}
	if p.VerticalJump, err = resolveOptional("verticalJump", req.VerticalJump, lengthInput); err != nil {
		return p, nil, err
	}

	if req.RimHeight == nil && req.ClearanceMargin == nil {
		return p, nil, nil
	}
	rim := s.rim
	if req.RimHeight != nil {
		if rim.RimHeight, err = resolve("rimHeight", req.RimHeight, lengthInput); err != nil {
			return p, nil, err
		}
	}
	margin, err := resolveMargin("clearanceMargin", req.ClearanceMargin)
	if err != nil {
		return p, nil, err
	}
	if margin != nil {
		rim.ClearanceMargin = *margin
	}
	return p, &rim, nil
}

// Report combines the requirement with a trained projection and, when body
// weight is known, the ideal-weight adjustment.
func (s *Service) Report(ctx context.Context, req types.ReportRequest) (resp types.ReportResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcReport, start, err) }(time.Now())

	strength, err := score("strength", req.Strength, defaultDevelopmentScore)
	if err != nil {
		return resp, err
	}
	technique, err := score("technique", req.Technique, defaultDevelopmentScore)
	if err != nil {
		return resp, err
	}

	requirement, res, profile, err := s.requirement(ctx, req.RequirementRequest)
	if err != nil {
		return resp, err
	}
	resp.ReportID = uuid.NewString()
	resp.Requirement = requirement
	resp.FeasibleAfterTraining = res.Feasible.String()

	if profile.VerticalJump == nil {
		return resp, nil
	}

	jump := profile.VerticalJump.Value
	pot, err := derived.MaxPotential(jump, derived.PotentialOptions{
		Multiplier:    derived.TrainabilityMultiplier(strength, technique, s.maxMultiplier),
		MaxMultiplier: s.maxMultiplier,
		MaxGainInches: s.maxGainInches,
	})
	if err != nil {
		return resp, err
	}
	potential := toPotentialResponse(pot, s.maxGainInches, s.classifier.Classify(pot.ProjectedJump))
	resp.Potential = &potential

	after := dunk.Infeasible
	if pot.ProjectedJump >= res.RequiredVerticalJump.Value {
		after = dunk.Feasible
	}
	resp.FeasibleAfterTraining = after.String()

	if profile.BodyWeight != nil {
		weight := toWeightResponse(derived.IdealWeightAdjusted(jump, *profile.Height, *profile.BodyWeight, s.weightOptions()))
		resp.Weight = &weight
	}

	s.logger.Info(ctx, "dunk report generated",
		logger.String("reportID", resp.ReportID),
		logger.String("feasible", resp.Requirement.Feasible),
		logger.String("feasibleAfterTraining", resp.FeasibleAfterTraining),
	)
	return resp, nil
}

// Classify maps a required vertical jump, or a signed jump gap, to its
// difficulty tier. Zero and negative values are achievable.
func (s *Service) Classify(ctx context.Context, value float64) (resp types.ClassifyResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcClassify, start, err) }(time.Now())

	if err = measure.RequireFinite("value", value); err != nil {
		return resp, err
	}
	tier := s.classifier.Classify(value)
	metrics.RecordTier(tier.String())
	return types.ClassifyResponse{Value: value, Tier: tier.String(), Description: tier.Description()}, nil
}

// Styles lists the dunk styles achievable with vertical. A nil vertical
// returns the full catalog and a negative one matches nothing.
func (s *Service) Styles(ctx context.Context, vertical *float64) (resp types.StylesResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcStyles, start, err) }(time.Now())

	if vertical == nil {
		return types.StylesResponse{Styles: toStyles(s.classifier.Catalog())}, nil
	}
	if err = measure.RequireFinite("vertical", *vertical); err != nil {
		return resp, err
	}
	v := *vertical
	return types.StylesResponse{VerticalJump: &v, Styles: toStyles(s.classifier.MatchingDunkStyles(v))}, nil
}

// Approach compares approach and standing jumps.
func (s *Service) Approach(ctx context.Context, req types.ApproachRequest) (resp types.ApproachResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcApproach, start, err) }(time.Now())

	res, err := derived.ApproachDelta(req.ApproachJump, req.StandingJump, derived.ApproachOptions{
		BalancedToleranceInches: req.BalancedToleranceInches,
	})
	if err != nil {
		return resp, err
	}
	return types.ApproachResponse{
		Delta:       round(res.Delta),
		GainPercent: round(res.GainPercent),
		Profile:     string(res.Profile),
	}, nil
}

// Fatigue applies fatigue decay to a base jump and optionally the full curve.
func (s *Service) Fatigue(ctx context.Context, req types.FatigueRequest) (resp types.FatigueResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcFatigue, start, err) }(time.Now())

	if err = measure.RequireNonNegative("baseJump", req.BaseJump); err != nil {
		return resp, err
	}
	rate := s.fatigueRate
	if req.FatigueRate != nil {
		rate = *req.FatigueRate
	}
	res, err := derived.FatigueAdjusted(req.BaseJump, derived.FatigueOptions{Rate: rate, Level: req.FatigueLevel})
	if err != nil {
		return resp, err
	}
	resp = types.FatigueResponse{
		FatigueRate:     rate,
		AdjustedJump:    round(res.AdjustedJump),
		Loss:            round(res.Loss),
		RetainedPercent: round(res.RetainedPercent),
	}

	if req.CurveSteps == 0 {
		return resp, nil
	}
	curve, err := derived.FatigueCurve(req.BaseJump, rate, req.CurveSteps)
	if err != nil {
		return types.FatigueResponse{}, err
	}
	resp.Curve = make([]types.FatiguePoint, 0, len(curve))
	for _, p := range curve {
		resp.Curve = append(resp.Curve, types.FatiguePoint{
			Level:           round(p.Level),
			AdjustedJump:    round(p.AdjustedJump),
			RetainedPercent: round(p.RetainedPercent),
		})
	}
	return resp, nil
}

// Potential projects the trainable jump ceiling. An explicit multiplier wins
// over strength and technique scores.
func (s *Service) Potential(ctx context.Context, req types.PotentialRequest) (resp types.PotentialResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcPotential, start, err) }(time.Now())

	if err = measure.RequireNonNegative("currentJump", req.CurrentJump); err != nil {
		return resp, err
	}

	var multiplier float64
	switch {
	case req.Multiplier != nil:
		multiplier = *req.Multiplier
	case req.Strength != nil || req.Technique != nil:
		strength, err := score("strength", req.Strength, 0)
		if err != nil {
			return resp, err
		}
		technique, err := score("technique", req.Technique, 0)
		if err != nil {
			return resp, err
		}
		multiplier = derived.TrainabilityMultiplier(strength, technique, s.maxMultiplier)
	default:
		return resp, measure.Missing("multiplier")
	}

	res, err := derived.MaxPotential(req.CurrentJump, derived.PotentialOptions{
		Multiplier:    multiplier,
		MaxMultiplier: s.maxMultiplier,
		MaxGainInches: s.maxGainInches,
	})
	if err != nil {
		return resp, err
	}
	return toPotentialResponse(res, s.maxGainInches, s.classifier.Classify(res.ProjectedJump)), nil
}

// IdealWeight adjusts a jump for the athlete's distance from the ideal body
// weight band for their height.
func (s *Service) IdealWeight(ctx context.Context, req types.WeightRequest) (resp types.WeightResponse, err error) {
	defer func(start time.Time) { s.observe(ctx, CalcIdealWeight, start, err) }(time.Now())

	if err = measure.RequireNonNegative("jump", req.Jump); err != nil {
		return resp, err
	}
	height, err := resolve("height", req.Height, lengthInput)
	if err != nil {
		return resp, err
	}
	weight, err := resolve("bodyWeight", req.BodyWeight, weightInput)
	if err != nil {
		return resp, err
	}
	return toWeightResponse(derived.IdealWeightAdjusted(req.Jump, height, weight, s.weightOptions())), nil
}

func (s *Service) weightOptions() derived.WeightOptions {
	return derived.WeightOptions{
		Estimator:               s.estimator,
		OverweightPenaltyPerLb:  s.overweightPerLb,
		UnderweightPenaltyPerLb: s.underweightPerLb,
	}
}
