// Package types contains the request and response shapes shared by the
// HTTP API, the service layer and the CLI.
package types

// MeasurementInput is a raw user measurement. Exactly one form is read, in
// order of precedence: Text, Feet/Inches, Value+Unit.
type MeasurementInput struct {
	Value  *float64 `json:"value,omitempty"`
	Unit   string   `json:"unit,omitempty"`
	Feet   *float64 `json:"feet,omitempty"`
	Inches *float64 `json:"inches,omitempty"`
	Text   string   `json:"text,omitempty"`
}

// Measurement is a normalized, display-rounded measurement.
type Measurement struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Display   string  `json:"display,omitempty"`
	Estimated bool    `json:"estimated,omitempty"`
}

// NormalizeRequest mirrors POST /v1/normalize.
type NormalizeRequest struct {
	MeasurementInput
	// Kind is "length" (default) or "weight".
	Kind string `json:"kind,omitempty"`
}

// NormalizeResponse carries the normalized value and its metric equivalent.
type NormalizeResponse struct {
	Measurement Measurement `json:"measurement"`
	Metric      Measurement `json:"metric"`
}

// RequirementRequest mirrors POST /v1/dunk/requirement.
type RequirementRequest struct {
	Height          *MeasurementInput `json:"height"`
	StandingReach   *MeasurementInput `json:"standing_reach,omitempty"`
	BodyWeight      *MeasurementInput `json:"body_weight,omitempty"`
	VerticalJump    *MeasurementInput `json:"vertical_jump,omitempty"`
	RimHeight       *MeasurementInput `json:"rim_height,omitempty"`
	ClearanceMargin *MeasurementInput `json:"clearance_margin,omitempty"`
}

// DunkStyle is a catalog entry.
type DunkStyle struct {
	Name                  string  `json:"name"`
	Category              string  `json:"category"`
	MinVerticalJumpInches float64 `json:"min_vertical_jump_in"`
	MaxVerticalJumpInches float64 `json:"max_vertical_jump_in"`
}

// RequirementResponse is the dunk requirement verdict.
type RequirementResponse struct {
	RequiredVerticalJump Measurement  `json:"required_vertical_jump"`
	StandingReach        Measurement  `json:"standing_reach"`
	ClearanceTarget      Measurement  `json:"clearance_target"`
	GapToCurrentJump     *Measurement `json:"gap_to_current_jump,omitempty"`
	// Feasible is "feasible", "infeasible" or "indeterminate".
	Feasible        string      `json:"feasible"`
	ReachesStanding bool        `json:"reaches_standing,omitempty"`
	Tier            string      `json:"tier"`
	TierDescription string      `json:"tier_description"`
	DunkStyles      []DunkStyle `json:"dunk_styles"`
	// StylesBasis is "vertical_jump" or "required_vertical_jump".
	StylesBasis string `json:"styles_basis"`
}

// ReportRequest mirrors POST /v1/dunk/report.
type ReportRequest struct {
	RequirementRequest
	// Strength and Technique are development scores in [0, 1].
	Strength  *float64 `json:"strength,omitempty"`
	Technique *float64 `json:"technique,omitempty"`
}

// ReportResponse combines the requirement with a trained projection.
type ReportResponse struct {
	ReportID    string              `json:"report_id"`
	Requirement RequirementResponse `json:"requirement"`
	Potential   *PotentialResponse  `json:"potential,omitempty"`
	// FeasibleAfterTraining compares the projected jump with the requirement.
	FeasibleAfterTraining string          `json:"feasible_after_training"`
	Weight                *WeightResponse `json:"weight,omitempty"`
}

// ClassifyResponse mirrors GET /v1/classify.
type ClassifyResponse struct {
	Value       float64 `json:"value"`
	Tier        string  `json:"tier"`
	Description string  `json:"description"`
}

// StylesResponse mirrors GET /v1/styles.
type StylesResponse struct {
	VerticalJump *float64    `json:"vertical_jump,omitempty"`
	Styles       []DunkStyle `json:"styles"`
}

// ApproachRequest mirrors POST /v1/jump/approach. Jumps are inches.
type ApproachRequest struct {
	ApproachJump            float64 `json:"approach_jump"`
	StandingJump            float64 `json:"standing_jump"`
	BalancedToleranceInches float64 `json:"balanced_tolerance,omitempty"`
}

// ApproachResponse is the approach-vs-standing comparison.
type ApproachResponse struct {
	Delta       float64 `json:"delta"`
	GainPercent float64 `json:"gain_percent"`
	Profile     string  `json:"profile"`
}

// FatigueRequest mirrors POST /v1/jump/fatigue.
type FatigueRequest struct {
	BaseJump float64 `json:"base_jump"`
	// FatigueRate defaults to the configured rate when omitted.
	FatigueRate  *float64 `json:"fatigue_rate,omitempty"`
	FatigueLevel float64  `json:"fatigue_level"`
	// CurveSteps > 0 adds a decay curve with that many steps.
	CurveSteps int `json:"curve_steps,omitempty"`
}

// FatiguePoint is one point of a fatigue curve.
type FatiguePoint struct {
	Level           float64 `json:"level"`
	AdjustedJump    float64 `json:"adjusted_jump"`
	RetainedPercent float64 `json:"retained_percent"`
}

// FatigueResponse is a fatigue-adjusted jump.
type FatigueResponse struct {
	FatigueRate     float64        `json:"fatigue_rate"`
	AdjustedJump    float64        `json:"adjusted_jump"`
	Loss            float64        `json:"loss"`
	RetainedPercent float64        `json:"retained_percent"`
	Curve           []FatiguePoint `json:"curve,omitempty"`
}

// PotentialRequest mirrors POST /v1/jump/potential. Either Multiplier or
// the Strength/Technique scores select the trainability multiplier.
type PotentialRequest struct {
	CurrentJump float64  `json:"current_jump"`
	Multiplier  *float64 `json:"multiplier,omitempty"`
	Strength    *float64 `json:"strength,omitempty"`
	Technique   *float64 `json:"technique,omitempty"`
}

// PotentialResponse is a projected jump ceiling.
type PotentialResponse struct {
	ProjectedJump float64 `json:"projected_jump"`
	Gain          float64 `json:"gain"`
	Multiplier    float64 `json:"multiplier"`
	MaxGain       float64 `json:"max_gain"`
	Capped        bool    `json:"capped"`
	Tier          string  `json:"tier"`
}

// WeightRequest mirrors POST /v1/jump/ideal-weight.
type WeightRequest struct {
	Jump       float64           `json:"jump"`
	Height     *MeasurementInput `json:"height"`
	BodyWeight *MeasurementInput `json:"body_weight"`
}

// WeightResponse is a body-weight adjusted jump.
type WeightResponse struct {
	AdjustedJump      float64     `json:"adjusted_jump"`
	IdealWeightLow    Measurement `json:"ideal_weight_low"`
	IdealWeightHigh   Measurement `json:"ideal_weight_high"`
	DeviationLbs      float64     `json:"deviation_lbs"`
	Adjustment        float64     `json:"adjustment"`
	RecoverableInches float64     `json:"recoverable_inches"`
	Status            string      `json:"status"`
}
