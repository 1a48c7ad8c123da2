// Package cli renders the offline "can I dunk" report.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okian/dunkcalc/internal/domain/types"
)

// ErrNoHeight is returned when the report is requested without a height.
var ErrNoHeight = errors.New("height is required")

// Reporter produces dunk reports.
type Reporter interface {
	Report(ctx context.Context, req types.ReportRequest) (types.ReportResponse, error)
}

// Config holds the athlete inputs as typed on the command line. Lengths
// and weights are free text such as 6'2", 188cm or 82kg.
type Config struct {
	Height        string
	StandingReach string
	VerticalJump  string
	BodyWeight    string
	RimHeight     string
	// Strength and Technique are development scores in [0, 1]; negative
	// means not given.
	Strength  float64
	Technique float64
	JSON      bool
}

// Request converts the command line inputs into a report request.
func (c *Config) Request() (types.ReportRequest, error) {
	if strings.TrimSpace(c.Height) == "" {
		return types.ReportRequest{}, ErrNoHeight
	}
	req := types.ReportRequest{
		RequirementRequest: types.RequirementRequest{
			Height:        text(c.Height),
			StandingReach: text(c.StandingReach),
			VerticalJump:  text(c.VerticalJump),
			BodyWeight:    text(c.BodyWeight),
			RimHeight:     text(c.RimHeight),
		},
	}
	if c.Strength >= 0 {
		v := c.Strength
		req.Strength = &v
	}
	if c.Technique >= 0 {
		v := c.Technique
		req.Technique = &v
	}
	return req, nil
}

func text(s string) *types.MeasurementInput {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &types.MeasurementInput{Text: s}
}

// Run builds the report and writes it to out as text or JSON.
func Run(ctx context.Context, r Reporter, cfg *Config, out io.Writer) error {
	req, err := cfg.Request()
	if err != nil {
		return err
	}
	report, err := r.Report(ctx, req)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return writeText(out, report)
}

func writeText(out io.Writer, r types.ReportResponse) error {
	req := r.Requirement
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	row := func(label, format string, args ...any) {
		fmt.Fprintf(tw, "%s\t%s\n", label, fmt.Sprintf(format, args...))
	}

	row("Report", "%s", r.ReportID)
	row("Standing reach", "%s", describe(req.StandingReach))
	row("Clearance target", "%s", describe(req.ClearanceTarget))
	row("Required vertical", "%s [%s] %s", describe(req.RequiredVerticalJump), req.Tier, req.TierDescription)

	verdict := req.Feasible
	if req.GapToCurrentJump != nil {
		gap := req.GapToCurrentJump.Value
		if gap > 0 {
			verdict += fmt.Sprintf(" (%.2f in short)", gap)
		} else {
			verdict += fmt.Sprintf(" (%.2f in to spare)", -gap)
		}
	}
	row("Can dunk", "%s", verdict)
	row("Dunk styles", "%s", styleNames(req.DunkStyles))

	if p := r.Potential; p != nil {
		capped := ""
		if p.Capped {
			capped = ", capped"
		}
		row("Trained ceiling", "%.2f in (+%.2f in at x%.2f%s)", p.ProjectedJump, p.Gain, p.Multiplier, capped)
		row("After training", "%s", r.FeasibleAfterTraining)
	}
	if w := r.Weight; w != nil {
		row("Body weight", "%s, ideal %.0f-%.0f lb", w.Status, w.IdealWeightLow.Value, w.IdealWeightHigh.Value)
		if w.RecoverableInches > 0 {
			row("Weight penalty", "%.2f in recoverable at ideal weight", w.RecoverableInches)
		}
	}
	return tw.Flush()
}

func describe(m types.Measurement) string {
	s := fmt.Sprintf("%.2f %s", m.Value, m.Unit)
	if m.Display != "" {
		s += " (" + m.Display + ")"
	}
	if m.Estimated {
		s += ", estimated"
	}
	return s
}

func styleNames(styles []types.DunkStyle) string {
	if len(styles) == 0 {
		return "none"
	}
	names := make([]string, 0, len(styles))
	for _, s := range styles {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// ShowHelp prints usage information.
func ShowHelp(out io.Writer) {
	fmt.Fprint(out, `dunkcheck - can I dunk?

Usage:
  dunkcheck -height 6'2" [-reach 8'2"] [-vertical 28in] [-weight 82kg]
            [-rim 10ft] [-strength 0.5] [-technique 0.5] [-json]

Lengths accept 6'2", 74in, 188cm or a bare number of inches.
Weights accept 180lb or 82kg. Engine defaults can be overridden with
DUNK_* environment variables or a YAML file named by DUNK_CONFIG.
`)
}
