package derived_test

import (
	"errors"
	"math"
	"testing"

	"github.com/okian/dunkcalc/internal/domain/anthro"
	"github.com/okian/dunkcalc/internal/domain/derived"
	"github.com/okian/dunkcalc/internal/domain/measure"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApproachDelta(t *testing.T) {
	Convey("Given approach and standing jumps", t, func() {
		Convey("When the approach jump is higher", func() {
			res, err := derived.ApproachDelta(34, 28, derived.ApproachOptions{})

			Convey("Then the delta and gain are reported", func() {
				So(err, ShouldBeNil)
				So(res.Delta, ShouldEqual, 6)
				So(res.GainPercent, ShouldAlmostEqual, 6.0/28*100, 1e-9)
				So(res.Profile, ShouldEqual, derived.ApproachDominant)
			})
		})

		Convey("When the standing jump is higher", func() {
			res, err := derived.ApproachDelta(26, 29, derived.ApproachOptions{})

			Convey("Then the negative delta is reported, not rejected", func() {
				So(err, ShouldBeNil)
				So(res.Delta, ShouldEqual, -3)
				So(res.Profile, ShouldEqual, derived.StandingDominant)
			})
		})

		Convey("When the jumps are within the tolerance", func() {
			res, err := derived.ApproachDelta(30.5, 30, derived.ApproachOptions{})
			So(err, ShouldBeNil)
			So(res.Profile, ShouldEqual, derived.Balanced)

			wide, err := derived.ApproachDelta(33, 30, derived.ApproachOptions{BalancedToleranceInches: 4})
			So(err, ShouldBeNil)
			So(wide.Profile, ShouldEqual, derived.Balanced)
		})

		Convey("When the standing jump is zero", func() {
			res, err := derived.ApproachDelta(10, 0, derived.ApproachOptions{})
			So(err, ShouldBeNil)
			So(res.GainPercent, ShouldEqual, 0)
		})

		Convey("When either jump is negative", func() {
			_, err := derived.ApproachDelta(-1, 20, derived.ApproachOptions{})
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
			So(measure.FieldOf(err), ShouldEqual, "approachJump")

			_, err = derived.ApproachDelta(30, -2, derived.ApproachOptions{})
			So(measure.FieldOf(err), ShouldEqual, "standingJump")
		})
	})
}

func TestFatigueAdjusted(t *testing.T) {
	Convey("Given a 30in base jump", t, func() {
		Convey("When fully fresh", func() {
			res, err := derived.FatigueAdjusted(30, derived.FatigueOptions{Rate: 0.3, Level: 0})
			So(err, ShouldBeNil)
			So(res.AdjustedJump, ShouldEqual, 30)
			So(res.RetainedPercent, ShouldEqual, 100)
		})

		Convey("When half fatigued", func() {
			res, err := derived.FatigueAdjusted(30, derived.FatigueOptions{Rate: 0.3, Level: 0.5})

			Convey("Then it applies base × (1 - rate × level)", func() {
				So(err, ShouldBeNil)
				So(res.AdjustedJump, ShouldAlmostEqual, 30*(1-0.15), 1e-9)
				So(res.Loss, ShouldAlmostEqual, 4.5, 1e-9)
			})
		})

		Convey("When rate and level are both 1", func() {
			res, err := derived.FatigueAdjusted(30, derived.FatigueOptions{Rate: 1, Level: 1})
			So(err, ShouldBeNil)
			So(res.AdjustedJump, ShouldEqual, 0)
		})

		Convey("When options are outside [0, 1]", func() {
			_, err := derived.FatigueAdjusted(30, derived.FatigueOptions{Rate: 1.2, Level: 0.5})
			So(measure.FieldOf(err), ShouldEqual, "fatigueRate")

			_, err = derived.FatigueAdjusted(30, derived.FatigueOptions{Rate: 0.3, Level: -0.1})
			So(measure.FieldOf(err), ShouldEqual, "fatigueLevel")

			_, err = derived.FatigueAdjusted(30, derived.FatigueOptions{Rate: math.NaN(), Level: 0.1})
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})
	})
}

func TestFatigueCurve(t *testing.T) {
	Convey("Given a fatigue curve over four steps", t, func() {
		curve, err := derived.FatigueCurve(40, 0.25, 4)

		Convey("Then it has one point per step plus the fresh point", func() {
			So(err, ShouldBeNil)
			So(len(curve), ShouldEqual, 5)
			So(curve[0].AdjustedJump, ShouldEqual, 40)
			So(curve[4].Level, ShouldEqual, 1)
			So(curve[4].AdjustedJump, ShouldAlmostEqual, 30, 1e-9)
		})

		Convey("Then it never increases", func() {
			for i := 1; i < len(curve); i++ {
				So(curve[i].AdjustedJump, ShouldBeLessThanOrEqualTo, curve[i-1].AdjustedJump)
			}
		})
	})

	Convey("Given zero steps", t, func() {
		_, err := derived.FatigueCurve(40, 0.25, 0)
		So(measure.FieldOf(err), ShouldEqual, "curveSteps")
	})

	Convey("Given more steps than the curve allows", t, func() {
		curve, err := derived.FatigueCurve(40, 0.25, derived.MaxCurveSteps+1)
		So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		So(measure.FieldOf(err), ShouldEqual, "curveSteps")
		So(curve, ShouldBeNil)
	})
}

func TestMaxPotential(t *testing.T) {
	Convey("Given a 24in current jump", t, func() {
		Convey("When the multiplier is 1.2", func() {
			res, err := derived.MaxPotential(24, derived.PotentialOptions{Multiplier: 1.2})

			Convey("Then the projection is uncapped", func() {
				So(err, ShouldBeNil)
				So(res.ProjectedJump, ShouldAlmostEqual, 28.8, 1e-9)
				So(res.Gain, ShouldAlmostEqual, 4.8, 1e-9)
				So(res.Capped, ShouldBeFalse)
			})
		})

		Convey("When the multiplier is 1.0", func() {
			res, err := derived.MaxPotential(24, derived.PotentialOptions{Multiplier: 1})
			So(err, ShouldBeNil)
			So(res.ProjectedJump, ShouldEqual, 24)
		})

		Convey("When the multiplier is out of bounds", func() {
			_, err := derived.MaxPotential(24, derived.PotentialOptions{Multiplier: 1.5})
			So(measure.FieldOf(err), ShouldEqual, "multiplier")

			_, err = derived.MaxPotential(24, derived.PotentialOptions{Multiplier: 0.9})
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})
	})

	Convey("Given a 50in current jump at the maximum multiplier", t, func() {
		res, err := derived.MaxPotential(50, derived.PotentialOptions{Multiplier: 1.3})

		Convey("Then the gain is capped at 12in", func() {
			So(err, ShouldBeNil)
			So(res.Gain, ShouldEqual, 12)
			So(res.ProjectedJump, ShouldEqual, 62)
			So(res.Capped, ShouldBeTrue)
		})
	})

	Convey("Given a custom cap", t, func() {
		res, err := derived.MaxPotential(30, derived.PotentialOptions{Multiplier: 1.3, MaxGainInches: 5})
		So(err, ShouldBeNil)
		So(res.ProjectedJump, ShouldEqual, 35)
	})

	Convey("Given any baseline the gain never exceeds the cap", t, func() {
		for v := 0.0; v <= 80; v += 5 {
			res, err := derived.MaxPotential(v, derived.PotentialOptions{Multiplier: 1.3})
			So(err, ShouldBeNil)
			So(res.Gain, ShouldBeLessThanOrEqualTo, derived.DefaultMaxGainInches)
		}
	})
}

func TestTrainabilityMultiplier(t *testing.T) {
	Convey("Given development scores", t, func() {
		So(derived.TrainabilityMultiplier(0, 0, 1.3), ShouldAlmostEqual, 1.3, 1e-12)
		So(derived.TrainabilityMultiplier(1, 1, 1.3), ShouldEqual, 1)
		So(derived.TrainabilityMultiplier(0.5, 0.5, 1.3), ShouldAlmostEqual, 1.15, 1e-12)

		Convey("Then out of range scores are clamped", func() {
			So(derived.TrainabilityMultiplier(-3, 7, 1.3), ShouldAlmostEqual, 1.15, 1e-12)
		})

		Convey("Then an invalid ceiling falls back to the default", func() {
			So(derived.TrainabilityMultiplier(0, 0, 0.5), ShouldAlmostEqual, derived.DefaultMaxTrainabilityMultiplier, 1e-12)
		})
	})
}

func TestIdealWeightAdjusted(t *testing.T) {
	Convey("Given a 70in athlete", t, func() {
		height := measure.Inch(70)
		band := anthro.IdealWeightBand(height)

		Convey("When the weight is inside the ideal band", func() {
			res := derived.IdealWeightAdjusted(30, height, measure.Pound(160), derived.WeightOptions{})

			So(res.Status, ShouldEqual, derived.IdealWeight)
			So(res.AdjustedJump, ShouldEqual, 30)
			So(res.Adjustment, ShouldEqual, 0)
		})

		Convey("When 20lb above the band", func() {
			res := derived.IdealWeightAdjusted(30, height, measure.Pound(band.High.Value+20), derived.WeightOptions{})

			Convey("Then 0.1in per pound is deducted", func() {
				So(res.Status, ShouldEqual, derived.Overweight)
				So(res.DeviationLbs, ShouldAlmostEqual, 20, 1e-9)
				So(res.AdjustedJump, ShouldAlmostEqual, 28, 1e-9)
				So(res.RecoverableInches, ShouldAlmostEqual, 2, 1e-9)
			})
		})

		Convey("When 10lb below the band", func() {
			res := derived.IdealWeightAdjusted(30, height, measure.Pound(band.Low.Value-10), derived.WeightOptions{})

			So(res.Status, ShouldEqual, derived.Underweight)
			So(res.AdjustedJump, ShouldAlmostEqual, 29.5, 1e-9)
		})

		Convey("When reaching the band from either side", func() {
			for _, side := range []struct {
				name   string
				weight float64
			}{
				{"above", band.High.Value + 15},
				{"below", band.Low.Value - 15},
			} {
				res := derived.IdealWeightAdjusted(30, height, measure.Pound(side.weight), derived.WeightOptions{})

				Convey("Then the bonus from "+side.name+" restores the at-ideal jump", func() {
					So(res.Adjustment, ShouldBeLessThan, 0)
					So(res.RecoverableInches, ShouldAlmostEqual, -res.Adjustment, 1e-9)
					So(res.AdjustedJump+res.RecoverableInches, ShouldAlmostEqual, 30, 1e-9)
				})
			}
		})

		Convey("When the penalty exceeds the jump", func() {
			res := derived.IdealWeightAdjusted(5, height, measure.Pound(band.High.Value+200), derived.WeightOptions{})

			Convey("Then the jump is clamped at zero", func() {
				So(res.AdjustedJump, ShouldEqual, 0)
				So(res.RecoverableInches, ShouldEqual, 5)
			})
		})

		Convey("When penalties and BMI band are customised", func() {
			opts := derived.WeightOptions{
				Estimator:              anthro.NewEstimator(anthro.WithIdealBMIRange(18, 22)),
				OverweightPenaltyPerLb: 0.2,
			}
			res := derived.IdealWeightAdjusted(30, height, measure.Pound(22*4900/703.0+10), opts)

			So(res.AdjustedJump, ShouldAlmostEqual, 28, 1e-9)
		})
	})
}
