package measure_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/okian/dunkcalc/internal/domain/measure"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given length inputs in supported units", t, func() {
		Convey("When normalizing inches", func() {
			m, err := measure.Normalize(67, measure.Inches)

			Convey("Then the value is unchanged", func() {
				So(err, ShouldBeNil)
				So(m.Value, ShouldEqual, 67)
				So(m.Unit, ShouldEqual, measure.Inches)
				So(m.Estimated, ShouldBeFalse)
			})
		})

		Convey("When normalizing centimeters", func() {
			m, err := measure.Normalize(180, measure.Centimeters)

			Convey("Then it converts with the 0.393701 factor", func() {
				So(err, ShouldBeNil)
				So(m.Value, ShouldAlmostEqual, 180*0.393701, 1e-12)
				So(m.Unit, ShouldEqual, measure.Inches)
			})
		})

		Convey("When normalizing decimal feet", func() {
			m, err := measure.Normalize(6.5, measure.FeetInches)

			Convey("Then feet become inches", func() {
				So(err, ShouldBeNil)
				So(m.Value, ShouldEqual, 78)
			})
		})

		Convey("When combining feet and inches", func() {
			m, err := measure.NormalizeFeetInches(5, 7)

			Convey("Then it returns feet*12 + inches", func() {
				So(err, ShouldBeNil)
				So(m.Value, ShouldEqual, 67)
				So(m.FeetAndInches(), ShouldEqual, `5'7"`)
			})
		})
	})

	Convey("Given invalid length inputs", t, func() {
		cases := []struct {
			name  string
			value float64
			unit  measure.Unit
		}{
			{"zero", 0, measure.Inches},
			{"negative", -60, measure.Inches},
			{"NaN", math.NaN(), measure.Centimeters},
			{"infinite", math.Inf(1), measure.Inches},
			{"unknown unit", 60, measure.Unit("furlong")},
			{"weight unit", 60, measure.Pounds},
		}
		for _, tc := range cases {
			Convey("When normalizing a "+tc.name+" input", func() {
				m, err := measure.Normalize(tc.value, tc.unit)

				Convey("Then it fails with InvalidMeasurement and no partial result", func() {
					So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
					So(m, ShouldResemble, measure.Measurement{})
				})
			})
		}

		Convey("When feet and inches are both zero", func() {
			_, err := measure.NormalizeFeetInches(0, 0)
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})

		Convey("When inches are negative", func() {
			_, err := measure.NormalizeFeetInches(6, -1)
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})
	})

	Convey("Given quantities that may be zero", t, func() {
		Convey("When feet and inches are both zero", func() {
			m, err := measure.NormalizeFeetInchesNonNegative(0, 0)
			So(err, ShouldBeNil)
			So(m, ShouldResemble, measure.Inch(0))
		})

		Convey("When inches are negative", func() {
			_, err := measure.NormalizeFeetInchesNonNegative(0, -1)
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})

		Convey("When asking for the zero of each unit", func() {
			m, err := measure.Zero(measure.Centimeters)
			So(err, ShouldBeNil)
			So(m, ShouldResemble, measure.Inch(0))

			m, err = measure.Zero(measure.Kilograms)
			So(err, ShouldBeNil)
			So(m, ShouldResemble, measure.Pound(0))

			_, err = measure.Zero(measure.Unit("furlong"))
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})
	})
}

func TestRequireFinite(t *testing.T) {
	Convey("Given signed values", t, func() {
		So(measure.RequireFinite("gap", -8), ShouldBeNil)
		So(measure.RequireFinite("gap", 0), ShouldBeNil)

		err := measure.RequireFinite("gap", math.Inf(-1))
		So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		So(measure.FieldOf(err), ShouldEqual, "gap")

		So(measure.RequireNonNegative("gap", -8), ShouldNotBeNil)
	})
}

func TestNormalizeRoundTrip(t *testing.T) {
	Convey("Given centimeter values across the human range", t, func() {
		for _, cm := range []float64{0.5, 50, 152.4, 170.18, 203.2, 250} {
			Convey(fmt.Sprintf("When normalizing %gcm twice", cm), func() {
				first, err := measure.Normalize(cm, measure.Centimeters)
				So(err, ShouldBeNil)

				second, err := measure.Normalize(first.Value, measure.Inches)
				So(err, ShouldBeNil)

				Convey("Then the magnitude is kept and converts back within 0.01", func() {
					So(second.Value, ShouldEqual, first.Value)
					So(second.Centimeters(), ShouldAlmostEqual, cm, 0.01)
				})
			})
		}
	})
}

func TestNormalizeWeight(t *testing.T) {
	Convey("Given body weights", t, func() {
		Convey("When the weight is in kilograms", func() {
			m, err := measure.NormalizeWeight(80, measure.Kilograms)

			Convey("Then it converts to pounds", func() {
				So(err, ShouldBeNil)
				So(m.Unit, ShouldEqual, measure.Pounds)
				So(m.Value, ShouldAlmostEqual, 176.3696, 1e-9)
				So(m.Kilograms(), ShouldAlmostEqual, 80, 1e-9)
			})
		})

		Convey("When the unit is a length", func() {
			_, err := measure.NormalizeWeight(80, measure.Inches)
			So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeTrue)
		})
	})
}

func TestFieldError(t *testing.T) {
	Convey("Given a validation error without a field", t, func() {
		_, err := measure.Normalize(-1, measure.Inches)

		Convey("When naming it", func() {
			named := measure.Named("height", err)

			Convey("Then the field is carried in the payload", func() {
				So(measure.FieldOf(named), ShouldEqual, "height")
				So(named.Error(), ShouldContainSubstring, "height")
				So(errors.Is(named, measure.ErrInvalidMeasurement), ShouldBeTrue)
			})

			Convey("And the original error is left untouched", func() {
				So(measure.FieldOf(err), ShouldEqual, "")
			})
		})
	})

	Convey("Given a missing input", t, func() {
		err := measure.Missing("height")

		So(errors.Is(err, measure.ErrMissingRequiredInput), ShouldBeTrue)
		So(errors.Is(err, measure.ErrInvalidMeasurement), ShouldBeFalse)
		So(measure.FieldOf(err), ShouldEqual, "height")
	})

	Convey("Given a foreign error", t, func() {
		err := errors.New("boom")
		So(measure.Named("height", err), ShouldEqual, err)
	})
}

func TestMeasurementFormatting(t *testing.T) {
	Convey("Given a measurement with a long fraction", t, func() {
		m := measure.Measurement{Value: 46.19999999, Unit: measure.Inches, Estimated: true}

		Convey("Then Round only affects the returned copy", func() {
			r := m.Round(1)
			So(r.Value, ShouldEqual, 46.2)
			So(r.Estimated, ShouldBeTrue)
			So(m.Value, ShouldEqual, 46.19999999)
		})

		Convey("Then String marks estimates", func() {
			So(m.String(), ShouldEqual, "46.2 in (estimated)")
		})

		Convey("Then FeetAndInches splits the length", func() {
			So(measure.Inch(79.8).FeetAndInches(), ShouldEqual, `6'7.8"`)
			So(measure.Inch(88).FeetAndInches(), ShouldEqual, `7'4"`)
		})
	})
}
