package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/okian/dunkcalc/internal/config"
	"github.com/okian/dunkcalc/internal/domain/classify"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.ReachRatio, convey.ShouldEqual, 1.33)
				convey.So(cfg.TierThresholds, convey.ShouldResemble, []float64{32, 36, 40, 46})
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DUNK_ADDR", ":8080")
			_ = os.Setenv("DUNK_REACH_RATIO", "1.35")
			_ = os.Setenv("DUNK_RIM_HEIGHT_IN", "114")
			_ = os.Setenv("DUNK_CLEARANCE_MARGIN_IN", "4")
			_ = os.Setenv("DUNK_TIER_THRESHOLDS", "30,34,38,44")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ReachRatio, convey.ShouldEqual, 1.35)
				convey.So(cfg.RimHeightInches, convey.ShouldEqual, 114)
				convey.So(cfg.ClearanceMarginInches, convey.ShouldEqual, 4)

				th, err := cfg.Thresholds()
				convey.So(err, convey.ShouldBeNil)
				convey.So(th, convey.ShouldResemble, classify.Thresholds{30, 34, 38, 44})
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_format: json
rim_height_in: 108
fatigue_rate: 0.25
dunk_styles:
  - name: Alley-Oop
    category: finesse
    min_vertical_in: 30
    max_vertical_in: 40
  - name: Two-Hand Dunk
    category: power
    min_vertical_in: 24
    max_vertical_in: 36
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DUNK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.RimHeightInches, convey.ShouldEqual, 108)
				convey.So(cfg.FatigueRate, convey.ShouldEqual, 0.25)
				convey.So(cfg.ClearanceMarginInches, convey.ShouldEqual, 6) // From defaults
			})

			convey.Convey("And the catalog override should be converted", func() {
				styles, err := cfg.Catalog()
				convey.So(err, convey.ShouldBeNil)
				convey.So(len(styles), convey.ShouldEqual, 2)
				convey.So(styles[0].Name, convey.ShouldEqual, "Alley-Oop")
				convey.So(styles[0].Category, convey.ShouldEqual, classify.Finesse)
				convey.So(styles[1].MaxVerticalJumpInches, convey.ShouldEqual, 36)
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
reach_ratio: 1.31
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DUNK_CONFIG", tmpFile)
			_ = os.Setenv("DUNK_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")   // Overridden by env
				convey.So(cfg.ReachRatio, convey.ShouldEqual, 1.31) // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DUNK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("DUNK_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("DUNK_REACH_RATIO", "tall")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}

func TestConfigValidation(t *testing.T) {
	convey.Convey("Given config values the engine cannot use", t, func() {
		ctx := context.Background()
		cases := map[string]string{
			"DUNK_ADDR":                     "",
			"DUNK_REACH_RATIO":              "0",
			"DUNK_RIM_HEIGHT_IN":            "-10",
			"DUNK_CLEARANCE_MARGIN_IN":      "-1",
			"DUNK_FATIGUE_RATE":             "1.5",
			"DUNK_POTENTIAL_MAX_MULTIPLIER": "0.8",
			"DUNK_IDEAL_BMI_LOW":            "30",
			"DUNK_TIER_THRESHOLDS":          "32,30,40,46",
		}
		for key, value := range cases {
			convey.Convey("When "+key+" is "+value, func() {
				clearConfigEnvVars()
				_ = os.Setenv(key, value)
				defer clearConfigEnvVars()

				cfg, err := config.Load(ctx)

				convey.Convey("Then loading fails with ErrInvalidConfig", func() {
					convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
					convey.So(cfg, convey.ShouldBeNil)
				})
			})
		}

		convey.Convey("When the threshold list is too short", func() {
			clearConfigEnvVars()
			_ = os.Setenv("DUNK_TIER_THRESHOLDS", "32,36")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)
			convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When a configured style has an unknown category", func() {
			cfg := config.New()
			cfg.DunkStyles = []config.StyleConfig{{Name: "Eastbay", Category: "flashy", MinVerticalJumpInches: 40, MaxVerticalJumpInches: 50}}

			convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}

// Helper functions

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "dunkcalc-config-*.yaml")
	if err != nil {
		panic(err)
	}
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"DUNK_CONFIG", "DUNK_ADDR", "DUNK_LOG_LEVEL", "DUNK_LOG_FORMAT",
		"DUNK_REACH_RATIO", "DUNK_RIM_HEIGHT_IN", "DUNK_CLEARANCE_MARGIN_IN",
		"DUNK_TIER_THRESHOLDS", "DUNK_FATIGUE_RATE", "DUNK_POTENTIAL_MAX_MULTIPLIER",
		"DUNK_POTENTIAL_MAX_GAIN_IN", "DUNK_IDEAL_BMI_LOW", "DUNK_IDEAL_BMI_HIGH",
		"DUNK_WEIGHT_PENALTY_PER_LB", "DUNK_UNDERWEIGHT_PENALTY_PER_LB",
	} {
		_ = os.Unsetenv(key)
	}
}
