package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"

	app "github.com/okian/dunkcalc/internal/app"
	"github.com/okian/dunkcalc/internal/config"
	"github.com/okian/dunkcalc/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("DUNK_ADDR", ":8080")
			_ = os.Setenv("DUNK_RIM_HEIGHT_IN", "108")
			defer func() {
				_ = os.Unsetenv("DUNK_ADDR")
				_ = os.Unsetenv("DUNK_RIM_HEIGHT_IN")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.RimHeightInches, convey.ShouldEqual, 108)

				convey.Convey("And the service should build from it", func() {
					svc, err := app.NewFromConfig(cfg)
					convey.So(err, convey.ShouldBeNil)
					convey.So(svc, convey.ShouldNotBeNil)
				})
			})
		})

		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("DUNK_REACH_RATIO", "0")
			defer func() { _ = os.Unsetenv("DUNK_REACH_RATIO") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the assembled HTTP handler", t, func() {
		ctx := context.Background()
		h := newHandler(ctx, app.New())

		convey.Convey("When requesting a dunk requirement", func() {
			req := httptest.NewRequest(http.MethodPost, "/v1/dunk/requirement",
				strings.NewReader(`{"height":{"value":67},"standing_reach":{"value":88},"vertical_jump":{"value":40}}`))
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			convey.Convey("Then the calculator answers with a request id", func() {
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, `"feasible":"feasible"`)
				convey.So(w.Header().Get("X-Request-ID"), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When requesting the API docs", func() {
			for _, path := range []string{"/api-docs", "/openapi.yaml", "/healthz", "/stats"} {
				req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
				w := httptest.NewRecorder()
				h.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}

func TestServe(t *testing.T) {
	convey.Convey("Given a server configuration", t, func() {
		cfg := config.New()
		cfg.Addr = "127.0.0.1:0"

		convey.Convey("When the engine configuration is invalid", func() {
			cfg.ReachRatio = 0

			convey.Convey("Then serve fails before listening", func() {
				err := serve(context.Background(), cfg)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the address is already taken", func() {
			ln, err := net.Listen("tcp", "127.0.0.1:0")
			convey.So(err, convey.ShouldBeNil)
			defer func() { _ = ln.Close() }()
			cfg.Addr = ln.Addr().String()

			convey.Convey("Then serve reports the listener failure", func() {
				err := serve(context.Background(), cfg)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "http server")
			})
		})

		convey.Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then serve shuts down cleanly", func() {
				convey.So(serve(ctx, cfg), convey.ShouldBeNil)
			})
		})
	})
}
