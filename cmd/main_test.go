package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"

	app "github.com/okian/tradecalc/internal/app"
	"github.com/okian/tradecalc/internal/config"
	"github.com/okian/tradecalc/pkg/logger"
	"github.com/okian/tradecalc/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("TRADECALC_ADDR", ":8080")
			_ = os.Setenv("TRADECALC_SESSION_CAPACITY", "50")
			defer func() {
				_ = os.Unsetenv("TRADECALC_ADDR")
				_ = os.Unsetenv("TRADECALC_SESSION_CAPACITY")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SessionCapacity, convey.ShouldEqual, 50)
			})
		})

		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("TRADECALC_LOG_FORMAT", "xml")
			defer func() { _ = os.Unsetenv("TRADECALC_LOG_FORMAT") }()

			convey.Convey("Then run refuses to start", func() {
				convey.So(run(context.Background()), convey.ShouldNotBeNil)
			})
		})
	})
}

func TestNewHandler(t *testing.T) {
	convey.Convey("Given the assembled handler", t, func() {
		ctx := context.Background()
		svc := app.New()
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()
		h, err := newHandler(ctx, config.New(ctx), svc)
		convey.So(err, convey.ShouldBeNil)

		get := func(path string) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
			return w
		}

		convey.Convey("Then the site, docs and API are all routed", func() {
			for _, path := range []string{"/", "/iframe-height.js", "/api-docs", "/openapi.yaml", "/healthz", "/stats", "/api/v1/catalog"} {
				convey.So(get(path).Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("Then a salary estimate flows through the service", func() {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/salary", strings.NewReader(`{"trade":"Plumber","state":"Ohio"}`))
			h.ServeHTTP(w, req)
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, `"cost_of_living":"/api/v1/cost-of-living?income=`)
		})

		convey.Convey("Then unknown paths are not found", func() {
			convey.So(get("/nope").Code, convey.ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestMetricsUpdater(t *testing.T) {
	convey.Convey("Given a started service", t, func() {
		svc := app.New()
		convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
		defer svc.Stop()

		convey.Convey("When GC pauses are recorded", func() {
			var g gcPauses
			runtime.GC()
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			convey.Convey("Then each collection is counted once", func() {
				convey.So(func() { g.record(&m) }, convey.ShouldNotPanic)
				convey.So(g.seen, convey.ShouldEqual, m.NumGC)
				g.record(&m)
				convey.So(g.seen, convey.ShouldEqual, m.NumGC)
				convey.So(metrics.GetRegistry(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the updater runs until cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				startMetricsUpdater(ctx, time.Millisecond, svc)
				close(done)
			}()
			time.Sleep(5 * time.Millisecond)
			cancel()

			convey.Convey("Then it returns", func() {
				select {
				case <-done:
					convey.So(true, convey.ShouldBeTrue)
				case <-time.After(time.Second):
					convey.So("updater did not stop", convey.ShouldBeEmpty)
				}
			})
		})
	})
}
