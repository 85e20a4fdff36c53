package site

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given a site handler", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()

		Convey("When registering the site handler", func() {
			Register(ctx, mux)

			Convey("Then it should serve the landing page at /", func() {
				req := httptest.NewRequest("GET", "/", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "Trade Salary Calculator")
				So(w.Body.String(), ShouldContainSubstring, `src="/iframe-height.js"`)
			})

			Convey("And it should serve embedded assets", func() {
				req := httptest.NewRequest("GET", "/static/style.css", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "iframe-embedded")
			})

			Convey("And it should serve the height reporter", func() {
				req := httptest.NewRequest("GET", "/iframe-height.js", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "application/javascript")
				So(w.Body.String(), ShouldContainSubstring, "type: 'IFRAME_HEIGHT'")
				So(w.Body.String(), ShouldContainSubstring, "ResizeObserver")
				So(w.Body.String(), ShouldContainSubstring, "setTimeout(send, 100)")
			})

			Convey("And it should not handle unknown root paths", func() {
				req := httptest.NewRequest("GET", "/some-asset", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestHeightMessage(t *testing.T) {
	Convey("Given a height message", t, func() {
		msg := HeightMessage{Type: HeightMessageType, Height: 812, Path: "/"}

		Convey("Then its JSON keys are the ones the script posts", func() {
			b, err := json.Marshal(msg)
			So(err, ShouldBeNil)
			So(string(b), ShouldEqual, `{"type":"IFRAME_HEIGHT","height":812,"path":"/"}`)

			script := string(heightScript)
			for _, key := range []string{"type", "height", "path"} {
				So(script, ShouldContainSubstring, key+": ")
			}
		})
	})
}

func TestSiteErrors(t *testing.T) {
	Convey("Given site error constants", t, func() {
		Convey("Then they are distinct", func() {
			So(ErrRender.Error(), ShouldEqual, "site render failed")
			So(ErrServe.Error(), ShouldEqual, "site serve failed")
			So(ErrRender, ShouldNotEqual, ErrServe)
		})
	})
}

func TestSiteHandlerWithNilMux(t *testing.T) {
	Convey("Given a nil mux", t, func() {
		Convey("When registering the site handler", func() {
			Convey("Then it should panic", func() {
				So(func() { Register(context.Background(), nil) }, ShouldPanic)
			})
		})
	})
}
