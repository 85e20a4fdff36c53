package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given a text logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithOutput(&buf)), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging at info", func() {
			Get().Info(ctx, "salary estimated", String("trade", "Welder"), Float64("annual", 52000))

			Convey("Then the line carries the fields and the caller", func() {
				line := buf.String()
				So(line, ShouldContainSubstring, "msg=\"salary estimated\"")
				So(line, ShouldContainSubstring, "trade=Welder")
				So(line, ShouldContainSubstring, "source=")
				So(line, ShouldContainSubstring, "logger_test.go")
			})
		})

		Convey("When logging debug at the default level", func() {
			Get().Debug(ctx, "hidden")

			Convey("Then nothing is written", func() {
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the level is lowered to debug", func() {
			So(SetLevelString("DEBUG"), ShouldBeNil)
			Get().Debug(ctx, "visible")

			Convey("Then debug lines are written", func() {
				So(buf.String(), ShouldContainSubstring, "visible")
			})
		})

		Convey("When the level is raised to error", func() {
			So(SetLevelString("error"), ShouldBeNil)
			Get().Warn(ctx, "dropped")
			Get().Error(ctx, "kept", Error(errors.New("boom")))

			Convey("Then only errors are written", func() {
				So(buf.String(), ShouldNotContainSubstring, "dropped")
				So(buf.String(), ShouldContainSubstring, "error=boom")
			})
		})

		Convey("When an unknown level is set", func() {
			Convey("Then it is rejected", func() {
				So(SetLevelString("loud"), ShouldNotBeNil)
				So(SetLevelString(" warning "), ShouldBeNil)
				So(SetLevelString(""), ShouldBeNil)
			})
		})

		Convey("When using a named logger with bound fields", func() {
			Named("api").With(String("calculator", "travel")).Info(ctx, "compared", Duration("took", time.Millisecond))

			Convey("Then the name and bound fields appear", func() {
				So(buf.String(), ShouldContainSubstring, "logger=api")
				So(buf.String(), ShouldContainSubstring, "calculator=travel")
			})
		})

		Convey("Then Sync is a no-op", func() {
			So(Sync(), ShouldBeNil)
		})
	})
}

func TestLoggerJSON(t *testing.T) {
	Convey("Given a json logger", t, func() {
		var buf bytes.Buffer
		So(Init(WithOutput(&buf), WithFormat("JSON")), ShouldBeNil)

		Get().Info(context.Background(), "quiz submitted", Int("score", 14), Bool("fallback", false))

		Convey("Then each line is a json object", func() {
			var rec map[string]any
			So(json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &rec), ShouldBeNil)
			So(rec["msg"], ShouldEqual, "quiz submitted")
			So(rec["score"], ShouldEqual, 14.0)
			So(rec["fallback"], ShouldEqual, false)
		})
	})
}

func TestGetBeforeInit(t *testing.T) {
	Convey("Given no global logger", t, func() {
		prev := global
		global = nil
		Reset(func() { global = prev })

		Convey("Then Get panics", func() {
			So(func() { Get() }, ShouldPanic)
		})
	})
}

func TestContextFields(t *testing.T) {
	Convey("Given a logger and a context carrying fields", t, func() {
		var buf bytes.Buffer
		So(Init(WithOutput(&buf), WithLevel("debug")), ShouldBeNil)
		Reset(func() { SetLevel(slog.LevelInfo) })

		ctx := ContextWith(context.Background(), String("endpoint", "salary"))
		ctx = ContextWith(ctx, String("method", "POST"))

		Convey("When logging with that context", func() {
			Get().Debug(ctx, "calculated")

			Convey("Then the context fields follow the call fields", func() {
				line := buf.String()
				So(line, ShouldContainSubstring, "endpoint=salary method=POST")
				So(FieldsFrom(ctx), ShouldHaveLength, 2)
			})
		})

		Convey("When no fields are added", func() {
			Convey("Then the context is returned unchanged", func() {
				base := context.Background()
				So(ContextWith(base) == base, ShouldBeTrue)
				So(FieldsFrom(base), ShouldBeEmpty)
			})
		})
	})
}

func TestParseLevel(t *testing.T) {
	Convey("Given level names", t, func() {
		Convey("Then known names map to slog levels", func() {
			for name, want := range map[string]slog.Level{
				"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "": slog.LevelInfo,
				"warning": slog.LevelWarn, "Error": slog.LevelError,
			} {
				got, err := ParseLevel(name)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, want)
			}
		})

		Convey("Then unknown names wrap ErrUnknownLevel", func() {
			_, err := ParseLevel("verbose")
			So(errors.Is(err, ErrUnknownLevel), ShouldBeTrue)
		})
	})
}
