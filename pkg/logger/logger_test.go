package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	Convey("Given the global logger", t, func() {
		Convey("When initialized with defaults", func() {
			err := Init()

			Convey("Then Get should return a logger", func() {
				So(err, ShouldBeNil)
				So(Get(), ShouldNotBeNil)
				So(Sync(), ShouldBeNil)
			})
		})

		Convey("When initialized with an unknown format", func() {
			err := Init(WithFormat("xml"))

			Convey("Then it should fail", func() {
				So(err, ShouldWrap, ErrUnknownFormat)
			})
		})
	})
}

func TestLoggerJSONOutput(t *testing.T) {
	Convey("Given a JSON logger writing to a buffer", t, func() {
		var buf bytes.Buffer
		So(Init(WithFormat("JSON"), WithWriter(&buf)), ShouldBeNil)
		ctx := context.Background()

		Convey("When logging with fields", func() {
			Get().Info(ctx, "board built", Int("players", 6), Bool("cached", true))

			Convey("Then the record should carry every field and the source", func() {
				var rec map[string]any
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				So(rec["msg"], ShouldEqual, "board built")
				So(rec["players"], ShouldEqual, 6.0)
				So(rec["cached"], ShouldEqual, true)
				So(rec["source"], ShouldContainSubstring, "logger_test.go:")
			})
		})

		Convey("When the level is raised to warn", func() {
			So(SetLevelString("warning"), ShouldBeNil)
			Get().Info(ctx, "dropped")
			Get().Debug(ctx, "dropped")

			Convey("Then info and debug records are suppressed", func() {
				So(buf.Len(), ShouldEqual, 0)
			})
		})

		Convey("When a named logger is used", func() {
			Named("app").Warn(ctx, "grouped", String("k", "v"))

			Convey("Then fields should be nested under the name", func() {
				var rec map[string]any
				So(json.Unmarshal(buf.Bytes(), &rec), ShouldBeNil)
				group, ok := rec["app"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(group["k"], ShouldEqual, "v")
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given level strings", t, func() {
		So(Init(WithWriter(&bytes.Buffer{})), ShouldBeNil)

		Convey("Then known levels parse", func() {
			for _, level := range []string{"debug", "INFO", "", " warn ", "error"} {
				So(SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("Then unknown levels fail", func() {
			So(SetLevelString("verbose"), ShouldWrap, ErrUnknownLevel)
		})
	})
}
