package config_test

import (
	"errors"
	"testing"

	"github.com/okian/draftboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.SnapshotPath, convey.ShouldEqual, "data/snapshot.json")
			convey.So(cfg.AnnotationBackend, convey.ShouldEqual, config.BackendMemory)
			convey.So(cfg.TopN, convey.ShouldEqual, 10)
			convey.So(cfg.MetricsIntervalMS, convey.ShouldEqual, 5000)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a valid config", t, func() {
		cfg := config.New()

		convey.Convey("When the redis backend has no url", func() {
			cfg.AnnotationBackend = config.BackendRedis

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldWrap, config.ErrInvalidConfig)
			})
		})

		convey.Convey("When the redis backend has a url", func() {
			cfg.AnnotationBackend = config.BackendRedis
			cfg.RedisURL = "redis://localhost:6379/0"

			convey.Convey("Then validation should pass", func() {
				convey.So(cfg.Validate(), convey.ShouldBeNil)
			})
		})

		convey.Convey("When individual fields are out of range", func() {
			cases := []func(*config.Config){
				func(c *config.Config) { c.Addr = "" },
				func(c *config.Config) { c.SnapshotPath = "" },
				func(c *config.Config) { c.LogFormat = "xml" },
				func(c *config.Config) { c.AnnotationBackend = "sqlite" },
				func(c *config.Config) { c.TopN = 0 },
				func(c *config.Config) { c.MetricsIntervalMS = -1 },
			}

			convey.Convey("Then each should be rejected", func() {
				for _, mutate := range cases {
					c := config.New()
					mutate(c)
					convey.So(c.Validate(), convey.ShouldWrap, config.ErrInvalidConfig)
				}
			})
		})

		convey.Convey("When the backend is unknown", func() {
			cfg.AnnotationBackend = "sqlite"

			convey.Convey("Then the error should name the backend", func() {
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrUnknownBackend), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "sqlite")
			})
		})
	})
}
