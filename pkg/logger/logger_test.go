package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestLoggerInitialization(t *testing.T) {
	convey.Convey("Given the global logger", t, func() {
		convey.Convey("When initialized", func() {
			err := Init()

			convey.Convey("Then it should be available via Get", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(Get(), convey.ShouldNotBeNil)
			})

			convey.Convey("And logging at every level should not panic", func() {
				ctx := context.Background()
				log := Get()
				convey.So(func() {
					log.Debug(ctx, "debug message")
					log.Info(ctx, "info message", String("key", "value"))
					log.Warn(ctx, "warn message", Int("count", 3))
					log.Error(ctx, "error message", Error(errors.New("boom")))
				}, convey.ShouldNotPanic)
			})

			convey.Convey("And Named should return a child logger", func() {
				named := Named("component")
				convey.So(named, convey.ShouldNotBeNil)
				convey.So(func() {
					named.Info(context.Background(), "from child")
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	convey.Convey("Given the field constructors", t, func() {
		convey.So(String("k", "v"), convey.ShouldResemble, Field{Key: "k", Value: "v"})
		convey.So(Int("n", 7), convey.ShouldResemble, Field{Key: "n", Value: 7})
		convey.So(Int64("n64", int64(9)), convey.ShouldResemble, Field{Key: "n64", Value: int64(9)})
		convey.So(Duration("d", 2*time.Second), convey.ShouldResemble, Field{Key: "d", Value: "2s"})
		convey.So(Any("a", []int{1}), convey.ShouldResemble, Field{Key: "a", Value: []int{1}})

		err := errors.New("bad")
		convey.So(Error(err).Key, convey.ShouldEqual, "error")
		convey.So(Error(err).Value, convey.ShouldEqual, err)
	})
}

func TestLogLevels(t *testing.T) {
	convey.Convey("Given an initialized logger", t, func() {
		convey.So(Init(), convey.ShouldBeNil)

		convey.Convey("When setting levels by string", func() {
			for _, lvl := range []string{"debug", "info", "warn", "warning", "error", "INFO", ""} {
				convey.So(SetLevelString(lvl), convey.ShouldBeNil)
			}
		})

		convey.Convey("When setting an unknown level", func() {
			convey.So(SetLevelString("verbose"), convey.ShouldNotBeNil)
		})

		convey.Convey("When setting a level directly", func() {
			convey.So(func() { SetLevel(slog.LevelWarn) }, convey.ShouldNotPanic)
		})
	})
}

func TestNopLogger(t *testing.T) {
	convey.Convey("Given the nop logger", t, func() {
		log := Nop()
		ctx := context.Background()

		convey.Convey("Then it discards everything without panicking", func() {
			convey.So(func() {
				log.Debug(ctx, "x")
				log.Info(ctx, "x", String("k", "v"))
				log.Warn(ctx, "x")
				log.Error(ctx, "x")
			}, convey.ShouldNotPanic)
		})

		convey.Convey("Then Named returns a nop logger too", func() {
			convey.So(func() {
				log.Named("child").Info(ctx, "x")
			}, convey.ShouldNotPanic)
		})
	})
}
