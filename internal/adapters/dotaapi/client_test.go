package dotaapi_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adenchik/leadboard/internal/adapters/dotaapi"
	"github.com/smartystreets/goconvey/convey"
)

func TestDivisionLeaderboard(t *testing.T) {
	convey.Convey("Given an upstream API", t, func() {
		var gotQuery map[string]string

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = map[string]string{
				"division":    r.URL.Query().Get("division"),
				"leaderboard": r.URL.Query().Get("leaderboard"),
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"leaderboard": [
					{"name": "Miracle", "team_id": 42, "team_tag": "NGX", "country": "jo"},
					{"name": "Topson", "country": "fi"},
					{"name": "NoFlag"}
				],
				"time_posted": 1700000000,
				"next_scheduled_post_time": 1700003600
			}`))
		}))
		defer srv.Close()

		client := dotaapi.New(dotaapi.WithBaseURL(srv.URL))

		convey.Convey("When fetching a division", func() {
			d, err := client.DivisionLeaderboard(context.Background(), "europe", 0)

			convey.Convey("Then request parameters are forwarded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(gotQuery["division"], convey.ShouldEqual, "europe")
				convey.So(gotQuery["leaderboard"], convey.ShouldEqual, "0")
			})

			convey.Convey("Then entries keep server order and optional fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(d.Entries, convey.ShouldHaveLength, 3)
				convey.So(d.Entries[0].Name, convey.ShouldEqual, "Miracle")
				convey.So(*d.Entries[0].TeamID, convey.ShouldEqual, 42)
				convey.So(*d.Entries[0].TeamTag, convey.ShouldEqual, "NGX")
				convey.So(d.Entries[1].TeamID, convey.ShouldBeNil)
				convey.So(*d.Entries[1].Country, convey.ShouldEqual, "fi")
				convey.So(d.Entries[2].Country, convey.ShouldBeNil)
			})

			convey.Convey("Then schedule timestamps are decoded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(d.TimePosted, convey.ShouldEqual, 1700000000)
				convey.So(d.NextScheduledPostTime, convey.ShouldEqual, 1700003600)
			})
		})
	})
}

func TestDivisionLeaderboardErrors(t *testing.T) {
	convey.Convey("Given an upstream that fails", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "kaboom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := dotaapi.New(dotaapi.WithBaseURL(srv.URL))

		convey.Convey("When fetching a division", func() {
			_, err := client.DivisionLeaderboard(context.Background(), "europe", 0)

			convey.Convey("Then the status and body surface as an APIError", func() {
				convey.So(err, convey.ShouldNotBeNil)
				var apiErr *dotaapi.APIError
				convey.So(errors.As(err, &apiErr), convey.ShouldBeTrue)
				convey.So(apiErr.Status, convey.ShouldEqual, http.StatusInternalServerError)
				convey.So(apiErr.Body, convey.ShouldEqual, "kaboom")
			})
		})

		convey.Convey("When the context is already cancelled", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := client.DivisionLeaderboard(ctx, "europe", 0)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
