package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	convey.Convey("Given the embedded viewer", t, func() {
		ctx := context.Background()
		mux := http.NewServeMux()

		convey.Convey("When registering the site handler", func() {
			Register(ctx, mux)

			convey.Convey("Then it serves the viewer page at /", func() {
				req := httptest.NewRequest("GET", "/", http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Header().Get("Content-Type"), convey.ShouldContainSubstring, "text/html")
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "/api/leaderboard")
			})

			convey.Convey("Then unknown assets return 404", func() {
				req := httptest.NewRequest("GET", "/missing.js", http.NoBody)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)

				convey.So(w.Code, convey.ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestSiteHandlerWithNilMux(t *testing.T) {
	convey.Convey("Given a nil mux", t, func() {
		convey.Convey("When registering the site handler", func() {
			convey.Convey("Then it should panic", func() {
				convey.So(func() {
					Register(context.Background(), nil)
				}, convey.ShouldPanic)
			})
		})
	})
}
