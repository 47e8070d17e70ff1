package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/adenchik/leadboard/internal/adapters/repository"
	"github.com/adenchik/leadboard/internal/app"
	"github.com/adenchik/leadboard/internal/domain/model"
	"github.com/adenchik/leadboard/internal/domain/region"
	"github.com/smartystreets/goconvey/convey"
)

// fakeStore returns canned data without a database.
type fakeStore struct {
	players   []model.Player
	countries []string
	meta      model.Meta
	err       error
}

func (s *fakeStore) ReplaceRegion(context.Context, region.Region, []model.Player) error {
	return s.err
}

func (s *fakeStore) UpsertMetadata(context.Context, string, int64) error { return s.err }

func (s *fakeStore) Metadata(context.Context) (model.Meta, error) { return s.meta, s.err }

func (s *fakeStore) FindPlayers(context.Context, region.Region, repository.Filter) ([]model.Player, error) {
	return s.players, s.err
}

func (s *fakeStore) DistinctCountries(context.Context, region.Region) ([]string, error) {
	return s.countries, s.err
}

func TestCountries(t *testing.T) {
	convey.Convey("Given stored country codes", t, func() {
		ctx := context.Background()

		convey.Convey("When the codes resolve to names", func() {
			svc := app.New(&fakeStore{countries: []string{"US", "SE"}})

			got, err := svc.Countries(ctx, region.Europe)

			convey.Convey("Then the index is sorted by display name", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldResemble, []model.CountryOption{
					{Code: "SE", Name: "Sweden"},
					{Code: "US", Name: "United States"},
				})
			})
		})

		convey.Convey("When a code is not in the reference table", func() {
			svc := app.New(&fakeStore{countries: []string{"ZZ", "SE"}})

			got, err := svc.Countries(ctx, region.Europe)

			convey.Convey("Then it keeps its Unknown label in sorted position", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldResemble, []model.CountryOption{
					{Code: "SE", Name: "Sweden"},
					{Code: "ZZ", Name: "Unknown"},
				})
			})
		})

		convey.Convey("When the store fails", func() {
			svc := app.New(&fakeStore{err: errors.New("disk error")})

			_, err := svc.Countries(ctx, region.Europe)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestServiceReads(t *testing.T) {
	convey.Convey("Given a service over a fake store", t, func() {
		ctx := context.Background()
		store := &fakeStore{
			players: []model.Player{{Rank: 1, Name: "a"}},
			meta:    model.Meta{TimePosted: 100, NextScheduledPostTime: 200},
		}
		svc := app.New(store)

		convey.Convey("When players are queried", func() {
			got, err := svc.FindPlayers(ctx, region.Europe, repository.Filter{})
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldHaveLength, 1)
		})

		convey.Convey("When metadata is read", func() {
			m, err := svc.Metadata(ctx)
			convey.So(err, convey.ShouldBeNil)
			convey.So(m.TimePosted, convey.ShouldEqual, 100)
			convey.So(m.NextScheduledPostTime, convey.ShouldEqual, 200)
		})

		convey.Convey("When regions are listed", func() {
			convey.So(svc.Regions(), convey.ShouldResemble, region.All())
		})
	})
}
