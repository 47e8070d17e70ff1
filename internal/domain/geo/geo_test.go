package geo_test

import (
	"testing"

	"github.com/adenchik/leadboard/internal/domain/geo"
	"github.com/smartystreets/goconvey/convey"
)

func TestCountryName(t *testing.T) {
	convey.Convey("Given the country reference table", t, func() {
		convey.Convey("When resolving known alpha-2 codes", func() {
			convey.So(geo.Name("SE"), convey.ShouldEqual, "Sweden")
			convey.So(geo.Name("US"), convey.ShouldEqual, "United States")
			convey.So(geo.Name("DE"), convey.ShouldEqual, "Germany")
		})

		convey.Convey("When the code uses lower case or padding", func() {
			convey.So(geo.Name("se"), convey.ShouldEqual, "Sweden")
			convey.So(geo.Name(" us "), convey.ShouldEqual, "United States")
		})

		convey.Convey("When the code is not in the table", func() {
			convey.So(geo.Name("XX"), convey.ShouldEqual, geo.Unknown)
			convey.So(geo.Name(""), convey.ShouldEqual, geo.Unknown)
		})
	})
}
