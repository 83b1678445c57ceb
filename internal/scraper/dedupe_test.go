package scraper

import (
	"testing"

	"github.com/eztv-cli/eztv/source"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDeduplicate(t *testing.T) {
	Convey("Deduplicate", t, func() {
		Convey("The earliest posting of a repost wins", func() {
			newer := &source.Episode{Season: 1, Number: 1, Links: []string{"x"}, MagnetLink: "magnet:new"}
			older := &source.Episode{Season: 1, Number: 1, Links: []string{"y"}, MagnetLink: "magnet:old"}

			result := Deduplicate([]*source.Episode{newer, older})
			So(result, ShouldHaveLength, 1)
			So(result[0].Links, ShouldResemble, []string{"y"})
			So(result[0].MagnetLink, ShouldEqual, "magnet:old")
		})

		Convey("The result is ordered oldest to newest by first appearance", func() {
			newestFirst := []*source.Episode{
				{Season: 2, Number: 1, MagnetLink: "d"},
				{Season: 1, Number: 2, MagnetLink: "c"},
				{Season: 1, Number: 3, MagnetLink: "b"},
				{Season: 1, Number: 2, MagnetLink: "a"},
			}

			result := Deduplicate(newestFirst)
			So(result, ShouldHaveLength, 3)
			So(result[0].MagnetLink, ShouldEqual, "a")
			So(result[1].MagnetLink, ShouldEqual, "b")
			So(result[2].MagnetLink, ShouldEqual, "d")
		})

		Convey("It does not reorder its input", func() {
			input := []*source.Episode{{Season: 1, Number: 2}, {Season: 1, Number: 1}}
			_ = Deduplicate(input)
			So(input[0].Number, ShouldEqual, 2)
		})

		Convey("Empty input", func() {
			So(Deduplicate(nil), ShouldBeEmpty)
		})
	})
}
