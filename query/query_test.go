package query

import (
	"testing"

	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestQuery(t *testing.T) {
	Convey("Given remembered series names", t, func() {
		viper.Set(key.SearchShowQuerySuggestions, true)
		viper.Set(key.SearchRememberQueries, true)
		So(cacher.Set(map[string]*queryRecord{}), ShouldBeNil)

		So(Remember("Breaking Bad", 1), ShouldBeNil)
		So(Remember("Better Call Saul", 1), ShouldBeNil)
		So(Remember("  breaking bad ", 5), ShouldBeNil)

		Convey("Suggestions are ranked by use", func() {
			s := SuggestMany("b")
			So(s, ShouldHaveLength, 2)
			So(s[0], ShouldEqual, "Breaking Bad")
			So(s[1], ShouldEqual, "Better Call Saul")
		})

		Convey("Suggestions are fuzzy", func() {
			So(SuggestMany("bcs"), ShouldResemble, []string{"Better Call Saul"})
		})

		Convey("Closest corrects typos", func() {
			So(Closest("Braking Bad").MustGet(), ShouldEqual, "Breaking Bad")
		})

		Convey("Closest is empty for an exact name", func() {
			So(Closest("breaking bad").IsAbsent(), ShouldBeTrue)
		})

		Convey("Nothing is suggested when disabled", func() {
			viper.Set(key.SearchShowQuerySuggestions, false)
			So(SuggestMany("b"), ShouldBeEmpty)
			So(Closest("Braking Bad").IsAbsent(), ShouldBeTrue)
		})

		Convey("Nothing is remembered when disabled", func() {
			viper.Set(key.SearchRememberQueries, false)
			So(Remember("The Wire", 1), ShouldBeNil)
			So(SuggestMany("wire"), ShouldBeEmpty)
		})
	})

	Convey("sanitize", t, func() {
		So(sanitize("  LOST  "), ShouldEqual, "lost")
	})
}
