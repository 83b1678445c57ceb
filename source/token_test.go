package source

import (
	"errors"
	"fmt"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseToken(t *testing.T) {
	Convey("ParseToken", t, func() {
		Convey("It parses padded tokens", func() {
			key, err := ParseToken("S01E02")
			So(err, ShouldBeNil)
			So(key, ShouldResemble, EpisodeKey{Season: 1, Number: 2})
		})

		Convey("It parses unpadded tokens", func() {
			key, err := ParseToken("S3E9")
			So(err, ShouldBeNil)
			So(key, ShouldResemble, EpisodeKey{Season: 3, Number: 9})
		})

		Convey("It round-trips every formatted key", func() {
			for s := 1; s <= 99; s++ {
				for e := 1; e <= 99; e++ {
					key, err := ParseToken(fmt.Sprintf("S%02dE%02d", s, e))
					if err != nil || key.Season != s || key.Number != e {
						So(fmt.Sprintf("S%02dE%02d", s, e), ShouldEqual, key.Token())
					}
				}
			}
		})

		Convey("It rejects malformed tokens", func() {
			for _, token := range []string{"", "s01e01", "1x01", "episode one", "SE"} {
				_, err := ParseToken(token)
				So(err, ShouldNotBeNil)

				var tokenErr *TokenError
				So(errors.As(err, &tokenErr), ShouldBeTrue)
				So(tokenErr.Token, ShouldEqual, token)
			}
		})
	})
}

func TestMatchKey(t *testing.T) {
	Convey("MatchKey", t, func() {
		Convey("Fallback format", func() {
			key, ok := MatchKey("Show 2x07 HDTV", XFormat)
			So(ok, ShouldBeTrue)
			So(key, ShouldResemble, EpisodeKey{Season: 2, Number: 7})
		})

		Convey("No match", func() {
			_, ok := MatchKey("Show Special", SEFormat)
			So(ok, ShouldBeFalse)
		})
	})
}
