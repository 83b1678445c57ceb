package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eztv-cli/eztv/network"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Given pairs of versions", t, func() {
		cases := []struct {
			a, b string
			want int
		}{
			{"1.0.0", "1.0.0", 0},
			{"v1.2.0", "1.1.9", 1},
			{"0.3.0", "0.10.0", -1},
			{"2.0.0-rc1", "1.9.9", 1},
		}

		for _, c := range cases {
			got, err := Compare(c.a, c.b)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, c.want)
		}

		Convey("Malformed versions are rejected", func() {
			_, err := Compare("1.2", "1.2.3")
			So(err, ShouldNotBeNil)

			_, err = Compare("1.2.3", "one.two.three")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestFetchLatest(t *testing.T) {
	Convey("Given a releases endpoint", t, func() {
		status := http.StatusOK
		body := `{"tag_name": "v0.4.1"}`
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
		defer server.Close()

		previous := releasesURL
		releasesURL = server.URL
		defer func() { releasesURL = previous }()

		Convey("The tag is returned without its prefix", func() {
			latest, err := fetchLatest(server.Client())
			So(err, ShouldBeNil)
			So(latest, ShouldEqual, "0.4.1")
		})

		Convey("An empty tag is an error", func() {
			body = `{}`
			_, err := fetchLatest(server.Client())
			So(err, ShouldNotBeNil)
		})

		Convey("A non-200 status surfaces as a status error", func() {
			status = http.StatusForbidden
			_, err := fetchLatest(server.Client())
			var statusErr *network.StatusError
			So(err, ShouldHaveSameTypeAs, statusErr)
		})
	})
}
