package provider

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eztv-cli/eztv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestProviders(t *testing.T) {
	Convey("Providers", t, func() {
		Convey("eztv is built in", func() {
			p, ok := Get("eztv")
			So(ok, ShouldBeTrue)
			So(p.String(), ShouldEqual, "EZTV")
		})

		Convey("Get misses unknown IDs", func() {
			_, ok := Get("kek")
			So(ok, ShouldBeFalse)
		})

		Convey("Unknown providers are reported", func() {
			viper.Set(key.CatalogProvider, "piratebay")
			_, err := Default()
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "piratebay")
		})

		Convey("A series is fetched from the configured base URL", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/search/" || r.FormValue("SearchString") != "Lost" {
					http.NotFound(w, r)
					return
				}
				_, _ = io.WriteString(w, `<html><body><div id="header_holder"><table class="forum_header_border">`+
					`<tr class="forum_header_border">`+
					`<td class="forum_thread_post"><img title="Show Description about Lost"></td>`+
					`<td class="forum_thread_post"><a class="epinfo">Lost S01E01</a></td>`+
					`<td class="forum_thread_post"><a class="magnet" href="magnet:1"></a><a href="t"></a></td>`+
					`</tr></table></div></body></html>`)
			}))
			defer server.Close()

			viper.Set(key.CatalogProvider, "eztv")
			viper.Set(key.CatalogBaseURL, server.URL)
			viper.Set(key.CatalogSearchPath, "/search/")

			p, err := Default()
			So(err, ShouldBeNil)

			s, err := p.Series("Lost")
			So(err, ShouldBeNil)

			found, err := s.Get("S01E01")
			So(err, ShouldBeNil)
			So(found.MustGet().MagnetLink, ShouldEqual, "magnet:1")
		})
	})
}
