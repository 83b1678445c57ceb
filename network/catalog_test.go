package network

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/eztv-cli/eztv/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestCatalog(t *testing.T) {
	Convey("Given a catalog search endpoint", t, func() {
		var (
			method, path, contentType, userAgent string
			form                                 url.Values
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method, path = r.Method, r.URL.Path
			contentType = r.Header.Get("Content-Type")
			userAgent = r.Header.Get("User-Agent")
			_ = r.ParseForm()
			form = r.PostForm

			if r.PostForm.Get("SearchString") == "broken" {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = io.WriteString(w, "<html>results</html>")
		}))
		Reset(server.Close)

		catalog, err := NewCatalog("eztv", server.URL, "/search/", "eztv-test", server.Client())
		So(err, ShouldBeNil)

		Convey("It posts the series name as SearchString", func() {
			body, err := catalog.PostSearch("The Office (US)")
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "<html>results</html>")

			So(method, ShouldEqual, http.MethodPost)
			So(path, ShouldEqual, "/search/")
			So(contentType, ShouldEqual, "application/x-www-form-urlencoded")
			So(userAgent, ShouldEqual, "eztv-test")
			So(form.Get("SearchString"), ShouldEqual, "The Office (US)")
		})

		Convey("It reports non-2xx answers", func() {
			_, err := catalog.PostSearch("broken")

			var statusErr *StatusError
			So(errors.As(err, &statusErr), ShouldBeTrue)
			So(statusErr.Code, ShouldEqual, http.StatusBadGateway)
		})

		Convey("Name and SearchURL", func() {
			So(catalog.Name(), ShouldEqual, "eztv")
			So(catalog.SearchURL(), ShouldEqual, server.URL+"/search/")
		})
	})

	Convey("Transport errors are returned as the client reports them", t, func() {
		server := httptest.NewServer(http.NotFoundHandler())
		server.Close()

		catalog, err := NewCatalog("eztv", server.URL, "/search/", "", http.DefaultClient)
		So(err, ShouldBeNil)

		_, err = catalog.PostSearch("Lost")
		So(err, ShouldNotBeNil)

		var urlErr *url.Error
		So(errors.As(err, &urlErr), ShouldBeTrue)
		So(urlErr.Op, ShouldEqual, "Post")
	})

	Convey("Invalid base URLs are rejected", t, func() {
		_, err := NewCatalog("eztv", "://nope", "/search/", "", http.DefaultClient)
		So(err, ShouldNotBeNil)
	})
}

func TestNewClient(t *testing.T) {
	Convey("NewClient", t, func() {
		Reset(func() {
			viper.Set(key.NetworkTLSFingerprint, false)
		})

		Convey("It applies the configured timeout", func() {
			viper.Set(key.NetworkTimeout, 5)
			So(NewClient().Timeout, ShouldEqual, 5*time.Second)
		})

		Convey("It uses the fingerprint transport when enabled", func() {
			viper.Set(key.NetworkTLSFingerprint, true)
			_, ok := NewClient().Transport.(*fingerprintTransport)
			So(ok, ShouldBeTrue)
		})

		Convey("The fingerprint transport serves plain HTTP", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, "ok")
			}))
			defer server.Close()

			viper.Set(key.NetworkTLSFingerprint, true)
			catalog, err := NewCatalog("eztv", server.URL, "/search/", "", NewClient())
			So(err, ShouldBeNil)

			body, err := catalog.PostSearch("Lost")
			So(err, ShouldBeNil)
			So(string(body), ShouldEqual, "ok")
		})
	})
}
