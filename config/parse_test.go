package config

import (
	"errors"
	"testing"

	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/key"
	"github.com/eztv-cli/eztv/where"
	"github.com/samber/lo"
	"github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestParse(t *testing.T) {
	convey.Convey("Parse", t, func() {
		convey.Convey("Values take the type of the registered default", func() {
			v, err := Parse(key.NetworkTimeout, []string{"15"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(v, convey.ShouldEqual, 15)

			v, err = Parse(key.OutputShowLinks, []string{"true"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(v, convey.ShouldEqual, true)

			v, err = Parse(key.CatalogBaseURL, []string{"http://eztv.example"})
			convey.So(err, convey.ShouldBeNil)
			convey.So(v, convey.ShouldEqual, "http://eztv.example")
		})

		convey.Convey("Unknown keys are reported", func() {
			_, err := Parse("catalog.mirror", []string{"x"})
			var unknown *UnknownKeyError
			convey.So(errors.As(err, &unknown), convey.ShouldBeTrue)
			convey.So(unknown.Key, convey.ShouldEqual, "catalog.mirror")
		})

		convey.Convey("Malformed values are rejected", func() {
			cases := []struct{ key, value string }{
				{key.NetworkTimeout, "soon"},
				{key.NetworkTimeout, "-1"},
				{key.LogsWrite, "maybe"},
				{key.CatalogProvider, "piratebay"},
				{key.CatalogBaseURL, "eztv.it"},
				{key.CatalogBaseURL, "ftp://eztv.it"},
				{key.CatalogBaseURL, "http://"},
				{key.CatalogSearchPath, "search/"},
				{key.LogsLevel, "loud"},
				{key.IconsVariant, "ascii"},
			}

			for _, c := range cases {
				_, err := Parse(c.key, []string{c.value})
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldStartWith, c.key)
			}
		})

		convey.Convey("Known catalog settings pass", func() {
			for k, value := range map[string]string{
				key.CatalogProvider:   "eztv",
				key.CatalogSearchPath: "/search/",
				key.NetworkTimeout:    "0",
				key.LogsLevel:         "debug",
				key.IconsVariant:      "nerd",
			} {
				_, err := Parse(k, []string{value})
				convey.So(err, convey.ShouldBeNil)
			}
		})

		convey.Convey("A value is required", func() {
			_, err := Parse(key.CatalogBaseURL, nil)
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestSaveAndReset(t *testing.T) {
	convey.Convey("Given settings loaded without a config file", t, func() {
		convey.So(Setup(), convey.ShouldBeNil)
		_ = filesystem.API().Remove(where.ConfigFile())

		convey.Convey("Save creates the config file", func() {
			viper.Set(key.NetworkTimeout, 5)
			convey.So(Save(), convey.ShouldBeNil)
			convey.So(lo.Must(filesystem.API().Exists(where.ConfigFile())), convey.ShouldBeTrue)

			convey.Convey("and overwrites it afterwards", func() {
				viper.Set(key.NetworkTimeout, 6)
				convey.So(Save(), convey.ShouldBeNil)
				convey.So(lo.Must(filesystem.API().ReadFile(where.ConfigFile())), convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("Reset restores one key", func() {
			viper.Set(key.NetworkTimeout, 5)
			viper.Set(key.OutputShowLinks, true)
			convey.So(Reset(key.NetworkTimeout), convey.ShouldBeNil)
			convey.So(viper.GetInt(key.NetworkTimeout), convey.ShouldEqual, 60)
			convey.So(viper.GetBool(key.OutputShowLinks), convey.ShouldBeTrue)
		})

		convey.Convey("Reset without a key restores all", func() {
			viper.Set(key.OutputShowLinks, true)
			convey.So(Reset(""), convey.ShouldBeNil)
			convey.So(viper.GetBool(key.OutputShowLinks), convey.ShouldBeFalse)
		})

		convey.Convey("Reset rejects unknown keys", func() {
			convey.So(Reset("nope"), convey.ShouldNotBeNil)
		})
	})
}
