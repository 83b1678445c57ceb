package config

import (
	"testing"

	"github.com/eztv-cli/eztv/constant"
	"github.com/eztv-cli/eztv/filesystem"
	"github.com/eztv-cli/eztv/key"
	"github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	convey.Convey("Config Setup", t, func() {
		convey.Convey("Should initialize without a config file", func() {
			convey.So(Setup(), convey.ShouldBeNil)
		})

		convey.Convey("Should populate every default", func() {
			convey.So(Setup(), convey.ShouldBeNil)
			for name := range Default {
				convey.So(viper.Get(name), convey.ShouldNotBeNil)
			}
			convey.So(viper.GetString(key.CatalogBaseURL), convey.ShouldEqual, constant.DefaultBaseURL)
			convey.So(viper.GetInt(key.NetworkTimeout), convey.ShouldEqual, 60)
		})

		convey.Convey("Environment variables override defaults", func() {
			t.Setenv("EZTV_CATALOG_BASE_URL", "http://mirror.example")
			convey.So(Setup(), convey.ShouldBeNil)
			convey.So(viper.GetString(key.CatalogBaseURL), convey.ShouldEqual, "http://mirror.example")
		})

		convey.Convey("EnvKeyReplacer should convert dots to underscores", func() {
			convey.So(EnvKeyReplacer.Replace("catalog.base_url"), convey.ShouldEqual, "catalog_base_url")
		})
	})
}

func TestField(t *testing.T) {
	convey.Convey("Field", t, func() {
		field := Default[key.CatalogBaseURL]

		convey.Convey("Env is prefixed", func() {
			convey.So(field.Env(), convey.ShouldEqual, "EZTV_CATALOG_BASE_URL")
		})

		convey.Convey("typeName", func() {
			convey.So(field.typeName(), convey.ShouldEqual, "string")
			timeout, write := Default[key.NetworkTimeout], Default[key.LogsWrite]
			convey.So(timeout.typeName(), convey.ShouldEqual, "int")
			convey.So(write.typeName(), convey.ShouldEqual, "bool")
		})
	})
}
