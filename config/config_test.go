package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/lib/testutil"
)

func TestConfig(t *testing.T) {
	Convey("Given a bare environment", t, func() {
		t.Setenv("FISCA_PORT", "")
		t.Setenv("FISCA_USER", "")
		t.Setenv("FISCA_RULES", "")
		t.Setenv("FISCA_GRACE", "")

		Convey("everything defaults", func() {
			So(Port(), ShouldEqual, 5000)
			So(User(), ShouldEqual, "fisca")
			So(RulesURI(), ShouldEqual, "dir://parameters")
			So(GracePeriod(), ShouldEqual, 10*time.Second)
		})
	})

	Convey("Given overrides", t, func() {
		t.Setenv("FISCA_PORT", "8080")
		t.Setenv("FISCA_USER", "svc")
		t.Setenv("FISCA_GRACE", "3s")

		Convey("they win", func() {
			So(Port(), ShouldEqual, 8080)
			So(User(), ShouldEqual, "svc")
			So(GracePeriod(), ShouldEqual, 3*time.Second)
		})
	})

	Convey("Given garbage", t, func() {
		Convey("a non-numeric port is a config error", func() {
			t.Setenv("FISCA_PORT", "fivethousand")
			So(func() { Port() }, testutil.ShouldPanicWith, def.ConfigError)
		})
		Convey("an out-of-range port is a config error", func() {
			t.Setenv("FISCA_PORT", "70000")
			So(func() { Port() }, testutil.ShouldPanicWith, def.ConfigError)
		})
		Convey("a negative grace period is a config error", func() {
			t.Setenv("FISCA_GRACE", "-2s")
			So(func() { GracePeriod() }, testutil.ShouldPanicWith, def.ConfigError)
		})
	})
}
