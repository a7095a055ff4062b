package params

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/lib/testutil"
)

func writeParam(path, body string) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		panic(err)
	}
}

func TestLoadDir(t *testing.T) {
	Convey("Given a parameter dir", t, testutil.WithTmpdir(func() {
		writeParam("p/taxes/income_tax_rate.yaml", ""+
			"description: income tax rate\n"+
			"values:\n"+
			"  2014-01-01: 0.14\n"+
			"  2015-01-01: 0.15\n")
		writeParam("p/taxes/social_security_contribution.yaml", ""+
			"description: progressive contribution\n"+
			"brackets:\n"+
			"  - threshold:\n"+
			"      2015-01-01: 0\n"+
			"    rate:\n"+
			"      2015-01-01: 0.04\n"+
			"  - threshold:\n"+
			"      2015-01-01: 12400\n"+
			"    rate:\n"+
			"      2015-01-01: 0.12\n")

		tree := LoadDir("p")

		Convey("paths are dotted and sorted", func() {
			So(tree.Paths(), ShouldResemble, []string{
				"taxes.income_tax_rate",
				"taxes.social_security_contribution",
			})
		})

		Convey("scalar resolution picks the value in force", func() {
			So(tree.At("taxes.income_tax_rate", def.Instant{Year: 2014, Month: 6}), ShouldEqual, 0.14)
			So(tree.At("taxes.income_tax_rate", def.Instant{Year: 2015, Month: 1}), ShouldEqual, 0.15)
			So(tree.At("taxes.income_tax_rate", def.Instant{Year: 2017, Month: 1}), ShouldEqual, 0.15)
		})

		Convey("asking before the parameter exists is a not-found", func() {
			So(func() {
				tree.At("taxes.income_tax_rate", def.Instant{Year: 2000, Month: 1})
			}, testutil.ShouldPanicWith, NotFoundError)
		})

		Convey("unknown paths are a not-found", func() {
			So(func() {
				tree.At("taxes.nope", def.Instant{Year: 2015, Month: 1})
			}, testutil.ShouldPanicWith, NotFoundError)
		})

		Convey("scales resolve and calc marginally", func() {
			scale := tree.ScaleAt("taxes.social_security_contribution", def.Instant{Year: 2017, Month: 1})
			So(scale.Calc(0), ShouldEqual, 0.0)
			So(scale.Calc(10000), ShouldAlmostEqual, 400.0)
			// 12400*0.04 + (20000-12400)*0.12
			So(scale.Calc(20000), ShouldAlmostEqual, 496+912)
		})

		Convey("asking a scalar for a scale (or vice versa) is a not-found", func() {
			So(func() {
				tree.ScaleAt("taxes.income_tax_rate", def.Instant{Year: 2015, Month: 1})
			}, testutil.ShouldPanicWith, NotFoundError)
			So(func() {
				tree.At("taxes.social_security_contribution", def.Instant{Year: 2015, Month: 1})
			}, testutil.ShouldPanicWith, NotFoundError)
		})
	}))

	Convey("Given broken parameter dirs", t, testutil.WithTmpdir(func() {
		Convey("a missing dir is a config error", func() {
			So(func() { LoadDir("nope") }, testutil.ShouldPanicWith, def.ConfigError)
		})
		Convey("an empty dir is a config error", func() {
			os.MkdirAll("empty", 0755)
			So(func() { LoadDir("empty") }, testutil.ShouldPanicWith, def.ConfigError)
		})
		Convey("a shapeless file is a parse error", func() {
			writeParam("p/bad.yaml", "description: no values or brackets\n")
			So(func() { LoadDir("p") }, testutil.ShouldPanicWith, ParseError)
		})
		Convey("a bad date key is a parse error", func() {
			writeParam("p/bad.yaml", "values:\n  yesterday: 1\n")
			So(func() { LoadDir("p") }, testutil.ShouldPanicWith, ParseError)
		})
	}))
}
