package rules

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spacemonkeygo/errors"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/lib/testutil"
)

func TestDefaultRegistry(t *testing.T) {
	Convey("Given the default registry", t, func() {
		r := Default()

		Convey("the full catalogue is present", func() {
			for _, name := range []string{
				"salary", "income_tax", "social_security_contribution",
				"basic_income", "disposable_income",
				"floor_area", "occupancy_status", "rent",
				"housing_tax", "housing_allowance", "household_disposable_income",
			} {
				So(r.Has(name), ShouldBeTrue)
			}
		})

		Convey("input variables have no formula but do have a default", func() {
			for _, name := range []string{"salary", "floor_area", "occupancy_status", "rent"} {
				v := r.Get(name)
				So(v.Input(), ShouldBeTrue)
				So(v.Default, ShouldNotBeNil)
			}
		})

		Convey("computed variables have formulas", func() {
			for _, name := range []string{"income_tax", "housing_tax", "disposable_income"} {
				So(r.Get(name).Input(), ShouldBeFalse)
			}
		})

		Convey("housing_tax is the only yearly variable", func() {
			for _, v := range r.All() {
				if v.Name == "housing_tax" {
					So(v.Grain, ShouldEqual, def.GrainYear)
				} else {
					So(v.Grain, ShouldEqual, def.GrainMonth)
				}
			}
		})

		Convey("unknown names are a validation error", func() {
			So(func() { r.Get("nope") }, testutil.ShouldPanicWith, def.ValidationError)
		})

		Convey("double registration is a programmer error", func() {
			So(func() { r.Add(&def.Variable{Name: "salary"}) }, testutil.ShouldPanicWith, errors.ProgrammerError)
		})

		Convey("All() is sorted", func() {
			all := r.All()
			for i := 1; i < len(all); i++ {
				So(all[i-1].Name, ShouldBeLessThan, all[i].Name)
			}
		})
	})
}
