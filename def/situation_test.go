package def

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"yuisekin.net/fisca/lib/testutil"
)

func TestParseSituation(t *testing.T) {
	Convey("Situations parse from json", t, func() {
		sit := ParseSituation([]byte(`{
			"persons": {
				"alice": {
					"salary": {"2017-01": 2000, "2017-02": null}
				}
			},
			"households": {
				"h1": {"members": ["alice"], "variables": {"rent": {"2017-01": 400}}}
			}
		}`))
		So(sit.Persons, ShouldContainKey, "alice")
		So(sit.Persons["alice"]["salary"]["2017-01"], ShouldEqual, 2000)
		So(sit.Persons["alice"]["salary"]["2017-02"], ShouldBeNil)
		So(sit.Households["h1"].Members, ShouldResemble, []string{"alice"})
		So(sit.Households["h1"].Variables["rent"]["2017-01"], ShouldEqual, 400)
	})

	Convey("Situations parse from yaml, tabs tolerated", t, func() {
		sit := ParseSituation([]byte("" +
			"persons:\n" +
			"\talice:\n" +
			"\t\tsalary:\n" +
			"\t\t\t2017-01: 2000\n"))
		So(sit.Persons["alice"]["salary"]["2017-01"], ShouldEqual, 2000)
	})

	Convey("Unparseable bytes are a validation error", t, func() {
		So(func() { ParseSituation([]byte(`{"persons": {`)) }, testutil.ShouldPanicWith, ValidationError)
	})

	Convey("Shape mismatches are a validation error, not a shrug", t, func() {
		So(func() {
			ParseSituation([]byte(`{"persons": {"alice": {"salary": "lots"}}}`))
		}, testutil.ShouldPanicWith, ValidationError)
	})
}

func TestValidation(t *testing.T) {
	Convey("An empty situation is refused", t, func() {
		So(func() { ValidateAll(&Situation{}) }, testutil.ShouldPanicWith, ValidationError)
	})

	Convey("Nil maps are instantiated so downstream code needn't care", t, func() {
		sit := &Situation{
			Persons:    map[string]Entity{"alice": nil},
			Households: map[string]Household{"h1": {Members: []string{"alice"}}},
		}
		ValidateAll(sit)
		So(sit.Persons["alice"], ShouldNotBeNil)
		So(sit.Households["h1"].Variables, ShouldNotBeNil)
	})

	Convey("Membership must reference declared persons", t, func() {
		sit := &Situation{
			Persons:    map[string]Entity{"alice": {}},
			Households: map[string]Household{"h1": {Members: []string{"alice", "ghost"}}},
		}
		So(func() { ValidateAll(sit) }, testutil.ShouldPanicWith, ValidationError)
	})

	Convey("A person cannot belong to two households", t, func() {
		sit := &Situation{
			Persons: map[string]Entity{"alice": {}},
			Households: map[string]Household{
				"h1": {Members: []string{"alice"}},
				"h2": {Members: []string{"alice"}},
			},
		}
		So(func() { ValidateAll(sit) }, testutil.ShouldPanicWith, ValidationError)
	})
}

func TestSituationClone(t *testing.T) {
	Convey("Clones don't share cell storage with the original", t, func() {
		sit := &Situation{
			Persons: map[string]Entity{
				"alice": {"salary": {"2017-01": 2000.0}},
			},
		}
		cpy := sit.Clone()
		cpy.Persons["alice"]["salary"]["2017-01"] = 9999.0
		So(sit.Persons["alice"]["salary"]["2017-01"], ShouldEqual, 2000.0)
	})
}
