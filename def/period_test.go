package def

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"yuisekin.net/fisca/lib/testutil"
)

func TestInstants(t *testing.T) {
	Convey("Instants parse in all three shapes", t, func() {
		So(ParseInstant("2017"), ShouldResemble, Instant{Year: 2017, Month: 1})
		So(ParseInstant("2017-03"), ShouldResemble, Instant{Year: 2017, Month: 3})
		So(ParseInstant("2017-03-01"), ShouldResemble, Instant{Year: 2017, Month: 3})
	})

	Convey("Instants render at day resolution", t, func() {
		So(Instant{Year: 2017, Month: 3}.String(), ShouldEqual, "2017-03-01")
	})

	Convey("Malformed instants refuse to parse", t, func() {
		So(func() { ParseInstant("2017-03-15") }, testutil.ShouldPanicWith, ValidationError)
		So(func() { ParseInstant("2017-13") }, testutil.ShouldPanicWith, ValidationError)
		So(func() { ParseInstant("springtime") }, testutil.ShouldPanicWith, ValidationError)
		So(func() { ParseInstant("2017-03-01-05") }, testutil.ShouldPanicWith, ValidationError)
	})

	Convey("AtOrAfter orders correctly across year boundaries", t, func() {
		So(Instant{2017, 1}.AtOrAfter(Instant{2016, 12}), ShouldBeTrue)
		So(Instant{2016, 12}.AtOrAfter(Instant{2017, 1}), ShouldBeFalse)
		So(Instant{2017, 3}.AtOrAfter(Instant{2017, 3}), ShouldBeTrue)
	})
}

func TestPeriods(t *testing.T) {
	Convey("Periods parse and render round-trip", t, func() {
		So(ParsePeriod("2017"), ShouldResemble, YearPeriod(2017))
		So(ParsePeriod("2017-03"), ShouldResemble, MonthPeriod(2017, 3))
		So(YearPeriod(2017).String(), ShouldEqual, "2017")
		So(MonthPeriod(2017, 3).String(), ShouldEqual, "2017-03")
	})

	Convey("Malformed periods refuse to parse", t, func() {
		So(func() { ParsePeriod("2017-03-01") }, testutil.ShouldPanicWith, ValidationError)
		So(func() { ParsePeriod("2017-00") }, testutil.ShouldPanicWith, ValidationError)
		So(func() { ParsePeriod("soon") }, testutil.ShouldPanicWith, ValidationError)
	})

	Convey("A year period decomposes into its months", t, func() {
		months := YearPeriod(2017).Months()
		So(months, ShouldHaveLength, 12)
		So(months[0], ShouldResemble, MonthPeriod(2017, 1))
		So(months[11], ShouldResemble, MonthPeriod(2017, 12))
	})

	Convey("FirstMonth is the january of a year period", t, func() {
		So(YearPeriod(2017).FirstMonth(), ShouldResemble, MonthPeriod(2017, 1))
		So(func() { MonthPeriod(2017, 3).FirstMonth() }, testutil.ShouldPanicWith, ValidationError)
		So(func() { MonthPeriod(2017, 3).Months() }, testutil.ShouldPanicWith, ValidationError)
	})

	Convey("Start instants land on period boundaries", t, func() {
		So(YearPeriod(2017).Start(), ShouldResemble, Instant{Year: 2017, Month: 1})
		So(MonthPeriod(2017, 9).Start(), ShouldResemble, Instant{Year: 2017, Month: 9})
	})
}
