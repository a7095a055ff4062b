package def

import (
	"fmt"
	"strconv"
	"strings"
)

type Granularity string

const (
	GrainMonth = Granularity("month")
	GrainYear  = Granularity("year")
)

/*
	Instant is a point on the civil calendar with day resolution dropped
	to "first of month" -- the finest granularity legislation parameters
	are dated at.  The zero Instant is not a valid date; don't make one
	by hand, use `ParseInstant` or `Period.Start`.
*/
type Instant struct {
	Year  int
	Month int // 1..12
}

func (i Instant) String() string {
	return fmt.Sprintf("%04d-%02d-01", i.Year, i.Month)
}

/*
	Reports whether this instant is at or after the other one.
	Used by parameter resolution: a dated value applies to all instants
	at-or-after its start date.
*/
func (i Instant) AtOrAfter(o Instant) bool {
	if i.Year != o.Year {
		return i.Year > o.Year
	}
	return i.Month >= o.Month
}

/*
	ParseInstant accepts "2017", "2017-01", or "2017-01-01" (the day part,
	if present, must be "01"; parameters are dated at month boundaries).
	Panics ValidationError for anything else.
*/
func ParseInstant(s string) Instant {
	hunks := strings.Split(s, "-")
	switch len(hunks) {
	case 3:
		if hunks[2] != "01" {
			panic(ValidationError.New("instant %q: parameters are dated at month starts (day must be \"01\")", s))
		}
		fallthrough
	case 2:
		y := atoiField(s, hunks[0])
		m := atoiField(s, hunks[1])
		if m < 1 || m > 12 {
			panic(ValidationError.New("instant %q: month out of range", s))
		}
		return Instant{Year: y, Month: m}
	case 1:
		return Instant{Year: atoiField(s, hunks[0]), Month: 1}
	default:
		panic(ValidationError.New("could not parse instant %q", s))
	}
}

/*
	Period is a calendar span a variable value is defined over: one
	month, or one year.  Periods are how cells in a situation are keyed,
	so they also have a canonical string form: "2017" or "2017-01".
*/
type Period struct {
	Grain Granularity
	Year  int
	Month int // meaningful only when Grain == GrainMonth
}

func MonthPeriod(year, month int) Period {
	return Period{Grain: GrainMonth, Year: year, Month: month}
}

func YearPeriod(year int) Period {
	return Period{Grain: GrainYear, Year: year}
}

// Panics ValidationError if the string is neither "YYYY" nor "YYYY-MM".
func ParsePeriod(s string) Period {
	hunks := strings.Split(s, "-")
	switch len(hunks) {
	case 1:
		return YearPeriod(atoiField(s, hunks[0]))
	case 2:
		m := atoiField(s, hunks[1])
		if m < 1 || m > 12 {
			panic(ValidationError.New("period %q: month out of range", s))
		}
		return MonthPeriod(atoiField(s, hunks[0]), m)
	default:
		panic(ValidationError.New("could not parse period %q (want \"YYYY\" or \"YYYY-MM\")", s))
	}
}

func (p Period) String() string {
	switch p.Grain {
	case GrainMonth:
		return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
	case GrainYear:
		return fmt.Sprintf("%04d", p.Year)
	default:
		return fmt.Sprintf("invalid<%q,%d,%d>", p.Grain, p.Year, p.Month)
	}
}

// The instant the period begins at.
func (p Period) Start() Instant {
	switch p.Grain {
	case GrainMonth:
		return Instant{Year: p.Year, Month: p.Month}
	default:
		return Instant{Year: p.Year, Month: 1}
	}
}

/*
	The january of a year period, as a month period.  (Some yearly
	formulas are defined in terms of the state of things in the first
	month of the year -- the housing tax, for one.)

	Calling this on a month period is a programmer error.
*/
func (p Period) FirstMonth() Period {
	if p.Grain != GrainYear {
		panic(ValidationError.New("FirstMonth is defined for year periods only, not %q", p.String()))
	}
	return MonthPeriod(p.Year, 1)
}

// All twelve month periods of a year period, in order.
func (p Period) Months() []Period {
	if p.Grain != GrainYear {
		panic(ValidationError.New("Months is defined for year periods only, not %q", p.String()))
	}
	ms := make([]Period, 12)
	for i := range ms {
		ms[i] = MonthPeriod(p.Year, i+1)
	}
	return ms
}

func atoiField(whole, hunk string) int {
	n, err := strconv.Atoi(hunk)
	if err != nil {
		panic(ValidationError.New("could not parse %q as a date: %s", whole, err))
	}
	return n
}
