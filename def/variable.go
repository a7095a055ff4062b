package def

type EntityKind string

const (
	PersonKind    = EntityKind("person")
	HouseholdKind = EntityKind("household")
)

type ValueKind string

const (
	MoneyKind    = ValueKind("money")    // numeric, currency units
	RateKind     = ValueKind("rate")     // numeric, dimensionless
	QuantityKind = ValueKind("quantity") // numeric, some physical unit (m², mostly)
	EnumKind     = ValueKind("enum")     // one of a closed set of strings
)

/*
	Variable describes one property of an entity: who it's defined for,
	what span of time one value of it covers, and either a formula to
	compute it or nothing (in which case it's a pure input, read from the
	situation or defaulted).
*/
type Variable struct {
	Name      string
	Entity    EntityKind
	Grain     Granularity
	Kind      ValueKind
	Label     string
	Reference string      // most official source for the rule this encodes.
	Default   interface{} // value assumed when an input cell is absent.  float64 or string per Kind.
	Enum      []string    // allowed values, when Kind == EnumKind.
	Formula   Formula     // nil for input variables.
}

func (v *Variable) Input() bool {
	return v.Formula == nil
}

/*
	Formula computes one cell: the value of its variable, for one entity
	instance, over one period.  The returned value is a float64 (money,
	rate) or string (enum).

	Formulas reach everything else through the Frame: other variables of
	the same entity instance, aggregates over household members, and the
	dated legislation parameters.  Formulas MAY PANIC (ValidationError
	flows out to the caller); they never return errors.
*/
type Formula func(fx Frame) interface{}

/*
	Frame is the window a running formula sees.  It is implemented by the
	engine; the indirection is here so the rules package depends only on
	`def` and stays a plain catalogue of legislation.
*/
type Frame interface {
	// The period this formula invocation is computing.
	Period() Period

	// Value of another variable of the same entity instance.
	Get(name string, p Period) float64

	// Same, for enum variables.
	GetString(name string, p Period) string

	// Sum of a person variable across the household's members.
	// Only meaningful in household formulas.
	SumMembers(name string, p Period) float64

	// Dated scalar legislation parameter, by dotted path.
	Param(path string, at Instant) float64

	// Dated bracket-scale parameter, by dotted path.
	Scale(path string, at Instant) Scale
}

// Scale is a marginal bracket scale, e.g. a progressive contribution schedule.
type Scale interface {
	Calc(base float64) float64
}
