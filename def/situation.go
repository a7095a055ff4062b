package def

/*
	Situation describes `(people, households, known values) -> (asked values)`.

	It is both the request and the response shape of a calculation: cells
	holding a value are inputs; cells holding null are requests, and come
	back filled in.  Values may be mutated during validation if missing,
	i.e. nil maps are instantiated so downstream code doesn't have to care.
*/
type Situation struct {
	Persons    map[string]Entity    `json:"persons"`
	Households map[string]Household `json:"households"`
}

/*
	Entity maps variable name -> period string -> cell.

	A cell is one of:
	  - a number (input value for money/rate variables),
	  - a string (input value for enum variables),
	  - nil (a request: compute this and fill it in).
*/
type Entity map[string]map[string]interface{}

type Household struct {
	Members   []string `json:"members,omitempty"` // person names; each must exist under `persons`.
	Variables Entity   `json:"variables,omitempty"`
}

func (s Situation) Clone() *Situation {
	persons := make(map[string]Entity, len(s.Persons))
	for name, ent := range s.Persons {
		persons[name] = ent.Clone()
	}
	households := make(map[string]Household, len(s.Households))
	for name, hh := range s.Households {
		cpyMembers := make([]string, len(hh.Members))
		copy(cpyMembers, hh.Members)
		households[name] = Household{
			Members:   cpyMembers,
			Variables: hh.Variables.Clone(),
		}
	}
	s.Persons = persons
	s.Households = households
	return &s
}

func (e Entity) Clone() Entity {
	r := make(Entity, len(e))
	for varName, cells := range e {
		cpy := make(map[string]interface{}, len(cells))
		for period, cell := range cells {
			cpy[period] = cell
		}
		r[varName] = cpy
	}
	return r
}
