/*
	The `rules` package is the catalogue of modelled legislation: every
	variable the service can compute or accept as input, with its formula
	where it has one.

	Formulas are deliberately boring: they read other variables and dated
	parameters through the `def.Frame` window and return a number (or an
	enum string).  All the machinery -- memoization, period adaptation,
	entity plumbing -- lives in `engine`.
*/
package rules

import (
	"sort"

	"github.com/spacemonkeygo/errors"

	"yuisekin.net/fisca/def"
)

type Registry struct {
	vars map[string]*def.Variable
}

func NewRegistry() *Registry {
	return &Registry{vars: map[string]*def.Variable{}}
}

// Registering the same name twice is a bug in the catalogue, not user input.
func (r *Registry) Add(v *def.Variable) *Registry {
	if _, dup := r.vars[v.Name]; dup {
		panic(errors.ProgrammerError.New("variable %q registered twice", v.Name))
	}
	r.vars[v.Name] = v
	return r
}

// Panics ValidationError for unknown names: asking for a variable that
// doesn't exist is a malformed request.
func (r *Registry) Get(name string) *def.Variable {
	v, ok := r.vars[name]
	if !ok {
		panic(def.ValidationError.New("no variable named %q", name))
	}
	return v
}

func (r *Registry) Has(name string) bool {
	_, ok := r.vars[name]
	return ok
}

func (r *Registry) Len() int {
	return len(r.vars)
}

// All variables, sorted by name.  Used by the introspection API.
func (r *Registry) All() []*def.Variable {
	all := make([]*def.Variable, 0, len(r.vars))
	for _, v := range r.vars {
		all = append(all, v)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// The full modelled tax-and-benefit system.
func Default() *Registry {
	r := NewRegistry()
	registerIncome(r)
	registerHousing(r)
	registerTaxes(r)
	registerBenefits(r)
	return r
}
