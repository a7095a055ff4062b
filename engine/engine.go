/*
	The `engine` package runs calculations: give it a situation with some
	cells filled (inputs) and some cells null (requests), and it returns
	the situation with the requests computed.

	One `Engine` is built at startup and shared; it is immutable after
	construction.  Each `Run` builds a private simulation (memo table,
	cycle stack), so concurrent requests don't see each other.
*/
package engine

import (
	"github.com/inconshreveable/log15"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/params"
	"yuisekin.net/fisca/rules"
)

type Engine struct {
	registry *rules.Registry
	tree     *params.Tree
	journal  log15.Logger
}

func New(registry *rules.Registry, tree *params.Tree, journal log15.Logger) *Engine {
	return &Engine{
		registry: registry,
		tree:     tree,
		journal:  journal,
	}
}

func (e *Engine) Registry() *rules.Registry { return e.registry }
func (e *Engine) Params() *params.Tree     { return e.tree }

/*
	Run validates the situation, computes every requested (null) cell,
	and returns a filled clone.  The input situation is not mutated
	beyond validation's nil-map instantiation.

	MAY PANIC: `def.ValidationError` for malformed situations, unknown
	variables, period/granularity mismatches, and formula cycles.
*/
func (e *Engine) Run(sit *def.Situation) *def.Situation {
	def.ValidateAll(sit)
	out := sit.Clone()
	sim := newSimulation(e, out)

	cells := 0
	for id, ent := range out.Persons {
		cells += sim.fillRequests(def.PersonKind, id, ent)
	}
	for id, hh := range out.Households {
		cells += sim.fillRequests(def.HouseholdKind, id, hh.Variables)
	}

	e.journal.Debug("calculation run complete",
		"run", sim.runID,
		"cells", cells,
	)
	return out
}

/*
	ComputeAll computes one variable over one period for every entity
	instance it's defined for, keyed by entity name.  This is the one-shot
	`calc --var` path; the web API goes through `Run`.
*/
func (e *Engine) ComputeAll(sit *def.Situation, name string, p def.Period) map[string]interface{} {
	def.ValidateAll(sit)
	v := e.registry.Get(name)
	sim := newSimulation(e, sit)

	out := map[string]interface{}{}
	switch v.Entity {
	case def.PersonKind:
		for id := range sit.Persons {
			out[id] = sim.compute(def.PersonKind, id, v, p)
		}
	case def.HouseholdKind:
		for id := range sit.Households {
			out[id] = sim.compute(def.HouseholdKind, id, v, p)
		}
	}
	return out
}

// Fill every nil cell of one entity instance.  Returns cells computed.
func (sim *simulation) fillRequests(kind def.EntityKind, id string, ent def.Entity) int {
	n := 0
	for varName, cells := range ent {
		for periodStr, cell := range cells {
			if cell != nil {
				continue
			}
			v := sim.eng.registry.Get(varName)
			if v.Entity != kind {
				panic(def.ValidationError.New("variable %q is defined for %s entities, but was requested on %s %q", varName, v.Entity, kind, id))
			}
			cells[periodStr] = sim.compute(kind, id, v, def.ParsePeriod(periodStr))
			n++
		}
	}
	return n
}
