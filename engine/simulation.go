package engine

import (
	"strings"

	"yuisekin.net/fisca/def"
	"yuisekin.net/fisca/lib/guid"
)

/*
	Raised when a formula transitively requests its own value for the
	same period.  A cycle is a malformed request (or catalogue), never
	something to spin on, so it surfaces as a ValidationError subclass.
*/
var CycleError = def.ValidationError.NewClass("CycleError")

// One calculation run: private memo table and in-flight stack.
type simulation struct {
	eng      *Engine
	sit      *def.Situation
	memo     map[cellKey]interface{}
	inFlight map[cellKey]struct{}
	stack    []cellKey
	runID    string
}

type cellKey struct {
	kind   def.EntityKind
	id     string
	name   string
	period string
}

func (k cellKey) String() string {
	return string(k.kind) + ":" + k.id + "/" + k.name + "@" + k.period
}

func newSimulation(e *Engine, sit *def.Situation) *simulation {
	return &simulation{
		eng:      e,
		sit:      sit,
		memo:     map[cellKey]interface{}{},
		inFlight: map[cellKey]struct{}{},
		runID:    guid.New(),
	}
}

/*
	Compute one cell: the value of `v` for one entity instance over `p`.
	Results are memoized per (entity, variable, period).  MAY PANIC
	(ValidationError and subclasses).
*/
func (sim *simulation) compute(kind def.EntityKind, id string, v *def.Variable, p def.Period) interface{} {
	key := cellKey{kind, id, v.Name, p.String()}
	if val, hit := sim.memo[key]; hit {
		return val
	}
	if _, spinning := sim.inFlight[key]; spinning {
		panic(CycleError.New("formula cycle: %s requested while already computing it (stack: %s)", key, sim.stackTrace()))
	}
	sim.inFlight[key] = struct{}{}
	sim.stack = append(sim.stack, key)
	defer func() {
		delete(sim.inFlight, key)
		sim.stack = sim.stack[:len(sim.stack)-1]
	}()

	val := sim.computeBare(kind, id, v, p)
	sim.memo[key] = val
	return val
}

// compute, without the memo/cycle bookkeeping.
func (sim *simulation) computeBare(kind def.EntityKind, id string, v *def.Variable, p def.Period) interface{} {
	// Granularity adaptation first, so formulas and inputs only ever see
	// their own granularity.
	switch {
	case p.Grain == v.Grain:
		// fall through to the base case below.
	case p.Grain == def.GrainYear && v.Grain == def.GrainMonth:
		// A monthly variable asked for a year is the sum of its months.
		if v.Kind == def.EnumKind {
			panic(def.ValidationError.New("variable %q is a monthly enum; it has no yearly value", v.Name))
		}
		total := 0.0
		for _, month := range p.Months() {
			total += sim.number(kind, id, v, month)
		}
		return total
	default:
		panic(def.ValidationError.New("variable %q is defined per %s; it cannot answer for the period %q", v.Name, v.Grain, p.String()))
	}

	if v.Input() {
		return sim.inputValue(kind, id, v, p)
	}

	fx := frame{sim: sim, kind: kind, id: id, p: p}
	return sim.coerceResult(v, v.Formula(fx))
}

// Read an input cell from the situation, or fall back to the variable default.
func (sim *simulation) inputValue(kind def.EntityKind, id string, v *def.Variable, p def.Period) interface{} {
	ent := sim.entity(kind, id)
	cell, ok := ent[v.Name][p.String()]
	if !ok || cell == nil {
		return v.Default
	}
	switch v.Kind {
	case def.EnumKind:
		s, ok := cell.(string)
		if !ok {
			panic(def.ValidationError.New("variable %q of %s %q wants one of %v, got %v", v.Name, kind, id, v.Enum, cell))
		}
		for _, allowed := range v.Enum {
			if s == allowed {
				return s
			}
		}
		panic(def.ValidationError.New("variable %q of %s %q wants one of %v, got %q", v.Name, kind, id, v.Enum, s))
	default:
		f, ok := asFloat(cell)
		if !ok {
			panic(def.ValidationError.New("variable %q of %s %q wants a number, got %v", v.Name, kind, id, cell))
		}
		return f
	}
}

func (sim *simulation) entity(kind def.EntityKind, id string) def.Entity {
	switch kind {
	case def.PersonKind:
		ent, ok := sim.sit.Persons[id]
		if !ok {
			panic(def.ValidationError.New("no person named %q in the situation", id))
		}
		return ent
	default:
		hh, ok := sim.sit.Households[id]
		if !ok {
			panic(def.ValidationError.New("no household named %q in the situation", id))
		}
		return hh.Variables
	}
}

// compute, demanding a numeric answer.
func (sim *simulation) number(kind def.EntityKind, id string, v *def.Variable, p def.Period) float64 {
	f, ok := asFloat(sim.compute(kind, id, v, p))
	if !ok {
		panic(def.ValidationError.New("variable %q does not hold a number", v.Name))
	}
	return f
}

// Formulas are ours, so a shape mismatch here is a catalogue bug -- but
// normalize int-typed returns so formulas can say `return 0`.
func (sim *simulation) coerceResult(v *def.Variable, val interface{}) interface{} {
	if v.Kind == def.EnumKind {
		return val
	}
	if f, ok := asFloat(val); ok {
		return f
	}
	return val
}

func (sim *simulation) stackTrace() string {
	hunks := make([]string, len(sim.stack))
	for i, k := range sim.stack {
		hunks[i] = k.String()
	}
	return strings.Join(hunks, " -> ")
}

// The numeric types the codecs (and formulas) may hand us.
func asFloat(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}
