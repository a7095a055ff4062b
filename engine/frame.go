package engine

import (
	"yuisekin.net/fisca/def"
)

var _ def.Frame = frame{}

// The window one running formula sees: its own entity instance, its
// period, and the parameter tree.
type frame struct {
	sim  *simulation
	kind def.EntityKind
	id   string
	p    def.Period
}

func (fx frame) Period() def.Period {
	return fx.p
}

func (fx frame) Get(name string, p def.Period) float64 {
	v := fx.variableOfSameEntity(name)
	return fx.sim.number(fx.kind, fx.id, v, p)
}

func (fx frame) GetString(name string, p def.Period) string {
	v := fx.variableOfSameEntity(name)
	s, ok := fx.sim.compute(fx.kind, fx.id, v, p).(string)
	if !ok {
		panic(def.ValidationError.New("variable %q does not hold an enum value", name))
	}
	return s
}

func (fx frame) SumMembers(name string, p def.Period) float64 {
	if fx.kind != def.HouseholdKind {
		panic(def.ValidationError.New("SumMembers is only available to household formulas"))
	}
	v := fx.sim.eng.registry.Get(name)
	if v.Entity != def.PersonKind {
		panic(def.ValidationError.New("SumMembers aggregates person variables; %q is a %s variable", name, v.Entity))
	}
	hh := fx.sim.sit.Households[fx.id]
	total := 0.0
	for _, member := range hh.Members {
		total += fx.sim.number(def.PersonKind, member, v, p)
	}
	return total
}

func (fx frame) Param(path string, at def.Instant) float64 {
	return fx.sim.eng.tree.At(path, at)
}

func (fx frame) Scale(path string, at def.Instant) def.Scale {
	return fx.sim.eng.tree.ScaleAt(path, at)
}

func (fx frame) variableOfSameEntity(name string) *def.Variable {
	v := fx.sim.eng.registry.Get(name)
	if v.Entity != fx.kind {
		panic(def.ValidationError.New("variable %q belongs to %s entities; a %s formula cannot read it directly", name, v.Entity, fx.kind))
	}
	return v
}
