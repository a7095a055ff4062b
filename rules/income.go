package rules

import (
	"yuisekin.net/fisca/def"
)

func registerIncome(r *Registry) {
	r.Add(&def.Variable{
		Name:    "salary",
		Entity:  def.PersonKind,
		Grain:   def.GrainMonth,
		Kind:    def.MoneyKind,
		Label:   "Gross salary received in the month",
		Default: 0.0,
	})

	r.Add(&def.Variable{
		Name:      "disposable_income",
		Entity:    def.PersonKind,
		Grain:     def.GrainMonth,
		Kind:      def.MoneyKind,
		Label:     "What's left of a salary after taxes and benefits",
		Reference: "https://stats.gov.example/disposable_income",
		Formula: func(fx def.Frame) interface{} {
			p := fx.Period()
			return fx.Get("salary", p) -
				fx.Get("income_tax", p) -
				fx.Get("social_security_contribution", p) +
				fx.Get("basic_income", p)
		},
	})

	r.Add(&def.Variable{
		Name:   "household_disposable_income",
		Entity: def.HouseholdKind,
		Grain:  def.GrainMonth,
		Kind:   def.MoneyKind,
		Label:  "Disposable income of all members, plus household-level benefits",
		Formula: func(fx def.Frame) interface{} {
			p := fx.Period()
			return fx.SumMembers("disposable_income", p) + fx.Get("housing_allowance", p)
		},
	})
}
