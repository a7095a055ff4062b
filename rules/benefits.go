package rules

import (
	"yuisekin.net/fisca/def"
)

// The basic income entered into force 2015-12; before that the formula
// yields zero rather than complaining about a parameter that doesn't
// exist yet.
var basicIncomeSince = def.Instant{Year: 2015, Month: 12}

func registerBenefits(r *Registry) {
	r.Add(&def.Variable{
		Name:      "basic_income",
		Entity:    def.PersonKind,
		Grain:     def.GrainMonth,
		Kind:      def.MoneyKind,
		Label:     "Flat monthly basic income paid to every person",
		Reference: "https://law.gov.example/basic_income",
		Formula: func(fx def.Frame) interface{} {
			at := fx.Period().Start()
			if !at.AtOrAfter(basicIncomeSince) {
				return 0.0
			}
			return fx.Param("benefits.basic_income", at)
		},
	})

	r.Add(&def.Variable{
		Name:      "housing_allowance",
		Entity:    def.HouseholdKind,
		Grain:     def.GrainMonth,
		Kind:      def.MoneyKind,
		Label:     "Share of rent reimbursed to tenant households",
		Reference: "https://law.gov.example/housing_allowance",
		Formula: func(fx def.Frame) interface{} {
			p := fx.Period()
			if fx.GetString("occupancy_status", p) != OccupancyTenant {
				return 0.0
			}
			return fx.Get("rent", p) * fx.Param("benefits.housing_allowance", p.Start())
		},
	})
}
