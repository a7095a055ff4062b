package rules

import (
	"yuisekin.net/fisca/def"
)

func registerTaxes(r *Registry) {
	r.Add(&def.Variable{
		Name:      "income_tax",
		Entity:    def.PersonKind,
		Grain:     def.GrainMonth,
		Kind:      def.MoneyKind,
		Label:     "Flat-rate tax on monthly salary",
		Reference: "https://law.gov.example/income_tax",
		Formula: func(fx def.Frame) interface{} {
			p := fx.Period()
			return fx.Get("salary", p) * fx.Param("taxes.income_tax_rate", p.Start())
		},
	})

	r.Add(&def.Variable{
		Name:      "social_security_contribution",
		Entity:    def.PersonKind,
		Grain:     def.GrainMonth,
		Kind:      def.MoneyKind,
		Label:     "Progressive contribution paid on salaries to finance social security",
		Reference: "https://law.gov.example/social_security_contribution",
		Formula: func(fx def.Frame) interface{} {
			p := fx.Period()
			scale := fx.Scale("taxes.social_security_contribution", p.Start())
			return scale.Calc(fx.Get("salary", p))
		},
	})

	r.Add(&def.Variable{
		Name:      "housing_tax",
		Entity:    def.HouseholdKind,
		Grain:     def.GrainYear,
		Kind:      def.MoneyKind,
		Label:     "Tax owed yearly by each household occupying its main residency, proportional to its size",
		Reference: "https://law.gov.example/housing_tax",
		Formula: func(fx def.Frame) interface{} {
			// The tax is defined for a year, but depends on the
			// accommodation and occupancy in the first month of that year.
			january := fx.Period().FirstMonth()
			occupancy := fx.GetString("occupancy_status", january)
			if occupancy != OccupancyOwner && occupancy != OccupancyTenant {
				return 0.0
			}
			at := january.Start()
			amount := fx.Get("floor_area", january) * fx.Param("taxes.housing_tax.rate", at)
			if minimal := fx.Param("taxes.housing_tax.minimal_amount", at); amount < minimal {
				amount = minimal
			}
			return amount
		},
	})
}
