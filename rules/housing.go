package rules

import (
	"yuisekin.net/fisca/def"
)

// occupancy_status values.
const (
	OccupancyOwner      = "owner"
	OccupancyTenant     = "tenant"
	OccupancyFreeLodger = "free_lodger"
	OccupancyHomeless   = "homeless"
)

func registerHousing(r *Registry) {
	r.Add(&def.Variable{
		Name:    "floor_area",
		Entity:  def.HouseholdKind,
		Grain:   def.GrainMonth,
		Kind:    def.QuantityKind,
		Label:   "Size of the household's main residency, in square meters",
		Default: 0.0,
	})

	r.Add(&def.Variable{
		Name:    "occupancy_status",
		Entity:  def.HouseholdKind,
		Grain:   def.GrainMonth,
		Kind:    def.EnumKind,
		Label:   "Legal housing situation of the household concerning their main residency",
		Default: OccupancyTenant,
		Enum: []string{
			OccupancyOwner,
			OccupancyTenant,
			OccupancyFreeLodger,
			OccupancyHomeless,
		},
	})

	r.Add(&def.Variable{
		Name:    "rent",
		Entity:  def.HouseholdKind,
		Grain:   def.GrainMonth,
		Kind:    def.MoneyKind,
		Label:   "Rent paid by the household in the month",
		Default: 0.0,
	})
}
