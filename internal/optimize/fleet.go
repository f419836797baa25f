package optimize

import (
	"math"

	"field-optimizer/internal/model"
)

// MinimumFleetForSpeed computes the minimum integer tractor count that covers
// targetHectares in one working day at the given speed, then reports the
// time, fuel, and cost of the rounded-up fleet. The speed bounds and tractor
// count inside params are ignored; everything else must be valid.
//
// Fuel is scoped to targetHectares, matching the optimizer's feasible-branch
// convention.
func MinimumFleetForSpeed(targetHectares, speedKmh float64, params model.FarmParameters) (*FleetSizingResult, error) {
	if err := validateFleetInputs(speedKmh, params); err != nil {
		return nil, err
	}

	hourlyPerTractor := model.HourlyCapacityPerTractor(speedKmh, params.ImplementWidthM, params.FieldEfficiency)
	dailyPerTractor := hourlyPerTractor * params.WorkingHours
	if dailyPerTractor == 0 {
		return nil, model.NewDomainError("daily_capacity_per_tractor",
			"is zero at speed %g km/h; fleet sizing is undefined", speedKmh)
	}

	tractors := int(math.Ceil(targetHectares / dailyPerTractor))
	if tractors < 0 {
		tractors = 0
	}

	fuelPerHa, err := model.FuelPerHectare(params.Operation, speedKmh)
	if err != nil {
		return nil, err
	}

	res := &FleetSizingResult{
		TractorsNeeded:           tractors,
		FuelPerHectare:           fuelPerHa,
		FuelRequired:             fuelPerHa * targetHectares,
		HourlyCapacityPerTractor: hourlyPerTractor,
		TotalHourlyCapacity:      hourlyPerTractor * float64(tractors),
	}
	res.TotalFuelCost = res.FuelRequired * params.FuelCostPerLiter
	// Time reflects the actual (over-provisioned) integer fleet, not the
	// fractional ideal.
	if res.TotalHourlyCapacity > 0 {
		res.TimeRequiredHours = targetHectares / res.TotalHourlyCapacity
	}
	return res, nil
}

func validateFleetInputs(speedKmh float64, p model.FarmParameters) error {
	if speedKmh <= 0 {
		return model.NewDomainError("speed_kmh", "must be > 0 (got %g)", speedKmh)
	}
	if p.WorkingHours <= 0 {
		return model.NewDomainError("working_hours", "must be > 0 (got %g)", p.WorkingHours)
	}
	if p.ImplementWidthM <= 0 {
		return model.NewDomainError("implement_width_m", "must be > 0 (got %g)", p.ImplementWidthM)
	}
	if p.FieldEfficiency <= 0 || p.FieldEfficiency > 1 {
		return model.NewDomainError("field_efficiency", "must be in (0, 1] (got %g)", p.FieldEfficiency)
	}
	if p.FuelCostPerLiter < 0 {
		return model.NewDomainError("fuel_cost_per_liter", "must be >= 0 (got %g)", p.FuelCostPerLiter)
	}
	return p.Operation.Validate()
}
