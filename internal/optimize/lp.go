package optimize

import "field-optimizer/internal/model"

// SolveFleetLP minimizes cost per hectare subject to fuel and tractor-count
// ceilings:
//
//	minimize   fuelCost * fuelUsage / (hectaresCovered + 1)
//	subject to hectaresCovered == tractorsUsed * coveragePerTractor
//	           fuelUsage       == tractorsUsed * fuelPerTractor
//	           fuelUsage <= maxFuel
//	           0 <= tractorsUsed <= maxTractors, integer
//
// The two equality constraints tie both continuous variables to the integer
// tractor count, which collapses the ratio objective to a single-variable
// search over tractor counts. The solve is therefore an exact enumeration
// rather than a call into an external solver; infeasible and unbounded
// outcomes are carried as a status, never as an error.
func SolveFleetLP(fuelCost, maxFuel float64, maxTractors int, coveragePerTractor, fuelPerTractor float64) (*LPSolution, error) {
	if fuelCost < 0 {
		return nil, model.NewDomainError("fuel_cost", "must be >= 0 (got %g)", fuelCost)
	}
	if maxTractors < 0 {
		return nil, model.NewDomainError("max_tractors", "must be >= 0 (got %d)", maxTractors)
	}
	if coveragePerTractor < 0 {
		return nil, model.NewDomainError("coverage_per_tractor", "must be >= 0 (got %g)", coveragePerTractor)
	}
	if fuelPerTractor < 0 {
		return nil, model.NewDomainError("fuel_per_tractor", "must be >= 0 (got %g)", fuelPerTractor)
	}

	best := LPSolution{Status: StatusInfeasible}
	found := false
	for t := 0; t <= maxTractors; t++ {
		fuel := float64(t) * fuelPerTractor
		if fuel > maxFuel {
			// Fuel usage grows monotonically in t; every larger count is
			// over the ceiling too.
			break
		}
		hectares := float64(t) * coveragePerTractor
		objective := fuelCost * fuel / (hectares + 1)

		if !found || objective < best.Objective {
			found = true
			best = LPSolution{
				Status:          StatusOptimal,
				FuelUsed:        fuel,
				HectaresCovered: hectares,
				TractorsUsed:    t,
				Objective:       objective,
			}
		}
	}
	if !found {
		return &LPSolution{Status: StatusInfeasible}, nil
	}
	return &best, nil
}
