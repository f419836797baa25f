package optimize

import (
	"math"

	"field-optimizer/internal/model"
)

// stepEpsilon guards the upper-bound sample against float drift so a range
// whose width is an exact multiple of the increment still includes max speed.
const stepEpsilon = 1e-9

// OptimizeSpeed sweeps the speed range at fixed increments, evaluates the
// fuel and capacity models at each point, and selects the minimum-cost
// feasible candidate. Ties are broken by the lowest speed (first minimum in
// ascending enumeration order). When no candidate is feasible the outcome
// carries StatusInfeasible and the highest-speed candidate as reference.
func OptimizeSpeed(params model.FarmParameters) (*Outcome, error) {
	p := params.WithDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	steps := int(math.Floor((p.MaxSpeedKmh-p.MinSpeedKmh)/p.SpeedIncrementKmh + stepEpsilon))
	candidates := make([]SpeedCandidate, 0, steps+1)

	bestIdx := -1
	for i := 0; i <= steps; i++ {
		speed := p.MinSpeedKmh + float64(i)*p.SpeedIncrementKmh

		c, err := evaluateSpeed(p, i, speed)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, c)

		if c.Feasible && (bestIdx < 0 || c.TotalCost < candidates[bestIdx].TotalCost) {
			bestIdx = i
		}
	}

	out := &Outcome{Candidates: candidates}
	if bestIdx >= 0 {
		out.Status = StatusOptimal
		out.Best = candidates[bestIdx]
	} else {
		out.Status = StatusInfeasible
		out.Best = candidates[len(candidates)-1]
	}
	return out, nil
}

// evaluateSpeed computes one grid point. Validation has already bounded the
// inputs, so capacity is strictly positive here.
func evaluateSpeed(p model.FarmParameters, index int, speed float64) (SpeedCandidate, error) {
	hourlyPerTractor := model.HourlyCapacityPerTractor(speed, p.ImplementWidthM, p.FieldEfficiency)
	totalHourly := hourlyPerTractor * float64(p.TractorCount)
	totalDaily := totalHourly * p.WorkingHours

	fuelPerHa, err := model.FuelPerHectare(p.Operation, speed)
	if err != nil {
		return SpeedCandidate{}, err
	}

	c := SpeedCandidate{
		Index:               index,
		SpeedKmh:            speed,
		TotalHourlyCapacity: totalHourly,
		TotalDailyCapacity:  totalDaily,
		FuelPerHectare:      fuelPerHa,
	}

	if totalDaily >= p.TargetHectares {
		// Feasible: time and fuel are scoped to the target area actually
		// needed, not the whole day's capacity.
		c.Feasible = true
		c.TimeRequiredHours = p.TargetHectares / totalHourly
		c.FuelRequired = fuelPerHa * p.TargetHectares
		c.TotalCost = c.FuelRequired * p.FuelCostPerLiter
		if p.TargetHectares > 0 {
			c.CostPerHectare = c.TotalCost / p.TargetHectares
		}
	} else {
		// Infeasible: the fleet works the full day and fuel is charged for
		// whatever area is actually achievable.
		c.TimeRequiredHours = p.WorkingHours
		c.FuelRequired = fuelPerHa * totalDaily
		c.TotalCost = c.FuelRequired * p.FuelCostPerLiter
		if totalDaily > 0 {
			c.CostPerHectare = c.TotalCost / totalDaily
		}
		c.AchievableHectares = totalDaily
	}
	return c, nil
}
