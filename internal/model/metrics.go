package model

// FarmMetrics summarizes a full working day at a fixed speed: every tractor
// works the whole day and fuel is charged for the whole day's coverage.
type FarmMetrics struct {
	HourlyCapacityPerTractor float64
	DailyCapacityPerTractor  float64
	TotalDailyCapacity       float64
	FuelPerHectare           float64
	TotalFuelLiters          float64
	TotalFuelCost            float64
	CostPerHectare           float64
}

// ComputeFarmMetrics evaluates the capacity and fuel models for a full day of
// operation at the given speed.
func ComputeFarmMetrics(p FarmParameters, speedKmh float64) (FarmMetrics, error) {
	if err := p.WithDefaults().Validate(); err != nil {
		return FarmMetrics{}, err
	}
	fuelPerHa, err := FuelPerHectare(p.Operation, speedKmh)
	if err != nil {
		return FarmMetrics{}, err
	}

	m := FarmMetrics{
		HourlyCapacityPerTractor: HourlyCapacityPerTractor(speedKmh, p.ImplementWidthM, p.FieldEfficiency),
		FuelPerHectare:           fuelPerHa,
	}
	m.DailyCapacityPerTractor = m.HourlyCapacityPerTractor * p.WorkingHours
	m.TotalDailyCapacity = m.DailyCapacityPerTractor * float64(p.TractorCount)
	m.TotalFuelLiters = m.FuelPerHectare * m.TotalDailyCapacity
	m.TotalFuelCost = m.TotalFuelLiters * p.FuelCostPerLiter
	if m.TotalDailyCapacity > 0 {
		m.CostPerHectare = m.TotalFuelCost / m.TotalDailyCapacity
	}
	return m, nil
}
