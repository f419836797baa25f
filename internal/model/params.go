package model

// DefaultSpeedIncrementKmh is the grid step used when a request leaves the
// increment unset.
const DefaultSpeedIncrementKmh = 0.1

// FarmParameters is the input aggregate for one optimization request.
// Units:
// - speeds: km/h
// - ImplementWidthM: metres
// - TargetHectares: ha
// - WorkingHours: hours per day
// - FieldEfficiency: fraction (0,1]
// - FuelCostPerLiter: currency per litre
//
// Immutable during a run; construct a fresh value per request.
type FarmParameters struct {
	TractorCount     int
	TargetHectares   float64
	WorkingHours     float64
	ImplementWidthM  float64
	FieldEfficiency  float64
	FuelCostPerLiter float64

	Operation OperationProfile

	MinSpeedKmh       float64
	MaxSpeedKmh       float64
	SpeedIncrementKmh float64
}

// WithDefaults returns a copy with the default speed increment applied when
// the increment is unset.
func (p FarmParameters) WithDefaults() FarmParameters {
	if p.SpeedIncrementKmh == 0 {
		p.SpeedIncrementKmh = DefaultSpeedIncrementKmh
	}
	return p
}

// Validate fails fast with a DomainError on the first invalid field.
// A non-positive TargetHectares is deliberately allowed: it is trivially
// feasible at every speed.
func (p FarmParameters) Validate() error {
	if p.TractorCount <= 0 {
		return newDomainError("tractor_count", "must be > 0 (got %d)", p.TractorCount)
	}
	if p.WorkingHours <= 0 {
		return newDomainError("working_hours", "must be > 0 (got %g)", p.WorkingHours)
	}
	if p.ImplementWidthM <= 0 {
		return newDomainError("implement_width_m", "must be > 0 (got %g)", p.ImplementWidthM)
	}
	if p.FieldEfficiency <= 0 || p.FieldEfficiency > 1 {
		return newDomainError("field_efficiency", "must be in (0, 1] (got %g)", p.FieldEfficiency)
	}
	if p.FuelCostPerLiter < 0 {
		return newDomainError("fuel_cost_per_liter", "must be >= 0 (got %g)", p.FuelCostPerLiter)
	}
	if err := p.Operation.Validate(); err != nil {
		return err
	}
	if p.MinSpeedKmh <= 0 {
		return newDomainError("min_speed_kmh", "must be > 0 (got %g)", p.MinSpeedKmh)
	}
	if p.MaxSpeedKmh <= 0 {
		return newDomainError("max_speed_kmh", "must be > 0 (got %g)", p.MaxSpeedKmh)
	}
	if p.MinSpeedKmh > p.MaxSpeedKmh {
		return newDomainError("min_speed_kmh", "must be <= max_speed_kmh (%g > %g)", p.MinSpeedKmh, p.MaxSpeedKmh)
	}
	if p.SpeedIncrementKmh <= 0 {
		return newDomainError("speed_increment_kmh", "must be > 0 (got %g)", p.SpeedIncrementKmh)
	}
	return nil
}
