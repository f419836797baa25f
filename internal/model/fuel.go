package model

import "math"

// speedExponent models drawbar/PTO resistance growing faster than linearly
// with speed. It is an empirical approximation, not a physical law; treat it
// as a tunable constant.
const speedExponent = 1.5

// FuelPerHectare returns the fuel draw (L/ha) for an operation at the given
// operating speed (km/h). At the profile's reference speed the result is
// exactly the profile's base rate.
//
// Deterministic, no side effects, safe to call concurrently.
func FuelPerHectare(p OperationProfile, speedKmh float64) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if speedKmh <= 0 {
		return 0, newDomainError("speed_kmh", "must be > 0 (got %g)", speedKmh)
	}
	factor := math.Pow(speedKmh/p.ReferenceSpeedKmh, speedExponent)
	return p.BaseLitersPerHectare * factor, nil
}
