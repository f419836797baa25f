package model

// The constant 10 converts km/h x m x fraction into ha/h. It is tied to the
// kilometre/metre/hectare unit system; rescale it when targeting other units.
const hectaresPerHourDivisor = 10

// HourlyCapacityPerTractor returns the effective work rate (ha/h) of one
// tractor. Degenerate inputs (zero speed, width, or efficiency) yield zero
// capacity; that is a valid boundary, not an error.
func HourlyCapacityPerTractor(speedKmh, implementWidthM, fieldEfficiency float64) float64 {
	return speedKmh * implementWidthM * fieldEfficiency / hectaresPerHourDivisor
}

// DailyCapacityPerTractor returns the area (ha) one tractor covers in a
// working day.
func DailyCapacityPerTractor(speedKmh, implementWidthM, fieldEfficiency, workingHours float64) float64 {
	return HourlyCapacityPerTractor(speedKmh, implementWidthM, fieldEfficiency) * workingHours
}

// TotalDailyCapacity returns the area (ha) a fleet of n identical tractors
// covers in a working day.
func TotalDailyCapacity(speedKmh, implementWidthM, fieldEfficiency, workingHours float64, tractorCount int) float64 {
	return DailyCapacityPerTractor(speedKmh, implementWidthM, fieldEfficiency, workingHours) * float64(tractorCount)
}
