package analysis

// Working-calendar assumptions for fuel projections.
const (
	WorkingDaysPerWeek  = 6
	WorkingDaysPerMonth = 25
)

// FlatFuelPerHectare is a coarse planning rate (L/ha) used for long-range
// fuel budgeting when no operation-specific rate is available.
const FlatFuelPerHectare = 2.0

// Implement identifies an implement class with a known daily coverage rate.
type Implement string

const (
	ImplementPlough    Implement = "plough"
	ImplementHarrow    Implement = "harrow"
	ImplementRidger    Implement = "ridger"
	ImplementHarvester Implement = "harvester"
)

// dailyCoverageRates is hectares per 8-hour day per implement unit:
// 1 m disc plough, 22-disc offset harrow, 4-disc ridger, Ruilong Plus++
// harvester.
var dailyCoverageRates = map[Implement]float64{
	ImplementPlough:    4,
	ImplementHarrow:    10.75,
	ImplementRidger:    6,
	ImplementHarvester: 9.6,
}

// DailyCoverage returns the total daily area coverage (ha) for count units of
// one implement class. Unknown implements contribute zero.
func DailyCoverage(impl Implement, count int) float64 {
	return dailyCoverageRates[impl] * float64(count)
}

// FuelProjection extends a daily fuel requirement across the working
// calendar.
type FuelProjection struct {
	DailyLiters   float64
	WeeklyLiters  float64
	MonthlyLiters float64
}

// ProjectFuel budgets fuel for a fleet covering the given area each day at
// the flat planning rate.
func ProjectFuel(tractorCount int, hectares float64) FuelProjection {
	daily := float64(tractorCount) * hectares * FlatFuelPerHectare
	return FuelProjection{
		DailyLiters:   daily,
		WeeklyLiters:  daily * WorkingDaysPerWeek,
		MonthlyLiters: daily * WorkingDaysPerMonth,
	}
}

// ImplementCounts is the shed inventory used for an operational-day estimate.
type ImplementCounts struct {
	Ploughs    int
	Harrows    int
	Ridgers    int
	Harvesters int
}

// OperationalPlan reports per-implement daily coverage and the estimated
// number of days to work a total area with everything running in parallel.
type OperationalPlan struct {
	PloughingHaPerDay  float64
	HarrowingHaPerDay  float64
	RidgingHaPerDay    float64
	HarvestingHaPerDay float64

	TotalHaPerDay float64

	// EstimatedDays is zero when the inventory covers no area at all.
	EstimatedDays float64
}

// EstimatePlan computes the daily coverage of an implement inventory and how
// many working days it needs for totalHectares.
func EstimatePlan(counts ImplementCounts, totalHectares float64) OperationalPlan {
	p := OperationalPlan{
		PloughingHaPerDay:  DailyCoverage(ImplementPlough, counts.Ploughs),
		HarrowingHaPerDay:  DailyCoverage(ImplementHarrow, counts.Harrows),
		RidgingHaPerDay:    DailyCoverage(ImplementRidger, counts.Ridgers),
		HarvestingHaPerDay: DailyCoverage(ImplementHarvester, counts.Harvesters),
	}
	p.TotalHaPerDay = p.PloughingHaPerDay + p.HarrowingHaPerDay + p.RidgingHaPerDay + p.HarvestingHaPerDay
	if p.TotalHaPerDay > 0 {
		p.EstimatedDays = totalHectares / p.TotalHaPerDay
	}
	return p
}
