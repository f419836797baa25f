package optimize

// Status labels the outcome of an optimization routine.
// Keep these values stable; they are intended for JSON and CSV output.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusInfeasible Status = "infeasible"
	StatusUnbounded  Status = "unbounded"
)

// SpeedCandidate is one grid point of the speed sweep. The full ordered
// sequence is the primary artifact for "what happened" in a sweep and feeds
// the dashboard's diagnostic plots.
type SpeedCandidate struct {
	Index int

	SpeedKmh float64
	Feasible bool

	TimeRequiredHours float64
	FuelRequired      float64
	TotalCost         float64
	CostPerHectare    float64

	TotalHourlyCapacity float64
	TotalDailyCapacity  float64
	FuelPerHectare      float64

	// AchievableHectares is set only on infeasible candidates: the area the
	// fleet can actually cover in a full working day at this speed.
	AchievableHectares float64
}

// Outcome is the result of a speed sweep. When Status is StatusInfeasible,
// Best holds the last-evaluated (highest-speed) candidate as the best
// achievable reference point.
type Outcome struct {
	Status     Status
	Best       SpeedCandidate
	Candidates []SpeedCandidate
}

// FleetSizingResult reports the minimum integer fleet for a desired speed.
type FleetSizingResult struct {
	TractorsNeeded int

	TimeRequiredHours float64
	FuelRequired      float64
	TotalFuelCost     float64
	FuelPerHectare    float64

	HourlyCapacityPerTractor float64
	TotalHourlyCapacity      float64
}

// LPSolution is the result of one fleet LP solve. Numeric fields are only
// meaningful when Status is StatusOptimal.
type LPSolution struct {
	Status Status

	FuelUsed        float64
	HectaresCovered float64
	TractorsUsed    int

	// Objective is fuelCost*fuelUsed/(hectaresCovered+1) at the optimum.
	Objective float64
}
