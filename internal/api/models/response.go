package models

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SpeedCandidate is one grid point of a sweep.
type SpeedCandidate struct {
	Index    int     `json:"index"`
	SpeedKmh float64 `json:"speed_kmh"`
	Feasible bool    `json:"feasible"`

	TimeRequiredHours float64 `json:"time_required_hours"`
	FuelRequired      float64 `json:"fuel_required"`
	TotalCost         float64 `json:"total_cost"`
	CostPerHectare    float64 `json:"cost_per_hectare"`

	TotalHourlyCapacity float64 `json:"total_hourly_capacity"`
	TotalDailyCapacity  float64 `json:"total_daily_capacity"`
	FuelPerHectare      float64 `json:"fuel_per_hectare"`

	AchievableHectares float64 `json:"achievable_hectares,omitempty"`
}

// OptimizeResponse is the result of one speed sweep.
type OptimizeResponse struct {
	Status     string           `json:"status"`
	Best       SpeedCandidate   `json:"best"`
	Candidates []SpeedCandidate `json:"candidates,omitempty"`
}

// ComparisonResult contains the outcome for one named variation.
type ComparisonResult struct {
	Name   string         `json:"name"`
	Status string         `json:"status"`
	Best   SpeedCandidate `json:"best"`
}

// CompareResponse is the result of a comparison run.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// FleetResponse reports the minimum fleet for a desired speed.
type FleetResponse struct {
	TractorsNeeded int `json:"tractors_needed"`

	TimeRequiredHours float64 `json:"time_required_hours"`
	FuelRequired      float64 `json:"fuel_required"`
	TotalFuelCost     float64 `json:"total_fuel_cost"`
	FuelPerHectare    float64 `json:"fuel_per_hectare"`

	HourlyCapacityPerTractor float64 `json:"hourly_capacity_per_tractor"`
	TotalHourlyCapacity      float64 `json:"total_hourly_capacity"`
}

// LPResponse reports one fleet LP solve.
type LPResponse struct {
	Status          string  `json:"status"`
	FuelUsed        float64 `json:"fuel_used,omitempty"`
	HectaresCovered float64 `json:"hectares_covered,omitempty"`
	TractorsUsed    int     `json:"tractors_used,omitempty"`
	Objective       float64 `json:"objective,omitempty"`
}

// MetricsResponse is the full-day metric summary at a fixed speed.
type MetricsResponse struct {
	HourlyCapacityPerTractor float64 `json:"hourly_capacity_per_tractor"`
	DailyCapacityPerTractor  float64 `json:"daily_capacity_per_tractor"`
	TotalDailyCapacity       float64 `json:"total_daily_capacity"`
	FuelPerHectare           float64 `json:"fuel_per_hectare"`
	TotalFuelLiters          float64 `json:"total_fuel_liters"`
	TotalFuelCost            float64 `json:"total_fuel_cost"`
	CostPerHectare           float64 `json:"cost_per_hectare"`
}

// ProjectionResponse combines fuel projections with an operational-day
// estimate.
type ProjectionResponse struct {
	DailyFuelLiters   float64 `json:"daily_fuel_liters"`
	WeeklyFuelLiters  float64 `json:"weekly_fuel_liters"`
	MonthlyFuelLiters float64 `json:"monthly_fuel_liters"`

	PloughingHaPerDay  float64 `json:"ploughing_ha_per_day"`
	HarrowingHaPerDay  float64 `json:"harrowing_ha_per_day"`
	RidgingHaPerDay    float64 `json:"ridging_ha_per_day"`
	HarvestingHaPerDay float64 `json:"harvesting_ha_per_day"`

	TotalHaPerDay float64 `json:"total_ha_per_day"`
	EstimatedDays float64 `json:"estimated_days"`
}

// Ranking is one row of the operation ranking.
type Ranking struct {
	Rank           int     `json:"rank"`
	Operation      string  `json:"operation"`
	Name           string  `json:"name"`
	Status         string  `json:"status"`
	SpeedKmh       float64 `json:"speed_kmh"`
	TotalCost      float64 `json:"total_cost"`
	CostPerHectare float64 `json:"cost_per_hectare"`
}

// RankResponse is the full operation ranking.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// SuggestResponse carries the advisory text.
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}
