package models

// FarmParams is the request-side shape of the core parameter aggregate.
// All field checks live in the core so partial overlays (compare variations)
// can bind with most fields unset; an absent operation key fails catalog
// lookup instead.
type FarmParams struct {
	Operation         string  `json:"operation"`
	TractorCount      int     `json:"tractor_count"`
	TargetHectares    float64 `json:"target_hectares"`
	WorkingHours      float64 `json:"working_hours"`
	ImplementWidthM   float64 `json:"implement_width_m"`
	FieldEfficiency   float64 `json:"field_efficiency"`
	FuelCostPerLiter  float64 `json:"fuel_cost_per_liter"`
	MinSpeedKmh       float64 `json:"min_speed_kmh"`
	MaxSpeedKmh       float64 `json:"max_speed_kmh"`
	SpeedIncrementKmh float64 `json:"speed_increment_kmh,omitempty"`
}

// OptimizeRequest represents the request body for a speed sweep.
type OptimizeRequest struct {
	Farm    FarmParams      `json:"farm" binding:"required"`
	Options OptimizeOptions `json:"options,omitempty"`
}

// OptimizeOptions controls the response payload.
type OptimizeOptions struct {
	IncludeCandidates bool `json:"include_candidates,omitempty"`
	LimitCandidates   int  `json:"limit_candidates,omitempty"` // 0 = all
}

// CompareRequest runs the optimizer over named variations of a base
// parameter set.
type CompareRequest struct {
	BaseFarm   FarmParams      `json:"base_farm" binding:"required"`
	Variations []FarmVariation `json:"variations" binding:"required"`
}

// FarmVariation is one named parameter overlay.
type FarmVariation struct {
	Name string     `json:"name" binding:"required"`
	Farm FarmParams `json:"farm"`
}

// FleetRequest represents the request body for fleet sizing at a fixed
// speed. The tractor count and speed bounds inside Farm are ignored.
type FleetRequest struct {
	TargetHectares float64    `json:"target_hectares"`
	SpeedKmh       float64    `json:"speed_kmh"`
	Farm           FarmParams `json:"farm" binding:"required"`
}

// LPRequest represents the request body for the fleet LP solve.
type LPRequest struct {
	FuelCost           float64 `json:"fuel_cost"`
	MaxFuel            float64 `json:"max_fuel"`
	MaxTractors        int     `json:"max_tractors"`
	CoveragePerTractor float64 `json:"coverage_per_tractor"`
	FuelPerTractor     float64 `json:"fuel_per_tractor"`
}

// MetricsRequest asks for full-day farm metrics at a fixed speed.
type MetricsRequest struct {
	SpeedKmh float64    `json:"speed_kmh"`
	Farm     FarmParams `json:"farm" binding:"required"`
}

// ProjectionRequest asks for fuel projections and an operational-day
// estimate for an implement inventory.
type ProjectionRequest struct {
	TractorCount   int     `json:"tractor_count"`
	TargetHectares float64 `json:"target_hectares"`

	Ploughs    int `json:"ploughs"`
	Harrows    int `json:"harrows"`
	Ridgers    int `json:"ridgers"`
	Harvesters int `json:"harvesters"`
}

// RankRequest represents query parameters for ranking catalog operations by
// optimized cost under one shared farm setup.
type RankRequest struct {
	TractorCount      int     `form:"tractor_count" binding:"required"`
	TargetHectares    float64 `form:"target_hectares" binding:"required"`
	WorkingHours      float64 `form:"working_hours" binding:"required"`
	ImplementWidthM   float64 `form:"implement_width_m" binding:"required"`
	FieldEfficiency   float64 `form:"field_efficiency" binding:"required"`
	FuelCostPerLiter  float64 `form:"fuel_cost_per_liter"`
	MinSpeedKmh       float64 `form:"min_speed_kmh" binding:"required"`
	MaxSpeedKmh       float64 `form:"max_speed_kmh" binding:"required"`
	SpeedIncrementKmh float64 `form:"speed_increment_kmh"`
	Limit             int     `form:"limit"` // 0 = all
}

// SuggestSummary carries the already-computed metrics a suggestion is built
// from. Mirrors advisor.Summary.
type SuggestSummary struct {
	OperationName string `json:"operation_name" binding:"required"`
	Status        string `json:"status"`

	TractorCount   int     `json:"tractor_count"`
	TargetHectares float64 `json:"target_hectares"`
	WorkingHours   float64 `json:"working_hours"`

	OptimalSpeedKmh   float64 `json:"optimal_speed_kmh"`
	TimeRequiredHours float64 `json:"time_required_hours"`
	FuelRequired      float64 `json:"fuel_required"`
	FuelPerHectare    float64 `json:"fuel_per_hectare"`
	TotalCost         float64 `json:"total_cost"`
	CostPerHectare    float64 `json:"cost_per_hectare"`

	DailyFuelLiters   float64 `json:"daily_fuel_liters"`
	WeeklyFuelLiters  float64 `json:"weekly_fuel_liters"`
	MonthlyFuelLiters float64 `json:"monthly_fuel_liters"`
	EstimatedDays     float64 `json:"estimated_days"`
}

// SuggestRequest represents the request body for an AI suggestion. The
// advisor API key is passed through from the client, never stored
// server-side.
type SuggestRequest struct {
	APIKey  string         `json:"api_key" binding:"required"`
	Summary SuggestSummary `json:"summary" binding:"required"`
}
