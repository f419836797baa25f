package advisor

import "context"

// Summary is the structured, already-computed input to a suggestion request.
// The advisor never sees raw user input; only metrics the core produced.
type Summary struct {
	OperationName string `json:"operation_name"`
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

// Client generates a free-text operational suggestion from a structured
// summary. Implementations are best-effort advisors; a failed call must
// never influence core computation results.
type Client interface {
	Suggest(ctx context.Context, s Summary) (string, error)
}
