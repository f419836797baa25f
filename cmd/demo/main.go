package main

import (
	"flag"
	"fmt"
	"math"

	"field-optimizer/internal/analysis"
	"field-optimizer/internal/config"
	"field-optimizer/internal/model"
	"field-optimizer/internal/optimize"
)

// Demo:
// - Build farm parameters for a ploughing job (defaults or --config)
// - Sweep the speed range and print every candidate
// - Size the minimum fleet for the optimal speed
// - Project monthly fuel demand for the matching fleet
func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	outCSV := flag.String("out", "", "Optional path to write candidates CSV (e.g. results/candidates.csv)")
	flag.Parse()

	catalog := model.DefaultCatalog()

	// Defaults (can be overridden via --config).
	ploughing, err := catalog.Profile("ploughing")
	if err != nil {
		panic(err)
	}
	params := model.FarmParameters{
		TractorCount:    5,
		TargetHectares:  15,
		WorkingHours:    8,
		ImplementWidthM: 1.8,
		FieldEfficiency: 0.75,
		FuelCostPerLiter: 1379,
		Operation:       ploughing,
		MinSpeedKmh:     3,
		MaxSpeedKmh:     10,
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		catalog, err = cfg.Catalog()
		if err != nil {
			panic(err)
		}
		params, err = cfg.Farm.ToModelParams(catalog)
		if err != nil {
			panic(err)
		}
	}

	outcome, err := optimize.OptimizeSpeed(params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Operation=%s  tractors=%d  target=%.1f ha  hours=%.1f\n\n",
		params.Operation.Name, params.TractorCount, params.TargetHectares, params.WorkingHours)

	fmt.Printf("%-6s %-8s %-10s %-10s %-10s %-12s %-10s\n",
		"speed", "feasible", "time(h)", "fuel(L)", "cost", "cost/ha", "ha/day")
	for _, c := range outcome.Candidates {
		fmt.Printf("%-6.1f %-8t %-10.2f %-10.2f %-12.2f %-10.2f %-10.2f\n",
			c.SpeedKmh, c.Feasible, c.TimeRequiredHours, c.FuelRequired, c.TotalCost,
			c.CostPerHectare, c.TotalDailyCapacity)
	}

	best := outcome.Best
	fmt.Println()
	switch outcome.Status {
	case optimize.StatusOptimal:
		fmt.Printf("Optimal: %.1f km/h, fuel=%.2f L, cost=%.2f, time=%.2f h\n",
			best.SpeedKmh, best.FuelRequired, best.TotalCost, best.TimeRequiredHours)
	default:
		fmt.Printf("Infeasible target. Best achievable %.2f ha at %.1f km/h over a full day.\n",
			best.AchievableHectares, best.SpeedKmh)
	}

	fleet, err := optimize.MinimumFleetForSpeed(params.TargetHectares, best.SpeedKmh, params)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Minimum fleet at %.1f km/h: %d tractors (%.2f h, %.2f L)\n",
		best.SpeedKmh, fleet.TractorsNeeded, fleet.TimeRequiredHours, fleet.FuelRequired)

	proj := analysis.ProjectFuel(fleet.TractorsNeeded, params.TargetHectares)
	days := math.Ceil(params.TargetHectares / best.TotalDailyCapacity)
	fmt.Printf("Projection: %.1f L/day, %.1f L/week, %.1f L/month (~%.0f working days for the job)\n",
		proj.DailyLiters, proj.WeeklyLiters, proj.MonthlyLiters, days)

	if *outCSV != "" {
		if err := optimize.WriteCandidatesCSV(*outCSV, outcome.Candidates); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
