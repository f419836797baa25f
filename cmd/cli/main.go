package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"field-optimizer/internal/analysis"
	"field-optimizer/internal/config"
	"field-optimizer/internal/model"
	"field-optimizer/internal/optimize"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "fleet":
		cmdFleet(os.Args[2:])
	case "lp":
		cmdLP(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --config examples/config.yaml --out results/candidates.csv")
	fmt.Println("  cli fleet --config examples/config.yaml --speed 5.0 --target 100")
	fmt.Println("  cli lp --fuel-cost 1379 --max-fuel 1000 --max-tractors 5 --coverage 5.4 --fuel-per-tractor 25")
	fmt.Println("  cli rank --config examples/config.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - optimize sweeps the configured speed range and writes one CSV row per candidate")
	fmt.Println("  - rank runs the sweep for every cataloged operation and sorts by total cost")
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "results/candidates.csv", "Output CSV path")
	_ = fs.Parse(args)

	params := mustParams(*cfgPath)

	outcome, err := optimize.OptimizeSpeed(params)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := optimize.WriteCandidatesCSV(*outPath, outcome.Candidates); err != nil {
		panic(err)
	}

	fmt.Printf("Wrote %d rows to %s\n", len(outcome.Candidates), *outPath)
	best := outcome.Best
	switch outcome.Status {
	case optimize.StatusOptimal:
		fmt.Printf("Optimal speed=%.2f km/h fuel=%.2f L cost=%.2f time=%.2f h\n",
			best.SpeedKmh, best.FuelRequired, best.TotalCost, best.TimeRequiredHours)
	default:
		fmt.Printf("Infeasible: best achievable %.2f ha at %.2f km/h in %.2f h\n",
			best.AchievableHectares, best.SpeedKmh, best.TimeRequiredHours)
	}
}

func cmdFleet(args []string) {
	fs := flag.NewFlagSet("fleet", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	speed := fs.Float64("speed", 0, "Desired working speed (km/h)")
	target := fs.Float64("target", 0, "Target area (hectares); defaults to the configured target")
	_ = fs.Parse(args)

	params := mustParams(*cfgPath)
	if *target <= 0 {
		*target = params.TargetHectares
	}

	res, err := optimize.MinimumFleetForSpeed(*target, *speed, params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Tractors needed: %d\n", res.TractorsNeeded)
	fmt.Printf("Time=%.2f h Fuel=%.2f L Cost=%.2f\n", res.TimeRequiredHours, res.FuelRequired, res.TotalFuelCost)
	fmt.Printf("Capacity per tractor=%.3f ha/h, fleet=%.3f ha/h\n", res.HourlyCapacityPerTractor, res.TotalHourlyCapacity)
}

func cmdLP(args []string) {
	fs := flag.NewFlagSet("lp", flag.ExitOnError)
	fuelCost := fs.Float64("fuel-cost", 0, "Fuel cost per liter")
	maxFuel := fs.Float64("max-fuel", 0, "Fuel budget (liters)")
	maxTractors := fs.Int("max-tractors", 0, "Upper bound on tractor count")
	coverage := fs.Float64("coverage", 0, "Daily coverage per tractor (hectares)")
	fuelPerTractor := fs.Float64("fuel-per-tractor", 0, "Daily fuel use per tractor (liters)")
	_ = fs.Parse(args)

	sol, err := optimize.SolveFleetLP(*fuelCost, *maxFuel, *maxTractors, *coverage, *fuelPerTractor)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Status: %s\n", sol.Status)
	if sol.Status == optimize.StatusOptimal {
		fmt.Printf("Tractors=%d Fuel=%.2f L Hectares=%.2f Objective=%.4f\n",
			sol.TractorsUsed, sol.FuelUsed, sol.HectaresCovered, sol.Objective)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	_ = fs.Parse(args)

	cfg := mustConfig(*cfgPath)
	catalog, err := cfg.Catalog()
	if err != nil {
		panic(err)
	}
	params, err := cfg.Farm.ToModelParams(catalog)
	if err != nil {
		panic(err)
	}

	ranked, err := analysis.RankOperationsByCost(catalog, params)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%-4s %-22s %-12s %-10s %-12s %-10s\n", "rank", "operation", "status", "speed", "cost", "fuel")
	for i, r := range ranked {
		best := r.Outcome.Best
		fmt.Printf("%-4d %-22s %-12s %-10.2f %-12.2f %-10.2f\n",
			i+1, r.Operation.Key, r.Outcome.Status, best.SpeedKmh, best.TotalCost, best.FuelRequired)
	}
}

func mustConfig(path string) *config.Config {
	if path == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func mustParams(path string) model.FarmParameters {
	cfg := mustConfig(path)
	catalog, err := cfg.Catalog()
	if err != nil {
		panic(err)
	}
	params, err := cfg.Farm.ToModelParams(catalog)
	if err != nil {
		panic(err)
	}
	return params
}
