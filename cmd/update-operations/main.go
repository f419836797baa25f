package main

import (
	"flag"
	"fmt"
	"log"

	"field-optimizer/internal/analysis"
	"field-optimizer/internal/config"
	"field-optimizer/internal/data"
	"field-optimizer/internal/model"
)

// update-operations recalibrates per-operation base fuel rates from a fuel
// log CSV and writes an operations YAML for the API/CLI to load. Operations
// with no log coverage keep their seed rates.
func main() {
	var (
		logPath    = flag.String("log", "", "Path to fuel log CSV")
		seedFile   = flag.String("seed", "", "Path to existing operations YAML to use as seed")
		outputPath = flag.String("output", "operations.yaml", "Output file path")
		minRecords = flag.Int("min-records", 3, "Minimum log records per operation before overriding its rate")
	)
	flag.Parse()

	if *logPath == "" {
		log.Fatal("--log is required")
	}

	// Seed from YAML if given, otherwise from the built-in catalog.
	var profiles []model.OperationProfile
	if *seedFile != "" {
		loaded, err := config.LoadOperations(*seedFile)
		if err != nil {
			log.Fatalf("Failed to load seed operations: %v", err)
		}
		profiles = loaded
		fmt.Printf("Loaded %d seed operations from %s\n", len(profiles), *seedFile)
	} else {
		profiles = model.DefaultCatalog().Profiles()
		fmt.Printf("Using %d built-in operations as seed\n", len(profiles))
	}

	records, err := data.LoadFuelLogCSV(*logPath)
	if err != nil {
		log.Fatalf("Failed to load fuel log: %v", err)
	}
	fmt.Printf("Loaded %d fuel log records from %s\n", len(records), *logPath)

	summaries := analysis.SummarizeByOperation(records)

	updated := 0
	for i := range profiles {
		s, ok := summaries[profiles[i].Key]
		if !ok {
			fmt.Printf("  - no log records for %s, keeping %.2f L/ha\n",
				profiles[i].Key, profiles[i].BaseLitersPerHectare)
			continue
		}
		if s.Count < *minRecords {
			fmt.Printf("  - only %d records for %s (need %d), keeping %.2f L/ha\n",
				s.Count, profiles[i].Key, *minRecords, profiles[i].BaseLitersPerHectare)
			continue
		}
		if s.MeanLitersPerHa <= 0 {
			fmt.Printf("  - no usable rates for %s, keeping %.2f L/ha\n",
				profiles[i].Key, profiles[i].BaseLitersPerHectare)
			continue
		}
		fmt.Printf("  ✓ %s: %.2f -> %.2f L/ha (%d records, %s to %s)\n",
			profiles[i].Key, profiles[i].BaseLitersPerHectare, s.MeanLitersPerHa,
			s.Count, s.StartDate.Format("2006-01-02"), s.EndDate.Format("2006-01-02"))
		profiles[i].BaseLitersPerHectare = s.MeanLitersPerHa
		updated++
	}

	// Validate the result before writing it.
	if _, err := model.NewCatalog(profiles); err != nil {
		log.Fatalf("Recalibrated catalog is invalid: %v", err)
	}

	if err := config.WriteOperations(*outputPath, profiles); err != nil {
		log.Fatalf("Failed to save operations: %v", err)
	}

	fmt.Printf("Updated %d/%d operations, saved to %s\n", updated, len(profiles), *outputPath)
}
