package optimize

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteCandidatesCSV writes the full candidate sequence of a sweep, one row
// per sampled speed.
func WriteCandidatesCSV(path string, candidates []SpeedCandidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"index",
		"speed_kmh",
		"feasible",
		"time_required_hours",
		"fuel_required_l",
		"total_cost",
		"cost_per_hectare",
		"total_hourly_capacity_ha",
		"total_daily_capacity_ha",
		"fuel_per_hectare_l",
		"achievable_hectares",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, c := range candidates {
		row := []string{
			strconv.Itoa(c.Index),
			fmtFloat(c.SpeedKmh),
			strconv.FormatBool(c.Feasible),
			fmtFloat(c.TimeRequiredHours),
			fmtFloat(c.FuelRequired),
			fmtFloat(c.TotalCost),
			fmtFloat(c.CostPerHectare),
			fmtFloat(c.TotalHourlyCapacity),
			fmtFloat(c.TotalDailyCapacity),
			fmtFloat(c.FuelPerHectare),
			fmtFloat(c.AchievableHectares),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
