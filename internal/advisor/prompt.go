package advisor

import (
	"fmt"
	"strings"
)

// BuildPrompt renders a summary into the advisory prompt. Only computed
// metrics go in; the text is stable so cached responses stay valid for
// identical inputs.
func BuildPrompt(s Summary) string {
	var b strings.Builder
	b.WriteString("Given the following farm operation parameters:\n")
	fmt.Fprintf(&b, "- Operation: %s\n", s.OperationName)
	fmt.Fprintf(&b, "- Optimization status: %s\n", s.Status)
	fmt.Fprintf(&b, "- Total tractors: %d\n", s.TractorCount)
	fmt.Fprintf(&b, "- Target area: %.2f hectares\n", s.TargetHectares)
	fmt.Fprintf(&b, "- Working hours per day: %.1f\n", s.WorkingHours)
	if s.OptimalSpeedKmh > 0 {
		fmt.Fprintf(&b, "- Selected operating speed: %.1f km/h\n", s.OptimalSpeedKmh)
	}
	if s.TimeRequiredHours > 0 {
		fmt.Fprintf(&b, "- Time required: %.2f hours\n", s.TimeRequiredHours)
	}
	if s.FuelRequired > 0 {
		fmt.Fprintf(&b, "- Fuel required: %.2f L (%.2f L/ha)\n", s.FuelRequired, s.FuelPerHectare)
	}
	if s.TotalCost > 0 {
		fmt.Fprintf(&b, "- Total fuel cost: %.2f (%.2f per hectare)\n", s.TotalCost, s.CostPerHectare)
	}
	if s.DailyFuelLiters > 0 {
		fmt.Fprintf(&b, "- Fuel requirements (daily, weekly, monthly): %.0fL, %.0fL, %.0fL\n",
			s.DailyFuelLiters, s.WeeklyFuelLiters, s.MonthlyFuelLiters)
	}
	if s.EstimatedDays > 0 {
		fmt.Fprintf(&b, "- Total estimated operational days: %.2f\n", s.EstimatedDays)
	}
	b.WriteString("Suggest an optimized operational plan in a short, actionable list.")
	return b.String()
}
