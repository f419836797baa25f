package analysis

import (
	"math"
	"sort"
	"time"

	"field-optimizer/internal/data"
)

// FuelUsageSummary is a per-operation summary of a fuel log, used by the
// dashboard to compare modelled consumption against what was actually burned.
type FuelUsageSummary struct {
	Operation string

	StartDate time.Time
	EndDate   time.Time

	Count int

	TotalLiters   float64
	TotalHectares float64

	MinLitersPerHa  float64
	MaxLitersPerHa  float64
	MeanLitersPerHa float64
	P05LitersPerHa  float64
	P95LitersPerHa  float64
}

// SummarizeFuelUsage computes rate statistics over one operation's log
// records. Records with no recorded area are counted in the totals but
// excluded from the rate statistics.
func SummarizeFuelUsage(records []data.FuelLogRecord) FuelUsageSummary {
	s := FuelUsageSummary{}
	if len(records) == 0 {
		return s
	}
	s.Operation = records[0].Operation
	s.Count = len(records)
	s.StartDate = records[0].Date
	s.EndDate = records[0].Date

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	rates := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Date.Before(s.StartDate) {
			s.StartDate = r.Date
		}
		if r.Date.After(s.EndDate) {
			s.EndDate = r.Date
		}
		s.TotalLiters += r.Liters
		s.TotalHectares += r.Hectares

		rate := r.LitersPerHectare()
		if rate <= 0 {
			continue
		}
		rates = append(rates, rate)
		sum += rate
		if rate < minv {
			minv = rate
		}
		if rate > maxv {
			maxv = rate
		}
	}
	if len(rates) == 0 {
		return s
	}
	sort.Float64s(rates)
	s.MinLitersPerHa = minv
	s.MaxLitersPerHa = maxv
	s.MeanLitersPerHa = sum / float64(len(rates))
	s.P05LitersPerHa = percentileSorted(rates, 0.05)
	s.P95LitersPerHa = percentileSorted(rates, 0.95)
	return s
}

// SummarizeByOperation summarizes a whole log keyed by operation.
func SummarizeByOperation(records []data.FuelLogRecord) map[string]FuelUsageSummary {
	out := map[string]FuelUsageSummary{}
	for op, recs := range data.GroupByOperation(records) {
		out[op] = SummarizeFuelUsage(recs)
	}
	return out
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
