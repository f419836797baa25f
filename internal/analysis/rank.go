package analysis

import (
	"sort"

	"field-optimizer/internal/model"
	"field-optimizer/internal/optimize"
)

// RankedOperation pairs an operation with its optimized outcome for a fixed
// farm setup.
type RankedOperation struct {
	Operation model.OperationProfile
	Outcome   optimize.Outcome
}

// RankOperationsByCost runs the speed optimizer for every catalog operation
// against the same farm parameters and sorts ascending by the selected total
// cost. Infeasible operations sort after feasible ones. The candidate
// sequences are dropped from the ranked outcomes to keep them light.
func RankOperationsByCost(catalog *model.Catalog, params model.FarmParameters) ([]RankedOperation, error) {
	out := make([]RankedOperation, 0, catalog.Len())
	for _, op := range catalog.Profiles() {
		p := params
		p.Operation = op
		res, err := optimize.OptimizeSpeed(p)
		if err != nil {
			return nil, err
		}
		out = append(out, RankedOperation{
			Operation: op,
			Outcome:   optimize.Outcome{Status: res.Status, Best: res.Best},
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Outcome, out[j].Outcome
		if (a.Status == optimize.StatusOptimal) != (b.Status == optimize.StatusOptimal) {
			return a.Status == optimize.StatusOptimal
		}
		return a.Best.TotalCost < b.Best.TotalCost
	})
	return out, nil
}
