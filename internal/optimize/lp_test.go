package optimize

import (
	"testing"

	"field-optimizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveFleetLP(t *testing.T) {
	t.Run("matches exhaustive enumeration", func(t *testing.T) {
		const (
			fuelCost       = 1379.0
			maxFuel        = 1000.0
			maxTractors    = 5
			coverage       = 5.4
			fuelPerTractor = 25.0
		)

		sol, err := SolveFleetLP(fuelCost, maxFuel, maxTractors, coverage, fuelPerTractor)
		require.NoError(t, err)
		require.Equal(t, StatusOptimal, sol.Status)

		bestT, bestObj := -1, 0.0
		for tr := 0; tr <= maxTractors; tr++ {
			fuel := float64(tr) * fuelPerTractor
			if fuel > maxFuel {
				continue
			}
			obj := fuelCost * fuel / (float64(tr)*coverage + 1)
			if bestT < 0 || obj < bestObj {
				bestT, bestObj = tr, obj
			}
		}
		assert.Equal(t, bestT, sol.TractorsUsed)
		assert.InDelta(t, bestObj, sol.Objective, 1e-9)
		assert.InDelta(t, float64(sol.TractorsUsed)*fuelPerTractor, sol.FuelUsed, 1e-9)
		assert.InDelta(t, float64(sol.TractorsUsed)*coverage, sol.HectaresCovered, 1e-9)
	})

	t.Run("idle fleet is the unconstrained optimum", func(t *testing.T) {
		// With a positive fuel cost the objective is zero at zero tractors
		// and positive everywhere else.
		sol, err := SolveFleetLP(1379, 1000, 5, 5.4, 25)
		require.NoError(t, err)
		assert.Equal(t, StatusOptimal, sol.Status)
		assert.Equal(t, 0, sol.TractorsUsed)
		assert.Zero(t, sol.Objective)
	})

	t.Run("free fuel ties break toward the smallest fleet", func(t *testing.T) {
		sol, err := SolveFleetLP(0, 60, 5, 5.4, 25)
		require.NoError(t, err)
		require.Equal(t, StatusOptimal, sol.Status)
		assert.Equal(t, 0, sol.TractorsUsed)
		assert.LessOrEqual(t, sol.FuelUsed, 60.0)
	})

	t.Run("negative fuel budget is infeasible", func(t *testing.T) {
		sol, err := SolveFleetLP(1379, -1, 5, 5.4, 25)
		require.NoError(t, err)
		assert.Equal(t, StatusInfeasible, sol.Status)
		assert.Equal(t, 0, sol.TractorsUsed)
	})

	t.Run("invalid bounds are domain errors", func(t *testing.T) {
		_, err := SolveFleetLP(-1, 1000, 5, 5.4, 25)
		require.Error(t, err)
		assert.True(t, model.IsDomainError(err))

		_, err = SolveFleetLP(1379, 1000, -1, 5.4, 25)
		require.Error(t, err)
		assert.True(t, model.IsDomainError(err))

		_, err = SolveFleetLP(1379, 1000, 5, -5.4, 25)
		require.Error(t, err)
		assert.True(t, model.IsDomainError(err))

		_, err = SolveFleetLP(1379, 1000, 5, 5.4, -25)
		require.Error(t, err)
		assert.True(t, model.IsDomainError(err))
	})
}
