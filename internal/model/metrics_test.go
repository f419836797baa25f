package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFarmMetrics(t *testing.T) {
	p := validParams(t)

	m, err := ComputeFarmMetrics(p, 5)
	require.NoError(t, err)

	assert.InDelta(t, 0.675, m.HourlyCapacityPerTractor, 1e-12)
	assert.InDelta(t, 5.4, m.DailyCapacityPerTractor, 1e-12)
	assert.InDelta(t, 27.0, m.TotalDailyCapacity, 1e-12)
	// Ploughing at its reference speed burns the base rate.
	assert.InDelta(t, 35.0, m.FuelPerHectare, 1e-12)
	assert.InDelta(t, 35.0*27.0, m.TotalFuelLiters, 1e-9)
	assert.InDelta(t, 35.0*27.0*1379, m.TotalFuelCost, 1e-6)
	assert.InDelta(t, 35.0*1379, m.CostPerHectare, 1e-9)
}

func TestComputeFarmMetricsErrors(t *testing.T) {
	p := validParams(t)

	_, err := ComputeFarmMetrics(p, 0)
	require.Error(t, err)
	assert.True(t, IsDomainError(err))

	p.TractorCount = 0
	_, err = ComputeFarmMetrics(p, 5)
	require.Error(t, err)
	assert.True(t, IsDomainError(err))
}
