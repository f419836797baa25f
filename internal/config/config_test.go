package config

import (
	"os"
	"path/filepath"
	"testing"

	"field-optimizer/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `farm:
  operation: ploughing
  tractor_count: 5
  target_hectares: 15
  working_hours: 8
  implement_width_m: 1.8
  field_efficiency: 0.75
  fuel_cost_per_liter: 1379
  min_speed_kmh: 3
  max_speed_kmh: 10
advisor:
  endpoint: https://api.deepseek.com
  model: deepseek-chat
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "ploughing", cfg.Farm.Operation)
	assert.Equal(t, 5, cfg.Farm.TractorCount)
	assert.Equal(t, "deepseek-chat", cfg.Advisor.Model)
	// The grid step defaults when the file omits it.
	assert.Equal(t, model.DefaultSpeedIncrementKmh, cfg.Farm.SpeedIncrementKmh)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	params, err := cfg.Farm.ToModelParams(catalog)
	require.NoError(t, err)
	assert.Equal(t, 35.0, params.Operation.BaseLitersPerHectare)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("missing operation", func(t *testing.T) {
		_, err := Load(writeConfig(t, "farm:\n  tractor_count: 5\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "farm.operation")
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, err := Load(writeConfig(t, "farm:\n  operation: mowing\n  tractor_count: 5\n  working_hours: 8\n  implement_width_m: 1.8\n  field_efficiency: 0.75\n  min_speed_kmh: 3\n  max_speed_kmh: 10\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mowing")
	})

	t.Run("invalid farm values", func(t *testing.T) {
		bad := "farm:\n  operation: ploughing\n  tractor_count: 5\n  working_hours: 8\n  implement_width_m: 1.8\n  field_efficiency: 1.5\n  min_speed_kmh: 3\n  max_speed_kmh: 10\n"
		_, err := Load(writeConfig(t, bad))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "field_efficiency")
	})
}

func TestLoadUncheckedResolvesOperationsFile(t *testing.T) {
	dir := t.TempDir()
	opsPath := filepath.Join(dir, "operations.yaml")
	ops := `operations:
  - key: mowing
    name: Mowing
    base_liters_per_hectare: 6
    reference_speed_kmh: 7
`
	require.NoError(t, os.WriteFile(opsPath, []byte(ops), 0o644))

	cfgPath := filepath.Join(dir, "config.yaml")
	cfgYAML := "operations_file: operations.yaml\nfarm:\n  operation: mowing\n  tractor_count: 2\n  target_hectares: 10\n  working_hours: 8\n  implement_width_m: 2\n  field_efficiency: 0.8\n  min_speed_kmh: 4\n  max_speed_kmh: 9\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgYAML), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)
	// Relative operations_file resolves against the config directory.
	assert.Equal(t, opsPath, cfg.OperationsFile)

	catalog, err := cfg.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Len())

	params, err := cfg.Farm.ToModelParams(catalog)
	require.NoError(t, err)
	assert.Equal(t, "mowing", params.Operation.Key)
}

func TestWriteAndLoadOperations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.yaml")
	in := model.DefaultCatalog().Profiles()

	require.NoError(t, WriteOperations(path, in))
	out, err := LoadOperations(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	t.Run("empty file", func(t *testing.T) {
		empty := filepath.Join(t.TempDir(), "empty.yaml")
		require.NoError(t, os.WriteFile(empty, []byte("operations: []\n"), 0o644))
		_, err := LoadOperations(empty)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no operations")
	})
}

func TestMergeFarm(t *testing.T) {
	base := FarmConfig{
		Operation:        "ploughing",
		TractorCount:     5,
		TargetHectares:   15,
		WorkingHours:     8,
		ImplementWidthM:  1.8,
		FieldEfficiency:  0.75,
		FuelCostPerLiter: 1379,
		MinSpeedKmh:      3,
		MaxSpeedKmh:      10,
	}

	out := MergeFarm(base, FarmConfig{Operation: "harrowing", TargetHectares: 40})
	assert.Equal(t, "harrowing", out.Operation)
	assert.Equal(t, 40.0, out.TargetHectares)
	// Untouched fields come from the base.
	assert.Equal(t, 5, out.TractorCount)
	assert.Equal(t, 1379.0, out.FuelCostPerLiter)

	// Zero overrides keep the base value.
	assert.Equal(t, base, MergeFarm(base, FarmConfig{}))
}
