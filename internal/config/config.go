package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"field-optimizer/internal/model"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load an operation catalog from a separate YAML file
	// (e.g. examples/operations.yaml). When unset the built-in catalog is
	// used.
	OperationsFile string        `yaml:"operations_file"`
	Farm           FarmConfig    `yaml:"farm"`
	Advisor        AdvisorConfig `yaml:"advisor"`
}

type FarmConfig struct {
	Operation         string  `yaml:"operation"`
	TractorCount      int     `yaml:"tractor_count"`
	TargetHectares    float64 `yaml:"target_hectares"`
	WorkingHours      float64 `yaml:"working_hours"`
	ImplementWidthM   float64 `yaml:"implement_width_m"`
	FieldEfficiency   float64 `yaml:"field_efficiency"`
	FuelCostPerLiter  float64 `yaml:"fuel_cost_per_liter"`
	MinSpeedKmh       float64 `yaml:"min_speed_kmh"`
	MaxSpeedKmh       float64 `yaml:"max_speed_kmh"`
	SpeedIncrementKmh float64 `yaml:"speed_increment_kmh"`
}

type AdvisorConfig struct {
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Default the grid step so configs can stay concise.
	if c.Farm.SpeedIncrementKmh == 0 {
		c.Farm.SpeedIncrementKmh = model.DefaultSpeedIncrementKmh
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without validating it. Useful for
// debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// Prefer interpreting a relative operations_file as relative to the
	// config file directory, falling back to the path as given.
	if c.OperationsFile != "" && !filepath.IsAbs(c.OperationsFile) {
		cand := filepath.Join(filepath.Dir(path), c.OperationsFile)
		if _, err := os.Stat(cand); err == nil {
			c.OperationsFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Farm.Operation == "" {
		return errors.New("farm.operation is required")
	}
	catalog, err := c.Catalog()
	if err != nil {
		return err
	}
	// Validate farm settings by constructing model.FarmParameters.
	if _, err := c.Farm.ToModelParams(catalog); err != nil {
		return fmt.Errorf("farm config invalid: %w", err)
	}
	return nil
}

// Catalog returns the operation catalog this config selects: the built-in
// one, or the contents of operations_file when set.
func (c *Config) Catalog() (*model.Catalog, error) {
	if c.OperationsFile == "" {
		return model.DefaultCatalog(), nil
	}
	profiles, err := LoadOperations(c.OperationsFile)
	if err != nil {
		return nil, err
	}
	return model.NewCatalog(profiles)
}

// ToModelParams resolves the operation key against the catalog and builds
// the core parameter aggregate.
func (f FarmConfig) ToModelParams(catalog *model.Catalog) (model.FarmParameters, error) {
	op, err := catalog.Profile(f.Operation)
	if err != nil {
		return model.FarmParameters{}, err
	}
	p := model.FarmParameters{
		TractorCount:      f.TractorCount,
		TargetHectares:    f.TargetHectares,
		WorkingHours:      f.WorkingHours,
		ImplementWidthM:   f.ImplementWidthM,
		FieldEfficiency:   f.FieldEfficiency,
		FuelCostPerLiter:  f.FuelCostPerLiter,
		Operation:         op,
		MinSpeedKmh:       f.MinSpeedKmh,
		MaxSpeedKmh:       f.MaxSpeedKmh,
		SpeedIncrementKmh: f.SpeedIncrementKmh,
	}.WithDefaults()
	if err := p.Validate(); err != nil {
		return model.FarmParameters{}, err
	}
	return p, nil
}

type operationsFileWrapper struct {
	Operations []model.OperationProfile `yaml:"operations"`
}

// LoadOperations reads an operation catalog YAML file.
func LoadOperations(path string) ([]model.OperationProfile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var w operationsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, err
	}
	if len(w.Operations) == 0 {
		return nil, fmt.Errorf("operations file %s contains no operations", path)
	}
	return w.Operations, nil
}

// WriteOperations writes a catalog YAML file, the inverse of LoadOperations.
func WriteOperations(path string, profiles []model.OperationProfile) error {
	raw, err := yaml.Marshal(operationsFileWrapper{Operations: profiles})
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// MergeFarm overlays non-zero fields from override onto base. Used when a
// request supplies partial parameters on top of a configured farm.
func MergeFarm(base, override FarmConfig) FarmConfig {
	out := base
	if override.Operation != "" {
		out.Operation = override.Operation
	}
	if override.TractorCount != 0 {
		out.TractorCount = override.TractorCount
	}
	if override.TargetHectares != 0 {
		out.TargetHectares = override.TargetHectares
	}
	if override.WorkingHours != 0 {
		out.WorkingHours = override.WorkingHours
	}
	if override.ImplementWidthM != 0 {
		out.ImplementWidthM = override.ImplementWidthM
	}
	if override.FieldEfficiency != 0 {
		out.FieldEfficiency = override.FieldEfficiency
	}
	if override.FuelCostPerLiter != 0 {
		out.FuelCostPerLiter = override.FuelCostPerLiter
	}
	if override.MinSpeedKmh != 0 {
		out.MinSpeedKmh = override.MinSpeedKmh
	}
	if override.MaxSpeedKmh != 0 {
		out.MaxSpeedKmh = override.MaxSpeedKmh
	}
	if override.SpeedIncrementKmh != 0 {
		out.SpeedIncrementKmh = override.SpeedIncrementKmh
	}
	return out
}
