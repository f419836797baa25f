package model

// OperationProfile defines the fuel/speed characteristics of one field task.
// BaseLitersPerHectare is calibrated at ReferenceSpeedKmh; FuelRange and
// SpeedRange are display-only hints for the dashboard.
type OperationProfile struct {
	Key                  string  `json:"key" yaml:"key"`
	Name                 string  `json:"name" yaml:"name"`
	BaseLitersPerHectare float64 `json:"base_liters_per_hectare" yaml:"base_liters_per_hectare"`
	ReferenceSpeedKmh    float64 `json:"reference_speed_kmh" yaml:"reference_speed_kmh"`
	FuelRange            string  `json:"fuel_range" yaml:"fuel_range"`
	SpeedRange           string  `json:"speed_range" yaml:"speed_range"`
	Remarks              string  `json:"remarks" yaml:"remarks"`
}

func (p OperationProfile) Validate() error {
	if p.Key == "" {
		return newDomainError("operation.key", "must not be empty")
	}
	if p.ReferenceSpeedKmh <= 0 {
		return newDomainError("operation.reference_speed_kmh", "must be > 0 (got %g)", p.ReferenceSpeedKmh)
	}
	if p.BaseLitersPerHectare < 0 {
		return newDomainError("operation.base_liters_per_hectare", "must be >= 0 (got %g)", p.BaseLitersPerHectare)
	}
	return nil
}

// defaultProfiles is the built-in operation catalog. Rates are L/ha at the
// reference speed; ranges reflect typical drawbar/PTO load for the task.
var defaultProfiles = []OperationProfile{
	{
		Key:                  "ploughing",
		Name:                 "Ploughing (Moldboard/Disc)",
		BaseLitersPerHectare: 35,
		ReferenceSpeedKmh:    5,
		FuelRange:            "25-45",
		SpeedRange:           "4-6",
		Remarks:              "Deep tillage; slower speeds reduce slippage and wear.",
	},
	{
		Key:                  "harrowing",
		Name:                 "Harrowing (Disc/Tine)",
		BaseLitersPerHectare: 15,
		ReferenceSpeedKmh:    7,
		FuelRange:            "10-20",
		SpeedRange:           "6-8",
		Remarks:              "Second pass after ploughing; moderate depth.",
	},
	{
		Key:                  "rotavating",
		Name:                 "Rotavating/Rotary Tillage",
		BaseLitersPerHectare: 27.5,
		ReferenceSpeedKmh:    4,
		FuelRange:            "20-35",
		SpeedRange:           "3-5",
		Remarks:              "High PTO load; speed kept low for effective soil pulverization.",
	},
	{
		Key:                  "ridging",
		Name:                 "Ridging/Bed Formation",
		BaseLitersPerHectare: 15,
		ReferenceSpeedKmh:    6,
		FuelRange:            "10-20",
		SpeedRange:           "5-7",
		Remarks:              "Depends on ridge height and implement width.",
	},
	{
		Key:                  "planting",
		Name:                 "Planting/Seeding",
		BaseLitersPerHectare: 5.5,
		ReferenceSpeedKmh:    5,
		FuelRange:            "3-8",
		SpeedRange:           "4-6",
		Remarks:              "Controlled, uniform seed placement.",
	},
	{
		Key:                  "spraying",
		Name:                 "Spraying",
		BaseLitersPerHectare: 2,
		ReferenceSpeedKmh:    8,
		FuelRange:            "1-3",
		SpeedRange:           "6-10",
		Remarks:              "High speed possible; low drawbar load.",
	},
	{
		Key:                  "fertilizer_spreading",
		Name:                 "Fertilizer Spreading",
		BaseLitersPerHectare: 2,
		ReferenceSpeedKmh:    10,
		FuelRange:            "1-3",
		SpeedRange:           "8-12",
		Remarks:              "Uniform distribution; wide swath width increases efficiency.",
	},
	{
		Key:                  "harvesting",
		Name:                 "Harvesting (Combine)",
		BaseLitersPerHectare: 22.5,
		ReferenceSpeedKmh:    4.5,
		FuelRange:            "15-30",
		SpeedRange:           "3-6",
		Remarks:              "Slower speeds maintain threshing efficiency and reduce grain loss.",
	},
	{
		Key:                  "transport",
		Name:                 "Transport (Field to Yard)",
		BaseLitersPerHectare: 12.5,
		ReferenceSpeedKmh:    15,
		FuelRange:            "5-20",
		SpeedRange:           "10-20",
		Remarks:              "Depends on load, terrain, and road condition.",
	},
}

// Catalog is an immutable, ordered collection of operation profiles.
// Built once at process start; safe for concurrent reads.
type Catalog struct {
	profiles []OperationProfile
	byKey    map[string]OperationProfile
}

// NewCatalog builds a catalog from the given profiles, preserving order.
func NewCatalog(profiles []OperationProfile) (*Catalog, error) {
	if len(profiles) == 0 {
		return nil, newDomainError("catalog", "must contain at least one operation profile")
	}
	byKey := make(map[string]OperationProfile, len(profiles))
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, dup := byKey[p.Key]; dup {
			return nil, newDomainError("catalog", "duplicate operation key %q", p.Key)
		}
		byKey[p.Key] = p
	}
	cp := make([]OperationProfile, len(profiles))
	copy(cp, profiles)
	return &Catalog{profiles: cp, byKey: byKey}, nil
}

// DefaultCatalog returns the built-in nine-operation catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultProfiles)
	if err != nil {
		// The built-in table is validated by tests; this is unreachable.
		panic(err)
	}
	return c
}

// Profiles returns the profiles in catalog order.
func (c *Catalog) Profiles() []OperationProfile {
	out := make([]OperationProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Profile looks up an operation by key.
func (c *Catalog) Profile(key string) (OperationProfile, error) {
	p, ok := c.byKey[key]
	if !ok {
		return OperationProfile{}, newDomainError("operation", "unknown operation key %q", key)
	}
	return p, nil
}

func (c *Catalog) Len() int { return len(c.profiles) }
