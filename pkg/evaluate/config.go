// Package evaluate scores candidate layouts along five architectural
// quality dimensions: space efficiency, lighting, ventilation,
// circulation, and comfort.
//
// Each dimension is a pure function of the layout and the [Config]; the
// weighted sum is the layout's fitness. Weights are taken as given and
// are not normalized by the engine, so callers control the scale of the
// total. Every scorer short-circuits degenerate geometry (zero wall
// area, zero corridor length, empty layouts) to a defined default rather
// than dividing by zero; evaluation never panics.
//
// An [Evaluator] holds only immutable configuration, so one instance may
// be shared by concurrent optimizer workers.
package evaluate

// Config holds the per-dimension weights and the tuning constants of the
// individual scorers. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	// Dimension weights. They are applied as-is and need not sum to 1.
	SpaceEfficiencyWeight float64 `toml:"space_efficiency_weight" json:"space_efficiency_weight,omitempty"`
	LightingWeight        float64 `toml:"lighting_weight" json:"lighting_weight,omitempty"`
	VentilationWeight     float64 `toml:"ventilation_weight" json:"ventilation_weight,omitempty"`
	CirculationWeight     float64 `toml:"circulation_weight" json:"circulation_weight,omitempty"`
	ComfortWeight         float64 `toml:"comfort_weight" json:"comfort_weight,omitempty"`

	// Space efficiency.
	IdealUtilizationRate float64 `toml:"ideal_utilization_rate" json:"ideal_utilization_rate,omitempty"`

	// Lighting.
	MaxDepthFromWindow float64 `toml:"max_depth_from_window" json:"max_depth_from_window,omitempty"`
	WindowAreaRatio    float64 `toml:"window_area_ratio" json:"window_area_ratio,omitempty"`

	// Ventilation.
	CrossVentilationBonus float64 `toml:"cross_ventilation_bonus" json:"cross_ventilation_bonus,omitempty"`

	// Circulation.
	MaxCirculationDistance float64 `toml:"max_circulation_distance" json:"max_circulation_distance,omitempty"`

	// Comfort.
	SocialAreaBonus float64 `toml:"social_area_bonus" json:"social_area_bonus,omitempty"`
}

// DefaultConfig returns the stock evaluation parameters. The default
// weights sum to 1 so the total stays comparable to the per-dimension
// scores, but nothing depends on that.
func DefaultConfig() Config {
	return Config{
		SpaceEfficiencyWeight: 0.25,
		LightingWeight:        0.20,
		VentilationWeight:     0.15,
		CirculationWeight:     0.20,
		ComfortWeight:         0.20,

		IdealUtilizationRate: 0.75,

		MaxDepthFromWindow: 6.0,
		WindowAreaRatio:    0.15,

		CrossVentilationBonus: 1.2,

		MaxCirculationDistance: 15.0,

		SocialAreaBonus: 1.1,
	}
}
