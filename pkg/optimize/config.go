// Package optimize implements the population-based stochastic search
// over candidate layouts: tournament selection with elitism, room-level
// crossover, geometric mutation operators, and elitist truncation, plus
// a parallel variant that fans the search budget out across independent
// workers.
package optimize

import "github.com/matzehuels/planforge/pkg/generate"

// Config tunes the search loop. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	MaxIterations  int     `toml:"max_iterations" json:"max_iterations,omitempty"`
	PopulationSize int     `toml:"population_size" json:"population_size,omitempty"`
	MutationRate   float64 `toml:"mutation_rate" json:"mutation_rate,omitempty"`
	CrossoverRate  float64 `toml:"crossover_rate" json:"crossover_rate,omitempty"`

	// Annealing schedule. The temperature is decayed every iteration
	// and reported for diagnostics, but selection does not consume it;
	// see [Optimizer.Temperature].
	TemperatureStart float64 `toml:"temperature_start" json:"temperature_start,omitempty"`
	TemperatureEnd   float64 `toml:"temperature_end" json:"temperature_end,omitempty"`
	CoolingRate      float64 `toml:"cooling_rate" json:"cooling_rate,omitempty"`

	// EliteRatio is the fraction of the population carried through
	// unchanged each iteration.
	EliteRatio float64 `toml:"elite_ratio" json:"elite_ratio,omitempty"`

	// Termination. The search stops after MaxNoImprovement iterations
	// without a new best, when the variance of the trailing best-score
	// window drops below ConvergenceThreshold, or at MaxIterations.
	ConvergenceThreshold float64 `toml:"convergence_threshold" json:"convergence_threshold,omitempty"`
	MaxNoImprovement     int     `toml:"max_no_improvement" json:"max_no_improvement,omitempty"`

	// Generation holds the layout-generator parameters used for the
	// initial population and for replacement mutations.
	Generation generate.Params `toml:"generation" json:"generation,omitempty"`
}

// DefaultConfig returns the stock search parameters.
func DefaultConfig() Config {
	return Config{
		MaxIterations:  10000,
		PopulationSize: 50,
		MutationRate:   0.3,
		CrossoverRate:  0.7,

		TemperatureStart: 100.0,
		TemperatureEnd:   0.01,
		CoolingRate:      0.995,

		EliteRatio: 0.2,

		ConvergenceThreshold: 1e-6,
		MaxNoImprovement:     100,

		Generation: generate.DefaultParams(),
	}
}
