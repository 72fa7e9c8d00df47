package optimize

import (
	"math"
	"math/rand/v2"
	"slices"

	"github.com/matzehuels/planforge/pkg/generate"
	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// EvalFunc scores a layout. The optimizer calls it once per candidate
// per iteration; implementations must be safe for concurrent use when
// shared with [Parallel].
type EvalFunc func(*plan.Layout) float64

// tournamentSize is the number of candidates sampled per parent pick.
const tournamentSize = 3

// historyWindow is the trailing best-score window examined by the
// variance termination check.
const historyWindow = 100

// candidate pairs a layout with its cached score.
type candidate struct {
	layout *plan.Layout
	score  float64
}

// Optimizer runs a single-threaded population search. It is bound to
// one random source and must not be shared across goroutines; use
// [Parallel] to run several instances at once.
type Optimizer struct {
	cfg  Config
	eval EvalFunc
	gen  *generate.Generator
	rng  *rand.Rand

	best          *plan.Layout
	bestScore     float64
	generations   int
	noImprovement int
	history       []float64
	temperature   float64
}

// New creates an optimizer with a PCG source seeded from seed. The
// generator shares the optimizer's random stream so a fixed seed
// reproduces the whole search.
func New(cfg Config, eval EvalFunc, seed uint64) *Optimizer {
	if cfg.PopulationSize < 1 {
		cfg.PopulationSize = 1
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc909))
	return &Optimizer{
		cfg:       cfg,
		eval:      eval,
		gen:       generate.NewWithRand(cfg.Generation, rng),
		rng:       rng,
		bestScore: math.Inf(-1),
	}
}

// BestScore returns the best fitness seen so far.
func (o *Optimizer) BestScore() float64 { return o.bestScore }

// Generations returns how many iterations the last search ran.
func (o *Optimizer) Generations() int { return o.generations }

// ScoreHistory returns the best-score-so-far sequence, one entry per
// iteration. The sequence is non-decreasing.
func (o *Optimizer) ScoreHistory() []float64 { return o.history }

// Temperature returns the current annealing temperature. It decays
// geometrically each iteration but is not consulted by selection,
// crossover, or mutation; it exists for diagnostics only.
func (o *Optimizer) Temperature() float64 { return o.temperature }

// Optimize searches for a high-scoring layout of the given footprint
// and room requirements. It always returns some best layout, even when
// every candidate is under-provisioned or overlapping; callers can run
// plan.Layout.Validate on the result.
func (o *Optimizer) Optimize(footprint geom.Rect, requirements map[plan.RoomType]int) *plan.Layout {
	population := o.initPopulation(footprint, requirements)
	sortByScore(population)

	if len(population) > 0 {
		o.best = population[0].layout.Clone()
		o.bestScore = population[0].score
	}

	o.temperature = o.cfg.TemperatureStart

	for iteration := 0; iteration < o.cfg.MaxIterations; iteration++ {
		parents := o.selectParents(population)
		offspring := o.makeOffspring(parents, footprint, requirements)

		population = append(population, offspring...)
		sortByScore(population)
		population = population[:min(len(population), o.cfg.PopulationSize)]

		if population[0].score > o.bestScore {
			o.best = population[0].layout.Clone()
			o.bestScore = population[0].score
			o.noImprovement = 0
		} else {
			o.noImprovement++
		}
		o.history = append(o.history, o.bestScore)

		o.temperature *= o.cfg.CoolingRate

		if o.converged() {
			break
		}
		o.generations++
	}

	return o.best
}

// initPopulation generates and scores the starting candidates.
func (o *Optimizer) initPopulation(footprint geom.Rect, requirements map[plan.RoomType]int) []candidate {
	population := make([]candidate, 0, o.cfg.PopulationSize)
	for range o.cfg.PopulationSize {
		layout := o.gen.Generate(footprint, requirements)
		layout.Score = o.eval(layout)
		population = append(population, candidate{layout: layout, score: layout.Score})
	}
	return population
}

// selectParents fills the non-elite parent slots by tournament
// selection with replacement, then appends copies of the elites.
func (o *Optimizer) selectParents(population []candidate) []*plan.Layout {
	eliteCount := int(float64(o.cfg.PopulationSize) * o.cfg.EliteRatio)
	parentCount := o.cfg.PopulationSize - eliteCount

	parents := make([]*plan.Layout, 0, o.cfg.PopulationSize)
	for range parentCount {
		winner := population[o.rng.IntN(len(population))]
		for range tournamentSize - 1 {
			challenger := population[o.rng.IntN(len(population))]
			if challenger.score > winner.score {
				winner = challenger
			}
		}
		parents = append(parents, winner.layout.Clone())
	}
	for i := 0; i < eliteCount && i < len(population); i++ {
		parents = append(parents, population[i].layout.Clone())
	}
	return parents
}

// makeOffspring fills a full population's worth of offspring slots.
// Each slot tries crossover with probability CrossoverRate, otherwise
// mutates a random parent. A failed crossover discards the slot and
// retries through the loop.
func (o *Optimizer) makeOffspring(parents []*plan.Layout, footprint geom.Rect, requirements map[plan.RoomType]int) []candidate {
	offspring := make([]candidate, 0, o.cfg.PopulationSize)
	for len(offspring) < o.cfg.PopulationSize {
		var child *plan.Layout
		if len(parents) >= 2 && o.rng.Float64() < o.cfg.CrossoverRate {
			a := parents[o.rng.IntN(len(parents))]
			b := parents[o.rng.IntN(len(parents))]
			child = o.crossover(a, b, footprint, requirements)
		} else if len(parents) > 0 {
			child = o.mutate(parents[o.rng.IntN(len(parents))], footprint, requirements)
		} else {
			child = o.gen.Generate(footprint, requirements)
		}
		if child == nil {
			continue
		}
		child.Score = o.eval(child)
		offspring = append(offspring, candidate{layout: child, score: child.Score})
	}
	return offspring
}

// converged reports whether a termination condition other than the
// iteration budget has been met.
func (o *Optimizer) converged() bool {
	if o.noImprovement >= o.cfg.MaxNoImprovement {
		return true
	}
	if len(o.history) >= historyWindow {
		window := o.history[len(o.history)-historyWindow:]
		if variance(window) < o.cfg.ConvergenceThreshold {
			return true
		}
	}
	return false
}

func sortByScore(population []candidate) {
	slices.SortFunc(population, func(a, b candidate) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		default:
			return 0
		}
	})
}

func variance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var mean float64
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
