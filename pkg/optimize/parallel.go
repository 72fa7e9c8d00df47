package optimize

import (
	"runtime"
	"sync"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// Parallel fans a search out over several independent optimizers, each
// with its own seed and a proportional share of the iteration and
// population budgets, then keeps the best result across workers.
type Parallel struct {
	cfg         Config
	eval        EvalFunc
	workers     int
	generations int
}

// NewParallel creates a parallel search over workers goroutines. A
// workers value below 1 defaults to [runtime.NumCPU].
func NewParallel(cfg Config, eval EvalFunc, workers int) *Parallel {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Parallel{cfg: cfg, eval: eval, workers: workers}
}

// Workers returns the goroutine count used per search.
func (p *Parallel) Workers() int { return p.workers }

// Generations returns how many generations the winning worker of the
// last [Parallel.Optimize] call completed.
func (p *Parallel) Generations() int { return p.generations }

// Optimize runs the workers to completion and returns the layout that
// scores highest under a fresh final evaluation. Each worker receives
// MaxIterations/workers iterations and PopulationSize/workers
// candidates, floored at one each.
func (p *Parallel) Optimize(footprint geom.Rect, requirements map[plan.RoomType]int, seed uint64) *plan.Layout {
	workerCfg := p.cfg
	workerCfg.MaxIterations = max(1, p.cfg.MaxIterations/p.workers)
	workerCfg.PopulationSize = max(1, p.cfg.PopulationSize/p.workers)

	results := make([]*plan.Layout, p.workers)
	generations := make([]int, p.workers)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opt := New(workerCfg, p.eval, seed+uint64(i)*0x9e3779b97f4a7c15)
			results[i] = opt.Optimize(footprint, requirements)
			generations[i] = opt.Generations()
		}(i)
	}
	wg.Wait()

	var best *plan.Layout
	bestScore := 0.0
	p.generations = 0
	for i, layout := range results {
		if layout == nil {
			continue
		}
		score := p.eval(layout)
		if best == nil || score > bestScore {
			best = layout
			bestScore = score
			p.generations = generations[i]
		}
	}
	return best
}
