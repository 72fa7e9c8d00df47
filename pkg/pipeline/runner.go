package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/evaluate"
	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/observability"
	"github.com/matzehuels/planforge/pkg/optimize"
	"github.com/matzehuels/planforge/pkg/plan"
	"github.com/matzehuels/planforge/pkg/planfile"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
	}
}

// Execute runs the complete search → score pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{
		RunID: uuid.NewString(),
	}
	result.Stats.RoomsRequested = opts.RoomsRequested()

	// Stage 1: Search (or cache lookup)
	searchStart := time.Now()
	layout, runHit := r.searchWithCache(ctx, opts)
	result.Layout = layout
	result.Stats.SearchTime = time.Since(searchStart)
	result.Stats.RoomsPlaced = len(layout.Rooms)
	result.CacheInfo.RunHit = runHit

	// Cached layouts come back through JSON, where numbers are float64.
	switch g := layout.Meta["generations"].(type) {
	case int:
		result.Stats.Generations = g
	case float64:
		result.Stats.Generations = int(g)
	}

	opts.Logger.Info("search finished",
		"rooms", len(layout.Rooms),
		"score", layout.Score,
		"cached", runHit,
		"duration", result.Stats.SearchTime)

	if result.Stats.RoomsPlaced < result.Stats.RoomsRequested {
		opts.Logger.Warn("layout holds fewer rooms than requested",
			"requested", result.Stats.RoomsRequested,
			"placed", result.Stats.RoomsPlaced)
	}

	// Stage 2: Score
	scoreStart := time.Now()
	observability.Pipeline().OnEvaluateStart(ctx, len(layout.Rooms))
	evaluator := evaluate.New(opts.Evaluation)
	result.Scores = evaluator.EvaluateDetailed(layout)
	result.Stats.ScoreTime = time.Since(scoreStart)
	total := result.Scores[evaluate.Total].Weighted
	layout.Score = total
	observability.Pipeline().OnEvaluateComplete(ctx, total, result.Stats.ScoreTime, nil)

	layout.Meta["run_id"] = result.RunID
	layout.Meta["seed"] = opts.Seed

	opts.Logger.Info("scored layout",
		"score", total,
		"duration", result.Stats.ScoreTime)

	return result, nil
}

// Score re-scores an existing layout without running a search. This backs
// the evaluate command, which imports layouts produced elsewhere.
func (r *Runner) Score(ctx context.Context, layout *plan.Layout, cfg evaluate.Config) map[evaluate.Dimension]evaluate.Result {
	zero := evaluate.Config{}
	if cfg == zero {
		cfg = evaluate.DefaultConfig()
	}
	observability.Pipeline().OnEvaluateStart(ctx, len(layout.Rooms))
	start := time.Now()
	scores := evaluate.New(cfg).EvaluateDetailed(layout)
	observability.Pipeline().OnEvaluateComplete(ctx, scores[evaluate.Total].Weighted, time.Since(start), nil)
	return scores
}

// searchWithCache returns a cached layout for identical inputs, or runs the
// search and stores the winner.
func (r *Runner) searchWithCache(ctx context.Context, opts Options) (*plan.Layout, bool) {
	cacheKey := cache.RunKey(opts.Width, opts.Height, opts.Rooms, opts.Search, opts.Evaluation, opts.Seed, opts.Workers)

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if layout, err := planfile.ReadJSON(bytes.NewReader(data)); err == nil {
				observability.Cache().OnCacheHit(ctx, "run")
				return layout, true
			}
		}
		observability.Cache().OnCacheMiss(ctx, "run")
	}

	layout := r.search(ctx, opts)

	var buf bytes.Buffer
	if err := planfile.WriteJSON(layout, &buf); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, buf.Bytes(), TTLRun); err == nil {
			observability.Cache().OnCacheSet(ctx, "run", buf.Len())
		}
	}

	return layout, false
}

// search runs the optimizer, fanning out over workers when more than one
// is configured.
func (r *Runner) search(ctx context.Context, opts Options) *plan.Layout {
	footprint := geom.Rect{Width: opts.Width, Height: opts.Height}
	evaluator := evaluate.New(opts.Evaluation)

	observability.Pipeline().OnSearchStart(ctx, opts.Search.MaxIterations, opts.Search.PopulationSize)
	start := time.Now()

	var layout *plan.Layout
	generations := 0
	if opts.Workers > 1 {
		parallel := optimize.NewParallel(opts.Search, evaluator.Evaluate, opts.Workers)
		layout = parallel.Optimize(footprint, opts.Rooms, opts.Seed)
		generations = parallel.Generations()
	} else {
		opt := optimize.New(opts.Search, evaluator.Evaluate, opts.Seed)
		layout = opt.Optimize(footprint, opts.Rooms)
		generations = opt.Generations()
	}
	layout.Meta["generations"] = generations

	observability.Pipeline().OnSearchComplete(ctx, generations, layout.Score, time.Since(start), nil)
	return layout
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
