// Package pipeline provides the core layout pipeline for Planforge.
//
// This package implements the complete search → score pipeline that can be
// used by CLI and API components. By centralizing this logic, we ensure
// consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Search: Run the population-based optimizer over randomly generated
//     candidate layouts until it converges or exhausts its budget
//  2. Score: Break the winning layout's fitness down per dimension
//
// Finished runs are cached keyed by their full input, so repeating an
// identical invocation returns the stored layout without re-searching.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Width:  20,
//	    Height: 15,
//	    Rooms:  map[plan.RoomType]int{plan.LivingRoom: 1, plan.Bedroom: 2},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	layout := result.Layout
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/evaluate"
	"github.com/matzehuels/planforge/pkg/optimize"
	"github.com/matzehuels/planforge/pkg/plan"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultWorkers is the default worker count. Runs are single-threaded
	// unless parallelism is requested explicitly.
	DefaultWorkers = 1

	// TTLRun is how long finished runs stay in the cache.
	TTLRun = 24 * time.Hour
)

// DefaultRooms is the room program used when none is given: a small
// family apartment.
func DefaultRooms() map[plan.RoomType]int {
	return map[plan.RoomType]int{
		plan.LivingRoom: 1,
		plan.Bedroom:    2,
		plan.Kitchen:    1,
		plan.Bathroom:   1,
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Footprint dimensions in meters.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Rooms maps each room type to the number of instances wanted.
	Rooms map[plan.RoomType]int `json:"rooms,omitempty"`

	// Search tunes the optimizer. Zero-valued fields are filled from
	// [optimize.DefaultConfig].
	Search optimize.Config `json:"search,omitempty"`

	// Evaluation tunes the scorer. A zero-valued config is replaced by
	// [evaluate.DefaultConfig].
	Evaluation evaluate.Config `json:"evaluation,omitempty"`

	Seed    uint64 `json:"seed,omitempty"`
	Workers int    `json:"workers,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this invocation.
	RunID string `json:"run_id"`

	// Layout is the best layout found by the search.
	Layout *plan.Layout `json:"layout"`

	// Scores breaks the layout's fitness down per dimension, including
	// the weighted total under [evaluate.Total].
	Scores map[evaluate.Dimension]evaluate.Result `json:"scores"`

	// Stats contains timing and size information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks whether the run came from the cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomsRequested int           `json:"rooms_requested"`
	RoomsPlaced    int           `json:"rooms_placed"`
	Generations    int           `json:"generations"`
	SearchTime     time.Duration `json:"search_time"`
	ScoreTime      time.Duration `json:"score_time"`
}

// CacheInfo tracks cache hits for the pipeline.
type CacheInfo struct {
	RunHit bool `json:"run_hit"` // Whether the layout came from the cache
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if err := errors.ValidateFootprint(o.Width, o.Height); err != nil {
		return err
	}

	if len(o.Rooms) == 0 {
		o.Rooms = DefaultRooms()
	}
	total := 0
	for roomType, count := range o.Rooms {
		if err := errors.ValidateRoomCount(string(roomType), count); err != nil {
			return err
		}
		total += count
	}
	if total == 0 {
		return errors.New(errors.ErrCodeInvalidRequirement, "at least one room is required")
	}

	o.SetSearchDefaults()
	o.SetEvaluationDefaults()

	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if o.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers cannot be negative")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// SetSearchDefaults fills unset search parameters from the stock config.
func (o *Options) SetSearchDefaults() {
	defaults := optimize.DefaultConfig()
	if o.Search.MaxIterations == 0 {
		o.Search.MaxIterations = defaults.MaxIterations
	}
	if o.Search.PopulationSize == 0 {
		o.Search.PopulationSize = defaults.PopulationSize
	}
	if o.Search.MutationRate == 0 {
		o.Search.MutationRate = defaults.MutationRate
	}
	if o.Search.CrossoverRate == 0 {
		o.Search.CrossoverRate = defaults.CrossoverRate
	}
	if o.Search.TemperatureStart == 0 {
		o.Search.TemperatureStart = defaults.TemperatureStart
	}
	if o.Search.TemperatureEnd == 0 {
		o.Search.TemperatureEnd = defaults.TemperatureEnd
	}
	if o.Search.CoolingRate == 0 {
		o.Search.CoolingRate = defaults.CoolingRate
	}
	if o.Search.EliteRatio == 0 {
		o.Search.EliteRatio = defaults.EliteRatio
	}
	if o.Search.ConvergenceThreshold == 0 {
		o.Search.ConvergenceThreshold = defaults.ConvergenceThreshold
	}
	if o.Search.MaxNoImprovement == 0 {
		o.Search.MaxNoImprovement = defaults.MaxNoImprovement
	}
	if o.Search.Generation.WallThickness == 0 {
		o.Search.Generation.WallThickness = defaults.Generation.WallThickness
	}
	if o.Search.Generation.GridStep == 0 {
		o.Search.Generation.GridStep = defaults.Generation.GridStep
	}
	if o.Search.Generation.CorridorChance == 0 {
		o.Search.Generation.CorridorChance = defaults.Generation.CorridorChance
	}
}

// SetEvaluationDefaults fills in the stock evaluation config when none was
// given. A config with any field already set is left alone, so a caller can
// zero out individual dimensions deliberately.
func (o *Options) SetEvaluationDefaults() {
	zero := evaluate.Config{}
	if o.Evaluation == zero {
		o.Evaluation = evaluate.DefaultConfig()
	}
}

// RoomsRequested returns the total number of rooms asked for.
func (o *Options) RoomsRequested() int {
	total := 0
	for _, count := range o.Rooms {
		total += count
	}
	return total
}
