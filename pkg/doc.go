// Package pkg provides the core libraries for Planforge floor-plan search.
//
// # Overview
//
// Planforge searches for good residential floor plans: typed rooms are
// placed into a rectangular footprint, candidate layouts are scored across
// five quality dimensions, and a population-based optimizer improves them.
// The pkg directory is organized into three main areas:
//
//  1. Domain (geom, plan, generate, evaluate, optimize) - geometry,
//     spatial entities, layout generation, scoring, and search
//  2. Infrastructure (cache, errors, observability, buildinfo) - run
//     caching, error taxonomy, instrumentation hooks, build metadata
//  3. Orchestration (pipeline, planfile) - the search → score pipeline
//     and the JSON layout format
//
// # Architecture
//
// The typical data flow through Planforge:
//
//	Footprint + room program
//	         ↓
//	    [generate] package (sample candidate layouts)
//	         ↓
//	    [optimize] package (selection, crossover, mutation)
//	         ↓
//	    [evaluate] package (five-dimension scoring)
//	         ↓
//	    [planfile] package (JSON layout output)
//
// # Quick Start
//
// Run the full pipeline through a Runner:
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Width:  20,
//	    Height: 15,
//	    Rooms:  map[plan.RoomType]int{plan.LivingRoom: 1, plan.Bedroom: 2},
//	})
//
// Or drive the optimizer directly:
//
//	evaluator := evaluate.New(evaluate.DefaultConfig())
//	opt := optimize.New(optimize.DefaultConfig(), evaluator.Evaluate, seed)
//	layout := opt.Optimize(geom.Rect{Width: 20, Height: 15}, rooms)
package pkg
