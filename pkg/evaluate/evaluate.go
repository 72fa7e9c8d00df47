package evaluate

import "github.com/matzehuels/planforge/pkg/plan"

// Dimension names one quality axis of the evaluation.
type Dimension string

// The five scored dimensions plus the aggregate entry returned by
// [Evaluator.EvaluateDetailed].
const (
	SpaceEfficiency Dimension = "space_efficiency"
	Lighting        Dimension = "lighting"
	Ventilation     Dimension = "ventilation"
	Circulation     Dimension = "circulation"
	Comfort         Dimension = "comfort"
	Total           Dimension = "total"
)

// Dimensions lists the scored dimensions in report order.
var Dimensions = []Dimension{SpaceEfficiency, Lighting, Ventilation, Circulation, Comfort}

// Result holds one dimension's raw score, its weight, and the weighted
// contribution to the total.
type Result struct {
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// Evaluator scores layouts against a fixed configuration. It is
// stateless beyond the config and safe for concurrent use.
type Evaluator struct {
	cfg Config
}

// New creates an evaluator with the given configuration.
func New(cfg Config) *Evaluator {
	return &Evaluator{cfg: cfg}
}

// Config returns the evaluator's configuration.
func (e *Evaluator) Config() Config { return e.cfg }

// scorers maps each dimension to its scoring function and weight.
func (e *Evaluator) scorers() [5]struct {
	dim    Dimension
	weight float64
	score  func(Config, *plan.Layout) float64
} {
	return [5]struct {
		dim    Dimension
		weight float64
		score  func(Config, *plan.Layout) float64
	}{
		{SpaceEfficiency, e.cfg.SpaceEfficiencyWeight, scoreSpaceEfficiency},
		{Lighting, e.cfg.LightingWeight, scoreLighting},
		{Ventilation, e.cfg.VentilationWeight, scoreVentilation},
		{Circulation, e.cfg.CirculationWeight, scoreCirculation},
		{Comfort, e.cfg.ComfortWeight, scoreComfort},
	}
}

// Evaluate returns the weighted sum of all dimension scores. It always
// agrees with the total entry of [Evaluator.EvaluateDetailed].
func (e *Evaluator) Evaluate(layout *plan.Layout) float64 {
	var total float64
	for _, s := range e.scorers() {
		total += s.weight * s.score(e.cfg, layout)
	}
	return total
}

// EvaluateDetailed returns the per-dimension breakdown plus a Total
// entry whose Weighted field equals [Evaluator.Evaluate].
func (e *Evaluator) EvaluateDetailed(layout *plan.Layout) map[Dimension]Result {
	results := make(map[Dimension]Result, len(Dimensions)+1)
	var total, weightSum float64
	for _, s := range e.scorers() {
		score := s.score(e.cfg, layout)
		weighted := s.weight * score
		results[s.dim] = Result{Score: score, Weight: s.weight, Weighted: weighted}
		total += weighted
		weightSum += s.weight
	}
	results[Total] = Result{Score: total, Weight: weightSum, Weighted: total}
	return results
}

// lastByType indexes rooms by type, keeping the last instance of each.
// Scorers that reason about "the kitchen" or "the bedroom" use this
// single-representative view.
func lastByType(layout *plan.Layout) map[plan.RoomType]*plan.Room {
	byType := make(map[plan.RoomType]*plan.Room, len(layout.Rooms))
	for _, room := range layout.Rooms {
		byType[room.Type] = room
	}
	return byType
}
