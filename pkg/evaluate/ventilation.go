package evaluate

import "github.com/matzehuels/planforge/pkg/plan"

// scoreVentilation blends opening-count heuristics (0.4), opposing-wall
// cross-ventilation (0.3), and a door-count connectivity proxy for air
// circulation (0.3).
func scoreVentilation(cfg Config, layout *plan.Layout) float64 {
	return 0.4*ventilationPathScore(layout) +
		0.3*crossVentilationScore(cfg, layout) +
		0.3*airCirculationScore(layout)
}

// ventilationPathScore rates each room by how many openings it has:
// two or more give a full score, one a partial score, none a low score.
func ventilationPathScore(layout *plan.Layout) float64 {
	if len(layout.Rooms) == 0 {
		return 0
	}
	var total float64
	for _, room := range layout.Rooms {
		openings := len(room.Doors) + len(room.Windows)
		switch {
		case openings >= 2:
			total += 1.0
		case openings == 1:
			total += 0.6
		default:
			total += 0.2
		}
	}
	return total / float64(len(layout.Rooms))
}

// crossVentilationScore counts rooms with windows on opposing walls and
// scales the fraction by the configured bonus, so a layout where every
// room cross-ventilates can exceed 1.
func crossVentilationScore(cfg Config, layout *plan.Layout) float64 {
	if len(layout.Rooms) == 0 {
		return 0
	}
	var crossVentilated int
	for _, room := range layout.Rooms {
		if len(room.Windows) < 2 {
			continue
		}
		walls := room.WindowOrientations()
		if (walls[plan.West] && walls[plan.East]) || (walls[plan.North] && walls[plan.South]) {
			crossVentilated++
		}
	}
	return float64(crossVentilated) / float64(len(layout.Rooms)) * cfg.CrossVentilationBonus
}

// airCirculationScore uses door count as a stand-in for how freely air
// moves between rooms; two doors per room is treated as ideal.
func airCirculationScore(layout *plan.Layout) float64 {
	if len(layout.Rooms) == 0 {
		return 0
	}
	var total float64
	for _, room := range layout.Rooms {
		total += min(1, float64(len(room.Doors))/2)
	}
	return total / float64(len(layout.Rooms))
}
