package evaluate

import (
	"math"

	"github.com/matzehuels/planforge/pkg/plan"
)

// Room-type pairs whose walking distance dominates daily circulation.
var circulationKeyTypes = []plan.RoomType{plan.LivingRoom, plan.Kitchen, plan.Bedroom}

// corridorLengthFraction is the assumed ideal ratio of total corridor
// length to footprint area.
const corridorLengthFraction = 0.1

// scoreCirculation blends key-room proximity (0.3), corridor length
// closeness to target (0.4), and a corridor-crossing penalty (0.3).
func scoreCirculation(cfg Config, layout *plan.Layout) float64 {
	return 0.3*connectionScore(cfg, layout) +
		0.4*corridorLengthScore(layout) +
		0.3*corridorCrossingScore(layout)
}

// connectionScore rewards short center-to-center distances between each
// pair of key room types present in the layout.
func connectionScore(cfg Config, layout *plan.Layout) float64 {
	byType := lastByType(layout)

	var score float64
	var pairs int
	for i, a := range circulationKeyTypes {
		for _, b := range circulationKeyTypes[i+1:] {
			roomA, okA := byType[a]
			roomB, okB := byType[b]
			if !okA || !okB {
				continue
			}
			distance := roomA.Bounds.Center().DistanceTo(roomB.Bounds.Center())
			if cfg.MaxCirculationDistance > 0 {
				score += max(0, 1-distance/cfg.MaxCirculationDistance)
			}
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return score / float64(pairs)
}

// corridorLengthScore compares total corridor length (long side of each
// corridor rectangle) against a target proportional to footprint area.
// A layout without corridors needs no circulation space and scores full.
func corridorLengthScore(layout *plan.Layout) float64 {
	if len(layout.Corridors) == 0 {
		return 1.0
	}
	var total float64
	for _, c := range layout.Corridors {
		total += max(c.Width, c.Height)
	}
	ideal := layout.TotalArea() * corridorLengthFraction
	if ideal <= 0 {
		return 0
	}
	return max(0, 1-math.Abs(total-ideal)/ideal)
}

// corridorCrossingScore penalizes pairwise corridor intersections
// relative to half the corridor count.
func corridorCrossingScore(layout *plan.Layout) float64 {
	var crossings int
	for i, a := range layout.Corridors {
		for _, b := range layout.Corridors[i+1:] {
			if a.Intersects(b) {
				crossings++
			}
		}
	}
	maxCrossings := len(layout.Corridors) / 2
	return max(0, 1-float64(crossings)/float64(max(1, maxCrossings)))
}
