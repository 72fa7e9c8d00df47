package evaluate

import (
	"math"

	"github.com/matzehuels/planforge/pkg/plan"
)

// Per-type acceptable floor-area ranges used by the area-appropriateness
// term. Types without an entry fall back to a generic range.
var areaStandards = map[plan.RoomType][2]float64{
	plan.LivingRoom: {15, 40},
	plan.Bedroom:    {8, 25},
	plan.Kitchen:    {6, 20},
	plan.Bathroom:   {3, 12},
	plan.DiningRoom: {10, 25},
	plan.Study:      {6, 18},
}

var genericAreaStandard = [2]float64{5, 30}

// scoreSpaceEfficiency blends three terms: closeness of overall
// utilization to the ideal target (0.3), a per-room average of shape,
// furniture, and area quality (0.4), and a corridor-area penalty (0.3).
func scoreSpaceEfficiency(cfg Config, layout *plan.Layout) float64 {
	return 0.3*utilizationScore(cfg, layout.UtilizationRate()) +
		0.4*roomEfficiencyScore(layout) +
		0.3*corridorEfficiencyScore(layout)
}

// utilizationScore rewards utilization near the ideal rate, decaying
// linearly with relative deviation.
func utilizationScore(cfg Config, rate float64) float64 {
	ideal := cfg.IdealUtilizationRate
	if ideal <= 0 {
		return 0
	}
	return max(0, 1-math.Abs(rate-ideal)/ideal)
}

// roomEfficiencyScore averages a per-room blend of aspect-ratio quality,
// furniture utilization, and area appropriateness.
func roomEfficiencyScore(layout *plan.Layout) float64 {
	if len(layout.Rooms) == 0 {
		return 0
	}
	var total float64
	for _, room := range layout.Rooms {
		shape := shapeScore(room.AspectRatio())
		furniture := room.UtilizationRate()
		area := areaScore(room)
		total += (shape + furniture + area) / 3
	}
	return total / float64(len(layout.Rooms))
}

// shapeScore rates an aspect ratio piecewise: near-square rooms score
// full, moderately elongated rooms 0.8, everything else 0.5.
func shapeScore(ratio float64) float64 {
	switch {
	case ratio >= 0.8 && ratio <= 1.25:
		return 1.0
	case ratio >= 0.6 && ratio <= 1.67:
		return 0.8
	default:
		return 0.5
	}
}

// areaScore rates the room area against the per-type standard: full
// score in range, proportional below the minimum, linear falloff above
// the maximum.
func areaScore(room *plan.Room) float64 {
	standard, ok := areaStandards[room.Type]
	if !ok {
		standard = genericAreaStandard
	}
	minArea, maxArea := standard[0], standard[1]
	area := room.Area()

	switch {
	case area >= minArea && area <= maxArea:
		return 1.0
	case area < minArea:
		return area / minArea
	default:
		return max(0, 1-(area-maxArea)/maxArea)
	}
}

// corridorEfficiencyScore penalizes layouts that spend too much floor
// area on corridors, with stepped thresholds at 5%, 10%, and 15%.
func corridorEfficiencyScore(layout *plan.Layout) float64 {
	if len(layout.Corridors) == 0 {
		return 1.0
	}
	total := layout.TotalArea()
	if total <= 0 {
		return 0
	}
	ratio := layout.CorridorArea() / total
	switch {
	case ratio < 0.05:
		return 1.0
	case ratio < 0.10:
		return 0.8
	case ratio < 0.15:
		return 0.6
	default:
		return 0.3
	}
}
