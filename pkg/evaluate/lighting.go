package evaluate

import (
	"math"

	"github.com/matzehuels/planforge/pkg/plan"
)

// wallHeight is the assumed story height used to convert room perimeter
// into wall area for the window-to-wall ratio.
const wallHeight = 2.8

// Room types whose daylighting matters most; the orientation-diversity
// bonus only considers these.
var daylightPriorityTypes = []plan.RoomType{plan.LivingRoom, plan.Bedroom, plan.Kitchen}

// scoreLighting blends window-to-wall coverage (0.3), per-room daylight
// uniformity (0.4), and orientation diversity of the important rooms
// (0.3).
func scoreLighting(cfg Config, layout *plan.Layout) float64 {
	return 0.3*windowCoverageScore(cfg, layout) +
		0.4*lightingUniformityScore(cfg, layout) +
		0.3*lightingSourceScore(layout)
}

// windowCoverageScore compares the aggregate window-to-wall area ratio
// against the ideal ratio.
func windowCoverageScore(cfg Config, layout *plan.Layout) float64 {
	if len(layout.Rooms) == 0 {
		return 0
	}
	var windowArea, wallArea float64
	for _, room := range layout.Rooms {
		perimeter := 2 * (room.Bounds.Width + room.Bounds.Height)
		wallArea += perimeter * wallHeight
		for _, w := range room.Windows {
			windowArea += w.Width * w.Height
		}
	}
	if wallArea == 0 || cfg.WindowAreaRatio <= 0 {
		return 0
	}
	ratio := windowArea / wallArea
	return max(0, 1-math.Abs(ratio-cfg.WindowAreaRatio)/cfg.WindowAreaRatio)
}

// lightingUniformityScore averages per-room daylight depth: the distance
// from the room center to its nearest window, normalized by the maximum
// useful daylight depth and discounted for large rooms. Rooms without
// windows contribute zero.
func lightingUniformityScore(cfg Config, layout *plan.Layout) float64 {
	if len(layout.Rooms) == 0 {
		return 0
	}
	var total float64
	for _, room := range layout.Rooms {
		if len(room.Windows) == 0 {
			continue
		}
		center := room.Bounds.Center()
		nearest := math.Inf(1)
		for _, w := range room.Windows {
			d := center.DistanceTo(w.Center())
			nearest = min(nearest, d)
		}
		distanceScore := 0.0
		if cfg.MaxDepthFromWindow > 0 {
			distanceScore = max(0, 1-nearest/cfg.MaxDepthFromWindow)
		}
		// Small rooms are easier to light through to the back.
		areaFactor := min(1, 30/room.Area())
		total += distanceScore * areaFactor
	}
	return total / float64(len(layout.Rooms))
}

// lightingSourceScore rewards important rooms whose windows face more
// than one direction. Normalized so a layout where every priority room
// has two-orientation daylight scores 1.
func lightingSourceScore(layout *plan.Layout) float64 {
	var score float64
	for _, roomType := range daylightPriorityTypes {
		for _, room := range layout.RoomsByType(roomType) {
			if len(room.Windows) == 0 {
				continue
			}
			orientations := len(room.WindowOrientations())
			score += min(1, float64(orientations)/2)
		}
	}
	return score / (float64(len(daylightPriorityTypes)) * 2)
}
