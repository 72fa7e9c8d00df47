package generate

import (
	"math"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// addCorridors synthesizes connecting corridors between the primary
// living room and a random subset of the other rooms. Each corridor is a
// single rectangle running along whichever axis separates the two room
// centers the most, with the configured minimum corridor width.
//
// Corridors are heuristic decoration consumed by the circulation and
// space-efficiency scorers; they are never used to test reachability.
func (g *Generator) addCorridors(layout *plan.Layout) {
	if len(layout.Rooms) < 2 {
		return
	}
	living := layout.RoomsByType(plan.LivingRoom)
	if len(living) == 0 {
		return
	}
	main := living[0]
	width := g.constraints.MinCorridorWidth

	for _, room := range layout.Rooms {
		if room == main || g.rng.Float64() >= g.params.CorridorChance {
			continue
		}
		layout.AddCorridor(connect(main.Bounds.Center(), room.Bounds.Center(), width))
	}
}

// connect builds the corridor rectangle between two room centers. The
// dominant axis of the center-to-center vector picks the orientation.
func connect(from, to geom.Point, width float64) geom.Rect {
	if math.Abs(from.X-to.X) > math.Abs(from.Y-to.Y) {
		y := (from.Y + to.Y) / 2
		x1 := math.Min(from.X, to.X)
		x2 := math.Max(from.X, to.X)
		return geom.Rect{
			X: x1 - width/2, Y: y - width/2,
			Width: x2 - x1 + width, Height: width,
		}
	}
	x := (from.X + to.X) / 2
	y1 := math.Min(from.Y, to.Y)
	y2 := math.Max(from.Y, to.Y)
	return geom.Rect{
		X: x - width/2, Y: y1 - width/2,
		Width: width, Height: y2 - y1 + width,
	}
}
