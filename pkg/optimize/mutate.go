package optimize

import (
	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// minRoomSide is the smallest width or height a size mutation may
// shrink a room to.
const minRoomSide = 3.0

// mutate returns a mutated copy of layout. One of four operators is
// applied uniformly at random: nudge a room's position, resize a room,
// swap the bounds of two rooms, or replace a room with a freshly
// sampled one. Operators that would push a room outside the footprint
// leave the copy unchanged rather than clamping geometry.
func (o *Optimizer) mutate(layout *plan.Layout, footprint geom.Rect, requirements map[plan.RoomType]int) *plan.Layout {
	mutated := layout.Clone()

	switch o.rng.IntN(4) {
	case 0:
		o.mutatePosition(mutated, footprint)
	case 1:
		o.mutateSize(mutated, footprint)
	case 2:
		o.mutateSwap(mutated)
	case 3:
		o.mutateReplace(mutated, footprint, requirements)
	}
	return mutated
}

func (o *Optimizer) mutatePosition(layout *plan.Layout, footprint geom.Rect) {
	if len(layout.Rooms) == 0 {
		return
	}
	room := layout.Rooms[o.rng.IntN(len(layout.Rooms))]
	dx := o.rng.Float64()*4 - 2
	dy := o.rng.Float64()*4 - 2

	moved := room.Bounds
	moved.X = max(footprint.X, moved.X+dx)
	moved.Y = max(footprint.Y, moved.Y+dy)
	if moved.Right() <= footprint.Right() && moved.Bottom() <= footprint.Bottom() {
		room.Bounds = moved
	}
}

func (o *Optimizer) mutateSize(layout *plan.Layout, footprint geom.Rect) {
	if len(layout.Rooms) == 0 {
		return
	}
	room := layout.Rooms[o.rng.IntN(len(layout.Rooms))]
	dw := o.rng.Float64()*2 - 1
	dh := o.rng.Float64()*2 - 1

	width := max(minRoomSide, room.Bounds.Width+dw)
	height := max(minRoomSide, room.Bounds.Height+dh)
	if room.Bounds.X+width <= footprint.Right() && room.Bounds.Y+height <= footprint.Bottom() {
		room.Bounds.Width = width
		room.Bounds.Height = height
	}
}

func (o *Optimizer) mutateSwap(layout *plan.Layout) {
	if len(layout.Rooms) < 2 {
		return
	}
	i := o.rng.IntN(len(layout.Rooms))
	j := o.rng.IntN(len(layout.Rooms) - 1)
	if j >= i {
		j++
	}
	layout.Rooms[i].Bounds, layout.Rooms[j].Bounds = layout.Rooms[j].Bounds, layout.Rooms[i].Bounds
}

// mutateReplace swaps a random room for a newly sampled one of a
// random required type, keeping the room count constant. The
// replacement is sampled and validated first, so a sample that cannot
// fit the footprint leaves the layout unchanged.
func (o *Optimizer) mutateReplace(layout *plan.Layout, footprint geom.Rect, requirements map[plan.RoomType]int) {
	if len(layout.Rooms) < 2 || len(requirements) == 0 {
		return
	}

	types := make([]plan.RoomType, 0, len(requirements))
	for _, t := range plan.AllRoomTypes {
		if _, ok := requirements[t]; ok {
			types = append(types, t)
		}
	}
	roomType := types[o.rng.IntN(len(types))]

	template, ok := o.gen.Templates()[roomType]
	if !ok {
		return
	}
	width, height := template.SampleSize(o.rng)
	if width > footprint.Width || height > footprint.Height {
		return
	}

	layout.RemoveRoom(o.rng.IntN(len(layout.Rooms)))
	x := footprint.X + o.rng.Float64()*(footprint.Width-width)
	y := footprint.Y + o.rng.Float64()*(footprint.Height-height)
	layout.AddRoom(roomType, geom.Rect{X: x, Y: y, Width: width, Height: height})
}
