package optimize

import (
	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// crossover builds a child by picking, per required room instance,
// the matching room from one of the two parents. When the chosen
// parent has fewer rooms of a type than required, picks wrap around
// its instances; when only one parent has the type at all, that
// parent supplies it. The child is mutated with probability
// MutationRate before being returned.
func (o *Optimizer) crossover(a, b *plan.Layout, footprint geom.Rect, requirements map[plan.RoomType]int) *plan.Layout {
	child := plan.NewLayout(footprint)

	for _, roomType := range plan.AllRoomTypes {
		count := requirements[roomType]
		if count == 0 {
			continue
		}
		fromA := a.RoomsByType(roomType)
		fromB := b.RoomsByType(roomType)

		for i := 0; i < count; i++ {
			var source *plan.Room
			if o.rng.Float64() < 0.5 && len(fromA) > 0 {
				source = fromA[i%len(fromA)]
			} else if len(fromB) > 0 {
				source = fromB[i%len(fromB)]
			} else {
				continue
			}
			child.AddRoom(source.Type, source.Bounds)
		}
	}

	if o.rng.Float64() < o.cfg.MutationRate {
		child = o.mutate(child, footprint, requirements)
	}
	return child
}
