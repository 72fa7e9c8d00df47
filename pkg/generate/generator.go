// Package generate builds random candidate layouts by recursive
// rectangular space partitioning.
//
// The generator keeps a list of free rectangular regions, initialized to
// the whole footprint. Each sampled room is placed into the first free
// region large enough to hold it (first-fit, a deliberate bias toward
// earlier regions), at a position drawn uniformly inside the region's
// margin-reduced bounds. The chosen region is then split into up to four
// residual rectangles. Rooms that fit nowhere fall back to a fixed-step
// grid scan; rooms that still cannot be placed are dropped, so a layout
// may hold fewer rooms than requested. Generation never fails.
//
// All randomness flows through the *rand.Rand handle supplied at
// construction, so a fixed seed reproduces a layout bit for bit and
// parallel workers can generate independently without locking.
package generate

import (
	"math/rand/v2"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

// Params tunes room sampling and placement.
type Params struct {
	// WallThickness is the margin kept between a room and the edges of
	// the free region it is placed into.
	WallThickness float64 `toml:"wall_thickness" json:"wall_thickness,omitempty"`

	// GridStep is the scan step of the fallback placement search.
	GridStep float64 `toml:"grid_step" json:"grid_step,omitempty"`

	// CorridorChance is the per-room probability of synthesizing a
	// corridor to the primary living room.
	CorridorChance float64 `toml:"corridor_chance" json:"corridor_chance,omitempty"`
}

// DefaultParams returns the stock generation parameters.
func DefaultParams() Params {
	return Params{
		WallThickness:  0.2,
		GridStep:       1.0,
		CorridorChance: 0.3,
	}
}

// Generator produces random layouts for a footprint and room requirement.
// A Generator is bound to one random source and is not safe for
// concurrent use; give each worker its own instance.
type Generator struct {
	params      Params
	templates   map[plan.RoomType]plan.Template
	constraints *plan.Constraints
	rng         *rand.Rand
}

// New creates a generator with the given parameters, the stock templates
// and constraints, and a PCG source seeded from seed.
func New(params Params, seed uint64) *Generator {
	return NewWithRand(params, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewWithRand creates a generator using an explicit random source.
func NewWithRand(params Params, rng *rand.Rand) *Generator {
	return &Generator{
		params:      params,
		templates:   plan.DefaultTemplates(),
		constraints: plan.DefaultConstraints(),
		rng:         rng,
	}
}

// SetConstraints replaces the constraint tables consulted during
// corridor synthesis.
func (g *Generator) SetConstraints(c *plan.Constraints) { g.constraints = c }

// Templates returns the sizing templates the generator samples from.
func (g *Generator) Templates() map[plan.RoomType]plan.Template { return g.templates }

// Rand exposes the generator's random source so callers sharing one
// stream (such as the optimizer's mutation operators) stay reproducible.
func (g *Generator) Rand() *rand.Rand { return g.rng }

// pending is one sampled room awaiting placement.
type pending struct {
	roomType plan.RoomType
	width    float64
	height   float64
}

// Generate builds one candidate layout. Requirements map each room type
// to the number of instances wanted. The result may be under-provisioned
// when placement fails; callers can compare len(layout.Rooms) against the
// summed requirements or run layout.Validate.
func (g *Generator) Generate(footprint geom.Rect, requirements map[plan.RoomType]int) *plan.Layout {
	layout := plan.NewLayout(footprint)

	rooms := g.sampleRooms(requirements)
	g.rng.Shuffle(len(rooms), func(i, j int) {
		rooms[i], rooms[j] = rooms[j], rooms[i]
	})

	g.placePartitioned(layout, rooms)
	g.addCorridors(layout)

	return layout
}

// sampleRooms draws a size for every required room instance. Types
// without a template are skipped. Iteration over the requirement map is
// order-insensitive because the list is shuffled before placement, but
// sampling itself must be deterministic, so types are visited in a fixed
// order.
func (g *Generator) sampleRooms(requirements map[plan.RoomType]int) []pending {
	var rooms []pending
	for _, roomType := range orderedTypes(requirements) {
		tpl, ok := g.templates[roomType]
		if !ok {
			continue
		}
		for range requirements[roomType] {
			w, h := tpl.SampleSize(g.rng)
			rooms = append(rooms, pending{roomType: roomType, width: w, height: h})
		}
	}
	return rooms
}

func orderedTypes(requirements map[plan.RoomType]int) []plan.RoomType {
	var types []plan.RoomType
	for _, t := range plan.AllRoomTypes {
		if requirements[t] > 0 {
			types = append(types, t)
		}
	}
	return types
}

// placePartitioned places rooms by free-region partitioning, falling back
// to a grid scan when no region fits.
func (g *Generator) placePartitioned(layout *plan.Layout, rooms []pending) {
	free := []geom.Rect{layout.Bounds}

	for _, room := range rooms {
		placed := false
		for i, region := range free {
			if !g.fits(region, room.width, room.height) {
				continue
			}
			bounds := g.placeInRegion(region, room.width, room.height)
			layout.AddRoom(room.roomType, bounds)

			rest := g.splitRegion(region, bounds)
			free = append(free[:i], free[i+1:]...)
			free = append(free, rest...)

			placed = true
			break
		}
		if !placed {
			g.placeOnGrid(layout, room)
		}
	}
}

// fits reports whether a room of the given size fits inside the region
// with wall margin on every side.
func (g *Generator) fits(region geom.Rect, width, height float64) bool {
	m := g.params.WallThickness
	return region.Width >= width+2*m && region.Height >= height+2*m
}

// placeInRegion picks a uniformly random position inside the
// margin-reduced region. The random position, rather than corner packing,
// is what makes two runs differ and is the generator's main source of
// layout diversity.
func (g *Generator) placeInRegion(region geom.Rect, width, height float64) geom.Rect {
	m := g.params.WallThickness
	x := region.X + m + g.rng.Float64()*(region.Width-width-2*m)
	y := region.Y + m + g.rng.Float64()*(region.Height-height-2*m)
	return geom.Rect{X: x, Y: y, Width: width, Height: height}
}

// splitRegion carves the occupied region into up to four residual
// rectangles: the full-width bands above and below the room, and the
// room-height bands to its left and right. Residuals thinner than twice
// the wall margin are discarded.
func (g *Generator) splitRegion(region, room geom.Rect) []geom.Rect {
	m := g.params.WallThickness
	var rest []geom.Rect

	if room.Top()-region.Top() > 2*m {
		rest = append(rest, geom.Rect{
			X: region.X, Y: region.Y,
			Width: region.Width, Height: room.Top() - region.Top() - m,
		})
	}
	if region.Bottom()-room.Bottom() > 2*m {
		rest = append(rest, geom.Rect{
			X: region.X, Y: room.Bottom() + m,
			Width: region.Width, Height: region.Bottom() - room.Bottom() - m,
		})
	}
	if room.Left()-region.Left() > 2*m {
		rest = append(rest, geom.Rect{
			X: region.X, Y: room.Top(),
			Width: room.Left() - region.Left() - m, Height: room.Height,
		})
	}
	if region.Right()-room.Right() > 2*m {
		rest = append(rest, geom.Rect{
			X: room.Right() + m, Y: room.Top(),
			Width: region.Right() - room.Right() - m, Height: room.Height,
		})
	}
	return rest
}

// placeOnGrid scans a fixed-step grid over the footprint and places the
// room at the first position whose bounding box overlaps no existing
// room. If the scan also fails the room is dropped.
func (g *Generator) placeOnGrid(layout *plan.Layout, room pending) {
	m := g.params.WallThickness
	step := g.params.GridStep
	bounds := layout.Bounds

	cols := int(bounds.Width / step)
	rows := int(bounds.Height / step)

	for row := range rows {
		for col := range cols {
			x := bounds.X + float64(col)*step + m
			y := bounds.Y + float64(row)*step + m
			if x+room.width > bounds.Right()-m || y+room.height > bounds.Bottom()-m {
				continue
			}
			candidate := geom.Rect{X: x, Y: y, Width: room.width, Height: room.height}
			if g.overlapsAny(layout, candidate) {
				continue
			}
			layout.AddRoom(room.roomType, candidate)
			return
		}
	}
}

func (g *Generator) overlapsAny(layout *plan.Layout, candidate geom.Rect) bool {
	for _, existing := range layout.Rooms {
		if candidate.Intersects(existing.Bounds) {
			return true
		}
	}
	return false
}
