// Package plan defines the spatial entities of a residential floor plan:
// typed rooms with openings and furniture, complete candidate layouts,
// per-type sizing templates, and placement constraints.
//
// A [Layout] is the unit of work for the generator, evaluator, and
// optimizer. Layouts are cheap to clone for population bookkeeping; see
// [Layout.Clone] for what survives a copy.
package plan

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/planforge/pkg/geom"
)

// RoomType identifies the function of a room.
type RoomType string

// Room types recognized by the templates and the evaluator.
const (
	LivingRoom RoomType = "living_room"
	Bedroom    RoomType = "bedroom"
	Kitchen    RoomType = "kitchen"
	Bathroom   RoomType = "bathroom"
	DiningRoom RoomType = "dining_room"
	Study      RoomType = "study"
	Balcony    RoomType = "balcony"
	Storage    RoomType = "storage"
	Hallway    RoomType = "hallway"
)

// AllRoomTypes lists every recognized room type in a fixed order, so
// callers iterating requirement maps stay deterministic.
var AllRoomTypes = []RoomType{
	LivingRoom, Bedroom, Kitchen, Bathroom, DiningRoom,
	Study, Balcony, Storage, Hallway,
}

// Orientation is a cardinal facing direction, used to classify which
// exterior wall a window sits on.
type Orientation string

const (
	North Orientation = "north"
	South Orientation = "south"
	East  Orientation = "east"
	West  Orientation = "west"
)

// Furniture is a rectangular item placed inside a room. Furniture is an
// input to scoring only; planforge never optimizes furniture positions.
type Furniture struct {
	Name      string     `json:"name"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	CanRotate bool       `json:"can_rotate"`
	Category  string     `json:"category,omitempty"`
	Position  geom.Point `json:"position"`
	Rotated   bool       `json:"rotated,omitempty"`
	Placed    bool       `json:"placed,omitempty"`
}

// NewFurniture creates an unplaced furniture item at the origin.
func NewFurniture(name string, width, height float64) *Furniture {
	return &Furniture{Name: name, Width: width, Height: height, CanRotate: true, Category: "general"}
}

// CurrentWidth returns the footprint width, accounting for rotation.
func (f *Furniture) CurrentWidth() float64 {
	if f.Rotated {
		return f.Height
	}
	return f.Width
}

// CurrentHeight returns the footprint height, accounting for rotation.
func (f *Furniture) CurrentHeight() float64 {
	if f.Rotated {
		return f.Width
	}
	return f.Height
}

// Rotate toggles the 90-degree rotation flag if the item allows it.
func (f *Furniture) Rotate() {
	if f.CanRotate {
		f.Rotated = !f.Rotated
	}
}

// Bounds returns the rectangle currently occupied by the item.
func (f *Furniture) Bounds() geom.Rect {
	return geom.Rect{X: f.Position.X, Y: f.Position.Y, Width: f.CurrentWidth(), Height: f.CurrentHeight()}
}

// Room is a typed rectangular space with openings and furniture.
//
// ID is a stable integer assigned by the owning layout at creation time.
// It survives [Layout.Clone], so rooms can be correlated across the deep
// copies made during optimization.
type Room struct {
	ID        int          `json:"id"`
	Type      RoomType     `json:"type"`
	Bounds    geom.Rect    `json:"bounds"`
	Doors     []geom.Rect  `json:"doors,omitempty"`
	Windows   []geom.Rect  `json:"windows,omitempty"`
	Furniture []*Furniture `json:"furniture,omitempty"`
}

// Area returns the floor area of the room.
func (r *Room) Area() float64 { return r.Bounds.Area() }

// UsedArea returns the total footprint of placed furniture.
func (r *Room) UsedArea() float64 {
	var used float64
	for _, f := range r.Furniture {
		if f.Placed {
			used += f.CurrentWidth() * f.CurrentHeight()
		}
	}
	return used
}

// FreeArea returns the floor area not occupied by placed furniture.
func (r *Room) FreeArea() float64 { return r.Area() - r.UsedArea() }

// UtilizationRate returns UsedArea/Area, or 0 for a degenerate room.
func (r *Room) UtilizationRate() float64 {
	if r.Area() <= 0 {
		return 0
	}
	return r.UsedArea() / r.Area()
}

// AddDoor appends a door rectangle to the room.
func (r *Room) AddDoor(door geom.Rect) { r.Doors = append(r.Doors, door) }

// AddWindow appends a window rectangle to the room.
func (r *Room) AddWindow(window geom.Rect) { r.Windows = append(r.Windows, window) }

// AddFurniture appends an item to the room without placing it.
func (r *Room) AddFurniture(f *Furniture) { r.Furniture = append(r.Furniture, f) }

// CanPlaceFurniture reports whether f fits at position: fully inside the
// room, clear of every placed item, and not blocking a door.
func (r *Room) CanPlaceFurniture(f *Furniture, position geom.Point) bool {
	test := geom.Rect{X: position.X, Y: position.Y, Width: f.CurrentWidth(), Height: f.CurrentHeight()}
	if !r.Bounds.ContainsRect(test) {
		return false
	}
	for _, existing := range r.Furniture {
		if existing.Placed && test.Intersects(existing.Bounds()) {
			return false
		}
	}
	for _, door := range r.Doors {
		if test.Intersects(door) {
			return false
		}
	}
	return true
}

// PlaceFurniture places f at position if [Room.CanPlaceFurniture] allows
// it, and reports whether the item was placed.
func (r *Room) PlaceFurniture(f *Furniture, position geom.Point) bool {
	if !r.CanPlaceFurniture(f, position) {
		return false
	}
	f.Position = position
	f.Placed = true
	return true
}

// AspectRatio returns width/height, or 0 when the height is zero.
func (r *Room) AspectRatio() float64 {
	if r.Bounds.Height == 0 {
		return 0
	}
	return r.Bounds.Width / r.Bounds.Height
}

// WindowOrientations returns the set of exterior walls the room's windows
// sit on, inferred from each window's position relative to the room
// bounds. Windows floating in the interior contribute nothing.
func (r *Room) WindowOrientations() map[Orientation]bool {
	return wallsOf(r.Bounds, r.Windows)
}

// wallTolerance is how close an opening must be to a room edge to count
// as sitting on that wall.
const wallTolerance = 0.1

func wallsOf(bounds geom.Rect, openings []geom.Rect) map[Orientation]bool {
	walls := make(map[Orientation]bool)
	for _, o := range openings {
		switch {
		case o.X <= bounds.X+wallTolerance:
			walls[West] = true
		case o.X+o.Width >= bounds.Right()-wallTolerance:
			walls[East] = true
		case o.Y <= bounds.Y+wallTolerance:
			walls[North] = true
		case o.Y+o.Height >= bounds.Bottom()-wallTolerance:
			walls[South] = true
		}
	}
	return walls
}

// Template samples (width, height) pairs for one room type. Area is drawn
// uniformly in [MinArea, MaxArea] and aspect ratio uniformly in
// [MinRatio, MaxRatio]; dimensions follow from width = sqrt(area*ratio).
type Template struct {
	Type     RoomType
	MinArea  float64
	MaxArea  float64
	MinRatio float64
	MaxRatio float64
}

// SampleSize draws a random (width, height) pair from the template using
// the supplied random source.
func (t Template) SampleSize(rng *rand.Rand) (width, height float64) {
	area := t.MinArea + rng.Float64()*(t.MaxArea-t.MinArea)
	ratio := t.MinRatio + rng.Float64()*(t.MaxRatio-t.MinRatio)
	width = math.Sqrt(area * ratio)
	height = area / width
	return width, height
}

// DefaultTemplates returns the stock sizing table: per-type floor area and
// aspect-ratio ranges for every recognized room type.
func DefaultTemplates() map[RoomType]Template {
	return map[RoomType]Template{
		LivingRoom: {LivingRoom, 15, 40, 0.8, 1.5},
		Bedroom:    {Bedroom, 8, 25, 0.7, 1.4},
		Kitchen:    {Kitchen, 6, 20, 0.6, 1.8},
		Bathroom:   {Bathroom, 3, 12, 0.5, 2.0},
		DiningRoom: {DiningRoom, 10, 25, 0.7, 1.6},
		Study:      {Study, 6, 18, 0.6, 1.5},
		Balcony:    {Balcony, 4, 15, 0.3, 3.0},
		Storage:    {Storage, 2, 8, 0.4, 2.5},
		Hallway:    {Hallway, 3, 15, 0.2, 5.0},
	}
}
