package plan

import (
	"fmt"
	"maps"

	"github.com/matzehuels/planforge/pkg/geom"
)

// Metadata stores arbitrary key-value pairs attached to a layout, such as
// the run ID or generation statistics. Metadata maps are never nil after
// NewLayout.
type Metadata map[string]any

// Layout is a complete candidate floor plan: a footprint, an ordered list
// of rooms, corridor rectangles, and the fitness score attached by the
// evaluator. Layout itself never computes its own score.
//
// Layout is not safe for concurrent use; the optimizer gives each worker
// its own population of layouts.
type Layout struct {
	Bounds    geom.Rect   `json:"bounds"`
	Rooms     []*Room     `json:"rooms"`
	Corridors []geom.Rect `json:"corridors,omitempty"`
	Score     float64     `json:"score"`
	Meta      Metadata    `json:"meta,omitempty"`

	nextRoomID int
}

// NewLayout creates an empty layout covering the given footprint.
func NewLayout(bounds geom.Rect) *Layout {
	return &Layout{Bounds: bounds, Meta: make(Metadata)}
}

// AddRoom appends a room of the given type and assigns it the next stable
// room ID. The returned room is owned by the layout.
func (l *Layout) AddRoom(roomType RoomType, bounds geom.Rect) *Room {
	room := &Room{ID: l.nextRoomID, Type: roomType, Bounds: bounds}
	l.nextRoomID++
	l.Rooms = append(l.Rooms, room)
	return room
}

// AttachRoom appends an existing room, preserving its ID. The internal ID
// counter advances past it so later AddRoom calls stay unique.
func (l *Layout) AttachRoom(room *Room) {
	if room.ID >= l.nextRoomID {
		l.nextRoomID = room.ID + 1
	}
	l.Rooms = append(l.Rooms, room)
}

// RemoveRoom deletes the room at index i, preserving order.
func (l *Layout) RemoveRoom(i int) {
	l.Rooms = append(l.Rooms[:i], l.Rooms[i+1:]...)
}

// AddCorridor appends a corridor rectangle.
func (l *Layout) AddCorridor(c geom.Rect) { l.Corridors = append(l.Corridors, c) }

// RoomsByType returns the rooms of the given type in layout order.
func (l *Layout) RoomsByType(roomType RoomType) []*Room {
	var out []*Room
	for _, r := range l.Rooms {
		if r.Type == roomType {
			out = append(out, r)
		}
	}
	return out
}

// TotalArea returns the footprint area.
func (l *Layout) TotalArea() float64 { return l.Bounds.Area() }

// RoomArea returns the summed area of all rooms.
func (l *Layout) RoomArea() float64 {
	var sum float64
	for _, r := range l.Rooms {
		sum += r.Area()
	}
	return sum
}

// CorridorArea returns the summed area of all corridor rectangles.
func (l *Layout) CorridorArea() float64 {
	var sum float64
	for _, c := range l.Corridors {
		sum += c.Area()
	}
	return sum
}

// UtilizationRate returns (RoomArea+CorridorArea)/TotalArea, or 0 for a
// degenerate footprint.
func (l *Layout) UtilizationRate() float64 {
	if l.TotalArea() <= 0 {
		return 0
	}
	return (l.RoomArea() + l.CorridorArea()) / l.TotalArea()
}

// RequiredTypes are the room types every finished plan is expected to
// contain. Validate reports their absence; nothing enforces it.
var RequiredTypes = []RoomType{LivingRoom, Bedroom, Kitchen, Bathroom}

// Issue describes one advisory problem found by [Layout.Validate].
type Issue struct {
	Kind    IssueKind
	Message string
}

// IssueKind classifies validation findings.
type IssueKind string

const (
	IssueOverlap     IssueKind = "overlap"
	IssueOutOfBounds IssueKind = "out_of_bounds"
	IssueMissingType IssueKind = "missing_type"
)

// Validate returns every pairwise room overlap, every out-of-bounds room,
// and every missing required room type. The result is informational: the
// engine never auto-corrects an invalid layout, it only surfaces the
// findings to callers.
func (l *Layout) Validate() []Issue {
	var issues []Issue
	for i, a := range l.Rooms {
		for _, b := range l.Rooms[i+1:] {
			if a.Bounds.Intersects(b.Bounds) {
				issues = append(issues, Issue{
					Kind:    IssueOverlap,
					Message: fmt.Sprintf("room %s#%d overlaps %s#%d", a.Type, a.ID, b.Type, b.ID),
				})
			}
		}
	}
	for _, r := range l.Rooms {
		if !l.Bounds.ContainsRect(r.Bounds) {
			issues = append(issues, Issue{
				Kind:    IssueOutOfBounds,
				Message: fmt.Sprintf("room %s#%d extends outside the footprint", r.Type, r.ID),
			})
		}
	}
	for _, required := range RequiredTypes {
		if len(l.RoomsByType(required)) == 0 {
			issues = append(issues, Issue{
				Kind:    IssueMissingType,
				Message: fmt.Sprintf("missing required room type %s", required),
			})
		}
	}
	return issues
}

// Clone returns a deep copy of the layout for population bookkeeping.
// Room bounds, IDs, corridors, score, and metadata are copied; furniture
// and openings are intentionally not carried over, since the optimizer
// only rearranges room rectangles.
func (l *Layout) Clone() *Layout {
	clone := &Layout{
		Bounds:     l.Bounds,
		Score:      l.Score,
		Meta:       maps.Clone(l.Meta),
		nextRoomID: l.nextRoomID,
	}
	if clone.Meta == nil {
		clone.Meta = make(Metadata)
	}
	clone.Rooms = make([]*Room, len(l.Rooms))
	for i, r := range l.Rooms {
		clone.Rooms[i] = &Room{ID: r.ID, Type: r.Type, Bounds: r.Bounds}
	}
	if len(l.Corridors) > 0 {
		clone.Corridors = make([]geom.Rect, len(l.Corridors))
		copy(clone.Corridors, l.Corridors)
	}
	return clone
}
