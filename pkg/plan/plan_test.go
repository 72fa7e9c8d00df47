package plan

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/matzehuels/planforge/pkg/geom"
)

func TestLayoutDerivedAreas(t *testing.T) {
	l := NewLayout(geom.Rect{Width: 20, Height: 15})
	l.AddRoom(LivingRoom, geom.Rect{X: 2, Y: 2, Width: 8, Height: 6})
	l.AddRoom(Kitchen, geom.Rect{X: 11, Y: 2, Width: 5, Height: 4})
	l.AddCorridor(geom.Rect{X: 2, Y: 9, Width: 10, Height: 1.2})

	if got := l.TotalArea(); got != 300 {
		t.Errorf("TotalArea = %v, want 300", got)
	}
	if got := l.RoomArea(); got != 68 {
		t.Errorf("RoomArea = %v, want 68", got)
	}
	if got := l.CorridorArea(); math.Abs(got-12) > 1e-9 {
		t.Errorf("CorridorArea = %v, want 12", got)
	}
	want := (68.0 + 12.0) / 300.0
	if got := l.UtilizationRate(); math.Abs(got-want) > 1e-9 {
		t.Errorf("UtilizationRate = %v, want %v", got, want)
	}
}

func TestLayoutUtilizationDegenerateFootprint(t *testing.T) {
	l := NewLayout(geom.Rect{})
	if got := l.UtilizationRate(); got != 0 {
		t.Errorf("UtilizationRate of empty footprint = %v, want 0", got)
	}
}

func TestRoomIDsAreStable(t *testing.T) {
	l := NewLayout(geom.Rect{Width: 20, Height: 15})
	a := l.AddRoom(LivingRoom, geom.Rect{X: 1, Y: 1, Width: 5, Height: 5})
	b := l.AddRoom(Bedroom, geom.Rect{X: 7, Y: 1, Width: 5, Height: 5})
	if a.ID == b.ID {
		t.Fatalf("room IDs must be unique, both %d", a.ID)
	}

	l.RemoveRoom(0)
	c := l.AddRoom(Kitchen, geom.Rect{X: 13, Y: 1, Width: 4, Height: 4})
	if c.ID == b.ID {
		t.Errorf("reused room ID %d after removal", c.ID)
	}
}

func TestLayoutClone(t *testing.T) {
	l := NewLayout(geom.Rect{Width: 20, Height: 15})
	room := l.AddRoom(Bedroom, geom.Rect{X: 2, Y: 2, Width: 5, Height: 4})
	room.AddWindow(geom.Rect{X: 2, Y: 3, Width: 0.2, Height: 1})
	room.AddFurniture(NewFurniture("bed", 2, 1.6))
	l.AddCorridor(geom.Rect{X: 8, Y: 2, Width: 1.2, Height: 6})
	l.Score = 0.42
	l.Meta["run"] = "abc"

	clone := l.Clone()

	if clone.Rooms[0].ID != room.ID {
		t.Errorf("clone room ID = %d, want %d", clone.Rooms[0].ID, room.ID)
	}
	if clone.Score != l.Score {
		t.Errorf("clone score = %v, want %v", clone.Score, l.Score)
	}
	if len(clone.Corridors) != 1 || clone.Corridors[0] != l.Corridors[0] {
		t.Errorf("clone corridors = %v", clone.Corridors)
	}
	// Openings and furniture are deliberately not carried across a copy.
	if len(clone.Rooms[0].Windows) != 0 || len(clone.Rooms[0].Furniture) != 0 {
		t.Errorf("clone carried openings/furniture: %+v", clone.Rooms[0])
	}

	// Mutating the clone must not touch the original.
	clone.Rooms[0].Bounds.X = 10
	clone.Meta["run"] = "other"
	if l.Rooms[0].Bounds.X != 2 {
		t.Error("clone shares room storage with original")
	}
	if l.Meta["run"] != "abc" {
		t.Error("clone shares metadata with original")
	}

	// IDs keep advancing past cloned rooms.
	added := clone.AddRoom(Study, geom.Rect{X: 12, Y: 2, Width: 3, Height: 3})
	if added.ID <= room.ID {
		t.Errorf("post-clone room ID %d not past %d", added.ID, room.ID)
	}
}

func TestLayoutValidate(t *testing.T) {
	l := NewLayout(geom.Rect{Width: 20, Height: 15})
	l.AddRoom(LivingRoom, geom.Rect{X: 1, Y: 1, Width: 8, Height: 6})
	l.AddRoom(Bedroom, geom.Rect{X: 5, Y: 3, Width: 6, Height: 5})   // overlaps living room
	l.AddRoom(Kitchen, geom.Rect{X: 15, Y: 10, Width: 8, Height: 6}) // out of bounds

	issues := l.Validate()

	counts := make(map[IssueKind]int)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	if counts[IssueOverlap] != 1 {
		t.Errorf("overlap issues = %d, want 1", counts[IssueOverlap])
	}
	if counts[IssueOutOfBounds] != 1 {
		t.Errorf("out-of-bounds issues = %d, want 1", counts[IssueOutOfBounds])
	}
	// Bathroom is required but absent.
	if counts[IssueMissingType] != 1 {
		t.Errorf("missing-type issues = %d, want 1", counts[IssueMissingType])
	}
}

func TestLayoutValidateCleanLayout(t *testing.T) {
	l := NewLayout(geom.Rect{Width: 20, Height: 15})
	l.AddRoom(LivingRoom, geom.Rect{X: 1, Y: 1, Width: 8, Height: 6})
	l.AddRoom(Bedroom, geom.Rect{X: 10, Y: 1, Width: 6, Height: 5})
	l.AddRoom(Kitchen, geom.Rect{X: 1, Y: 8, Width: 5, Height: 4})
	l.AddRoom(Bathroom, geom.Rect{X: 7, Y: 8, Width: 3, Height: 3})

	if issues := l.Validate(); len(issues) != 0 {
		t.Errorf("clean layout produced issues: %v", issues)
	}
}

func TestTemplateSampleSize(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	tpl := Template{Type: Bedroom, MinArea: 8, MaxArea: 25, MinRatio: 0.7, MaxRatio: 1.4}

	for range 200 {
		w, h := tpl.SampleSize(rng)
		area := w * h
		ratio := w / h
		if area < tpl.MinArea-1e-9 || area > tpl.MaxArea+1e-9 {
			t.Fatalf("area %v outside [%v, %v]", area, tpl.MinArea, tpl.MaxArea)
		}
		if ratio < tpl.MinRatio-1e-9 || ratio > tpl.MaxRatio+1e-9 {
			t.Fatalf("ratio %v outside [%v, %v]", ratio, tpl.MinRatio, tpl.MaxRatio)
		}
	}
}

func TestDefaultTemplatesCoverAllTypes(t *testing.T) {
	templates := DefaultTemplates()
	for _, rt := range []RoomType{LivingRoom, Bedroom, Kitchen, Bathroom, DiningRoom, Study, Balcony, Storage, Hallway} {
		tpl, ok := templates[rt]
		if !ok {
			t.Errorf("no template for %s", rt)
			continue
		}
		if tpl.MinArea <= 0 || tpl.MaxArea < tpl.MinArea || tpl.MinRatio <= 0 || tpl.MaxRatio < tpl.MinRatio {
			t.Errorf("template %s has invalid ranges: %+v", rt, tpl)
		}
	}
}

func TestFurniturePlacement(t *testing.T) {
	l := NewLayout(geom.Rect{Width: 20, Height: 15})
	room := l.AddRoom(Bedroom, geom.Rect{X: 2, Y: 2, Width: 6, Height: 5})
	room.AddDoor(geom.Rect{X: 2, Y: 4, Width: 0.1, Height: 0.8})

	bed := NewFurniture("bed", 2, 1.6)
	room.AddFurniture(bed)

	if room.PlaceFurniture(bed, geom.Point{X: 0, Y: 0}) {
		t.Error("placed furniture outside the room")
	}
	if room.PlaceFurniture(bed, geom.Point{X: 1.95, Y: 3.8}) {
		t.Error("placed furniture over a door")
	}
	if !room.PlaceFurniture(bed, geom.Point{X: 4, Y: 3}) {
		t.Fatal("failed to place furniture in clear space")
	}

	desk := NewFurniture("desk", 1.2, 0.6)
	room.AddFurniture(desk)
	if room.PlaceFurniture(desk, geom.Point{X: 4.5, Y: 3.5}) {
		t.Error("placed furniture over existing furniture")
	}

	if got := room.UsedArea(); math.Abs(got-3.2) > 1e-9 {
		t.Errorf("UsedArea = %v, want 3.2", got)
	}
	want := 3.2 / 30.0
	if got := room.UtilizationRate(); math.Abs(got-want) > 1e-9 {
		t.Errorf("UtilizationRate = %v, want %v", got, want)
	}
}

func TestFurnitureRotation(t *testing.T) {
	f := NewFurniture("sofa", 2.2, 0.9)
	f.Rotate()
	if f.CurrentWidth() != 0.9 || f.CurrentHeight() != 2.2 {
		t.Errorf("rotated dims = %v x %v", f.CurrentWidth(), f.CurrentHeight())
	}
	fixed := &Furniture{Name: "tub", Width: 1.7, Height: 0.8}
	fixed.Rotate()
	if fixed.Rotated {
		t.Error("non-rotatable furniture rotated")
	}
}

func TestWindowOrientations(t *testing.T) {
	room := &Room{Type: Bedroom, Bounds: geom.Rect{X: 2, Y: 2, Width: 6, Height: 5}}
	room.AddWindow(geom.Rect{X: 2, Y: 3, Width: 0.2, Height: 1})   // west wall
	room.AddWindow(geom.Rect{X: 7.85, Y: 3, Width: 0.2, Height: 1}) // east wall
	room.AddWindow(geom.Rect{X: 4, Y: 2, Width: 1, Height: 0.2})   // north wall

	walls := room.WindowOrientations()
	for _, want := range []Orientation{West, East, North} {
		if !walls[want] {
			t.Errorf("missing orientation %s in %v", want, walls)
		}
	}
	if walls[South] {
		t.Errorf("unexpected south orientation in %v", walls)
	}
}

func TestConstraintsLookups(t *testing.T) {
	c := DefaultConstraints()

	if !c.ShouldBeAdjacent(Kitchen, DiningRoom) {
		t.Error("kitchen should prefer dining room adjacency")
	}
	if c.ShouldBeAdjacent(Storage, LivingRoom) {
		t.Error("storage has no adjacency preference")
	}

	// Separation lookups are symmetric.
	if got := c.MinSeparation(Bedroom, Kitchen); got != 2.0 {
		t.Errorf("MinSeparation(bedroom, kitchen) = %v, want 2", got)
	}
	if got := c.MinSeparation(Kitchen, Bedroom); got != 2.0 {
		t.Errorf("MinSeparation(kitchen, bedroom) = %v, want 2", got)
	}
	if got := c.MinSeparation(Balcony, Storage); got != 0 {
		t.Errorf("MinSeparation without rule = %v, want 0", got)
	}
}
