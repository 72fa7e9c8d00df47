package generate

import (
	"testing"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

var testFootprint = geom.Rect{Width: 20, Height: 15}

var testRequirements = map[plan.RoomType]int{
	plan.LivingRoom: 1,
	plan.Bedroom:    2,
	plan.Kitchen:    1,
	plan.Bathroom:   1,
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := New(DefaultParams(), 42).Generate(testFootprint, testRequirements)
	b := New(DefaultParams(), 42).Generate(testFootprint, testRequirements)

	if len(a.Rooms) != len(b.Rooms) {
		t.Fatalf("room counts differ: %d vs %d", len(a.Rooms), len(b.Rooms))
	}
	for i := range a.Rooms {
		if a.Rooms[i].Type != b.Rooms[i].Type || a.Rooms[i].Bounds != b.Rooms[i].Bounds {
			t.Errorf("room %d differs: %+v vs %+v", i, a.Rooms[i], b.Rooms[i])
		}
	}
	if len(a.Corridors) != len(b.Corridors) {
		t.Fatalf("corridor counts differ: %d vs %d", len(a.Corridors), len(b.Corridors))
	}
	for i := range a.Corridors {
		if a.Corridors[i] != b.Corridors[i] {
			t.Errorf("corridor %d differs: %v vs %v", i, a.Corridors[i], b.Corridors[i])
		}
	}
}

func TestGenerateSeedsDiverge(t *testing.T) {
	a := New(DefaultParams(), 1).Generate(testFootprint, testRequirements)
	b := New(DefaultParams(), 2).Generate(testFootprint, testRequirements)

	same := len(a.Rooms) == len(b.Rooms)
	if same {
		for i := range a.Rooms {
			if a.Rooms[i].Bounds != b.Rooms[i].Bounds {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical layouts")
	}
}

func TestGeneratePlacesAllRequestedRooms(t *testing.T) {
	// With the requested areas well below the footprint area, the
	// partitioning plus grid fallback should place every room.
	for seed := uint64(1); seed <= 5; seed++ {
		layout := New(DefaultParams(), seed).Generate(testFootprint, testRequirements)
		if len(layout.Rooms) != 5 {
			t.Errorf("seed %d: placed %d rooms, want 5", seed, len(layout.Rooms))
		}
	}
}

func TestGenerateRoomsStayInsideFootprint(t *testing.T) {
	layout := New(DefaultParams(), 11).Generate(testFootprint, testRequirements)
	for _, room := range layout.Rooms {
		if !testFootprint.ContainsRect(room.Bounds) {
			t.Errorf("room %s#%d outside footprint: %+v", room.Type, room.ID, room.Bounds)
		}
	}
}

func TestGenerateCountsByType(t *testing.T) {
	layout := New(DefaultParams(), 3).Generate(testFootprint, testRequirements)
	for roomType, want := range testRequirements {
		if got := len(layout.RoomsByType(roomType)); got != want {
			t.Errorf("%s: got %d rooms, want %d", roomType, got, want)
		}
	}
}

func TestGenerateOverfilledFootprintDropsRooms(t *testing.T) {
	// A tiny footprint cannot hold ten bedrooms. Generation must not
	// fail; it returns whatever subset it could place.
	tiny := geom.Rect{Width: 6, Height: 5}
	layout := New(DefaultParams(), 9).Generate(tiny, map[plan.RoomType]int{plan.Bedroom: 10})

	if layout == nil {
		t.Fatal("Generate returned nil")
	}
	if len(layout.Rooms) >= 10 {
		t.Errorf("placed %d rooms in a 6x5 footprint", len(layout.Rooms))
	}
	for _, room := range layout.Rooms {
		if !tiny.ContainsRect(room.Bounds) {
			t.Errorf("dropped-room path placed %+v outside footprint", room.Bounds)
		}
	}
}

func TestGenerateUnknownTypeSkipped(t *testing.T) {
	layout := New(DefaultParams(), 4).Generate(testFootprint, map[plan.RoomType]int{
		plan.LivingRoom:        1,
		plan.RoomType("sauna"): 2,
	})
	if got := len(layout.Rooms); got != 1 {
		t.Errorf("placed %d rooms, want 1 (unknown type has no template)", got)
	}
}

func TestCorridorGeometry(t *testing.T) {
	width := 1.2
	tests := []struct {
		name     string
		from, to geom.Point
		want     geom.Rect
	}{
		{
			name: "HorizontalDominant",
			from: geom.Point{X: 2, Y: 5}, to: geom.Point{X: 12, Y: 7},
			want: geom.Rect{X: 2 - 0.6, Y: 6 - 0.6, Width: 10 + 1.2, Height: 1.2},
		},
		{
			name: "VerticalDominant",
			from: geom.Point{X: 5, Y: 2}, to: geom.Point{X: 7, Y: 12},
			want: geom.Rect{X: 6 - 0.6, Y: 2 - 0.6, Width: 1.2, Height: 10 + 1.2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := connect(tt.from, tt.to, width)
			if got != tt.want {
				t.Errorf("connect = %+v, want %+v", got, tt.want)
			}
			// Direction must not matter.
			if rev := connect(tt.to, tt.from, width); rev != tt.want {
				t.Errorf("connect reversed = %+v, want %+v", rev, tt.want)
			}
		})
	}
}

func TestCorridorsConnectToLivingRoom(t *testing.T) {
	// Without a living room no corridors are synthesized.
	layout := New(DefaultParams(), 5).Generate(testFootprint, map[plan.RoomType]int{
		plan.Bedroom: 3,
		plan.Kitchen: 1,
	})
	if len(layout.Corridors) != 0 {
		t.Errorf("got %d corridors without a living room", len(layout.Corridors))
	}
}
