package plan_test

import (
	"fmt"

	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

func ExampleLayout_AddRoom() {
	layout := plan.NewLayout(geom.Rect{Width: 20, Height: 15})
	layout.AddRoom(plan.LivingRoom, geom.Rect{X: 0, Y: 0, Width: 8, Height: 6})
	layout.AddRoom(plan.Bedroom, geom.Rect{X: 8, Y: 0, Width: 6, Height: 6})
	layout.AddRoom(plan.Bedroom, geom.Rect{X: 0, Y: 6, Width: 6, Height: 5})

	fmt.Println(len(layout.Rooms), "rooms")
	fmt.Println(len(layout.RoomsByType(plan.Bedroom)), "bedrooms")
	fmt.Printf("utilization %.2f\n", layout.UtilizationRate())
	// Output:
	// 3 rooms
	// 2 bedrooms
	// utilization 0.38
}

func ExampleLayout_Validate() {
	layout := plan.NewLayout(geom.Rect{Width: 10, Height: 10})
	layout.AddRoom(plan.LivingRoom, geom.Rect{X: 0, Y: 0, Width: 6, Height: 6})
	layout.AddRoom(plan.Kitchen, geom.Rect{X: 4, Y: 4, Width: 4, Height: 4})

	for _, issue := range layout.Validate() {
		fmt.Println(issue.Kind, "-", issue.Message)
	}
	// Output:
	// overlap - room living_room#0 overlaps kitchen#1
	// missing_type - missing required room type bedroom
	// missing_type - missing required room type bathroom
}
