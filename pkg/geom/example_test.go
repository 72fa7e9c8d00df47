package geom_test

import (
	"fmt"

	"github.com/matzehuels/planforge/pkg/geom"
)

func ExampleRect_Intersects() {
	room := geom.Rect{X: 0, Y: 0, Width: 5, Height: 4}
	overlapping := geom.Rect{X: 3, Y: 2, Width: 4, Height: 4}
	adjacent := geom.Rect{X: 5, Y: 0, Width: 3, Height: 4}

	fmt.Println(room.Intersects(overlapping))
	fmt.Println(room.Intersects(adjacent))
	// Output:
	// true
	// false
}

func ExampleRect_ContainsRect() {
	footprint := geom.Rect{X: 0, Y: 0, Width: 20, Height: 15}
	inside := geom.Rect{X: 2, Y: 2, Width: 5, Height: 4}
	touching := geom.Rect{X: 15, Y: 11, Width: 5, Height: 4}

	fmt.Println(footprint.ContainsRect(inside))
	fmt.Println(footprint.ContainsRect(touching))
	// Output:
	// true
	// true
}

func ExamplePoint_DistanceTo() {
	a := geom.Point{X: 0, Y: 0}
	b := geom.Point{X: 3, Y: 4}

	fmt.Println(a.DistanceTo(b))
	// Output:
	// 5
}
