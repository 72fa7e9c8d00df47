package plan

// Constraints captures the placement rules a generated plan should
// respect: spacing, corridor sizing, and which room types prefer to sit
// next to or away from each other. The generator and evaluator read these
// tables; nothing mutates them after construction, so a single Constraints
// value can be shared across parallel workers.
type Constraints struct {
	MinRoomDistance   float64
	MaxRooms          int
	MinCorridorWidth  float64
	MaxCorridorLength float64

	// Adjacency maps a room type to the types it prefers as neighbors.
	Adjacency map[RoomType][]RoomType

	// Separation holds pairwise minimum distances between room centers.
	// Lookups are symmetric; see MinSeparation.
	Separation map[[2]RoomType]float64
}

// DefaultConstraints returns the stock rule set: kitchens near dining and
// living areas, bedrooms near bathrooms, and noise sources held away from
// quiet rooms.
func DefaultConstraints() *Constraints {
	return &Constraints{
		MinRoomDistance:   1.0,
		MaxRooms:          15,
		MinCorridorWidth:  1.2,
		MaxCorridorLength: 10.0,
		Adjacency: map[RoomType][]RoomType{
			Kitchen:    {DiningRoom, LivingRoom},
			Bedroom:    {Bathroom},
			LivingRoom: {DiningRoom, Hallway},
			Bathroom:   {Bedroom, Hallway},
		},
		Separation: map[[2]RoomType]float64{
			{Bedroom, Kitchen}:    2.0,
			{Bathroom, Kitchen}:   1.5,
			{Bedroom, LivingRoom}: 1.0,
		},
	}
}

// ShouldBeAdjacent reports whether a prefers b as a neighbor.
func (c *Constraints) ShouldBeAdjacent(a, b RoomType) bool {
	for _, t := range c.Adjacency[a] {
		if t == b {
			return true
		}
	}
	return false
}

// MinSeparation returns the minimum center distance required between the
// two types, checking both key orders. Zero means no rule.
func (c *Constraints) MinSeparation(a, b RoomType) float64 {
	return max(c.Separation[[2]RoomType{a, b}], c.Separation[[2]RoomType{b, a}])
}
