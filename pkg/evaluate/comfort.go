package evaluate

import (
	"github.com/matzehuels/planforge/pkg/geom"
	"github.com/matzehuels/planforge/pkg/plan"
)

var (
	noiseSourceTypes = []plan.RoomType{plan.Kitchen, plan.Bathroom}
	quietZoneTypes   = []plan.RoomType{plan.Bedroom, plan.Study}
	privateTypes     = []plan.RoomType{plan.Bedroom, plan.Bathroom}
	socialTypes      = []plan.RoomType{plan.LivingRoom, plan.DiningRoom}
)

// Functional zones for the clustering term: rooms of the same zone
// should sit near each other.
var functionalZones = [][]plan.RoomType{
	{plan.LivingRoom, plan.DiningRoom},
	{plan.Bedroom, plan.Study},
	{plan.Kitchen, plan.Bathroom},
}

// fullIsolationDistance is the center distance at which a noise source
// no longer affects a quiet room.
const fullIsolationDistance = 5.0

// zoneClusterRadius normalizes the dispersion of a functional zone's
// room centers.
const zoneClusterRadius = 10.0

// doorEdgeTolerance is how close a door must be to a room edge to count
// as opening onto shared space.
const doorEdgeTolerance = 0.5

// scoreComfort blends noise isolation (0.3), privacy (0.3), social-space
// quality (0.2), and functional-zone clustering (0.2).
func scoreComfort(cfg Config, layout *plan.Layout) float64 {
	return 0.3*noiseIsolationScore(layout) +
		0.3*privacyScore(layout) +
		0.2*socialSpaceScore(cfg, layout) +
		0.2*functionalZoningScore(layout)
}

// noiseIsolationScore measures the distance between each noise source
// and each quiet zone; full isolation distance earns a full score.
// Layouts without any source/quiet pairing are trivially isolated.
func noiseIsolationScore(layout *plan.Layout) float64 {
	byType := lastByType(layout)

	var score float64
	var pairs int
	for _, sourceType := range noiseSourceTypes {
		source, ok := byType[sourceType]
		if !ok {
			continue
		}
		for _, quietType := range quietZoneTypes {
			quiet, ok := byType[quietType]
			if !ok {
				continue
			}
			distance := source.Bounds.Center().DistanceTo(quiet.Bounds.Center())
			score += min(1, distance/fullIsolationDistance)
			pairs++
		}
	}
	if pairs == 0 {
		return 1.0
	}
	return score / float64(pairs)
}

// privacyScore penalizes private rooms whose doors sit on boundary
// walls, where they open directly onto shared space.
func privacyScore(layout *plan.Layout) float64 {
	byType := lastByType(layout)

	var score float64
	var counted int
	for _, roomType := range privateTypes {
		room, ok := byType[roomType]
		if !ok {
			continue
		}
		exposed := 0
		for _, door := range room.Doors {
			if onBoundaryWall(room.Bounds, door) {
				exposed++
			}
		}
		score += max(0, 1-float64(exposed)/2)
		counted++
	}
	if counted == 0 {
		return 1.0
	}
	return score / float64(counted)
}

func onBoundaryWall(bounds geom.Rect, door geom.Rect) bool {
	return door.X <= bounds.X+doorEdgeTolerance ||
		door.X+door.Width >= bounds.Right()-doorEdgeTolerance ||
		door.Y <= bounds.Y+doorEdgeTolerance ||
		door.Y+door.Height >= bounds.Bottom()-doorEdgeTolerance
}

// socialSpaceScore rewards living and dining rooms that are spacious and
// close to square, scaled by the social-area bonus.
func socialSpaceScore(cfg Config, layout *plan.Layout) float64 {
	byType := lastByType(layout)

	var score float64
	for _, roomType := range socialTypes {
		room, ok := byType[roomType]
		if !ok {
			continue
		}
		idealArea := 15.0
		if roomType == plan.LivingRoom {
			idealArea = 20.0
		}
		areaScore := min(1, room.Area()/idealArea)

		shapeScore := 0.7
		if ratio := room.AspectRatio(); ratio >= 0.8 && ratio <= 1.25 {
			shapeScore = 1.0
		}
		score += (areaScore + shapeScore) / 2
	}
	return score / float64(len(socialTypes)) * cfg.SocialAreaBonus
}

// functionalZoningScore measures how tightly each functional zone's
// rooms cluster around their own centroid. Zones with fewer than two
// rooms have nothing to cluster and score full.
func functionalZoningScore(layout *plan.Layout) float64 {
	var total float64
	for _, zone := range functionalZones {
		var centers []geom.Point
		for _, room := range layout.Rooms {
			for _, zoneType := range zone {
				if room.Type == zoneType {
					centers = append(centers, room.Bounds.Center())
					break
				}
			}
		}
		if len(centers) < 2 {
			total += 1.0
			continue
		}
		var centroid geom.Point
		for _, c := range centers {
			centroid.X += c.X
			centroid.Y += c.Y
		}
		centroid.X /= float64(len(centers))
		centroid.Y /= float64(len(centers))

		var dispersion float64
		for _, c := range centers {
			dispersion += c.DistanceTo(centroid)
		}
		dispersion /= float64(len(centers))
		total += max(0, 1-dispersion/zoneClusterRadius)
	}
	return total / float64(len(functionalZones))
}
