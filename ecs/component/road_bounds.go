package component

// RoadBounds stores the world-space extent of the corridor. The physics
// system turns it into wall segments in the road category.
type RoadBounds struct {
	Left   float64
	Right  float64
	Length float64
}

var RoadBoundsComponent = NewComponent[RoadBounds]()
