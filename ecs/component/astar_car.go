package component

import "github.com/jakecoffman/cp"

// AStarCar is the path-following state of an A* car. CurrentTarget indexes
// Path and is always within [0, len(Path)]; equal to len(Path) means there is
// nothing left to follow.
type AStarCar struct {
	Path             []cp.Vector
	CurrentTarget    int
	RecalculateTimer RepeatingTimer
	Recalculations   int
}

func NewAStarCar(recalcPeriod float64) *AStarCar {
	return &AStarCar{RecalculateTimer: NewRepeatingTimer(recalcPeriod)}
}

// HasPath reports whether there is a waypoint left to steer toward.
func (c *AStarCar) HasPath() bool {
	return c != nil && c.CurrentTarget < len(c.Path)
}

// Target returns the waypoint currently steered toward.
func (c *AStarCar) Target() (cp.Vector, bool) {
	if !c.HasPath() {
		return cp.Vector{}, false
	}
	return c.Path[c.CurrentTarget], true
}

// SetPath replaces the path wholesale and restarts from its first waypoint.
func (c *AStarCar) SetPath(path []cp.Vector) {
	c.Path = path
	c.CurrentTarget = 0
}

func (c *AStarCar) ClearPath() {
	c.Path = c.Path[:0]
	c.CurrentTarget = 0
}

var AStarCarComponent = NewComponent[AStarCar]()
