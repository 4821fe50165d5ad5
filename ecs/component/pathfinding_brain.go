package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/pathfind"
)

// PathfindingBrain is a car's private view of its surroundings: its own
// occupancy grid plus where it was when that grid was last scanned.
type PathfindingBrain struct {
	Grid         *pathfind.Grid
	LastPosition cp.Vector
	LastGoal     cp.Vector
	Fallback     bool
}

var PathfindingBrainComponent = NewComponent[PathfindingBrain]()
