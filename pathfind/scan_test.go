package pathfind

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

// boxOracle reports a hit when a ray segment touches any of its boxes.
type boxOracle struct {
	boxes   []cp.BB
	calls   int
	filters []cp.ShapeFilter
}

func (o *boxOracle) CastRay(origin, dir cp.Vector, maxDist float64, solid bool, filter cp.ShapeFilter) bool {
	o.calls++
	o.filters = append(o.filters, filter)
	end := origin.Add(dir.Mult(maxDist))
	for _, bb := range o.boxes {
		if segmentTouches(bb, origin, end) {
			return true
		}
	}
	return false
}

// Axis aligned rays only, which is all the scanner casts.
func segmentTouches(bb cp.BB, a, b cp.Vector) bool {
	minX, maxX := min(a.X, b.X), max(a.X, b.X)
	minY, maxY := min(a.Y, b.Y), max(a.Y, b.Y)
	return maxX >= bb.L && minX <= bb.R && maxY >= bb.B && minY <= bb.T
}

func TestUpdateObstaclesMissesBoxBetweenRays(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{})
	// Strictly inside cell (5,5) and out of reach of every corner ray.
	oracle := &boxOracle{boxes: []cp.BB{{L: 101, B: 101, R: 109, T: 109}}}

	g.UpdateObstacles(oracle, cp.Vector{X: 100, Y: 100}, 100)

	assert.True(t, g.IsWalkable(Cell{X: 5, Y: 5}))
	assert.Zero(t, g.ObstacleCount())
	for _, f := range oracle.filters {
		assert.Equal(t, ObstacleRayFilter, f)
	}
}

func TestUpdateObstaclesDetectsBoxOnCorner(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{})
	// Covers the corner of cell (3,4) at world (60,80).
	oracle := &boxOracle{boxes: []cp.BB{{L: 55, B: 75, R: 65, T: 85}}}

	g.UpdateObstacles(oracle, cp.Vector{X: 100, Y: 100}, 100)

	assert.False(t, g.IsWalkable(Cell{X: 3, Y: 4}))
	assert.True(t, g.IsWalkable(Cell{X: 0, Y: 0}))
	assert.True(t, g.IsWalkable(Cell{X: 8, Y: 8}))
}

func TestUpdateObstaclesScanWindowIsHalfOpen(t *testing.T) {
	g := newTestGrid(t, 100, 100, 20, cp.Vector{})
	oracle := &boxOracle{}

	// center cell (10,10), 3 cells each way -> x,y in [7,13) -> 36 cells.
	g.UpdateObstacles(oracle, cp.Vector{X: 205, Y: 205}, 60)

	assert.Equal(t, 36*4, oracle.calls)
	assert.Zero(t, g.ObstacleCount())
}

func TestUpdateObstaclesSkipsInvalidCells(t *testing.T) {
	g := newTestGrid(t, 4, 4, 20, cp.Vector{})
	oracle := &boxOracle{}

	g.UpdateObstacles(oracle, cp.Vector{}, 60)

	// window [-3,3) clipped to [0,3) in both axes.
	assert.Equal(t, 9*4, oracle.calls)
}

func TestUpdateObstaclesStopsAtFirstHit(t *testing.T) {
	g := newTestGrid(t, 2, 2, 20, cp.Vector{})
	everywhere := &boxOracle{boxes: []cp.BB{{L: -1000, B: -1000, R: 1000, T: 1000}}}

	g.UpdateObstacles(everywhere, cp.Vector{X: 20, Y: 20}, 40)

	assert.Equal(t, 4, g.ObstacleCount())
	assert.Equal(t, 4, everywhere.calls, "one ray per cell when the first ray hits")
}

func TestUpdateObstaclesReplacesPreviousScan(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{})
	g.Block(Cell{X: 9, Y: 9})

	g.UpdateObstacles(&boxOracle{}, cp.Vector{X: 100, Y: 100}, 100)

	assert.True(t, g.IsWalkable(Cell{X: 9, Y: 9}))
	assert.Zero(t, g.ObstacleCount())
}
