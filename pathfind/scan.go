package pathfind

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/common"
)

// RayCaster is the collision oracle the scanner casts its rays against. It
// reports whether a ray from origin along dir hits any shape accepted by
// filter within maxDist. When solid is true an origin inside a shape is a hit.
type RayCaster interface {
	CastRay(origin, dir cp.Vector, maxDist float64, solid bool, filter cp.ShapeFilter) bool
}

// ObstacleRayFilter queries as an agent and only accepts obstacle shapes, so
// the car's own collider and the road walls are never reported.
var ObstacleRayFilter = cp.NewShapeFilter(common.NoGroup, common.CategoryAgent, common.CategoryObstacle)

var rayDirections = [4]cp.Vector{
	{X: 0, Y: 1},
	{X: 1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: 0},
}

// UpdateObstacles rebuilds the obstacle set from scratch by probing every
// valid cell in a square window around center. Each cell casts four short
// cardinal rays from its corner and is blocked on the first hit.
func (g *Grid) UpdateObstacles(oracle RayCaster, center cp.Vector, scanRadius float64) {
	g.ClearObstacles()
	if oracle == nil {
		return
	}

	centerCell := g.WorldToGrid(center)
	scanCells := int(scanRadius / g.CellSize)
	rayLen := g.CellSize * 0.5

	for x := centerCell.X - scanCells; x < centerCell.X+scanCells; x++ {
		for y := centerCell.Y - scanCells; y < centerCell.Y+scanCells; y++ {
			c := Cell{X: x, Y: y}
			if !g.IsValid(c) {
				continue
			}
			origin := g.GridToWorld(c)
			for _, dir := range rayDirections {
				if oracle.CastRay(origin, dir, rayLen, false, ObstacleRayFilter) {
					g.Block(c)
					break
				}
			}
		}
	}
}
