package pathfind

import (
	"container/heap"

	"github.com/jakecoffman/cp"
)

// StepCost is the cost of one cardinal move. The heuristic is scaled by the
// same unit so f-costs stay comparable.
const StepCost = 10

// FallbackOffsets are the forward steps taken when no real path exists.
var FallbackOffsets = [3]cp.Vector{
	{X: 0, Y: 50},
	{X: 0, Y: 100},
	{X: 0, Y: 150},
}

// north, east, south, west
var cardinalSteps = [4]Cell{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
}

// SearchStats describes the work done by one FindPath call.
type SearchStats struct {
	Expanded int
	Fallback bool
}

// FindPath returns world-space waypoints from start toward goal. The start
// cell itself is not included. The result is never empty: when either end is
// not walkable, or the goal is unreachable, FallbackPath is returned.
func FindPath(grid *Grid, start, goal cp.Vector) []cp.Vector {
	path, _ := FindPathWithStats(grid, start, goal)
	return path
}

func FindPathWithStats(grid *Grid, start, goal cp.Vector) ([]cp.Vector, SearchStats) {
	var stats SearchStats
	if grid == nil {
		stats.Fallback = true
		return FallbackPath(start, goal), stats
	}

	startCell := grid.WorldToGrid(start)
	goalCell := grid.WorldToGrid(goal)
	if !grid.IsWalkable(startCell) || !grid.IsWalkable(goalCell) {
		stats.Fallback = true
		return FallbackPath(start, goal), stats
	}

	open := &openSet{}
	heap.Init(open)
	closed := make(map[Cell]struct{})
	cameFrom := make(map[Cell]Cell)
	gScore := map[Cell]int{startCell: 0}

	heap.Push(open, &node{cell: startCell, g: 0, h: manhattan(startCell, goalCell)})

	for open.Len() > 0 {
		current := heap.Pop(open).(*node)
		if current.cell == goalCell {
			return reconstructPath(grid, cameFrom, startCell, goalCell), stats
		}
		// Stale duplicates are skipped once their cell has been expanded.
		if _, done := closed[current.cell]; done {
			continue
		}
		closed[current.cell] = struct{}{}
		stats.Expanded++

		for _, step := range cardinalSteps {
			next := Cell{X: current.cell.X + step.X, Y: current.cell.Y + step.Y}
			if !grid.IsWalkable(next) {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}
			tentative := current.g + StepCost
			if prev, seen := gScore[next]; seen && tentative >= prev {
				continue
			}
			cameFrom[next] = current.cell
			gScore[next] = tentative
			heap.Push(open, &node{cell: next, g: tentative, h: manhattan(next, goalCell)})
		}
	}

	stats.Fallback = true
	return FallbackPath(start, goal), stats
}

// FallbackPath keeps a car moving forward when sensing or search gives it
// nothing to follow.
func FallbackPath(start, goal cp.Vector) []cp.Vector {
	out := make([]cp.Vector, 0, len(FallbackOffsets)+1)
	for _, off := range FallbackOffsets {
		out = append(out, start.Add(off))
	}
	return append(out, goal)
}

func reconstructPath(grid *Grid, cameFrom map[Cell]Cell, start, goal Cell) []cp.Vector {
	if start == goal {
		return []cp.Vector{grid.GridToWorld(goal)}
	}

	cells := make([]Cell, 0, 32)
	cur := goal
	for cur != start {
		cells = append(cells, cur)
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		cur = prev
	}

	out := make([]cp.Vector, len(cells))
	for i, c := range cells {
		out[len(cells)-1-i] = grid.GridToWorld(c)
	}
	return out
}

func manhattan(a, b Cell) int {
	return (abs(a.X-b.X) + abs(a.Y-b.Y)) * StepCost
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
