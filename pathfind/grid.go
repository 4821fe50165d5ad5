package pathfind

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
)

var ErrInvalidGrid = errors.New("pathfind: invalid grid dimensions")

// Cell is an integer (column, row) coordinate in a Grid.
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid is an occupancy map over a rectangular region of world space. Each car
// owns its own Grid; the obstacle set only reflects the latest scan.
type Grid struct {
	Width    int
	Height   int
	CellSize float64
	Origin   cp.Vector

	obstacles map[Cell]struct{}
}

func NewGrid(width, height int, cellSize float64, origin cp.Vector) (*Grid, error) {
	if width <= 0 || height <= 0 || cellSize <= 0 {
		return nil, fmt.Errorf("%w: %dx%d cell=%v", ErrInvalidGrid, width, height, cellSize)
	}
	return &Grid{
		Width:     width,
		Height:    height,
		CellSize:  cellSize,
		Origin:    origin,
		obstacles: make(map[Cell]struct{}),
	}, nil
}

// WorldToGrid converts a world point to the cell containing it. The int
// conversion truncates toward zero, so points just below/left of the origin
// land in cell 0 rather than -1.
func (g *Grid) WorldToGrid(p cp.Vector) Cell {
	rel := p.Sub(g.Origin)
	return Cell{
		X: int(rel.X / g.CellSize),
		Y: int(rel.Y / g.CellSize),
	}
}

// GridToWorld returns the world position of a cell's (0,0) corner.
func (g *Grid) GridToWorld(c Cell) cp.Vector {
	return cp.Vector{
		X: float64(c.X)*g.CellSize + g.Origin.X,
		Y: float64(c.Y)*g.CellSize + g.Origin.Y,
	}
}

func (g *Grid) IsValid(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g *Grid) IsWalkable(c Cell) bool {
	if !g.IsValid(c) {
		return false
	}
	_, blocked := g.obstacles[c]
	return !blocked
}

// Block marks a cell as an obstacle. Cells outside the grid are ignored.
func (g *Grid) Block(c Cell) {
	if !g.IsValid(c) {
		return
	}
	if g.obstacles == nil {
		g.obstacles = make(map[Cell]struct{})
	}
	g.obstacles[c] = struct{}{}
}

func (g *Grid) ClearObstacles() {
	if g.obstacles == nil {
		g.obstacles = make(map[Cell]struct{})
		return
	}
	clear(g.obstacles)
}

func (g *Grid) ObstacleCount() int {
	return len(g.obstacles)
}

// Obstacles returns the blocked cells ordered by row then column.
func (g *Grid) Obstacles() []Cell {
	out := make([]Cell, 0, len(g.obstacles))
	for c := range g.obstacles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
