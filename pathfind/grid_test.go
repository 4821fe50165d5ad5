package pathfind

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, w, h int, cell float64, origin cp.Vector) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, cell, origin)
	require.NoError(t, err)
	return g
}

func TestNewGridRejectsDegenerateSizes(t *testing.T) {
	cases := []struct {
		name string
		w, h int
		cell float64
	}{
		{"zero_width", 0, 10, 20},
		{"negative_height", 10, -1, 20},
		{"zero_cell", 10, 10, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewGrid(c.w, c.h, c.cell, cp.Vector{})
			assert.ErrorIs(t, err, ErrInvalidGrid)
		})
	}
}

func TestGridRoundTrip(t *testing.T) {
	g := newTestGrid(t, 100, 200, 20, cp.Vector{X: 600, Y: 0})
	for x := 0; x < g.Width; x += 7 {
		for y := 0; y < g.Height; y += 11 {
			c := Cell{X: x, Y: y}
			require.True(t, g.IsWalkable(c))
			assert.Equal(t, c, g.WorldToGrid(g.GridToWorld(c)))
		}
	}
}

func TestWorldToGridTruncatesTowardZero(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{})

	assert.Equal(t, Cell{X: 0, Y: 0}, g.WorldToGrid(cp.Vector{X: -5, Y: -19}))
	assert.Equal(t, Cell{X: -1, Y: 0}, g.WorldToGrid(cp.Vector{X: -25, Y: 3}))
	assert.Equal(t, Cell{X: 2, Y: 9}, g.WorldToGrid(cp.Vector{X: 59.9, Y: 199}))
}

func TestGridToWorldUsesCellCorner(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{X: 600, Y: -40})
	assert.Equal(t, cp.Vector{X: 660, Y: 0}, g.GridToWorld(Cell{X: 3, Y: 2}))
}

func TestWalkability(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{})
	g.Block(Cell{X: 5, Y: 5})
	g.Block(Cell{X: 50, Y: 5})

	cases := []struct {
		cell     Cell
		valid    bool
		walkable bool
	}{
		{Cell{X: 0, Y: 0}, true, true},
		{Cell{X: 9, Y: 9}, true, true},
		{Cell{X: 5, Y: 5}, true, false},
		{Cell{X: 10, Y: 0}, false, false},
		{Cell{X: -1, Y: 3}, false, false},
		{Cell{X: 3, Y: -1}, false, false},
	}
	for _, c := range cases {
		t.Run(c.cell.String(), func(t *testing.T) {
			assert.Equal(t, c.valid, g.IsValid(c.cell))
			assert.Equal(t, c.walkable, g.IsWalkable(c.cell))
		})
	}
	assert.Equal(t, 1, g.ObstacleCount(), "out of range cells are never stored")
}

func TestObstaclesSortedCopy(t *testing.T) {
	g := newTestGrid(t, 10, 10, 20, cp.Vector{})
	g.Block(Cell{X: 4, Y: 2})
	g.Block(Cell{X: 1, Y: 2})
	g.Block(Cell{X: 9, Y: 0})

	assert.Equal(t, []Cell{{X: 9, Y: 0}, {X: 1, Y: 2}, {X: 4, Y: 2}}, g.Obstacles())

	g.ClearObstacles()
	assert.Zero(t, g.ObstacleCount())
}
