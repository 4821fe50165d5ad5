package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/ecs/entity"
	"github.com/milk9111/steering/prefabs"
	"github.com/stretchr/testify/require"
)

// rayFunc adapts a function to pathfind.RayCaster.
type rayFunc func(origin, dir cp.Vector, maxDist float64, solid bool, filter cp.ShapeFilter) bool

func (f rayFunc) CastRay(origin, dir cp.Vector, maxDist float64, solid bool, filter cp.ShapeFilter) bool {
	return f(origin, dir, maxDist, solid, filter)
}

var emptyWorld = rayFunc(func(cp.Vector, cp.Vector, float64, bool, cp.ShapeFilter) bool { return false })

func newTestWorld(t *testing.T, delta float64) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	_, err := entity.NewClock(w, delta)
	require.NoError(t, err)
	_, err = entity.NewStats(w)
	require.NoError(t, err)
	return w
}

func addCar(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewCar(w, prefabs.DefaultSimSpec(), cp.Vector{X: x, Y: y}, component.StrategyAStar)
	require.NoError(t, err)
	return e
}

func mustGet[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	t.Helper()
	v, ok := ecs.Get(w, e, kind)
	require.True(t, ok)
	return v
}
