package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowPathCruisesWithoutPath(t *testing.T) {
	car := component.NewAStarCar(1)
	tr := &component.Transform{X: 10, Y: 20}

	got := FollowPath(car, tr, DefaultMovementParams(), 0.5)

	assert.Equal(t, FollowCruise, got)
	assert.InDelta(t, 10, tr.X, 1e-9)
	assert.InDelta(t, 70, tr.Y, 1e-9)
}

func TestFollowPathCruisesAlongHeading(t *testing.T) {
	car := component.NewAStarCar(1)
	tr := &component.Transform{Rotation: math.Pi / 2}

	FollowPath(car, tr, DefaultMovementParams(), 1)

	assert.InDelta(t, -100, tr.X, 1e-9)
	assert.InDelta(t, 0, tr.Y, 1e-9)
}

func TestFollowPathAdvancesWithoutMoving(t *testing.T) {
	car := component.NewAStarCar(1)
	car.SetPath([]cp.Vector{{X: 0, Y: 10}, {X: 0, Y: 200}})
	tr := &component.Transform{}

	got := FollowPath(car, tr, DefaultMovementParams(), 1.0/60.0)

	assert.Equal(t, FollowAdvanced, got)
	assert.Equal(t, 1, car.CurrentTarget)
	assert.Equal(t, component.Transform{}, *tr)
}

func TestFollowPathClearsWhenExhausted(t *testing.T) {
	car := component.NewAStarCar(1)
	car.SetPath([]cp.Vector{{X: 0, Y: 10}})
	tr := &component.Transform{}

	got := FollowPath(car, tr, DefaultMovementParams(), 1.0/60.0)

	assert.Equal(t, FollowExhausted, got)
	assert.Empty(t, car.Path)
	assert.Zero(t, car.CurrentTarget)
	assert.Equal(t, component.Transform{}, *tr)
}

func TestFollowPathIndexPastEnd(t *testing.T) {
	car := component.NewAStarCar(1)
	car.Path = []cp.Vector{{X: 0, Y: 100}, {X: 0, Y: 200}}
	car.CurrentTarget = 2
	tr := &component.Transform{}

	assert.Equal(t, FollowExhausted, FollowPath(car, tr, DefaultMovementParams(), 0.1))
	assert.Empty(t, car.Path)
	assert.Zero(t, car.CurrentTarget)
}

func TestFollowPathSteersTowardTarget(t *testing.T) {
	car := component.NewAStarCar(1)
	car.SetPath([]cp.Vector{{X: 100, Y: 0}})
	tr := &component.Transform{}

	got := FollowPath(car, tr, DefaultMovementParams(), 0.1)

	assert.Equal(t, FollowSteered, got)
	assert.InDelta(t, 10, tr.X, 1e-9)
	assert.InDelta(t, 0, tr.Y, 1e-9)
	// target heading is -pi/2; a tenth of a second at gain 2 turns a fifth of it
	assert.InDelta(t, -math.Pi/10, tr.Rotation, 1e-9)
	assert.Zero(t, car.CurrentTarget)
}

func TestFollowPathTurnsTheShortWay(t *testing.T) {
	car := component.NewAStarCar(1)
	car.SetPath([]cp.Vector{{X: 0, Y: -100}})
	tr := &component.Transform{Rotation: 3}

	FollowPath(car, tr, DefaultMovementParams(), 0.1)

	// heading pi is 0.14 rad away through the wrap, not 3 rad back
	assert.InDelta(t, 3+(math.Pi-3)*0.2, tr.Rotation, 1e-9)
}

func TestFollowPathDegenerateDirection(t *testing.T) {
	car := component.NewAStarCar(1)
	car.SetPath([]cp.Vector{{X: 5, Y: 5}})
	tr := &component.Transform{X: 5, Y: 5}
	params := DefaultMovementParams()
	params.ArriveRadius = 0

	got := FollowPath(car, tr, params, 1)

	assert.Equal(t, FollowCruise, got)
	assert.InDelta(t, 105, tr.Y, 1e-9)
	assert.Zero(t, car.CurrentTarget)
}

func TestFollowPathTerminates(t *testing.T) {
	car := component.NewAStarCar(1)
	path := make([]cp.Vector, 6)
	for i := range path {
		path[i] = cp.Vector{X: 0, Y: float64(i)}
	}
	car.SetPath(path)
	tr := &component.Transform{}

	for i := 1; i < len(path); i++ {
		require.Equal(t, FollowAdvanced, FollowPath(car, tr, DefaultMovementParams(), 1))
		require.Equal(t, i, car.CurrentTarget)
	}
	assert.Equal(t, FollowExhausted, FollowPath(car, tr, DefaultMovementParams(), 1))
	assert.False(t, car.HasPath())
	assert.Empty(t, car.Path)
}

func TestFollowPathReachesFarWaypoints(t *testing.T) {
	car := component.NewAStarCar(1)
	car.SetPath([]cp.Vector{{X: 40, Y: 120}, {X: 0, Y: 300}})
	tr := &component.Transform{}

	for i := 0; i < 1000 && car.HasPath(); i++ {
		FollowPath(car, tr, DefaultMovementParams(), 1.0/60.0)
	}

	require.False(t, car.HasPath())
	assert.Greater(t, tr.Y, 250.0)
}

func TestAStarMovementSystemReportsExhaustion(t *testing.T) {
	w := newTestWorld(t, 1.0/60.0)
	car := addCar(t, w, 900, 400)
	ac := mustGet(t, w, car, component.AStarCarComponent.Kind())
	ac.SetPath([]cp.Vector{{X: 900, Y: 410}})

	NewAStarMovementSystem(DefaultMovementParams()).Update(w)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, ecs.EventPathExhausted, events[0].Type)

	tr := mustGet(t, w, car, component.TransformComponent.Kind())
	NewAStarMovementSystem(DefaultMovementParams()).Update(w)
	assert.InDelta(t, 400+100.0/60.0, tr.Y, 1e-9)
}
