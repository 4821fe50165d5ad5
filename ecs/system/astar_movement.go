package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

type MovementParams struct {
	Speed        float64
	ArriveRadius float64
	RotationGain float64
}

func DefaultMovementParams() MovementParams {
	return MovementParams{Speed: 100, ArriveRadius: 50, RotationGain: 2.0}
}

// FollowResult says what one controller tick did.
type FollowResult uint8

const (
	// FollowCruise moved the car straight along its heading.
	FollowCruise FollowResult = iota
	// FollowAdvanced reached a waypoint and moved on to the next one.
	FollowAdvanced
	// FollowExhausted reached the last waypoint and cleared the path.
	FollowExhausted
	// FollowSteered moved toward the current waypoint.
	FollowSteered
)

func (r FollowResult) String() string {
	switch r {
	case FollowCruise:
		return "cruise"
	case FollowAdvanced:
		return "advanced"
	case FollowExhausted:
		return "exhausted"
	case FollowSteered:
		return "steered"
	default:
		return "unknown"
	}
}

// FollowPath runs one tick of path following. A car with nothing to follow
// cruises along its heading. Reaching a waypoint costs the tick: the index
// advances and the car does not move.
func FollowPath(car *component.AStarCar, tr *component.Transform, p MovementParams, dt float64) FollowResult {
	if len(car.Path) == 0 {
		cruise(tr, p.Speed, dt)
		return FollowCruise
	}
	target, ok := car.Target()
	if !ok {
		car.ClearPath()
		return FollowExhausted
	}

	pos := cp.Vector{X: tr.X, Y: tr.Y}
	delta := target.Sub(pos)
	dist := delta.Length()

	if dist < p.ArriveRadius {
		car.CurrentTarget++
		if car.CurrentTarget >= len(car.Path) {
			car.ClearPath()
			return FollowExhausted
		}
		return FollowAdvanced
	}

	dir := cp.Vector{X: delta.X / dist, Y: delta.Y / dist}
	if math.IsNaN(dir.X) || math.IsNaN(dir.Y) {
		cruise(tr, p.Speed, dt)
		return FollowCruise
	}

	tr.X += dir.X * p.Speed * dt
	tr.Y += dir.Y * p.Speed * dt

	diff := common.NormalizeAngle(common.HeadingOf(dir) - tr.Rotation)
	tr.Rotation += diff * p.RotationGain * dt
	return FollowSteered
}

func cruise(tr *component.Transform, speed, dt float64) {
	fwd := common.Forward(tr.Rotation)
	tr.X += fwd.X * speed * dt
	tr.Y += fwd.Y * speed * dt
}

// AStarMovementSystem drives every A* car along its path.
type AStarMovementSystem struct {
	params MovementParams
}

func NewAStarMovementSystem(params MovementParams) *AStarMovementSystem {
	return &AStarMovementSystem{params: params}
}

func (ms *AStarMovementSystem) Update(w *ecs.World) {
	if ms == nil || w == nil {
		return
	}
	dt := clockDelta(w)

	ecs.ForEach3(w,
		component.AStarCarComponent.Kind(),
		component.TransformComponent.Kind(),
		component.StrategyComponent.Kind(),
		func(e ecs.Entity, car *component.AStarCar, tr *component.Transform, strategy *component.Strategy) {
			if strategy.Kind != component.StrategyAStar {
				return
			}
			if FollowPath(car, tr, ms.params, dt) == FollowExhausted {
				w.Events().Push(ecs.Event{Type: ecs.EventPathExhausted, Data: ecs.PathEvent{Entity: e}})
			}
		})
}
