package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/pathfind"
)

// AStarParams tune when and how far ahead A* cars plan.
type AStarParams struct {
	ScanRadius     float64
	GoalOffset     float64
	RecalcDistance float64
}

func DefaultAStarParams() AStarParams {
	return AStarParams{ScanRadius: 300, GoalOffset: 500, RecalcDistance: 50}
}

// PathfindingSystem rescans and replans for every A* car whose timer fired or
// that drifted too far from its last scan position.
type PathfindingSystem struct {
	oracle pathfind.RayCaster
	params AStarParams
}

func NewPathfindingSystem(oracle pathfind.RayCaster, params AStarParams) *PathfindingSystem {
	return &PathfindingSystem{oracle: oracle, params: params}
}

// ShouldRecalculate is the replanning trigger: the timer fired or the car
// moved more than threshold since the last scan.
func ShouldRecalculate(timerFinished bool, displacement, threshold float64) bool {
	return timerFinished || displacement > threshold
}

func (ps *PathfindingSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	dt := clockDelta(w)
	stats, _ := ecs.Singleton(w, component.SimStatsComponent.Kind())

	ecs.ForEach4(w,
		component.AStarCarComponent.Kind(),
		component.PathfindingBrainComponent.Kind(),
		component.TransformComponent.Kind(),
		component.StrategyComponent.Kind(),
		func(e ecs.Entity, car *component.AStarCar, brain *component.PathfindingBrain, tr *component.Transform, strategy *component.Strategy) {
			if strategy.Kind != component.StrategyAStar || brain.Grid == nil {
				return
			}

			fired := car.RecalculateTimer.Tick(dt)
			pos := cp.Vector{X: tr.X, Y: tr.Y}
			if !ShouldRecalculate(fired, pos.Distance(brain.LastPosition), ps.params.RecalcDistance) {
				return
			}

			evt := ps.recalculate(e, car, brain, pos)
			if stats != nil {
				stats.Recalculations++
				if evt.Fallback {
					stats.FallbackPaths++
				}
			}
			w.Events().Push(ecs.Event{Type: ecs.EventPathRecalculated, Data: evt})
		})
}

func (ps *PathfindingSystem) recalculate(e ecs.Entity, car *component.AStarCar, brain *component.PathfindingBrain, pos cp.Vector) ecs.PathEvent {
	brain.Grid.UpdateObstacles(ps.oracle, pos, ps.params.ScanRadius)

	goal := pos.Add(cp.Vector{X: 0, Y: ps.params.GoalOffset})
	path, stats := pathfind.FindPathWithStats(brain.Grid, pos, goal)

	car.SetPath(path)
	car.Recalculations++
	brain.LastPosition = pos
	brain.LastGoal = goal
	brain.Fallback = stats.Fallback

	return ecs.PathEvent{
		Entity:    e,
		Waypoints: len(path),
		Fallback:  stats.Fallback,
		Blocked:   brain.Grid.ObstacleCount(),
	}
}
