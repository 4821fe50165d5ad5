package system

import (
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

const defaultScoreDivisor = 340.0

// AStarStatsSystem publishes population size and the leading car's progress
// to the SimStats resource.
type AStarStatsSystem struct {
	scoreDivisor float64
}

func NewAStarStatsSystem(scoreDivisor float64) *AStarStatsSystem {
	if scoreDivisor <= 0 {
		scoreDivisor = defaultScoreDivisor
	}
	return &AStarStatsSystem{scoreDivisor: scoreDivisor}
}

func (ss *AStarStatsSystem) Update(w *ecs.World) {
	stats, ok := ecs.Singleton(w, component.SimStatsComponent.Kind())
	if !ok {
		return
	}

	alive := 0
	maxY := 0.0
	ecs.ForEach3(w,
		component.AStarCarComponent.Kind(),
		component.TransformComponent.Kind(),
		component.StrategyComponent.Kind(),
		func(_ ecs.Entity, _ *component.AStarCar, tr *component.Transform, strategy *component.Strategy) {
			if strategy.Kind != component.StrategyAStar {
				return
			}
			alive++
			if tr.Y > maxY {
				maxY = tr.Y
			}
		})

	stats.NumCarsAlive = alive
	if maxY > 0 {
		stats.MaxCurrentScore = maxY / ss.scoreDivisor
		stats.MaxDistanceTravelled = maxY
	}
}
