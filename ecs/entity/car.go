package entity

import (
	"errors"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/pathfind"
	"github.com/milk9111/steering/prefabs"
)

// ErrStrategyUnsupported is returned when a car is asked to drive with a
// strategy this build cannot run.
var ErrStrategyUnsupported = errors.New("entity: navigation strategy not supported")

// NewCar spawns one car at pos. A* cars get their own grid sized from spec.
func NewCar(w *ecs.World, spec prefabs.SimSpec, pos cp.Vector, kind component.StrategyKind) (ecs.Entity, error) {
	if kind != component.StrategyAStar {
		return 0, fmt.Errorf("car: %w: %s", ErrStrategyUnsupported, kind)
	}

	grid, err := pathfind.NewGrid(
		spec.Grid.Width,
		spec.Grid.Height,
		spec.Grid.CellSize,
		cp.Vector{X: spec.Grid.OriginX, Y: spec.Grid.OriginY},
	)
	if err != nil {
		return 0, fmt.Errorf("car: new grid: %w", err)
	}

	return build(w, func(w *ecs.World, e ecs.Entity) error {
		return addCarComponents(w, e, spec, pos, kind, grid)
	})
}

func addCarComponents(w *ecs.World, entity ecs.Entity, spec prefabs.SimSpec, pos cp.Vector, kind component.StrategyKind, grid *pathfind.Grid) error {
	if err := ecs.Add(w, entity, component.CarTagComponent.Kind(), &component.CarTag{}); err != nil {
		return fmt.Errorf("car: add car tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.StrategyComponent.Kind(), &component.Strategy{Kind: kind}); err != nil {
		return fmt.Errorf("car: add strategy: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return fmt.Errorf("car: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  spec.Car.Width,
		Height: spec.Car.Height,
		Mass:   1,
	}); err != nil {
		return fmt.Errorf("car: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: common.CategoryAgent,
		Mask:     common.CategoryObstacle | common.CategoryRoad,
	}); err != nil {
		return fmt.Errorf("car: add collision layer: %w", err)
	}

	if err := ecs.Add(w, entity, component.AStarCarComponent.Kind(), component.NewAStarCar(spec.AStar.RecalcPeriod)); err != nil {
		return fmt.Errorf("car: add astar car: %w", err)
	}

	// LastPosition starts at the origin so the first tick always plans.
	if err := ecs.Add(w, entity, component.PathfindingBrainComponent.Kind(), &component.PathfindingBrain{Grid: grid}); err != nil {
		return fmt.Errorf("car: add pathfinding brain: %w", err)
	}
	return nil
}
