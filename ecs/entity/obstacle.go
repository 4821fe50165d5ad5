package entity

import (
	"fmt"

	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/prefabs"
)

// NewObstacle spawns a box centered on (spec.X, spec.Y). Boxes with a
// velocity drift along it; the rest are static.
func NewObstacle(w *ecs.World, spec prefabs.ObstacleSpec) (ecs.Entity, error) {
	return build(w, func(w *ecs.World, entity ecs.Entity) error {
		return addObstacleComponents(w, entity, spec)
	})
}

func addObstacleComponents(w *ecs.World, entity ecs.Entity, spec prefabs.ObstacleSpec) error {
	if err := ecs.Add(w, entity, component.ObstacleTagComponent.Kind(), &component.ObstacleTag{}); err != nil {
		return fmt.Errorf("obstacle: add obstacle tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y}); err != nil {
		return fmt.Errorf("obstacle: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     spec.Width,
		Height:    spec.Height,
		Static:    spec.VelocityX == 0 && spec.VelocityY == 0,
		VelocityX: spec.VelocityX,
		VelocityY: spec.VelocityY,
	}); err != nil {
		return fmt.Errorf("obstacle: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: common.CategoryObstacle,
		Mask:     common.CategoryAll,
	}); err != nil {
		return fmt.Errorf("obstacle: add collision layer: %w", err)
	}

	return nil
}

func NewObstacles(w *ecs.World, specs []prefabs.ObstacleSpec) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, len(specs))
	for i, spec := range specs {
		e, err := NewObstacle(w, spec)
		if err != nil {
			return out, fmt.Errorf("obstacle %d: %w", i, err)
		}
		out = append(out, e)
	}
	return out, nil
}
