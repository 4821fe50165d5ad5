package entity

import (
	"fmt"

	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/prefabs"
)

// NewRoad spawns the corridor bounds. The physics system builds its walls in
// the road category, which the obstacle scanner never sees.
func NewRoad(w *ecs.World, spec prefabs.RoadSpec) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.RoadBoundsComponent.Kind(), &component.RoadBounds{
		Left:   spec.Left,
		Right:  spec.Right,
		Length: spec.Length,
	}); err != nil {
		return 0, fmt.Errorf("road: add bounds: %w", err)
	}

	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: common.CategoryRoad,
		Mask:     common.CategoryAll,
	}); err != nil {
		return 0, fmt.Errorf("road: add collision layer: %w", err)
	}

	return entity, nil
}
