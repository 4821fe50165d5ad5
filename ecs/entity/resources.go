package entity

import (
	"fmt"

	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

func NewClock(w *ecs.World, delta float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.SimClockComponent.Kind(), &component.SimClock{Delta: delta}); err != nil {
		return 0, fmt.Errorf("clock: add sim clock: %w", err)
	}
	return entity, nil
}

func NewStats(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.SimStatsComponent.Kind(), &component.SimStats{}); err != nil {
		return 0, fmt.Errorf("stats: add sim stats: %w", err)
	}
	return entity, nil
}

func NewSettings(w *ecs.World, settings component.Settings) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.SettingsComponent.Kind(), &settings); err != nil {
		return 0, fmt.Errorf("settings: add settings: %w", err)
	}
	return entity, nil
}

// RequestRestart queues a restart for the restart system.
func RequestRestart(w *ecs.World) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.RestartRequestComponent.Kind(), &component.RestartRequest{}); err != nil {
		return 0, fmt.Errorf("restart: add request: %w", err)
	}
	return entity, nil
}
