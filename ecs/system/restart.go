package system

import (
	"log"

	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/ecs/entity"
)

// Respawner repopulates a world after the restart system cleared it.
type Respawner func(w *ecs.World) error

// RestartSystem consumes RestartRequest entities. It despawns every car,
// zeroes SimStats and hands the world to respawn.
type RestartSystem struct {
	respawn Respawner
}

func NewRestartSystem(respawn Respawner) *RestartSystem {
	return &RestartSystem{respawn: respawn}
}

func (rs *RestartSystem) Update(w *ecs.World) {
	requests := ecs.Query(w, component.RestartRequestComponent.Kind())
	if len(requests) == 0 {
		return
	}
	for _, e := range requests {
		ecs.DestroyEntity(w, e)
	}

	entity.DespawnCars(w)

	if stats, ok := ecs.Singleton(w, component.SimStatsComponent.Kind()); ok {
		*stats = component.SimStats{}
	}

	if rs.respawn == nil {
		return
	}
	if err := rs.respawn(w); err != nil {
		log.Printf("restart: respawn: %v", err)
	}
}
