package sim

import (
	"fmt"

	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

// eventRecorder drains the world event queue into a Log. It must run last in
// the pass since the scheduler drops undrained events.
type eventRecorder struct {
	log *Log
}

func (r *eventRecorder) Update(w *ecs.World) {
	tick := 0
	if clock, ok := ecs.Singleton(w, component.SimClockComponent.Kind()); ok {
		tick = clock.Tick
	}

	for _, evt := range w.Events().Drain() {
		switch evt.Type {
		case ecs.EventPathRecalculated:
			pe, _ := evt.Data.(ecs.PathEvent)
			if pe.Fallback {
				r.log.Add(tick, pe.Entity.String(), "path", "fallback", fmt.Sprintf("%d blocked cells", pe.Blocked), float64(pe.Waypoints))
				continue
			}
			r.log.AddVerbose(tick, pe.Entity.String(), "path", "recalculated", fmt.Sprintf("%d waypoints", pe.Waypoints), float64(pe.Waypoints))
		case ecs.EventPathExhausted:
			pe, _ := evt.Data.(ecs.PathEvent)
			r.log.AddVerbose(tick, pe.Entity.String(), "path", "exhausted", "", 0)
		case ecs.EventPopulationSpawn:
			n, _ := evt.Data.(int)
			r.log.Add(tick, "--", "population", "spawned", fmt.Sprintf("%d cars", n), float64(n))
		}
	}
}
