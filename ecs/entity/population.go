package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"github.com/milk9111/steering/prefabs"
)

// SpawnPosition lays cars out in rows of spec.Population.Columns starting at
// the vertical middle of the window.
func SpawnPosition(spec prefabs.SimSpec, i int) cp.Vector {
	cols := spec.Population.Columns
	if cols <= 0 {
		cols = 1
	}
	return cp.Vector{
		X: spec.Population.SpawnX + float64(i%cols)*spec.Population.ColumnSpacing,
		Y: spec.World.Height/2 + float64(i/cols)*spec.Population.RowSpacing,
	}
}

// SpawnPopulation spawns spec.Population.Count cars with the configured
// strategy and announces them with EventPopulationSpawn.
func SpawnPopulation(w *ecs.World, spec prefabs.SimSpec) ([]ecs.Entity, error) {
	kind, err := component.ParseStrategy(spec.Population.Strategy)
	if err != nil {
		return nil, fmt.Errorf("population: %w", err)
	}

	cars := make([]ecs.Entity, 0, spec.Population.Count)
	for i := 0; i < spec.Population.Count; i++ {
		e, err := NewCar(w, spec, SpawnPosition(spec, i), kind)
		if err != nil {
			return cars, fmt.Errorf("population: car %d: %w", i, err)
		}
		cars = append(cars, e)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventPopulationSpawn, Data: len(cars)})
	return cars, nil
}

// DespawnCars destroys every car and returns how many were removed.
func DespawnCars(w *ecs.World) int {
	n := 0
	for _, e := range ecs.Query(w, component.CarTagComponent.Kind()) {
		if ecs.DestroyEntity(w, e) {
			n++
		}
	}
	return n
}
