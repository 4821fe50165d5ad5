package entity

import "github.com/milk9111/steering/ecs"

type buildFn func(w *ecs.World, e ecs.Entity) error

// build creates an entity and lets fn attach its components. A failed build
// leaves nothing behind in the world.
func build(w *ecs.World, fn buildFn) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := fn(w, e); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}
