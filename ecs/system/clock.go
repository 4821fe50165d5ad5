package system

import (
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

const defaultDelta = 1.0 / 60.0

type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (cs *ClockSystem) Update(w *ecs.World) {
	clock, ok := ecs.Singleton(w, component.SimClockComponent.Kind())
	if !ok {
		return
	}
	if clock.Delta <= 0 {
		clock.Delta = defaultDelta
	}
	clock.Elapsed += clock.Delta
	clock.Tick++
}

// clockDelta returns the fixed tick length, or 1/60 when the world has no
// clock.
func clockDelta(w *ecs.World) float64 {
	clock, ok := ecs.Singleton(w, component.SimClockComponent.Kind())
	if !ok || clock.Delta <= 0 {
		return defaultDelta
	}
	return clock.Delta
}
