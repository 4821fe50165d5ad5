// Package render holds the viewer's drawing systems. It is kept apart from
// ecs and ecs/system so headless builds never link ebiten.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/steering/ecs"
)

// Drawer is a system that also draws each frame. Camera coordinates are world
// space; zoom scales world units to screen pixels.
type Drawer interface {
	Draw(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64)
}

// Draw calls every drawing system of s in registration order.
func Draw(s *ecs.Scheduler, w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	if s == nil || w == nil || screen == nil {
		return
	}
	for _, system := range s.Systems() {
		d, ok := system.(Drawer)
		if !ok || d == nil {
			continue
		}
		d.Draw(w, screen, camX, camY, zoom)
	}
}
