package system

import (
	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

const cameraFollowLerp = 0.05

// CameraSystem eases the camera toward the leading car along the corridor
// while Settings.CameraFollow is on. X stays where the viewer put it.
type CameraSystem struct {
	X    float64
	Y    float64
	Zoom float64
}

func NewCameraSystem(x, y float64) *CameraSystem {
	return &CameraSystem{X: x, Y: y, Zoom: 1}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	settings, ok := ecs.Singleton(w, component.SettingsComponent.Kind())
	if !ok || !settings.CameraFollow {
		return
	}
	stats, ok := ecs.Singleton(w, component.SimStatsComponent.Kind())
	if !ok {
		return
	}
	cs.Y = common.Lerp(cs.Y, stats.MaxDistanceTravelled, cameraFollowLerp)
}
