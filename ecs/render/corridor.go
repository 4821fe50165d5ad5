package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	roadColor     = colornames.Dimgray
	obstacleColor = colornames.Orange
	carColor      = colornames.White
	fallbackColor = colornames.Crimson
	pathColor     = color.RGBA{R: 0x87, G: 0xce, B: 0xfa, A: 0x90}
	blockedColor  = color.RGBA{R: 255, G: 0, B: 0, A: 48}
)

// CorridorSystem draws the corridor in y-up world space. The camera point is
// the world position shown at the screen center. It sits in the scheduler
// only so Draw finds it; Update does nothing.
type CorridorSystem struct{}

func NewCorridorSystem() *CorridorSystem {
	return &CorridorSystem{}
}

func (cs *CorridorSystem) Update(w *ecs.World) {}

func (cs *CorridorSystem) Draw(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	if w == nil || screen == nil {
		return
	}
	if zoom <= 0 {
		zoom = 1
	}
	v := view{camX: camX, camY: camY, zoom: zoom}
	b := screen.Bounds()
	v.halfW = float64(b.Dx()) / 2
	v.halfH = float64(b.Dy()) / 2

	settings, _ := ecs.Singleton(w, component.SettingsComponent.Kind())

	if road, ok := ecs.Singleton(w, component.RoadBoundsComponent.Kind()); ok {
		v.line(screen, cp.Vector{X: road.Left, Y: 0}, cp.Vector{X: road.Left, Y: road.Length}, 2, roadColor)
		v.line(screen, cp.Vector{X: road.Right, Y: 0}, cp.Vector{X: road.Right, Y: road.Length}, 2, roadColor)
		v.line(screen, cp.Vector{X: road.Left, Y: road.Length}, cp.Vector{X: road.Right, Y: road.Length}, 2, roadColor)
	}

	ecs.ForEach3(w, component.ObstacleTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.ObstacleTag, tr *component.Transform, pb *component.PhysicsBody) {
		x, y := v.project(cp.Vector{X: tr.X - pb.Width/2, Y: tr.Y + pb.Height/2})
		vector.FillRect(screen, x, y, float32(pb.Width*zoom), float32(pb.Height*zoom), obstacleColor, false)
	})

	if settings != nil && settings.ShowGrid {
		cs.drawGrid(w, screen, v)
	}

	ecs.ForEach3(w, component.AStarCarComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, car *component.AStarCar, tr *component.Transform, pb *component.PhysicsBody) {
		if settings != nil && settings.ShowPaths && car.HasPath() {
			prev := cp.Vector{X: tr.X, Y: tr.Y}
			for _, wp := range car.Path[car.CurrentTarget:] {
				v.line(screen, prev, wp, 1, pathColor)
				prev = wp
			}
		}

		clr := carColor
		if brain, ok := ecs.Get(w, e, component.PathfindingBrainComponent.Kind()); ok && brain.Fallback {
			clr = fallbackColor
		}
		v.box(screen, tr, pb.Width, pb.Height, clr)
	})
}

// drawGrid shades the cells the lead car currently considers blocked.
func (cs *CorridorSystem) drawGrid(w *ecs.World, screen *ebiten.Image, v view) {
	var lead *component.PathfindingBrain
	leadY := 0.0
	ecs.ForEach2(w, component.PathfindingBrainComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, brain *component.PathfindingBrain, tr *component.Transform) {
		if lead == nil || tr.Y > leadY {
			lead = brain
			leadY = tr.Y
		}
	})
	if lead == nil || lead.Grid == nil {
		return
	}

	size := lead.Grid.CellSize
	for _, c := range lead.Grid.Obstacles() {
		corner := lead.Grid.GridToWorld(c)
		x, y := v.project(cp.Vector{X: corner.X, Y: corner.Y + size})
		s := float32(size * v.zoom)
		vector.FillRect(screen, x, y, s, s, blockedColor, false)
		vector.StrokeRect(screen, x, y, s, s, 1, fallbackColor, false)
	}
}

type view struct {
	camX, camY   float64
	zoom         float64
	halfW, halfH float64
}

func (v view) project(p cp.Vector) (float32, float32) {
	return float32((p.X-v.camX)*v.zoom + v.halfW), float32(v.halfH - (p.Y-v.camY)*v.zoom)
}

func (v view) line(screen *ebiten.Image, a, b cp.Vector, width float32, clr color.Color) {
	ax, ay := v.project(a)
	bx, by := v.project(b)
	vector.StrokeLine(screen, ax, ay, bx, by, width, clr, true)
}

// box outlines a rotated width x height rectangle centered on tr.
func (v view) box(screen *ebiten.Image, tr *component.Transform, width, height float64, clr color.Color) {
	center := cp.Vector{X: tr.X, Y: tr.Y}
	rot := cp.ForAngle(tr.Rotation)
	hw, hh := width/2, height/2
	corners := [4]cp.Vector{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	for i := range corners {
		corners[i] = center.Add(corners[i].Rotate(rot))
	}
	for i := range corners {
		v.line(screen, corners[i], corners[(i+1)%len(corners)], 1.5, clr)
	}
}
