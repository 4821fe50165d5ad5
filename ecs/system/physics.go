package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/ecs"
	"github.com/milk9111/steering/ecs/component"
)

const roadWallRadius = 1.0

// PhysicsSystem mirrors cars, obstacles and road walls into a chipmunk space
// and answers the scanner's ray queries against it. Cars are dynamic bodies
// steered through their Transform; moving obstacles are kinematic and drive
// theirs.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
	car    bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    cp.NewSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	ps.space.Step(clockDelta(w))
	ps.syncTransforms(w)
}

// Sync brings the space in line with the world without stepping it: stale
// bodies are removed, new ones created, and car bodies given the velocity
// that reaches their Transforms in one step.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)
	ps.syncEntities(w)
	ps.syncRoad(w)
	ps.syncCars(w)
}

// CastRay reports whether the segment origin + dir*maxDist touches a shape
// accepted by filter. A shape containing the origin counts when solid is set;
// otherwise only if the segment leaves it.
func (ps *PhysicsSystem) CastRay(origin, dir cp.Vector, maxDist float64, solid bool, filter cp.ShapeFilter) bool {
	if ps == nil || ps.space == nil || maxDist <= 0 {
		return false
	}
	end := origin.Add(dir.Mult(maxDist))

	hit := false
	ps.space.SegmentQuery(origin, end, 0, filter, func(shape *cp.Shape, _, _ cp.Vector, _ float64, _ interface{}) {
		if hit {
			return
		}
		if !solid && shape.PointQuery(origin).Distance < 0 && shape.PointQuery(end).Distance < 0 {
			return
		}
		hit = true
	}, nil)
	return hit
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, tr *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}

		layer, _ := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
		info := ps.createBodyInfo(tr, pb, shapeFilter(layer))
		if info == nil {
			return
		}
		info.car = ecs.Has(w, e, component.CarTagComponent.Kind())
		for _, shape := range info.shapes {
			shape.UserData = e
		}

		ps.entities[e] = info
		pb.Body = info.body
		pb.Shape = info.shapes[0]
	})
}

func (ps *PhysicsSystem) createBodyInfo(tr *component.Transform, pb *component.PhysicsBody, filter cp.ShapeFilter) *bodyInfo {
	width, height := pb.Width, pb.Height
	if width <= 0 || height <= 0 {
		return nil
	}

	if pb.Static {
		bb := cp.BB{L: tr.X - width/2, B: tr.Y - height/2, R: tr.X + width/2, T: tr.Y + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFilter(filter)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shapes: []*cp.Shape{shape}, static: true}
	}

	var body *cp.Body
	if pb.Mass > 0 {
		// Heading belongs to the steering controller, so contacts never spin
		// the body.
		body = cp.NewBody(pb.Mass, cp.INFINITY)
	} else {
		body = cp.NewKinematicBody()
		body.SetVelocityVector(cp.Vector{X: pb.VelocityX, Y: pb.VelocityY})
	}
	body.SetPosition(cp.Vector{X: tr.X, Y: tr.Y})
	body.SetAngle(tr.Rotation)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFilter(filter)
	shape.SetFriction(0)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)
	return &bodyInfo{body: body, shapes: []*cp.Shape{shape}}
}

func (ps *PhysicsSystem) syncRoad(w *ecs.World) {
	e, ok := ecs.First(w, component.RoadBoundsComponent.Kind())
	if !ok {
		return
	}
	if _, exists := ps.entities[e]; exists {
		return
	}
	road, _ := ecs.Get(w, e, component.RoadBoundsComponent.Kind())
	if road.Length <= 0 || road.Right <= road.Left {
		return
	}

	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		layer = &component.CollisionLayer{Category: common.CategoryRoad}
	}
	filter := shapeFilter(layer)

	segments := []struct {
		a cp.Vector
		b cp.Vector
	}{
		{a: cp.Vector{X: road.Left, Y: 0}, b: cp.Vector{X: road.Left, Y: road.Length}},
		{a: cp.Vector{X: road.Right, Y: 0}, b: cp.Vector{X: road.Right, Y: road.Length}},
		{a: cp.Vector{X: road.Left, Y: road.Length}, b: cp.Vector{X: road.Right, Y: road.Length}},
	}

	info := &bodyInfo{static: true, body: ps.space.StaticBody}
	for _, seg := range segments {
		shape := cp.NewSegment(ps.space.StaticBody, seg.a, seg.b, roadWallRadius)
		shape.SetFilter(filter)
		shape.UserData = e
		ps.space.AddShape(shape)
		info.shapes = append(info.shapes, shape)
	}
	ps.entities[e] = info
}

// syncCars turns each car's Transform step since the last tick into body
// velocity, so the solver can stop it against walls and obstacles.
func (ps *PhysicsSystem) syncCars(w *ecs.World) {
	dt := clockDelta(w)
	for e, info := range ps.entities {
		if !info.car || info.static {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		target := cp.Vector{X: tr.X, Y: tr.Y}
		info.body.SetVelocityVector(target.Sub(info.body.Position()).Mult(1 / dt))
		info.body.SetAngle(tr.Rotation)
	}
}

// syncTransforms copies body positions back into Transforms. Cars are kept
// inside the road interior.
func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	road, _ := ecs.Singleton(w, component.RoadBoundsComponent.Kind())
	for e, info := range ps.entities {
		if info.static || info.body == nil {
			continue
		}
		tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		if info.car {
			info.body.SetVelocityVector(cp.Vector{})
			if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
				clamped := clampToRoad(pos, road, pb.Width/2, pb.Height/2)
				if clamped != pos {
					pos = clamped
					info.body.SetPosition(pos)
				}
			}
		}
		tr.X = pos.X
		tr.Y = pos.Y
	}
}

func clampToRoad(p cp.Vector, road *component.RoadBounds, halfW, halfH float64) cp.Vector {
	if road == nil || road.Right <= road.Left || road.Length <= 0 {
		return p
	}
	minX := road.Left + roadWallRadius + halfW
	maxX := road.Right - roadWallRadius - halfW
	if minX <= maxX {
		p.X = math.Max(minX, math.Min(maxX, p.X))
	}
	p.Y = math.Min(road.Length-roadWallRadius-halfH, p.Y)
	return p
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if ecs.IsAlive(w, e) && (ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) || ecs.Has(w, e, component.RoadBoundsComponent.Kind())) {
			continue
		}

		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// shapeFilter turns a CollisionLayer into a chipmunk filter. Missing layers
// default to the obstacle category so untagged geometry is still scanned.
func shapeFilter(layer *component.CollisionLayer) cp.ShapeFilter {
	category := common.CategoryObstacle
	mask := common.CategoryAll
	if layer != nil {
		if layer.Category != 0 {
			category = layer.Category
		}
		if layer.Mask != 0 {
			mask = layer.Mask
		}
	}
	return cp.NewShapeFilter(common.NoGroup, category, mask)
}
