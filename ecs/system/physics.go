package system

import (
	"math"

	"github.com/CatPunch007/LittleWitch/common"
	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/jakecoffman/cp"
)

const physicsIterations = 20

// PhysicsSystem owns the Chipmunk space. Each tick it creates bodies for new
// PhysicsBody components, removes bodies of dead entities, steps the space
// by the world delta time and copies body poses back into transforms.
type PhysicsSystem struct {
	space     *cp.Space
	entities  map[ecs.Entity]*bodyInfo
	nextGroup uint
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
	// group keeps queries cast by this body from hitting its own shape.
	group uint
}

// NewPhysicsSystem creates a space with gravity pointing down (negative Y)
// at the given magnitude. Zero means common.Gravity.
func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = physicsIterations
	ps := &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
	ps.SetGravity(gravity)
	return ps
}

// SetGravity sets the downward gravity magnitude. Zero means common.Gravity.
func (ps *PhysicsSystem) SetGravity(gravity float64) {
	if gravity == 0 {
		gravity = common.Gravity
	}
	ps.space.SetGravity(cp.Vector{X: 0, Y: -math.Abs(gravity)})
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}

	ps.Sync(w)

	if dt := w.DeltaTime().Seconds(); dt > 0 {
		ps.space.Step(dt)
	}

	ps.syncTransforms(w)
}

// Sync creates and removes bodies so the space matches the world. Update
// calls it; builders may call it directly to get bodies before the first tick.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || ps.space == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if info := ps.entities[e]; info != nil {
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			return
		}
		info := ps.createBodyInfo(w, e, transform, bodyComp)
		if info == nil {
			return
		}
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.shape
	})
}

func (ps *PhysicsSystem) createBodyInfo(w *ecs.World, e ecs.Entity, transform *component.Transform, bodyComp *component.PhysicsBody) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}

	if bodyComp.Static {
		bb := cp.BB{
			L: transform.X - width/2,
			B: transform.Y - height/2,
			R: transform.X + width/2,
			T: transform.Y + height/2,
		}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(bodyComp.Elasticity)
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	// Infinite moment: actors never tip over.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(0)
	body.SetAngularVelocity(0)
	body.SetVelocityUpdateFunc(func(b *cp.Body, gravity cp.Vector, damping float64, dt float64) {
		scale := 1.0
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			scale = gs.Scale
		}
		cp.BodyUpdateVelocity(b, gravity.Mult(scale), damping, dt)
	})

	ps.nextGroup++
	group := ps.nextGroup

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetElasticity(bodyComp.Elasticity)
	shape.SetFilter(cp.NewShapeFilter(group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape, group: group}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bodyComp *component.PhysicsBody, transform *component.Transform) {
		if bodyComp.Static || bodyComp.Body == nil {
			return
		}
		pos := bodyComp.Body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = bodyComp.Body.Angle()
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}
		if info.shape != nil {
			ps.space.RemoveShape(info.shape)
		}
		if info.body != nil && !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// GroundProbe returns a downward ray probe that ignores e's own shape.
func (ps *PhysicsSystem) GroundProbe(e ecs.Entity) *SpaceProbe {
	if ps == nil {
		return nil
	}
	filter := cp.SHAPE_FILTER_ALL
	if info := ps.entities[e]; info != nil && info.group != 0 {
		filter = cp.NewShapeFilter(info.group, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	}
	return &SpaceProbe{space: ps.space, filter: filter}
}
