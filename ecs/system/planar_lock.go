package system

import (
	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
)

// PlanarLockSystem keeps dynamic actors upright and on the Z=0 plane after
// the physics step.
type PlanarLockSystem struct{}

func NewPlanarLockSystem() *PlanarLockSystem {
	return &PlanarLockSystem{}
}

func (s *PlanarLockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, t *component.Transform) {
		locked := mover.LockPlanar(mover.Pose{X: t.X, Y: t.Y, Z: t.Z, Rotation: t.Rotation})
		t.Z = locked.Z
		t.Rotation = locked.Rotation
	})

	ecs.ForEach(w, component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody) {
		if body.Static || body.Body == nil {
			return
		}
		body.Body.SetAngle(0)
		body.Body.SetAngularVelocity(0)
	})
}
