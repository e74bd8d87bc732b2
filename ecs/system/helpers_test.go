package system

import (
	"testing"
	"time"

	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
)

const testStep = time.Second / 60

type testRig struct {
	world     *ecs.World
	physics   *PhysicsSystem
	input     *InputSystem
	scheduler *ecs.Scheduler
	rows      []TraceRow
}

func newTestRig(source InputSource) *testRig {
	r := &testRig{
		world:   ecs.NewWorld(),
		physics: NewPhysicsSystem(0),
		input:   NewInputSystem(source),
	}
	r.scheduler = ecs.NewScheduler(
		r.input,
		r.physics,
		NewPlanarLockSystem(),
		NewPlayerControllerSystem(r.physics, nil),
		NewTraceSystem(nil, func(row TraceRow) { r.rows = append(r.rows, row) }),
	)
	return r
}

func (r *testRig) run(ticks int) {
	for i := 0; i < ticks; i++ {
		r.scheduler.Step(r.world, testStep)
	}
}

func (r *testRig) last(t *testing.T) TraceRow {
	t.Helper()
	if len(r.rows) == 0 {
		t.Fatalf("no trace rows recorded")
	}
	return r.rows[len(r.rows)-1]
}

// addFloor adds a wide static platform whose top surface is at y=0.5.
func addFloor(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, ecs.Add(w, e, component.StaticTileTagComponent.Kind(), &component.StaticTileTag{}))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 0}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    200,
		Height:   1,
		Friction: 0.8,
		Static:   true,
	}))
	return e
}

// addPlayer adds a 1x1 player resting on the floor from addFloor.
func addPlayer(t *testing.T, w *ecs.World, cfg mover.Config) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 0, Y: 1}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:  1,
		Height: 1,
		Mass:   1,
	}))
	mustAdd(t, ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: cfg.BaseGravityScale}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Config: cfg}))
	mustAdd(t, ecs.Add(w, e, component.GroundProbeComponent.Kind(), &component.GroundProbe{}))
	mustAdd(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{Width: 1, Height: 1}))
	return e
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func approx(a, b, eps float64) bool {
	d := a - b
	return d < eps && d > -eps
}
