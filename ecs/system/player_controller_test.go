package system

import (
	"testing"

	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
)

func TestPlayerRestsOnFloor(t *testing.T) {
	rig := newTestRig(nil)
	addFloor(t, rig.world)
	e := addPlayer(t, rig.world, mover.DefaultConfig())

	rig.run(30)

	row := rig.last(t)
	if !row.Grounded {
		t.Fatalf("expected player grounded on the floor, got %+v", row)
	}
	if row.Y < 0.8 || row.Y > 1.05 {
		t.Fatalf("expected player to rest near y=1, got %v", row.Y)
	}
	probe, _ := ecs.Get(rig.world, e, component.GroundProbeComponent.Kind())
	if !probe.Grounded || probe.Length != mover.DefaultConfig().GroundProbeLength {
		t.Fatalf("expected recorded ground ray, got %+v", probe)
	}
	gs, _ := ecs.Get(rig.world, e, component.GravityScaleComponent.Kind())
	if gs.Scale != 3 {
		t.Fatalf("expected base gravity scale 3, got %v", gs.Scale)
	}
}

func TestPlayerFallsWithoutFloor(t *testing.T) {
	rig := newTestRig(nil)
	addPlayer(t, rig.world, mover.DefaultConfig())

	rig.run(30)

	row := rig.last(t)
	if row.Grounded {
		t.Fatalf("player in empty space must not be grounded")
	}
	if row.Y >= 1 || row.VY >= 0 {
		t.Fatalf("expected player to fall, got y=%v vy=%v", row.Y, row.VY)
	}
}

func TestPlayerWalksAndFaces(t *testing.T) {
	rig := newTestRig(NewSequenceInput(
		HeldInput{Ticks: 10},
		HeldInput{Axis: -1, Ticks: 30},
	))
	addFloor(t, rig.world)
	e := addPlayer(t, rig.world, mover.DefaultConfig())

	rig.run(40)

	row := rig.last(t)
	if row.VX != -5 {
		t.Fatalf("expected vx=-5, got %v", row.VX)
	}
	if row.X >= 0 {
		t.Fatalf("expected player to move left, got x=%v", row.X)
	}
	if row.Facing != mover.FacingLeft {
		t.Fatalf("expected facing left, got %v", row.Facing)
	}
	sprite, _ := ecs.Get(rig.world, e, component.SpriteComponent.Kind())
	if !sprite.FacingLeft {
		t.Fatalf("expected sprite flipped left")
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	rig := newTestRig(NewSequenceInput(
		HeldInput{Ticks: 10},
		HeldInput{Jump: true, Ticks: 1},
		HeldInput{Ticks: 9},
		HeldInput{Jump: true, Ticks: 1},
		HeldInput{Ticks: 5},
	))
	addFloor(t, rig.world)
	addPlayer(t, rig.world, mover.DefaultConfig())

	rig.run(26)

	var jumps []int
	for _, row := range rig.rows {
		if row.Jumped {
			jumps = append(jumps, row.Tick)
		}
	}
	if len(jumps) != 1 || jumps[0] != 10 {
		t.Fatalf("expected a single jump on tick 10, got %v", jumps)
	}

	jumpRow := rig.rows[10]
	if !approx(jumpRow.VY, mover.DefaultConfig().JumpForce, 1e-9) {
		t.Fatalf("expected vy=%v right after the jump, got %v", mover.DefaultConfig().JumpForce, jumpRow.VY)
	}
	if airborne := rig.rows[20]; airborne.Grounded || airborne.Y <= jumpRow.Y {
		t.Fatalf("expected player airborne above the floor on tick 20, got %+v", airborne)
	}
}

func TestPlayerDashThroughPhysics(t *testing.T) {
	rig := newTestRig(NewSequenceInput(
		HeldInput{Ticks: 10},
		HeldInput{Axis: 1, Dash: true, Ticks: 1},
		HeldInput{Axis: 1, Ticks: 89},
	))
	addFloor(t, rig.world)
	addPlayer(t, rig.world, mover.DefaultConfig())

	rig.run(100)

	started, ended, ready := -1, -1, -1
	for _, row := range rig.rows {
		switch {
		case row.DashStarted:
			started = row.Tick
		case row.DashEnded && ended < 0:
			ended = row.Tick
		}
		if row.DashReady && ready < 0 {
			ready = row.Tick
		}
	}
	if started != 10 {
		t.Fatalf("expected dash to start on tick 10, got %d", started)
	}
	if d := ended - started; d != 30 && d != 31 {
		t.Fatalf("expected dash to last ~0.5s, ended %d ticks after start", d)
	}
	if d := ready - started; d != 60 && d != 61 {
		t.Fatalf("expected dash ready ~1s after start, got %d ticks", d)
	}

	for _, row := range rig.rows[started:ended] {
		if row.VX != 12 || row.GravityScale != 0 || row.Phase != mover.DashActive {
			t.Fatalf("tick %d: expected active dash at vx=12 without gravity, got %+v", row.Tick, row)
		}
	}
	endRow := rig.rows[ended]
	if endRow.GravityScale != 3 || endRow.VX != 5 {
		t.Fatalf("expected gravity restored and walking speed after the dash, got %+v", endRow)
	}
	if endRow.Phase != mover.DashCoolingDown {
		t.Fatalf("expected cooldown after dash, got %v", endRow.Phase)
	}
}

func TestBasicPlayerNeverDashes(t *testing.T) {
	cfg := mover.DefaultConfig()
	cfg.DashEnabled = false

	rig := newTestRig(NewSequenceInput(
		HeldInput{Ticks: 5},
		HeldInput{Axis: 1, Dash: true, Ticks: 20},
	))
	addFloor(t, rig.world)
	addPlayer(t, rig.world, cfg)

	rig.run(25)

	for _, row := range rig.rows {
		if row.DashStarted || row.Phase != mover.DashIdle {
			t.Fatalf("tick %d: basic player dashed: %+v", row.Tick, row)
		}
	}
	if row := rig.last(t); row.VX != 5 {
		t.Fatalf("expected walking speed, got %v", row.VX)
	}
}

func TestControllerSkipsEntitiesWithoutBody(t *testing.T) {
	w := ecs.NewWorld()
	e := w.CreateEntity()
	mustAdd(t, ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Config: mover.DefaultConfig()}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 1, Height: 1}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Axis: 1}))

	sys := NewPlayerControllerSystem(NewPhysicsSystem(0), nil)
	sys.Update(w)

	m, _ := ecs.Get(w, e, component.MoverComponent.Kind())
	if m.Controller != nil {
		t.Fatalf("controller must wait for the physics body")
	}
}
