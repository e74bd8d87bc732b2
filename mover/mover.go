package mover

import (
	"math"
	"time"
)

// ActorState is the per-tick movement state the mover maintains for its actor.
type ActorState struct {
	Facing   Facing
	Grounded bool
	Velocity Vec
}

// Report describes what a single Advance call did.
type Report struct {
	Grounded    bool
	Jumped      bool
	DashStarted bool
	DashEnded   bool
	DashReady   bool
	Facing      Facing
	Velocity    Vec
	Phase       DashPhase
}

// Mover is a platformer character controller: horizontal movement, a
// grounded jump and, when enabled, a timed dash.
type Mover struct {
	cfg   Config
	body  Body
	probe GroundProbe
	facer Facer

	state ActorState
	dash  Dash
}

// New creates a mover for body. probe and facer may be nil: a nil probe is
// never grounded, a nil facer skips sprite flips. The body's gravity scale is
// set to cfg.BaseGravityScale.
func New(cfg Config, body Body, probe GroundProbe, facer Facer) *Mover {
	m := &Mover{
		cfg:   cfg.normalized(),
		body:  body,
		probe: probe,
		facer: facer,
	}
	if body != nil {
		body.SetGravityScale(m.cfg.BaseGravityScale)
		m.state.Velocity = body.Velocity()
	}
	return m
}

// Config returns the mover's tuning after clamping.
func (m *Mover) Config() Config {
	return m.cfg
}

// State returns the actor state as of the last Advance.
func (m *Mover) State() ActorState {
	return m.state
}

// Dash returns the dash state machine as of the last Advance.
func (m *Mover) Dash() Dash {
	return m.dash
}

// Advance runs one tick. The dash timer moves first, then the ground probe is
// read, then dash, movement and jump are resolved against that fresh ground
// state.
func (m *Mover) Advance(dt time.Duration, in Input) Report {
	if m == nil || m.body == nil {
		return Report{}
	}

	var rep Report

	ev := m.dash.Advance(dt, m.cfg)
	if ev.Ended {
		m.body.SetGravityScale(m.dash.SavedGravityScale)
		rep.DashEnded = true
	}
	rep.DashReady = ev.Ready

	m.state.Grounded = m.probeGround()
	rep.Grounded = m.state.Grounded

	axis := clampAxis(in.Axis)

	vel := m.body.Velocity()
	if m.cfg.DashEnabled && in.DashPressed && m.dash.Start(axis, m.body.GravityScale()) {
		m.body.SetGravityScale(m.cfg.DashGravityScale)
		vel = Vec{X: m.dash.Direction * m.cfg.DashSpeed, Y: 0}
		rep.DashStarted = true
	}

	if m.dash.Active() {
		vel.X = m.dash.Direction * m.cfg.DashSpeed
	} else {
		vel.X = axis * m.cfg.MoveSpeed
	}
	m.body.SetVelocity(vel)

	m.updateFacing(axis)

	if in.JumpPressed && m.state.Grounded && !m.dash.Active() {
		vel.Y = 0
		m.body.SetVelocity(vel)
		m.body.ApplyImpulse(Up, m.cfg.JumpForce)
		rep.Jumped = true
	}

	m.state.Velocity = m.body.Velocity()

	rep.Facing = m.state.Facing
	rep.Velocity = m.state.Velocity
	rep.Phase = m.dash.Phase
	return rep
}

func (m *Mover) probeGround() bool {
	if m.probe == nil {
		return false
	}
	return m.probe.Grounded(m.body.Position(), m.cfg.GroundProbeLength)
}

func (m *Mover) updateFacing(axis float64) {
	var next Facing
	switch {
	case axis > 0:
		next = FacingRight
	case axis < 0:
		next = FacingLeft
	default:
		return
	}
	if next == m.state.Facing {
		return
	}
	m.state.Facing = next
	if m.facer != nil {
		m.facer.SetFacing(next)
	}
}

func clampAxis(a float64) float64 {
	if math.IsNaN(a) {
		return 0
	}
	return math.Max(-1, math.Min(1, a))
}
