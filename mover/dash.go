package mover

import "time"

// DashPhase is the state of the dash ability.
type DashPhase int

const (
	DashIdle DashPhase = iota
	DashActive
	DashCoolingDown
)

func (p DashPhase) String() string {
	switch p {
	case DashIdle:
		return "idle"
	case DashActive:
		return "dashing"
	case DashCoolingDown:
		return "cooling_down"
	default:
		return "unknown"
	}
}

// Dash is the timer-driven dash state machine:
//
//	Idle -> Dashing -> CoolingDown -> Idle
//
// Elapsed is the time spent in the current phase. It is reset on every
// transition and stays zero while idle.
type Dash struct {
	Phase             DashPhase
	Elapsed           time.Duration
	Direction         float64
	SavedGravityScale float64
}

// DashEvents lists the transitions a single Advance call ran.
type DashEvents struct {
	Ended bool
	Ready bool
}

// Start begins a dash toward sign(axis). It returns false, leaving the state
// untouched, when the dash is not idle or the axis gives no direction.
func (d *Dash) Start(axis, gravityScale float64) bool {
	if d == nil || d.Phase != DashIdle || axis == 0 {
		return false
	}
	d.Phase = DashActive
	d.Elapsed = 0
	d.Direction = sign(axis)
	d.SavedGravityScale = gravityScale
	return true
}

// Advance moves the phase timer forward by dt. Time left over after a phase
// bound is crossed carries into the next phase, so one long tick can run
// both transitions; none is skipped.
func (d *Dash) Advance(dt time.Duration, cfg Config) DashEvents {
	var ev DashEvents
	if d == nil || dt <= 0 || d.Phase == DashIdle {
		return ev
	}

	d.Elapsed += dt
	for {
		switch d.Phase {
		case DashActive:
			if d.Elapsed < cfg.DashDuration {
				return ev
			}
			d.Elapsed -= cfg.DashDuration
			d.Phase = DashCoolingDown
			ev.Ended = true
		case DashCoolingDown:
			if d.Elapsed < cfg.cooldownWait() {
				return ev
			}
			d.Phase = DashIdle
			d.Elapsed = 0
			d.Direction = 0
			ev.Ready = true
			return ev
		default:
			return ev
		}
	}
}

// Active reports whether the dash currently overrides horizontal movement.
func (d *Dash) Active() bool {
	return d != nil && d.Phase == DashActive
}

// Ready reports whether a new dash may start.
func (d *Dash) Ready() bool {
	return d != nil && d.Phase == DashIdle
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
