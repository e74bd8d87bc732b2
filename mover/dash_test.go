package mover

import (
	"errors"
	"testing"
	"time"
)

func TestDashTransitions(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		name      string
		steps     []time.Duration
		wantPhase DashPhase
		wantElap  time.Duration
		wantEnded bool
		wantReady bool
	}{
		{"just_started", nil, DashActive, 0, false, false},
		{"before_end", []time.Duration{499 * time.Millisecond}, DashActive, 499 * time.Millisecond, false, false},
		{"exact_end", []time.Duration{500 * time.Millisecond}, DashCoolingDown, 0, true, false},
		{"overshoot_carries", []time.Duration{700 * time.Millisecond}, DashCoolingDown, 200 * time.Millisecond, true, false},
		{"cooldown_exact", []time.Duration{500 * time.Millisecond, 500 * time.Millisecond}, DashIdle, 0, false, true},
		{"cooldown_split", []time.Duration{700 * time.Millisecond, 300 * time.Millisecond}, DashIdle, 0, false, true},
		{"both_in_one_step", []time.Duration{time.Second}, DashIdle, 0, true, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var d Dash
			if !d.Start(1, 3) {
				t.Fatalf("expected dash to start")
			}
			var ev DashEvents
			for _, s := range c.steps {
				ev = d.Advance(s, cfg)
			}
			if d.Phase != c.wantPhase {
				t.Fatalf("expected phase %v, got %v", c.wantPhase, d.Phase)
			}
			if d.Elapsed != c.wantElap {
				t.Fatalf("expected elapsed %s, got %s", c.wantElap, d.Elapsed)
			}
			if ev.Ended != c.wantEnded || ev.Ready != c.wantReady {
				t.Fatalf("expected events ended=%v ready=%v, got %+v", c.wantEnded, c.wantReady, ev)
			}
		})
	}
}

func TestDashPhaseInvariants(t *testing.T) {
	cfg := DefaultConfig()
	steps := []time.Duration{
		13 * time.Millisecond, 250 * time.Millisecond, 333 * time.Millisecond,
		17 * time.Millisecond, 900 * time.Millisecond, 50 * time.Millisecond,
	}

	var d Dash
	for i := 0; i < 200; i++ {
		d.Start(-1, 2)
		d.Advance(steps[i%len(steps)], cfg)
		switch d.Phase {
		case DashActive:
			if d.Elapsed >= cfg.DashDuration {
				t.Fatalf("step %d: dashing with elapsed %s", i, d.Elapsed)
			}
		case DashCoolingDown:
			if d.Elapsed >= cfg.DashCooldown-cfg.DashDuration {
				t.Fatalf("step %d: cooling down with elapsed %s", i, d.Elapsed)
			}
		case DashIdle:
			if d.Elapsed != 0 {
				t.Fatalf("step %d: idle with elapsed %s", i, d.Elapsed)
			}
		}
	}
}

func TestDashStartGuards(t *testing.T) {
	var d Dash
	if d.Start(0, 1) {
		t.Fatalf("dash with zero axis must be rejected")
	}
	if !d.Start(-0.1, 1.5) {
		t.Fatalf("expected dash to start")
	}
	if d.Direction != -1 || d.SavedGravityScale != 1.5 {
		t.Fatalf("unexpected dash state %+v", d)
	}
	if d.Start(1, 9) {
		t.Fatalf("dash while active must be rejected")
	}
	if d.Direction != -1 || d.SavedGravityScale != 1.5 {
		t.Fatalf("rejected start changed state: %+v", d)
	}
}

func TestDashIdleAdvanceIsNoop(t *testing.T) {
	var d Dash
	if ev := d.Advance(time.Hour, DefaultConfig()); ev != (DashEvents{}) {
		t.Fatalf("idle advance produced events %+v", ev)
	}
	if d.Elapsed != 0 {
		t.Fatalf("idle timer moved to %s", d.Elapsed)
	}
}

func TestDashCooldownEqualToDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DashCooldown = cfg.DashDuration

	var d Dash
	d.Start(1, 1)
	ev := d.Advance(cfg.DashDuration, cfg)
	if !ev.Ended || !ev.Ready || d.Phase != DashIdle {
		t.Fatalf("expected dash ready as soon as it ends, got %+v phase=%v", ev, d.Phase)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero_duration", func(c *Config) { c.DashDuration = 0 }, true},
		{"negative_cooldown", func(c *Config) { c.DashCooldown = -time.Second }, true},
		{"cooldown_shorter", func(c *Config) { c.DashCooldown = 100 * time.Millisecond }, true},
		{"no_probe", func(c *Config) { c.GroundProbeLength = 0 }, true},
		{"basic_ignores_dash", func(c *Config) {
			c.DashEnabled = false
			c.DashDuration = 0
		}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := DefaultConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("expected error=%v, got %v", c.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestConfigNormalizedClampsDash(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DashDuration = 0
	cfg.DashCooldown = -time.Second

	m := New(cfg, newFakeBody(), nil, nil)
	got := m.Config()
	if got.DashDuration != MinPhaseDuration {
		t.Fatalf("expected duration clamped to %s, got %s", MinPhaseDuration, got.DashDuration)
	}
	if got.DashCooldown != MinPhaseDuration {
		t.Fatalf("expected cooldown clamped to %s, got %s", MinPhaseDuration, got.DashCooldown)
	}

	m.Advance(MinPhaseDuration, Input{Axis: 1, DashPressed: true})
	rep := m.Advance(MinPhaseDuration, Input{})
	if !rep.DashEnded || !rep.DashReady {
		t.Fatalf("clamped dash should finish after one minimum phase: %+v", rep)
	}
}
