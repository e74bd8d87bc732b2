package mover

import (
	"errors"
	"fmt"
	"time"
)

// MinPhaseDuration is the shortest dash phase the mover will run. Shorter or
// non-positive durations are raised to this value.
const MinPhaseDuration = time.Second / 240

var ErrInvalidConfig = errors.New("mover: invalid config")

// Config holds per-actor tuning. It is copied into the Mover at construction
// and never changed afterwards.
type Config struct {
	MoveSpeed float64
	JumpForce float64

	// GroundProbeLength is the length of the downward ground ray, in world units.
	GroundProbeLength float64
	// BaseGravityScale is applied to the body when the mover is created.
	BaseGravityScale float64

	DashEnabled  bool
	DashSpeed    float64
	DashDuration time.Duration
	// DashCooldown is measured from dash start, so it includes DashDuration.
	DashCooldown     time.Duration
	DashGravityScale float64
}

// DefaultConfig returns the stock tuning for the dashable controller.
func DefaultConfig() Config {
	return Config{
		MoveSpeed:         5,
		JumpForce:         15,
		GroundProbeLength: 0.6,
		BaseGravityScale:  3,
		DashEnabled:       true,
		DashSpeed:         12,
		DashDuration:      500 * time.Millisecond,
		DashCooldown:      time.Second,
		DashGravityScale:  0,
	}
}

// Validate reports configuration misuse. Movers built from an invalid config
// still run; see normalized.
func (c Config) Validate() error {
	var errs []error
	if c.MoveSpeed < 0 {
		errs = append(errs, fmt.Errorf("%w: move speed %v is negative", ErrInvalidConfig, c.MoveSpeed))
	}
	if c.JumpForce < 0 {
		errs = append(errs, fmt.Errorf("%w: jump force %v is negative", ErrInvalidConfig, c.JumpForce))
	}
	if c.GroundProbeLength <= 0 {
		errs = append(errs, fmt.Errorf("%w: ground probe length %v must be positive", ErrInvalidConfig, c.GroundProbeLength))
	}
	if c.DashEnabled {
		if c.DashDuration <= 0 {
			errs = append(errs, fmt.Errorf("%w: dash duration %s must be positive", ErrInvalidConfig, c.DashDuration))
		}
		if c.DashCooldown <= 0 {
			errs = append(errs, fmt.Errorf("%w: dash cooldown %s must be positive", ErrInvalidConfig, c.DashCooldown))
		} else if c.DashCooldown < c.DashDuration {
			errs = append(errs, fmt.Errorf("%w: dash cooldown %s is shorter than dash duration %s", ErrInvalidConfig, c.DashCooldown, c.DashDuration))
		}
	}
	return errors.Join(errs...)
}

// normalized clamps the dash timings so neither phase is always expired or
// never expires.
func (c Config) normalized() Config {
	if c.DashDuration < MinPhaseDuration {
		c.DashDuration = MinPhaseDuration
	}
	if c.DashCooldown < c.DashDuration {
		c.DashCooldown = c.DashDuration
	}
	return c
}

// cooldownWait is the time spent in DashCoolingDown once the dash itself ends.
func (c Config) cooldownWait() time.Duration {
	return c.DashCooldown - c.DashDuration
}
