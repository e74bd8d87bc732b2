package common

import (
	"math"
	"time"
)

const (
	// Gravity is the default world gravity magnitude in units/s^2.
	Gravity = 9.81

	// TPS is the default fixed simulation rate.
	TPS = 60

	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit = 32

	BaseWidth  = 1280
	BaseHeight = 720
)

// TickDuration is the fixed step for a simulation running at tps ticks per
// second. Non-positive rates fall back to TPS.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = TPS
	}
	return time.Second / time.Duration(tps)
}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Deadzone zeroes v when |v| is below dz.
func Deadzone(v, dz float64) float64 {
	if math.Abs(v) < dz {
		return 0
	}
	return v
}
