package mover

// Vec is a 2D vector in world units with Y pointing up.
type Vec struct {
	X float64
	Y float64
}

// Up is the direction of a jump impulse.
var Up = Vec{X: 0, Y: 1}

// Facing is the direction the actor's sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Body is the rigid body the mover drives. The host physics engine owns it.
type Body interface {
	Position() Vec
	Velocity() Vec
	SetVelocity(v Vec)
	ApplyImpulse(dir Vec, magnitude float64)
	GravityScale() float64
	SetGravityScale(scale float64)
}

// GroundProbe answers whether standable geometry lies within length below pos.
type GroundProbe interface {
	Grounded(pos Vec, length float64) bool
}

// GroundProbeFunc adapts a plain function to GroundProbe.
type GroundProbeFunc func(pos Vec, length float64) bool

func (f GroundProbeFunc) Grounded(pos Vec, length float64) bool {
	return f(pos, length)
}

// Facer receives facing changes, typically a sprite flip flag. It is optional.
type Facer interface {
	SetFacing(f Facing)
}
