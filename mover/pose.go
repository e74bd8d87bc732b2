package mover

// Pose is an actor transform as the host engine stores it, including the
// depth axis and rotation a 2D actor must not drift on.
type Pose struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

// LockPlanar returns p upright and on the Z=0 plane.
func LockPlanar(p Pose) Pose {
	p.Rotation = 0
	p.Z = 0
	return p
}
