package component

// Transform is an entity pose in world units, Y up. Z and Rotation exist
// because the host may drift them; the planar lock pins both to zero.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]("transform")
