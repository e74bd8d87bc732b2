package component

// Input stores the tick's input snapshot for an entity. Pressed fields are
// edges and are true for exactly one tick per press.
type Input struct {
	Axis        float64
	JumpPressed bool
	DashPressed bool
}

var InputComponent = NewComponent[Input]("input")
