package mover

// Input is one tick's input snapshot. JumpPressed and DashPressed are edges:
// true only on the tick the button goes from released to pressed.
type Input struct {
	Axis        float64
	JumpPressed bool
	DashPressed bool
}

// EdgeDetector turns a held button state into a pressed edge.
type EdgeDetector struct {
	held bool
}

// Update records the current held state and reports whether it is a new press.
func (e *EdgeDetector) Update(held bool) bool {
	pressed := held && !e.held
	e.held = held
	return pressed
}

// Reset forgets the previous state, so a button that is still held counts as
// a new press on the next Update.
func (e *EdgeDetector) Reset() {
	e.held = false
}

// InputTracker builds Input snapshots from held button states.
type InputTracker struct {
	jump EdgeDetector
	dash EdgeDetector
}

func (t *InputTracker) Sample(axis float64, jumpHeld, dashHeld bool) Input {
	return Input{
		Axis:        axis,
		JumpPressed: t.jump.Update(jumpHeld),
		DashPressed: t.dash.Update(dashHeld),
	}
}
