package system

import (
	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
)

// InputSource produces one input snapshot per tick. Implementations report
// button presses as edges.
type InputSource interface {
	Poll(tick int) mover.Input
}

// InputFunc adapts a function to InputSource.
type InputFunc func(tick int) mover.Input

func (f InputFunc) Poll(tick int) mover.Input {
	return f(tick)
}

// InputSystem copies the source's snapshot into every Input component.
type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

// SetSource swaps the input source, e.g. when leaving a scripted demo.
func (i *InputSystem) SetSource(source InputSource) {
	i.source = source
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	var in mover.Input
	if i.source != nil {
		in = i.source.Poll(w.Tick())
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Axis = in.Axis
		input.JumpPressed = in.JumpPressed
		input.DashPressed = in.DashPressed
	})
}

// HeldInput is a run of ticks with the same held controls.
type HeldInput struct {
	Axis  float64
	Jump  bool
	Dash  bool
	Ticks int
}

// SequenceInput replays a fixed list of held states, then goes neutral.
// Presses are derived from held state, so a button held across two steps is
// a single press.
type SequenceInput struct {
	steps   []HeldInput
	tracker mover.InputTracker
}

func NewSequenceInput(steps ...HeldInput) *SequenceInput {
	return &SequenceInput{steps: append([]HeldInput(nil), steps...)}
}

// Len is the total number of ticks the sequence covers.
func (s *SequenceInput) Len() int {
	n := 0
	for _, st := range s.steps {
		n += st.Ticks
	}
	return n
}

func (s *SequenceInput) Poll(tick int) mover.Input {
	var held HeldInput
	for _, st := range s.steps {
		if tick < st.Ticks {
			held = st
			break
		}
		tick -= st.Ticks
	}
	return s.tracker.Sample(held.Axis, held.Jump, held.Dash)
}
