package system

import (
	"fmt"
	"time"

	"github.com/CatPunch007/LittleWitch/mover"
	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// inputDispatchScript is appended to every input script. Scripts define
//
//	sample := func(tick, t) { return {axis: 1, jump: false, dash: tick == 30} }
//
// returning held button states; presses are derived here.
const inputDispatchScript = `
__out := sample(__tick, __time)
__axis := __out.axis
__jump := __out.jump
__dash := __out.dash
`

// ScriptInput drives input from a tengo script, one run per tick.
type ScriptInput struct {
	name     string
	compiled *tengo.Compiled
	dt       time.Duration
	tracker  mover.InputTracker
	logger   *log.Logger
}

// NewScriptInput compiles src. dt converts tick numbers into the script's
// time argument, in seconds.
func NewScriptInput(name string, src []byte, dt time.Duration, logger *log.Logger) (*ScriptInput, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), []byte(inputDispatchScript)...))
	_ = script.Add("__tick", 0)
	_ = script.Add("__time", 0.0)
	script.SetImports(stdlib.GetModuleMap("math", "text"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input: compile %s: %w", name, err)
	}

	return &ScriptInput{
		name:     name,
		compiled: compiled,
		dt:       dt,
		logger:   orDiscard(logger),
	}, nil
}

func (s *ScriptInput) Poll(tick int) mover.Input {
	axis, jump, dash, err := s.sample(tick)
	if err != nil {
		s.logger.Warn("input script failed", "script", s.name, "tick", tick, "error", err)
		return s.tracker.Sample(0, false, false)
	}
	return s.tracker.Sample(axis, jump, dash)
}

func (s *ScriptInput) sample(tick int) (float64, bool, bool, error) {
	if err := s.compiled.Set("__tick", tick); err != nil {
		return 0, false, false, err
	}
	if err := s.compiled.Set("__time", (time.Duration(tick) * s.dt).Seconds()); err != nil {
		return 0, false, false, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, false, false, err
	}
	return s.compiled.Get("__axis").Float(),
		s.compiled.Get("__jump").Bool(),
		s.compiled.Get("__dash").Bool(),
		nil
}
