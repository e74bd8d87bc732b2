// Package sim runs the player controller headless against the prefab level,
// driven by a tengo script or a built-in input sequence.
package sim

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/CatPunch007/LittleWitch/common"
	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/entity"
	"github.com/CatPunch007/LittleWitch/ecs/system"
	"github.com/CatPunch007/LittleWitch/prefabs"
	"github.com/charmbracelet/log"
)

var ErrUnknownSequence = errors.New("sim: unknown sequence")

type Options struct {
	// Script names a tengo input script; empty uses Sequence.
	Script   string
	Sequence string
	Ticks    int
	TPS      int
	Basic    bool
	Logger   *log.Logger
}

type Result struct {
	Step time.Duration
	Rows []system.TraceRow
}

// sequences are built-in input runs, lengths in ticks at 60 TPS.
var sequences = map[string][]system.HeldInput{
	"walk": {
		{Ticks: 30},
		{Axis: 1, Ticks: 60},
		{Axis: -1, Ticks: 60},
		{Ticks: 30},
	},
	"jump": {
		{Ticks: 30},
		{Jump: true, Ticks: 20},
		{Ticks: 60},
		{Axis: 1, Jump: true, Ticks: 1},
		{Axis: 1, Ticks: 60},
	},
	"dash": {
		{Ticks: 30},
		{Axis: 1, Dash: true, Ticks: 1},
		{Axis: 1, Ticks: 20},
		{Axis: 1, Dash: true, Ticks: 1},
		{Axis: 1, Ticks: 50},
		{Axis: -1, Dash: true, Ticks: 1},
		{Ticks: 60},
	},
}

// Sequences lists the built-in sequence names.
func Sequences() []string {
	names := make([]string, 0, len(sequences))
	for name := range sequences {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run steps a fresh world for opts.Ticks ticks and returns one trace row per
// tick. Zero Ticks runs the whole sequence, or five seconds for scripts.
func Run(opts Options) (*Result, error) {
	step := common.TickDuration(opts.TPS)

	lvl, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, err
	}

	source, length, err := inputSource(opts, step)
	if err != nil {
		return nil, err
	}
	ticks := opts.Ticks
	if ticks <= 0 {
		ticks = length
	}

	w := ecs.NewWorld()
	physics := system.NewPhysicsSystem(lvl.Gravity)
	res := &Result{Step: step, Rows: make([]system.TraceRow, 0, ticks)}

	scheduler := ecs.NewScheduler(
		system.NewInputSystem(source),
		physics,
		system.NewPlanarLockSystem(),
		system.NewPlayerControllerSystem(physics, opts.Logger),
		system.NewTraceSystem(opts.Logger, func(row system.TraceRow) {
			res.Rows = append(res.Rows, row)
		}),
	)

	if _, err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return nil, err
	}
	if _, err := entity.NewPlayer(w, opts.Basic); err != nil {
		return nil, err
	}

	for i := 0; i < ticks; i++ {
		scheduler.Step(w, step)
	}
	return res, nil
}

func inputSource(opts Options, step time.Duration) (system.InputSource, int, error) {
	if opts.Script != "" {
		src, err := prefabs.LoadScript(opts.Script)
		if err != nil {
			return nil, 0, fmt.Errorf("sim: load script %s: %w", opts.Script, err)
		}
		in, err := system.NewScriptInput(opts.Script, src, step, opts.Logger)
		if err != nil {
			return nil, 0, err
		}
		return in, int(5 * time.Second / step), nil
	}

	name := opts.Sequence
	if name == "" {
		name = "dash"
	}
	steps, ok := sequences[name]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownSequence, name)
	}
	seq := system.NewSequenceInput(steps...)
	return seq, seq.Len(), nil
}
