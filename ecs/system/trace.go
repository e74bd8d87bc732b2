package system

import (
	"time"

	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
	"github.com/charmbracelet/log"
)

// TraceRow is one player's state at the end of a tick.
type TraceRow struct {
	Tick         int
	Time         time.Duration
	X            float64
	Y            float64
	VX           float64
	VY           float64
	GravityScale float64
	Grounded     bool
	Facing       mover.Facing
	Phase        mover.DashPhase
	Jumped       bool
	DashStarted  bool
	DashEnded    bool
	DashReady    bool
}

// TraceSystem logs player movement every tick at debug level and hands each
// row to an optional sink.
type TraceSystem struct {
	logger *log.Logger
	sink   func(TraceRow)
}

func NewTraceSystem(logger *log.Logger, sink func(TraceRow)) *TraceSystem {
	return &TraceSystem{logger: orDiscard(logger), sink: sink}
}

func (s *TraceSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), component.MoverComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform, m *component.Mover) {
		row := TraceRow{
			Tick:        w.Tick(),
			Time:        w.Time(),
			X:           t.X,
			Y:           t.Y,
			VX:          m.Last.Velocity.X,
			VY:          m.Last.Velocity.Y,
			Grounded:    m.Last.Grounded,
			Facing:      m.Last.Facing,
			Phase:       m.Last.Phase,
			Jumped:      m.Last.Jumped,
			DashStarted: m.Last.DashStarted,
			DashEnded:   m.Last.DashEnded,
			DashReady:   m.Last.DashReady,
		}
		if gs, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind()); ok {
			row.GravityScale = gs.Scale
		}

		s.logger.Debug("tick",
			"n", row.Tick,
			"pos", [2]float64{row.X, row.Y},
			"vel", [2]float64{row.VX, row.VY},
			"grounded", row.Grounded,
			"dash", row.Phase,
		)
		if s.sink != nil {
			s.sink(row)
		}
	})
}
