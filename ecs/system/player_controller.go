package system

import (
	"io"

	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/mover"
	"github.com/charmbracelet/log"
)

// PlayerControllerSystem advances every entity's mover once per tick using
// the entity's input snapshot and the world delta time.
type PlayerControllerSystem struct {
	physics *PhysicsSystem
	logger  *log.Logger
}

func NewPlayerControllerSystem(physics *PhysicsSystem, logger *log.Logger) *PlayerControllerSystem {
	return &PlayerControllerSystem{physics: physics, logger: orDiscard(logger)}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	ecs.ForEach3(w, component.MoverComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, m *component.Mover, body *component.PhysicsBody, input *component.Input) {
		if body.Body == nil || body.Static {
			return
		}
		if m.Controller == nil {
			m.Controller = p.buildController(w, e, m, body)
		}

		rep := m.Controller.Advance(w.DeltaTime(), mover.Input{
			Axis:        input.Axis,
			JumpPressed: input.JumpPressed,
			DashPressed: input.DashPressed,
		})
		m.Last = rep

		if rep.Jumped {
			p.logger.Debug("jump executed", "entity", e, "tick", w.Tick())
		}
		if rep.DashReady {
			p.logger.Debug("dash ready", "entity", e, "tick", w.Tick())
		}
		if rep.DashStarted {
			p.logger.Debug("dash started", "entity", e, "tick", w.Tick(), "direction", m.Controller.Dash().Direction)
		}
		if rep.DashEnded {
			p.logger.Debug("dash ended", "entity", e, "tick", w.Tick())
		}
	})
}

func (p *PlayerControllerSystem) buildController(w *ecs.World, e ecs.Entity, m *component.Mover, body *component.PhysicsBody) *mover.Mover {
	gravity, ok := ecs.Get(w, e, component.GravityScaleComponent.Kind())
	if !ok {
		gravity = &component.GravityScale{Scale: 1}
		if err := ecs.Add(w, e, component.GravityScaleComponent.Kind(), gravity); err != nil {
			p.logger.Warn("attach gravity scale", "entity", e, "error", err)
		}
	}

	var probe mover.GroundProbe
	if sp := p.physics.GroundProbe(e); sp != nil {
		probe = sp
	}
	if record, ok := ecs.Get(w, e, component.GroundProbeComponent.Kind()); ok && probe != nil {
		probe = &recordingProbe{probe: probe, record: record}
	}

	var facer mover.Facer
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		facer = &spriteFacer{sprite: sprite}
	}

	if err := m.Config.Validate(); err != nil {
		p.logger.Warn("mover config clamped", "entity", e, "error", err)
	}

	ctrl := mover.New(m.Config, &chipmunkBody{body: body.Body, gravity: gravity}, probe, facer)
	p.logger.Info("controller initialized",
		"entity", e,
		"dash", m.Config.DashEnabled,
		"sprite", facer != nil,
	)
	return ctrl
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(io.Discard)
	}
	return logger
}
