package entity

import (
	"fmt"
	"image/color"

	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/prefabs"
)

var defaultPlayerColor = color.NRGBA{R: 0xc7, G: 0x7d, B: 0xff, A: 0xff}

// NewPlayer loads the player prefab and spawns it at the prefab's transform.
func NewPlayer(w *ecs.World, basic bool) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}
	return BuildPlayer(w, spec, spec.Transform.X, spec.Transform.Y, basic)
}

// BuildPlayer creates a player entity at (x, y). The mover controller is
// attached lazily by the controller system once the body exists.
func BuildPlayer(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64, basic bool) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build player: world is nil")
	}
	if spec == nil {
		return 0, fmt.Errorf("build player: spec is nil")
	}

	e := ecs.CreateEntity(w)
	cfg := spec.MoverConfig(basic)

	spriteW, spriteH := spec.Sprite.Width, spec.Sprite.Height
	if spriteW <= 0 || spriteH <= 0 {
		spriteW, spriteH = spec.Collider.Width, spec.Collider.Height
	}

	steps := []struct {
		name string
		add  func() error
	}{
		{"player_tag", func() error {
			return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
		}},
		{"transform", func() error {
			return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
		}},
		{"physics_body", func() error {
			return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Width:    spec.Collider.Width,
				Height:   spec.Collider.Height,
				Mass:     spec.Collider.Mass,
				Friction: spec.Collider.Friction,
			})
		}},
		{"gravity_scale", func() error {
			return ecs.Add(w, e, component.GravityScaleComponent.Kind(), &component.GravityScale{Scale: cfg.BaseGravityScale})
		}},
		{"input", func() error {
			return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
		}},
		{"mover", func() error {
			return ecs.Add(w, e, component.MoverComponent.Kind(), &component.Mover{Config: cfg})
		}},
		{"ground_probe", func() error {
			return ecs.Add(w, e, component.GroundProbeComponent.Kind(), &component.GroundProbe{})
		}},
		{"sprite", func() error {
			return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
				Width:  spriteW,
				Height: spriteH,
				Color:  spec.Sprite.Color.NRGBA(defaultPlayerColor),
			})
		}},
	}

	for _, step := range steps {
		if err := step.add(); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build player: add %s: %w", step.name, err)
		}
	}

	return e, nil
}

// FindPlayer returns the first entity tagged as the player.
func FindPlayer(w *ecs.World) (ecs.Entity, bool) {
	if w == nil {
		return 0, false
	}
	return w.First(component.PlayerTagComponent.Kind().ID())
}
