package entity

import (
	"fmt"
	"image/color"

	"github.com/CatPunch007/LittleWitch/ecs"
	"github.com/CatPunch007/LittleWitch/ecs/component"
	"github.com/CatPunch007/LittleWitch/prefabs"
)

var defaultPlatformColor = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x4f, A: 0xff}

// LoadLevelToWorld creates a static collider entity for every platform in the
// level and returns them in spec order.
func LoadLevelToWorld(w *ecs.World, lvl *prefabs.LevelSpec) ([]ecs.Entity, error) {
	if w == nil {
		return nil, fmt.Errorf("load level: world is nil")
	}
	if lvl == nil {
		return nil, fmt.Errorf("load level: spec is nil")
	}

	entities := make([]ecs.Entity, 0, len(lvl.Platforms))
	for i, p := range lvl.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return entities, fmt.Errorf("load level %q: platform %d has no extent", lvl.Name, i)
		}

		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.StaticTileTagComponent.Kind(), &component.StaticTileTag{}); err != nil {
			return entities, err
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.X, Y: p.Y}); err != nil {
			return entities, err
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:    p.Width,
			Height:   p.Height,
			Friction: p.Friction,
			Static:   true,
		}); err != nil {
			return entities, err
		}
		if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
			Width:  p.Width,
			Height: p.Height,
			Color:  p.Color.NRGBA(defaultPlatformColor),
		}); err != nil {
			return entities, err
		}
		entities = append(entities, e)
	}

	return entities, nil
}

// ClearLevel destroys every static tile entity.
func ClearLevel(w *ecs.World) {
	for _, e := range w.Query(component.StaticTileTagComponent.Kind().ID()) {
		w.DestroyEntity(e)
	}
}
