package ecs

import (
	"time"

	"github.com/CatPunch007/LittleWitch/ecs/component"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// World owns entities, their component stores and the simulation clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet

	tick  int
	delta time.Duration
	time  time.Duration
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and frees its slot. It returns
// false if e was not alive.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Query returns live entities that have every listed component.
func (w *World) Query(kinds ...component.ComponentID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		s := w.stores[k]
		if s.len() == 0 {
			return nil
		}
		sets = append(sets, s)
	}
	smallest := sets[0]
	for _, s := range sets[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	var out []Entity
	for _, e := range smallest.snapshot() {
		if !w.entities.isAlive(e) {
			continue
		}
		match := true
		for _, s := range sets {
			if !s.has(e) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity that has the component.
func (w *World) First(kind component.ComponentID) (Entity, bool) {
	ents := w.Query(kind)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Tick is the number of completed scheduler steps.
func (w *World) Tick() int {
	if w == nil {
		return 0
	}
	return w.tick
}

// DeltaTime is the simulated duration of the current step.
func (w *World) DeltaTime() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

// Time is the total simulated time including the current step.
func (w *World) Time() time.Duration {
	if w == nil {
		return 0
	}
	return w.time
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*sparseSet)
	}
	s := w.stores[id]
	if s == nil && create {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// Package-level helpers mirror the World methods for call sites that already
// use the generic accessors.

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
