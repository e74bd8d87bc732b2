package ecs

import "time"

// Scheduler runs systems in a fixed order and owns the world clock.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Step advances the world clock by dt and runs every system once.
func (s *Scheduler) Step(w *World, dt time.Duration) {
	if s == nil || w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	w.time += dt
	for _, system := range s.systems {
		system.Update(w)
	}
	w.tick++
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
