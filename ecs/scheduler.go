package ecs

import "fmt"

type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order, once per fixed step.
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

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	return append([]System(nil), s.systems...)
}

// Names lists system type names in run order, for the debug overlay.
func (s *Scheduler) Names() []string {
	names := make([]string, 0, len(s.systems))
	for _, system := range s.systems {
		names = append(names, fmt.Sprintf("%T", system))
	}
	return names
}
