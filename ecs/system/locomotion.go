package system

import (
	"github.com/milk9111/densetsu/ecs"
	"github.com/milk9111/densetsu/ecs/component"
)

// LocomotionSystem steps every bound controller by the fixed step.
type LocomotionSystem struct {
	binder *LocomotionBinder
	dt     float64
}

func NewLocomotionSystem(binder *LocomotionBinder, dt float64) *LocomotionSystem {
	return &LocomotionSystem{binder: binder, dt: dt}
}

func (s *LocomotionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.LocomotionComponent.Kind(), func(e ecs.Entity, loco *component.Locomotion) {
		if !s.binder.Ensure(w, e, loco) {
			return
		}
		loco.Controller.StepPhysics(s.dt)
	})
}
